package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jisconv/jisconv/internal/adapters/outbound/converter"
	"github.com/jisconv/jisconv/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConvertService() *application.ConvertService {
	return application.NewConvertService(newScanService(), converter.New())
}

func TestConvertService_ConvertsOnlyShiftJISFiles(t *testing.T) {
	root := t.TempDir()
	backupDir := t.TempDir()
	ascii := []byte("public class Ascii {}\n")
	writeFile(t, root, "Ascii.java", ascii)
	writeFile(t, root, "jp/Legacy.java", nihongoSJIS)

	report, err := newConvertService().Convert(root, backupDir)
	require.NoError(t, err)

	require.Len(t, report.Conversions, 1)
	outcome := report.Conversions[0]
	assert.Equal(t, "jp/Legacy.java", outcome.Path)
	require.True(t, outcome.Success, "outcome error: %s", outcome.Err)

	// The converted file is now UTF-8.
	converted, err := os.ReadFile(filepath.Join(root, "jp", "Legacy.java"))
	require.NoError(t, err)
	assert.Equal(t, []byte("日本語"), converted)

	// The ASCII file was not rewritten and has no backup.
	got, err := os.ReadFile(filepath.Join(root, "Ascii.java"))
	require.NoError(t, err)
	assert.Equal(t, ascii, got)
	_, err = os.Stat(filepath.Join(backupDir, "Ascii.java.jis"))
	assert.True(t, os.IsNotExist(err))

	// The backup mirrors the relative path and holds the original bytes.
	backup, err := os.ReadFile(filepath.Join(backupDir, "jp", "Legacy.java.jis"))
	require.NoError(t, err)
	assert.Equal(t, nihongoSJIS, backup)
}

func TestConvertService_FailureDoesNotStopBatch(t *testing.T) {
	root := t.TempDir()
	backupDir := t.TempDir()
	// Classified SHIFT_JIS by ratio, but strictly malformed (truncated lead).
	malformed := append(append([]byte{}, nihongoSJIS...), nihongoSJIS...)
	malformed = append(malformed, nihongoSJIS...)
	malformed = append(malformed, 0x93)
	writeFile(t, root, "a/Broken.java", malformed)
	writeFile(t, root, "b/Good.java", nihongoSJIS)

	report, err := newConvertService().Convert(root, backupDir)
	require.NoError(t, err)

	require.Len(t, report.Conversions, 2)

	broken := report.Conversions[0]
	assert.Equal(t, "a/Broken.java", broken.Path)
	assert.False(t, broken.Success)
	assert.Contains(t, broken.Err, "decode")

	good := report.Conversions[1]
	assert.Equal(t, "b/Good.java", good.Path)
	assert.True(t, good.Success)

	// Failed file is byte-identical to its pre-run content.
	got, err := os.ReadFile(filepath.Join(root, "a", "Broken.java"))
	require.NoError(t, err)
	assert.Equal(t, malformed, got)
}

func TestConvertService_NothingToConvert(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Ascii.java", []byte("class A {}"))

	report, err := newConvertService().Convert(root, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, report.Conversions)
}
