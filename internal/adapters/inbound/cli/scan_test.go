package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jisconv/jisconv/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "日本語" in Shift_JIS.
var nihongoSJIS = []byte{0x93, 0xFA, 0x96, 0x7B, 0x8C, 0xEA}

func writeFile(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func runRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestScan_ReportsEncodings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/Ascii.java", []byte("public class Ascii {}\n"))
	writeFile(t, root, "src/Legacy.java", nihongoSJIS)

	stdout, _, err := runRoot(t, root, "--heuristic")
	require.NoError(t, err)

	assert.Contains(t, stdout, "File")
	assert.Contains(t, stdout, "src/Ascii.java")
	assert.Contains(t, stdout, "OTHER")
	assert.Contains(t, stdout, "src/Legacy.java")
	assert.Contains(t, stdout, "SHIFT_JIS")
}

func TestScan_JSONOutput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Legacy.java", nihongoSJIS)

	stdout, _, err := runRoot(t, root, "--heuristic", "--json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report), "output should be valid JSON")
	assert.Contains(t, report, "files")
	assert.Contains(t, report, "root_path")
}

func TestScan_MissingPathIsFatal(t *testing.T) {
	_, _, err := runRoot(t, filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path not found")
}

func TestScan_ExtFlagOverridesDefault(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "page.jsp", nihongoSJIS)
	writeFile(t, root, "Main.java", []byte("class Main {}"))

	stdout, _, err := runRoot(t, root, "--heuristic", "--ext", ".jsp")
	require.NoError(t, err)

	assert.Contains(t, stdout, "page.jsp")
	assert.NotContains(t, stdout, "Main.java")
}

func TestConvert_RequiresBackupDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Legacy.java", nihongoSJIS)

	_, _, err := runRoot(t, root, "--convert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--backup-dir")
}

func TestConvert_RewritesAndBacksUp(t *testing.T) {
	root := t.TempDir()
	backupDir := t.TempDir()
	writeFile(t, root, "jp/Legacy.java", nihongoSJIS)
	ascii := []byte("public class Ascii {}\n")
	writeFile(t, root, "Ascii.java", ascii)

	stdout, _, err := runRoot(t, root, "--heuristic", "--convert", "--backup-dir", backupDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 converted")

	converted, err := os.ReadFile(filepath.Join(root, "jp", "Legacy.java"))
	require.NoError(t, err)
	assert.Equal(t, []byte("日本語"), converted)

	backup, err := os.ReadFile(filepath.Join(backupDir, "jp", "Legacy.java.jis"))
	require.NoError(t, err)
	assert.Equal(t, nihongoSJIS, backup)

	// ASCII file untouched even in convert mode.
	got, err := os.ReadFile(filepath.Join(root, "Ascii.java"))
	require.NoError(t, err)
	assert.Equal(t, ascii, got)
}

func TestConvert_ErrorsGoToStderrNotStdout(t *testing.T) {
	root := t.TempDir()
	backupDir := t.TempDir()
	// Classified SHIFT_JIS by ratio, strictly malformed (truncated lead).
	malformed := append(bytes.Repeat(nihongoSJIS, 3), 0x93)
	writeFile(t, root, "Broken.java", malformed)

	stdout, stderr, err := runRoot(t, root, "--heuristic", "--convert", "--backup-dir", backupDir)
	require.NoError(t, err, "per-file failures must not fail the run")

	assert.Contains(t, stderr, "Broken.java")
	assert.Contains(t, stderr, "decode")
	assert.NotContains(t, stdout, "decode:")
}

func TestScan_WritesHistory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Legacy.java", nihongoSJIS)

	_, _, err := runRoot(t, root, "--heuristic")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(root, ".jisconv", "history", "scans.json"))
	assert.NoError(t, statErr)

	stdout, _, err := runRoot(t, "history", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "jisconv")
}
