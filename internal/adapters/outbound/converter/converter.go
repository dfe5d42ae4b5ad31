// Package converter rewrites Shift_JIS files as UTF-8, preserving a
// byte-exact backup of the original under a mirror of its relative path.
package converter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/japanese"

	"github.com/jisconv/jisconv/internal/domain"
)

// BackupSuffix is appended to the mirrored relative path of each backup.
const BackupSuffix = ".jis"

// ErrMalformedShiftJIS marks input that fails the strict Shift_JIS check.
var ErrMalformedShiftJIS = errors.New("malformed Shift_JIS byte sequence")

// ShiftJISTranscoder implements domain.Transcoder.
type ShiftJISTranscoder struct{}

func New() *ShiftJISTranscoder {
	return &ShiftJISTranscoder{}
}

// Convert backs up root/relPath under backupDir and overwrites the original
// with its UTF-8 re-encoding. Order matters: the backup is durably written
// before the original is touched, and any failure (backup write, malformed
// input, output write) leaves the original bytes in place.
func (t *ShiftJISTranscoder) Convert(root, relPath, backupDir string) domain.ConversionOutcome {
	out := domain.ConversionOutcome{Path: relPath}

	src := filepath.Join(root, filepath.FromSlash(relPath))
	fi, err := os.Stat(src)
	if err != nil {
		out.Err = fmt.Sprintf("read: %v", err)
		return out
	}
	data, err := os.ReadFile(src)
	if err != nil {
		out.Err = fmt.Sprintf("read: %v", err)
		return out
	}

	backupPath := filepath.Join(backupDir, filepath.FromSlash(relPath)) + BackupSuffix
	if err := os.MkdirAll(filepath.Dir(backupPath), 0o755); err != nil {
		out.Err = fmt.Sprintf("backup: %v", err)
		return out
	}
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		out.Err = fmt.Sprintf("backup: %v", err)
		return out
	}
	out.BackupPath = backupPath

	// The x/text decoder substitutes U+FFFD for malformed sequences instead
	// of failing, so strictness is enforced up front.
	if !domain.ValidShiftJIS(data) {
		out.Err = fmt.Sprintf("decode: %v", ErrMalformedShiftJIS)
		return out
	}

	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if err != nil {
		out.Err = fmt.Sprintf("decode: %v", err)
		return out
	}

	if err := os.WriteFile(src, decoded, perm(fi)); err != nil {
		out.Err = fmt.Sprintf("write: %v", err)
		return out
	}

	out.Success = true
	return out
}

func perm(fi fs.FileInfo) fs.FileMode {
	if m := fi.Mode().Perm(); m != 0 {
		return m
	}
	return 0o644
}
