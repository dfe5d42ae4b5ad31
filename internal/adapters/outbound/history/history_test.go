package history_test

import (
	"testing"

	"github.com/jisconv/jisconv/internal/adapters/outbound/history"
	"github.com/jisconv/jisconv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestFileHistory_SaveAndLoad(t *testing.T) {
	root := t.TempDir()
	h := history.New()

	first := domain.ScanEntry{
		Timestamp:    "2026-08-23T10:00:00Z",
		Root:         root,
		FilesScanned: 12,
		ShiftJIS:     3,
	}
	require.NoError(t, h.Save(root, first))

	second := domain.ScanEntry{
		Timestamp:    "2026-08-23T11:00:00Z",
		CommitHash:   "abc123",
		Root:         root,
		FilesScanned: 12,
		ShiftJIS:     3,
		Converted:    3,
	}
	require.NoError(t, h.Save(root, second))

	entries, err := h.Load(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}
