package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jisconv/jisconv/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	"vendor":       true,
	"node_modules": true,
	"target":       true,
	"build":        true,
	".jisconv":     true,
}

// FileScanner implements domain.TreeScanner by walking the filesystem.
// Symbolic links are never followed, and directories that cannot be read
// produce a warning instead of aborting the walk.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(root string, cfg domain.ProjectConfig) (*domain.ScanTree, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", absRoot)
	}

	exts := make(map[string]bool)
	for _, e := range cfg.EffectiveExtensions() {
		exts[e] = true
	}

	extraSkip := make(map[string]bool, len(cfg.ExcludePaths))
	for _, p := range cfg.ExcludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	tree := &domain.ScanTree{RootPath: absRoot}

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory or stat failure: warn and keep going.
			tree.Warnings = append(tree.Warnings, fmt.Sprintf("skipping %s: %v", path, err))
			return nil
		}

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			rel, _ := filepath.Rel(absRoot, path)
			if skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[filepath.ToSlash(rel)] {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		if !exts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, _ := filepath.Rel(absRoot, path)
		tree.Files = append(tree.Files, filepath.ToSlash(rel))
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return tree, nil
}
