// Package application wires the scanner, detector, and converter into the
// scan and convert pipelines.
package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jisconv/jisconv/internal/domain"
)

// ScanService walks a root directory and classifies every candidate file:
// scan → read → detect, one file at a time, in traversal order.
type ScanService struct {
	scanner      domain.TreeScanner
	detect       *DetectService
	configLoader domain.ConfigLoader
}

func NewScanService(
	scanner domain.TreeScanner,
	detect *DetectService,
	configLoader domain.ConfigLoader,
) *ScanService {
	return &ScanService{
		scanner:      scanner,
		detect:       detect,
		configLoader: configLoader,
	}
}

// Scan loads the project config and classifies everything under root.
func (s *ScanService) Scan(root string) (*domain.ScanReport, error) {
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s.ScanWithConfig(root, cfg)
}

// ScanWithConfig is Scan with an explicit config, for callers that already
// loaded (and possibly overrode) it.
func (s *ScanService) ScanWithConfig(root string, cfg domain.ProjectConfig) (*domain.ScanReport, error) {
	tree, err := s.scanner.Scan(root, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	report := &domain.ScanReport{
		RootPath:  tree.RootPath,
		Timestamp: time.Now(),
		Warnings:  tree.Warnings,
	}

	for _, rel := range tree.Files {
		data, err := os.ReadFile(filepath.Join(tree.RootPath, filepath.FromSlash(rel)))
		if err != nil {
			// Per-file failure: report the row as UNKNOWN and keep going.
			report.Files = append(report.Files, domain.FileReport{
				Path:     rel,
				Encoding: domain.EncodingUnknown,
				Err:      err.Error(),
			})
			report.Warnings = append(report.Warnings, fmt.Sprintf("unreadable file %s: %v", rel, err))
			continue
		}

		det := s.detect.Detect(data)
		report.Files = append(report.Files, domain.FileReport{
			Path:       rel,
			Encoding:   det.Encoding,
			Confidence: det.Confidence,
		})
	}

	return report, nil
}
