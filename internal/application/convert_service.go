package application

import (
	"github.com/jisconv/jisconv/internal/domain"
)

// ConvertService runs a scan and then rewrites every SHIFT_JIS file as
// UTF-8. Files are converted independently: one failure never stops the
// batch.
type ConvertService struct {
	scan       *ScanService
	transcoder domain.Transcoder
}

func NewConvertService(scan *ScanService, transcoder domain.Transcoder) *ConvertService {
	return &ConvertService{scan: scan, transcoder: transcoder}
}

// Convert scans root and converts each SHIFT_JIS file, backing originals up
// under backupDir. The returned report carries one ConversionOutcome per
// attempted file.
func (s *ConvertService) Convert(root, backupDir string) (*domain.ScanReport, error) {
	report, err := s.scan.Scan(root)
	if err != nil {
		return nil, err
	}
	s.convertFlagged(report, backupDir)
	return report, nil
}

// ConvertWithConfig is Convert with an explicit, already-loaded config.
func (s *ConvertService) ConvertWithConfig(root string, cfg domain.ProjectConfig, backupDir string) (*domain.ScanReport, error) {
	report, err := s.scan.ScanWithConfig(root, cfg)
	if err != nil {
		return nil, err
	}
	s.convertFlagged(report, backupDir)
	return report, nil
}

func (s *ConvertService) convertFlagged(report *domain.ScanReport, backupDir string) {
	for _, f := range report.Files {
		if f.Encoding != domain.EncodingShiftJIS {
			continue
		}
		outcome := s.transcoder.Convert(report.RootPath, f.Path, backupDir)
		report.Conversions = append(report.Conversions, outcome)
	}
}
