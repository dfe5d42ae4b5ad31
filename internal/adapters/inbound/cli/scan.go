package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jisconv/jisconv/internal/adapters/outbound/config"
	"github.com/jisconv/jisconv/internal/adapters/outbound/converter"
	"github.com/jisconv/jisconv/internal/adapters/outbound/detector"
	"github.com/jisconv/jisconv/internal/adapters/outbound/gitinfo"
	"github.com/jisconv/jisconv/internal/adapters/outbound/history"
	"github.com/jisconv/jisconv/internal/adapters/outbound/scanner"
	"github.com/jisconv/jisconv/internal/adapters/outbound/tui"
	"github.com/jisconv/jisconv/internal/application"
	"github.com/jisconv/jisconv/internal/domain"
)

// newScanCmd builds the scan/convert command that also serves as the root.
func newScanCmd() *cobra.Command {
	var (
		convert    bool
		backupDir  string
		extensions []string
		jsonOutput bool
		heuristic  bool
	)

	cmd := &cobra.Command{
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if _, err := os.Stat(absPath); err != nil {
				return fmt.Errorf("path not found: %s", absPath)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return err
			}
			if len(extensions) > 0 {
				cfg.Extensions = extensions
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			if convert && backupDir == "" {
				backupDir = cfg.BackupDir
			}
			if convert && backupDir == "" {
				return fmt.Errorf("--backup-dir is required with --convert")
			}

			// The detection capability is chosen once, here, and never
			// re-checked mid-run.
			var stat domain.CharsetDetector
			if !heuristic {
				stat = detector.New()
			}
			detect := application.NewDetectService(stat, cfg.EffectiveMinConfidence(application.DefaultMinConfidence))
			scanSvc := application.NewScanService(scanner.New(), detect, config.New())

			var report *domain.ScanReport
			if convert {
				convertSvc := application.NewConvertService(scanSvc, converter.New())
				report, err = convertSvc.ConvertWithConfig(absPath, cfg, backupDir)
			} else {
				report, err = scanSvc.ScanWithConfig(absPath, cfg)
			}
			if err != nil {
				return err
			}

			logWarnings(cmd, report)
			saveHistory(absPath, report)

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&convert, "convert", false, "Convert Shift_JIS files to UTF-8 (backups required)")
	cmd.Flags().StringVar(&backupDir, "backup-dir", "", "Directory for .jis backups, mirroring relative paths")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "File extensions to scan (default .java, or per .jisconv.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&heuristic, "heuristic", false, "Skip statistical detection and use only the byte heuristic")

	return cmd
}

// logWarnings writes skipped-path and per-file failure lines to stderr, one
// per line, so the stdout table stays greppable.
func logWarnings(cmd *cobra.Command, report *domain.ScanReport) {
	for _, w := range report.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	for _, c := range report.Conversions {
		if c.Err != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "convert error: %s: %s\n", c.Path, c.Err)
		}
	}
}

// saveHistory appends a history entry for this run, best-effort, tagging it
// with the tree's commit hash when the root is a git repository.
func saveHistory(absPath string, report *domain.ScanReport) {
	converted, failed := report.ConversionTotals()
	entry := domain.ScanEntry{
		Timestamp:    time.Now().Format(time.RFC3339),
		Root:         absPath,
		FilesScanned: len(report.Files),
		ShiftJIS:     report.Count(domain.EncodingShiftJIS),
		Converted:    converted,
		Failed:       failed,
	}
	gi := gitinfo.New()
	if hash, err := gi.CommitHash(absPath); err == nil {
		entry.CommitHash = hash
	}
	_ = history.New().Save(absPath, entry)
}

func renderJSON(cmd *cobra.Command, report *domain.ScanReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
