// Package tui renders scan reports and history as terminal tables.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jisconv/jisconv/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	sjisStyle    = lipgloss.NewStyle().Bold(true).Foreground(warning)
	otherStyle   = lipgloss.NewStyle().Foreground(dim)
	unknownStyle = lipgloss.NewStyle().Foreground(danger)
	okStyle      = lipgloss.NewStyle().Foreground(success)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
)

const (
	minPathWidth = 4  // len("File")
	maxPathWidth = 72 // keep rows on one line for typical terminals
	encWidth     = 9  // len("SHIFT_JIS")
)

// RenderReport renders the File / Encoding / Conf table followed by a
// one-line summary. Rows keep the scanner's traversal order.
func RenderReport(report *domain.ScanReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("jisconv"))
	b.WriteString(dimStyle.Render("  " + report.RootPath))
	b.WriteString("\n\n")

	pathWidth := minPathWidth
	for _, f := range report.Files {
		if len(f.Path) > pathWidth {
			pathWidth = len(f.Path)
		}
	}
	if pathWidth > maxPathWidth {
		pathWidth = maxPathWidth
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s  %s",
		padRight("File", pathWidth), padRight("Encoding", encWidth), "Conf")))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(strings.Repeat("─", pathWidth+encWidth+8)))
	b.WriteString("\n")

	for _, f := range report.Files {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			padRight(f.Path, pathWidth),
			encodingStyle(f.Encoding).Render(padRight(string(f.Encoding), encWidth)),
			confString(f.Confidence),
		)
	}

	b.WriteString("\n")
	b.WriteString(renderSummary(report))
	b.WriteString("\n")
	return b.String()
}

func renderSummary(report *domain.ScanReport) string {
	parts := []string{
		fmt.Sprintf("%d files", len(report.Files)),
		fmt.Sprintf("%d Shift_JIS", report.Count(domain.EncodingShiftJIS)),
	}
	if n := report.Count(domain.EncodingUnknown); n > 0 {
		parts = append(parts, fmt.Sprintf("%d unknown", n))
	}
	if len(report.Conversions) > 0 {
		converted, failed := report.ConversionTotals()
		parts = append(parts, okStyle.Render(fmt.Sprintf("%d converted", converted)))
		if failed > 0 {
			parts = append(parts, failStyle.Render(fmt.Sprintf("%d failed", failed)))
		}
	}
	if len(report.Warnings) > 0 {
		parts = append(parts, failStyle.Render(fmt.Sprintf("%d warnings", len(report.Warnings))))
	}
	return dimStyle.Render("Σ ") + strings.Join(parts, dimStyle.Render(" · "))
}

// RenderHistory renders past scan entries, newest last.
func RenderHistory(entries []domain.ScanEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("No scan history yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s  %s  %s  %s  %s",
		padRight("Timestamp", 20), padRight("Commit", 8),
		padRight("Files", 5), padRight("SJIS", 4),
		padRight("Conv", 4), "Fail")))
	b.WriteString("\n")

	for _, e := range entries {
		commit := e.CommitHash
		if len(commit) > 8 {
			commit = commit[:8]
		}
		if commit == "" {
			commit = "-"
		}
		fmt.Fprintf(&b, "%s  %s  %s  %s  %s  %d\n",
			padRight(e.Timestamp, 20), padRight(commit, 8),
			padRight(fmt.Sprintf("%d", e.FilesScanned), 5),
			padRight(fmt.Sprintf("%d", e.ShiftJIS), 4),
			padRight(fmt.Sprintf("%d", e.Converted), 4),
			e.Failed)
	}
	return b.String()
}

func encodingStyle(enc domain.Encoding) lipgloss.Style {
	switch enc {
	case domain.EncodingShiftJIS:
		return sjisStyle
	case domain.EncodingUnknown:
		return unknownStyle
	default:
		return otherStyle
	}
}

func confString(conf *float64) string {
	if conf == nil {
		return dimStyle.Render("-")
	}
	return fmt.Sprintf("%.2f", *conf)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
