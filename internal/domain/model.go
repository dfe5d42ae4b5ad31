package domain

import "time"

// ScanTree is the raw output of walking the scan root: candidate files in
// traversal order, plus warnings for anything that had to be skipped.
type ScanTree struct {
	RootPath string   `json:"root_path"`
	Files    []string `json:"files"`
	Warnings []string `json:"warnings,omitempty"`
}

// FileReport is the per-file result of a scan. Confidence is nil when no
// detector could score the file (heuristic UNKNOWN verdicts, read errors).
type FileReport struct {
	Path       string   `json:"path"`
	Encoding   Encoding `json:"encoding"`
	Confidence *float64 `json:"confidence,omitempty"`
	Err        string   `json:"error,omitempty"`
}

// ConversionOutcome records what happened to one Shift_JIS file in
// conversion mode.
type ConversionOutcome struct {
	Path       string `json:"path"`
	Success    bool   `json:"success"`
	BackupPath string `json:"backup_path,omitempty"`
	Err        string `json:"error,omitempty"`
}

// ScanReport is the full result of one run: one FileReport per candidate
// file in traversal order, and one ConversionOutcome per converted file when
// conversion mode is on.
type ScanReport struct {
	RootPath    string              `json:"root_path"`
	Timestamp   time.Time           `json:"timestamp"`
	Files       []FileReport        `json:"files"`
	Warnings    []string            `json:"warnings,omitempty"`
	Conversions []ConversionOutcome `json:"conversions,omitempty"`
}

// Count returns the number of files classified as enc.
func (r *ScanReport) Count(enc Encoding) int {
	n := 0
	for _, f := range r.Files {
		if f.Encoding == enc {
			n++
		}
	}
	return n
}

// ConversionTotals returns how many conversions succeeded and failed.
func (r *ScanReport) ConversionTotals() (converted, failed int) {
	for _, c := range r.Conversions {
		if c.Success {
			converted++
		} else {
			failed++
		}
	}
	return converted, failed
}

// ScanEntry is one line of the persisted scan history.
type ScanEntry struct {
	Timestamp    string `json:"timestamp"`
	CommitHash   string `json:"commit_hash,omitempty"`
	Root         string `json:"root"`
	FilesScanned int    `json:"files_scanned"`
	ShiftJIS     int    `json:"shift_jis"`
	Converted    int    `json:"converted"`
	Failed       int    `json:"failed"`
}
