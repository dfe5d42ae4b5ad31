package domain

// TreeScanner walks a root directory and enumerates candidate files.
type TreeScanner interface {
	Scan(root string, cfg ProjectConfig) (*ScanTree, error)
}

// CharsetDetector is the statistical encoding-detection capability. It is
// optional: the detect service falls back to the byte classifier when no
// implementation is selected or when a verdict scores below the trust
// threshold.
type CharsetDetector interface {
	Detect(data []byte) (Detection, error)
}

// Transcoder rewrites one Shift_JIS file as UTF-8 after backing up its
// original bytes under backupDir. Failures are reported in the outcome, not
// as errors, so one bad file never stops a batch.
type Transcoder interface {
	Convert(root, relPath, backupDir string) ConversionOutcome
}

// ConfigLoader loads per-project configuration from the scan root.
type ConfigLoader interface {
	Load(root string) (ProjectConfig, error)
}

// ScanHistory persists one entry per completed run.
type ScanHistory interface {
	Save(root string, entry ScanEntry) error
	Load(root string) ([]ScanEntry, error)
}

// GitInfo reports version-control facts about the scanned tree.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
