package domain

import (
	"fmt"
	"strings"
)

// ProjectConfig holds per-project settings loaded from .jisconv.yaml.
// The zero value plus DefaultConfig covers projects with no config file.
type ProjectConfig struct {
	Extensions    []string `yaml:"extensions"     json:"extensions,omitempty"`
	ExcludePaths  []string `yaml:"exclude_paths"  json:"exclude_paths,omitempty"`
	MinConfidence *float64 `yaml:"min_confidence" json:"min_confidence,omitempty"`
	BackupDir     string   `yaml:"backup_dir"     json:"backup_dir,omitempty"`
}

// DefaultExtension is scanned when neither config nor flags name any.
const DefaultExtension = ".java"

// DefaultConfig returns the configuration used when no .jisconv.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Extensions: []string{DefaultExtension}}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid extension %q (must start with a dot, e.g. %q)", ext, ".java")
		}
	}
	if c.MinConfidence != nil {
		if *c.MinConfidence < 0.0 || *c.MinConfidence > 1.0 {
			return fmt.Errorf("min_confidence must be between 0.0 and 1.0 (got %.2f)", *c.MinConfidence)
		}
	}
	return nil
}

// EffectiveExtensions returns the configured extensions, lowercased, falling
// back to the default when none are set.
func (c ProjectConfig) EffectiveExtensions() []string {
	if len(c.Extensions) == 0 {
		return []string{DefaultExtension}
	}
	exts := make([]string, len(c.Extensions))
	for i, e := range c.Extensions {
		exts[i] = strings.ToLower(e)
	}
	return exts
}

// EffectiveMinConfidence returns the configured detector-trust threshold,
// falling back to def if not specified.
func (c ProjectConfig) EffectiveMinConfidence(def float64) float64 {
	if c.MinConfidence != nil {
		return *c.MinConfidence
	}
	return def
}
