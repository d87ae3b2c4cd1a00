// Package config loads tool settings from layered unity-assets.yaml files.
// Settings are discovered at system, user and project level and merged with
// the more specific layer winning.
package config

import (
	"time"
)

// Settings is the unity-assets.yaml settings file. Zero values mean "not
// set" so layers can be merged.
type Settings struct {
	Version int `yaml:"version,omitempty"`

	// UnityPath is the editor executable used for batch runs.
	UnityPath string `yaml:"unity_path,omitempty"`
	// UnityProject overrides Unity project detection.
	UnityProject string `yaml:"unity_project,omitempty"`

	// Timeout bounds a batch run, e.g. "5m".
	Timeout     string `yaml:"timeout,omitempty"`
	Parallelism int    `yaml:"parallelism,omitempty"`

	SkipBatch *bool `yaml:"skip_batch,omitempty"`
	NoHistory *bool `yaml:"no_history,omitempty"`

	// DataDir holds the run history database.
	DataDir string `yaml:"data_dir,omitempty"`

	// Folders overrides the output folder per asset kind.
	Folders map[string]string `yaml:"folders,omitempty"`

	// Debounce delays regeneration in watch mode, e.g. "300ms".
	Debounce string `yaml:"debounce,omitempty"`
}

// CurrentVersion is the only supported settings version.
const CurrentVersion = 1

// TimeoutDuration returns the parsed Timeout, or zero when unset. Load has
// already rejected unparsable values.
func (s *Settings) TimeoutDuration() time.Duration {
	return parseDuration(s.Timeout)
}

// DebounceDuration returns the parsed Debounce, or zero when unset.
func (s *Settings) DebounceDuration() time.Duration {
	return parseDuration(s.Debounce)
}

// SkipBatchEnabled reports whether batch runs are disabled.
func (s *Settings) SkipBatchEnabled() bool {
	return s.SkipBatch != nil && *s.SkipBatch
}

// HistoryDisabled reports whether run history recording is off.
func (s *Settings) HistoryDisabled() bool {
	return s.NoHistory != nil && *s.NoHistory
}

func parseDuration(v string) time.Duration {
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}
