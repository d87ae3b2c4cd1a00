package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/spec"
)

// Load reads and validates a unity-assets.yaml settings file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading settings %s", path)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parsing settings %s", path)
	}

	if errs := Validate(&s); len(errs) > 0 {
		return nil, errors.Mark(&ValidationError{Path: path, Errors: errs}, errors.ErrValidation)
	}

	return &s, nil
}

// LoadLayered discovers, loads and merges every settings layer. Missing
// files are skipped. Environment overrides are applied to the result, which
// is never nil on success.
func LoadLayered(opts DiscoverOptions) (*Settings, []ConfigLayerInfo, error) {
	layers := DiscoverPaths(opts)
	var loaded []*Settings

	for i := range layers {
		if _, err := os.Stat(layers[i].Path); os.IsNotExist(err) {
			continue
		}
		s, err := Load(layers[i].Path)
		if err != nil {
			layers[i].Err = err
			return nil, layers, errors.Wrapf(err, "loading %s settings", layers[i].Level)
		}
		layers[i].Loaded = true
		loaded = append(loaded, s)
	}

	merged := &Settings{}
	if len(loaded) > 0 {
		var err error
		merged, err = MergeAll(loaded)
		if err != nil {
			return nil, layers, err
		}
	}
	ApplyEnv(merged, os.LookupEnv)
	return merged, layers, nil
}

// ApplyEnv overrides settings from the environment.
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvUnityPath); ok && v != "" {
		s.UnityPath = v
	}
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		s.DataDir = v
	}
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Variables that are already set keep their values and missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.Wrapf(err, "loading %s", p)
		}
	}
	return nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Path   string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("settings validation failed (%s):\n  - %s", e.Path, strings.Join(e.Errors, "\n  - "))
}

// Validate checks Settings for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(s *Settings) []string {
	var errs []string

	if s.Version != 0 && s.Version != CurrentVersion {
		errs = append(errs, fmt.Sprintf("unsupported version %d: only version %d is supported", s.Version, CurrentVersion))
	}

	errs = append(errs, validateDuration("timeout", s.Timeout)...)
	errs = append(errs, validateDuration("debounce", s.Debounce)...)

	if s.Parallelism < 0 {
		errs = append(errs, fmt.Sprintf("parallelism must not be negative, got %d", s.Parallelism))
	}

	for kind, folder := range s.Folders {
		prefix := fmt.Sprintf("folders.%s", kind)
		if !spec.Kind(kind).Known() {
			errs = append(errs, fmt.Sprintf("%s: unknown asset kind '%s'", prefix, kind))
		}
		if folder == "" {
			errs = append(errs, fmt.Sprintf("%s: folder must not be empty", prefix))
			continue
		}
		if filepath.IsAbs(folder) || strings.HasPrefix(filepath.ToSlash(filepath.Clean(folder)), "..") {
			errs = append(errs, fmt.Sprintf("%s: folder '%s' must stay inside the output directory", prefix, folder))
		}
	}

	return errs
}

func validateDuration(field, v string) []string {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return []string{fmt.Sprintf("%s: invalid duration '%s' (use values like 30s or 5m)", field, v)}
	}
	if d <= 0 {
		return []string{fmt.Sprintf("%s: must be positive, got %s", field, v)}
	}
	return nil
}
