package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bianoble/unity-assets/internal/errors"
)

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest %s", path)
	}

	if errs := Validate(&m); len(errs) > 0 {
		return nil, errors.Mark(&ValidationError{Errors: errs}, errors.ErrValidation)
	}

	return &m, nil
}

// Save writes a manifest atomically using a temp file and rename.
func Save(path string, m *Manifest) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing temp manifest %s", tmp)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "renaming temp manifest to %s", path)
	}

	return nil
}

// Marshal renders m as indented JSON with a trailing newline.
func Marshal(m *Manifest) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling manifest")
	}
	return append(data, '\n'), nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("manifest validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Manifest for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(m *Manifest) []string {
	var errs []string

	if m.Project == "" {
		errs = append(errs, "'project' is required")
	}

	requires := false
	seen := make(map[string]bool)
	for i, a := range m.Assets {
		prefix := fmt.Sprintf("asset[%d]", i)
		if a.Name != "" {
			prefix = fmt.Sprintf("asset '%s'", a.Name)
		}

		if a.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: 'name' is required", prefix))
		}
		if a.Type == "" {
			errs = append(errs, fmt.Sprintf("%s: 'type' is required", prefix))
		}
		if a.Path == "" {
			errs = append(errs, fmt.Sprintf("%s: 'path' is required", prefix))
		} else if seen[a.Path] {
			errs = append(errs, fmt.Sprintf("%s: duplicate path '%s'", prefix, a.Path))
		} else {
			seen[a.Path] = true
		}
		if i > 0 && a.GeneratedAt.Before(m.Assets[i-1].GeneratedAt) {
			errs = append(errs, fmt.Sprintf("%s: generatedAt is earlier than the previous asset", prefix))
		}
		if a.Type.NeedsPostProcessing() {
			requires = true
		}
	}

	if m.RequiresBatchMode != requires {
		errs = append(errs, fmt.Sprintf("'requiresBatchMode' is %t but the assets imply %t", m.RequiresBatchMode, requires))
	}

	return errs
}
