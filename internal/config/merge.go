package config

import (
	"github.com/bianoble/unity-assets/internal/errors"
)

// Merge combines two settings where overlay takes precedence over base:
//   - version: must agree if both declare it (non-zero); fatal error on mismatch
//   - scalars: overlay wins when set
//   - folders: deep merge, overlay keys win
func Merge(base, overlay *Settings) (*Settings, error) {
	if base == nil {
		return overlay, nil
	}
	if overlay == nil {
		return base, nil
	}

	result := &Settings{}

	if err := mergeVersion(base.Version, overlay.Version, &result.Version); err != nil {
		return nil, err
	}

	result.UnityPath = pick(base.UnityPath, overlay.UnityPath)
	result.UnityProject = pick(base.UnityProject, overlay.UnityProject)
	result.Timeout = pick(base.Timeout, overlay.Timeout)
	result.DataDir = pick(base.DataDir, overlay.DataDir)
	result.Debounce = pick(base.Debounce, overlay.Debounce)
	result.Parallelism = pick(base.Parallelism, overlay.Parallelism)
	result.SkipBatch = pickBool(base.SkipBatch, overlay.SkipBatch)
	result.NoHistory = pickBool(base.NoHistory, overlay.NoHistory)

	result.Folders = mergeFolders(base.Folders, overlay.Folders)

	return result, nil
}

// MergeAll merges multiple settings in order (lowest precedence first).
// Returns an error if any version mismatch is found.
func MergeAll(layers []*Settings) (*Settings, error) {
	if len(layers) == 0 {
		return nil, errors.New("no settings to merge")
	}

	result := layers[0]
	for i := 1; i < len(layers); i++ {
		var err error
		result, err = Merge(result, layers[i])
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func mergeVersion(base, overlay int, out *int) error {
	switch {
	case base == 0:
		*out = overlay
	case overlay == 0, base == overlay:
		*out = base
	default:
		return errors.Newf("settings version mismatch: one layer declares version %d, another declares version %d", base, overlay)
	}
	return nil
}

func pick[T comparable](base, overlay T) T {
	var zero T
	if overlay != zero {
		return overlay
	}
	return base
}

func pickBool(base, overlay *bool) *bool {
	if overlay != nil {
		return overlay
	}
	return base
}

func mergeFolders(base, overlay map[string]string) map[string]string {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}

	result := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range overlay {
		result[k] = v // overlay wins
	}
	return result
}
