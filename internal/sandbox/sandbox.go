// Package sandbox confines generated files to an output root. Every write
// resolves symlinks first and refuses paths that land outside the root.
package sandbox

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/bianoble/unity-assets/internal/errors"
)

// ErrOutsideRoot marks a path that resolves outside the sandbox root.
var ErrOutsideRoot = errors.New("path escapes the output root")

// ValidatePath checks that relPath stays inside root once symlinks are
// resolved and returns the absolute resolved path. Neither root nor the
// target has to exist yet.
func ValidatePath(root, relPath string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, "resolving output root")
	}
	realRoot, err := resolveExistingPath(filepath.Clean(absRoot))
	if err != nil {
		return "", errors.Wrap(err, "resolving output root symlinks")
	}

	if filepath.IsAbs(relPath) {
		return "", errors.Wrapf(ErrOutsideRoot, "path '%s' must be relative to '%s'", relPath, realRoot)
	}

	resolved, err := resolveExistingPath(filepath.Join(realRoot, relPath))
	if err != nil {
		return "", errors.Wrap(err, "resolving target path")
	}

	rootPrefix := realRoot + string(filepath.Separator)
	if resolved != realRoot && !strings.HasPrefix(resolved, rootPrefix) {
		return "", errors.Wrapf(ErrOutsideRoot, "path '%s' resolves to '%s' which is outside '%s'", relPath, resolved, realRoot)
	}
	return resolved, nil
}

// resolveExistingPath resolves symlinks for the longest existing prefix of
// path and appends the rest unchanged.
func resolveExistingPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	dir := filepath.Dir(path)
	if dir == path {
		return path, nil
	}

	resolvedDir, err := resolveExistingPath(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedDir, filepath.Base(path)), nil
}

// SafeWrite atomically writes content to relPath inside root, creating
// parent directories as needed.
func SafeWrite(root, relPath string, content []byte, perm os.FileMode) error {
	resolved, err := ValidatePath(root, relPath)
	if err != nil {
		return err
	}
	if _, err := ValidatePath(root, filepath.Dir(relPath)); err != nil {
		return errors.Wrap(err, "parent directory escapes the output root")
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".unity-assets-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return errors.Wrap(err, "setting permissions")
	}
	if err := os.Rename(tmpPath, resolved); err != nil {
		return errors.Wrapf(err, "renaming temp file to %s", resolved)
	}

	success = true
	return nil
}

// ReadFile reads relPath inside root.
func ReadFile(root, relPath string) ([]byte, error) {
	resolved, err := ValidatePath(root, relPath)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(resolved)
}

// Unchanged reports whether relPath already holds exactly content. A missing
// file is reported as changed.
func Unchanged(root, relPath string, content []byte) (bool, error) {
	existing, err := ReadFile(root, relPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bytes.Equal(existing, content), nil
}

// WriteIfChanged writes content unless the file already holds it. It
// reports whether a write happened.
func WriteIfChanged(root, relPath string, content []byte, perm os.FileMode) (bool, error) {
	same, err := Unchanged(root, relPath, content)
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}
	if err := SafeWrite(root, relPath, content, perm); err != nil {
		return false, err
	}
	return true, nil
}

// HashContent returns the hex SHA-256 of content.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// HashFile returns the hex SHA-256 of relPath inside root.
func HashFile(root, relPath string) (string, error) {
	data, err := ReadFile(root, relPath)
	if err != nil {
		return "", err
	}
	return HashContent(data), nil
}

// SafeRemove deletes relPath inside root.
func SafeRemove(root, relPath string) error {
	resolved, err := ValidatePath(root, relPath)
	if err != nil {
		return err
	}
	return os.Remove(resolved)
}
