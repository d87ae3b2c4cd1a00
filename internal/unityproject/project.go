// Package unityproject locates Unity projects on disk and reads their
// editor version.
package unityproject

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/bianoble/unity-assets/internal/errors"
)

// VersionFile is the project-relative path of the editor version file.
var VersionFile = filepath.Join("ProjectSettings", "ProjectVersion.txt")

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// IsProject reports whether dir holds an Assets folder, a ProjectSettings
// folder and a ProjectVersion.txt.
func IsProject(dir string) bool {
	dir = ExpandHome(dir)
	for _, p := range []string{"Assets", "ProjectSettings"} {
		info, err := os.Stat(filepath.Join(dir, p))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	info, err := os.Stat(filepath.Join(dir, VersionFile))
	return err == nil && !info.IsDir()
}

// Detect walks up from start and returns the first directory that is a
// Unity project.
func Detect(start string) (string, bool) {
	dir, err := filepath.Abs(ExpandHome(start))
	if err != nil {
		return "", false
	}
	for {
		if IsProject(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Resolve returns explicit when set, otherwise the project detected above
// outputDir. The explicit path must be a Unity project.
func Resolve(explicit, outputDir string) (string, bool, error) {
	if explicit != "" {
		path := ExpandHome(explicit)
		if !IsProject(path) {
			return "", false, errors.WithHintf(
				errors.Wrapf(errors.ErrConfiguration, "'%s' is not a Unity project", explicit),
				"a Unity project contains Assets/ and %s", VersionFile)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", false, errors.Wrap(err, "resolving project path")
		}
		return abs, true, nil
	}
	dir, ok := Detect(outputDir)
	return dir, ok, nil
}

// AssetRoot returns outputDir relative to project in slash form, for
// example "Assets/Generated". It reports false when outputDir is not inside
// the project.
func AssetRoot(project, outputDir string) (string, bool) {
	absOut, err := filepath.Abs(ExpandHome(outputDir))
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(project, absOut)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

var editorVersionLine = regexp.MustCompile(`^m_EditorVersion:\s*(\S+)`)

// EditorVersion reads the m_EditorVersion entry of the project, such as
// "2022.3.10f1".
func EditorVersion(project string) (string, error) {
	path := filepath.Join(project, VersionFile)
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := editorVersionLine.FindStringSubmatch(strings.TrimSpace(scanner.Text())); m != nil {
			return m[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return "", errors.Newf("%s has no m_EditorVersion entry", path)
}

var unityVersion = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// ParseVersion converts a Unity version such as "2022.3.10f1" into a
// semantic version. The release suffix is dropped.
func ParseVersion(v string) (*semver.Version, error) {
	m := unityVersion.FindStringSubmatch(v)
	if m == nil {
		return nil, errors.Newf("invalid Unity version %q", v)
	}
	return semver.NewVersion(m[1] + "." + m[2] + "." + m[3])
}

// CheckVersion verifies that editorVersion satisfies constraint. An empty
// constraint accepts every version.
func CheckVersion(constraint, editorVersion string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %s", constraint)
	}
	v, err := ParseVersion(editorVersion)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return errors.Newf("spec requires Unity %s, but the project uses %s", constraint, editorVersion)
	}
	return nil
}
