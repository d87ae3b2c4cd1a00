package batch

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/bianoble/unity-assets/internal/errors"
)

// EnvUnityPath overrides the editor executable.
const EnvUnityPath = "UNITY_PATH"

// DefaultEditorVersion is used for Unity Hub paths when the project version
// is unknown.
const DefaultEditorVersion = "2022.3.0f1"

// ResolveOptions controls executable resolution. Zero values use the real
// environment, platform and filesystem.
type ResolveOptions struct {
	// Explicit wins over everything else and is not checked for existence.
	Explicit string
	// EditorVersion selects the Unity Hub install directory.
	EditorVersion string
	GOOS          string
	LookupEnv     func(string) (string, bool)
	Exists        func(string) bool
	HomeDir       string
}

// Candidates returns the platform default editor paths, most specific
// first.
func Candidates(goos, editorVersion, home string) []string {
	if editorVersion == "" {
		editorVersion = DefaultEditorVersion
	}
	switch goos {
	case "darwin":
		return []string{
			filepath.Join("/Applications/Unity/Hub/Editor", editorVersion, "Unity.app/Contents/MacOS/Unity"),
			"/Applications/Unity/Unity.app/Contents/MacOS/Unity",
		}
	case "windows":
		return []string{
			`C:\Program Files\Unity\Hub\Editor\` + editorVersion + `\Editor\Unity.exe`,
			`C:\Program Files\Unity\Editor\Unity.exe`,
		}
	case "linux":
		var out []string
		if home != "" {
			out = append(out, filepath.Join(home, "Unity", "Hub", "Editor", editorVersion, "Editor", "Unity"))
		}
		return append(out, "/opt/unity/Editor/Unity")
	}
	return nil
}

// ResolveExecutable finds the editor: the explicit path, then UNITY_PATH,
// then the first platform candidate that exists. It fails with an
// errors.ErrConfiguration error when nothing resolves.
func ResolveExecutable(opts ResolveOptions) (string, error) {
	if opts.Explicit != "" {
		return opts.Explicit, nil
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if p, ok := lookup(EnvUnityPath); ok && p != "" {
		return p, nil
	}

	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	exists := opts.Exists
	if exists == nil {
		exists = fileExists
	}
	home := opts.HomeDir
	if home == "" {
		home, _ = os.UserHomeDir()
	}

	candidates := Candidates(goos, opts.EditorVersion, home)
	for _, c := range candidates {
		if exists(c) {
			return c, nil
		}
	}

	err := errors.Wrapf(errors.ErrConfiguration, "Unity editor not found (checked %d default locations)", len(candidates))
	return "", errors.WithHint(err, "set UNITY_PATH or pass --unity with the path to the Unity executable")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
