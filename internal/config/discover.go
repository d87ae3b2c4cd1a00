package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// FileName is the project-level settings file name.
const FileName = "unity-assets.yaml"

const configDirName = "unity-assets"

// Environment variables read by the tool.
const (
	EnvNoInheritVar = "UNITY_ASSETS_NO_INHERIT"
	EnvDataDir      = "UNITY_ASSETS_DATA_DIR"
	EnvUnityPath    = "UNITY_PATH"
)

// ConfigLevel represents the precedence level of a settings file.
type ConfigLevel string

const (
	LevelSystem  ConfigLevel = "system"
	LevelUser    ConfigLevel = "user"
	LevelProject ConfigLevel = "project"
)

// ConfigLayerInfo describes a discovered settings file and its load status.
type ConfigLayerInfo struct {
	Err    error // non-nil if the file exists but failed to load
	Path   string
	Level  ConfigLevel
	Loaded bool
}

// DiscoverOptions controls how settings paths are discovered.
type DiscoverOptions struct {
	// ProjectPath is the project-level settings path.
	ProjectPath string

	// SystemConfigPath overrides the default system path.
	// Empty means use the OS default. Set to a nonexistent path to skip.
	SystemConfigPath string

	// UserConfigPath overrides the default user path.
	// Empty means use the OS default. Set to a nonexistent path to skip.
	UserConfigPath string

	// NoInherit keeps only the project layer. EnvNoInherit also enables it.
	NoInherit bool
}

// DiscoverPaths returns the ordered list of settings paths to check,
// from lowest precedence (system) to highest (project).
// Paths are deduplicated by resolved absolute path.
func DiscoverPaths(opts DiscoverOptions) []ConfigLayerInfo {
	var layers []ConfigLayerInfo
	seen := make(map[string]bool)

	addLayer := func(level ConfigLevel, path string) {
		if path == "" {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		layers = append(layers, ConfigLayerInfo{
			Path:  path,
			Level: level,
		})
	}

	if !opts.NoInherit && !EnvNoInherit() {
		sysPath := opts.SystemConfigPath
		if sysPath == "" {
			sysPath = defaultSystemConfigPath()
		}
		addLayer(LevelSystem, sysPath)

		userPath := opts.UserConfigPath
		if userPath == "" {
			userPath = defaultUserConfigPath()
		}
		addLayer(LevelUser, userPath)
	}

	// Project-level settings (always last, highest precedence).
	addLayer(LevelProject, opts.ProjectPath)

	return layers
}

// defaultSystemConfigPath returns the platform-standard system path.
func defaultSystemConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		pd := os.Getenv("ProgramData")
		if pd == "" {
			pd = `C:\ProgramData`
		}
		return filepath.Join(pd, configDirName, FileName)
	default: // linux, darwin, etc.
		return filepath.Join("/etc", configDirName, FileName)
	}
}

// defaultUserConfigPath returns the platform-standard user path.
func defaultUserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDirName, FileName)
}

// DefaultDataDir returns where run history lives when neither settings nor
// UNITY_ASSETS_DATA_DIR name a directory.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), configDirName)
	}
	return filepath.Join(dir, configDirName)
}

// EnvNoInherit returns true if UNITY_ASSETS_NO_INHERIT is set to "1" or "true".
func EnvNoInherit() bool {
	return envBoolTrue(EnvNoInheritVar)
}

// envBoolTrue returns true if the env var is set to "1" or "true" (case-insensitive).
func envBoolTrue(key string) bool {
	v := os.Getenv(key)
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "1" || v == "true"
}
