package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDiscoverPathsAllLevels(t *testing.T) {
	t.Setenv(EnvNoInheritVar, "")
	layers := DiscoverPaths(DiscoverOptions{
		ProjectPath:      "./unity-assets.yaml",
		SystemConfigPath: "/etc/unity-assets/unity-assets.yaml",
		UserConfigPath:   "/home/user/.config/unity-assets/unity-assets.yaml",
	})

	if len(layers) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(layers))
	}

	if layers[0].Level != LevelSystem {
		t.Errorf("layers[0].Level = %q, want %q", layers[0].Level, LevelSystem)
	}
	if layers[1].Level != LevelUser {
		t.Errorf("layers[1].Level = %q, want %q", layers[1].Level, LevelUser)
	}
	if layers[2].Level != LevelProject {
		t.Errorf("layers[2].Level = %q, want %q", layers[2].Level, LevelProject)
	}
}

func TestDiscoverPathsDeduplication(t *testing.T) {
	t.Setenv(EnvNoInheritVar, "")
	samePath, err := filepath.Abs("./unity-assets.yaml")
	if err != nil {
		t.Fatal(err)
	}

	layers := DiscoverPaths(DiscoverOptions{
		ProjectPath:      samePath,
		SystemConfigPath: samePath,
		UserConfigPath:   "/other/path/unity-assets.yaml",
	})

	if len(layers) != 2 {
		t.Fatalf("expected 2 layers (deduped), got %d", len(layers))
	}
	if layers[0].Level != LevelSystem {
		t.Errorf("layers[0].Level = %q, want %q", layers[0].Level, LevelSystem)
	}
	if layers[1].Level != LevelUser {
		t.Errorf("layers[1].Level = %q, want %q", layers[1].Level, LevelUser)
	}
}

func TestDiscoverPathsNoInherit(t *testing.T) {
	t.Setenv(EnvNoInheritVar, "")
	layers := DiscoverPaths(DiscoverOptions{
		ProjectPath:      "./unity-assets.yaml",
		SystemConfigPath: "/etc/x.yaml",
		UserConfigPath:   "/home/x.yaml",
		NoInherit:        true,
	})
	if len(layers) != 1 || layers[0].Level != LevelProject {
		t.Fatalf("expected only the project layer, got %+v", layers)
	}

	t.Setenv(EnvNoInheritVar, "true")
	layers = DiscoverPaths(DiscoverOptions{
		ProjectPath:      "./unity-assets.yaml",
		SystemConfigPath: "/etc/x.yaml",
		UserConfigPath:   "/home/x.yaml",
	})
	if len(layers) != 1 {
		t.Fatalf("env var should disable inheritance, got %d layers", len(layers))
	}
}

func TestDefaultSystemConfigPath(t *testing.T) {
	p := defaultSystemConfigPath()
	if p == "" {
		t.Fatal("system config path should not be empty")
	}

	switch runtime.GOOS {
	case "linux", "darwin":
		if p != "/etc/unity-assets/unity-assets.yaml" {
			t.Errorf("system path = %q, want /etc/unity-assets/unity-assets.yaml", p)
		}
	case "windows":
		if !filepath.IsAbs(p) {
			t.Errorf("system path should be absolute on Windows, got %q", p)
		}
	}
}

func TestDefaultUserConfigPath(t *testing.T) {
	p := defaultUserConfigPath()
	if p == "" {
		t.Skip("os.UserConfigDir() not available")
	}
	if !filepath.IsAbs(p) {
		t.Errorf("user path should be absolute, got %q", p)
	}
}

func TestDefaultDataDir(t *testing.T) {
	if filepath.Base(DefaultDataDir()) != "unity-assets" {
		t.Errorf("data dir = %q, want a unity-assets directory", DefaultDataDir())
	}
}

func TestEnvBoolTrue(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{" true ", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"yes", false},
	}

	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		got := envBoolTrue("TEST_BOOL")
		if got != tt.want {
			t.Errorf("envBoolTrue(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
