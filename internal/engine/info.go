package engine

import (
	"github.com/bianoble/unity-assets/internal/batch"
	"github.com/bianoble/unity-assets/internal/config"
	"github.com/bianoble/unity-assets/internal/layout"
)

// ConfigLayerStatus describes a settings layer's load status for display.
type ConfigLayerStatus struct {
	Level  string // "system", "user", "project"
	Path   string
	Loaded bool
}

// InfoResult holds tool information for the info command.
type InfoResult struct {
	Version     string
	DataDir     string
	UnityPath   string
	UnityError  string
	Folders     []FolderInfo
	ConfigChain []ConfigLayerStatus
}

// FolderInfo describes where one asset kind is written.
type FolderInfo struct {
	Kind      string
	Folder    string
	Extension string
	IsCustom  bool
}

// Info gathers tool information.
func Info(version string, settings *config.Settings, layers []config.ConfigLayerInfo, lay *layout.Layout) *InfoResult {
	r := &InfoResult{
		Version: version,
		DataDir: settings.DataDir,
	}
	if r.DataDir == "" {
		r.DataDir = config.DefaultDataDir()
	}

	exe, err := batch.ResolveExecutable(batch.ResolveOptions{Explicit: settings.UnityPath})
	if err != nil {
		r.UnityError = err.Error()
	} else {
		r.UnityPath = exe
	}

	for _, kind := range lay.SortedKinds() {
		r.Folders = append(r.Folders, FolderInfo{
			Kind:      string(kind),
			Folder:    lay.Folder(kind),
			Extension: layout.Extension(kind),
			IsCustom:  lay.IsCustom(kind),
		})
	}

	for _, l := range layers {
		r.ConfigChain = append(r.ConfigChain, ConfigLayerStatus{
			Level:  string(l.Level),
			Path:   l.Path,
			Loaded: l.Loaded,
		})
	}
	return r
}
