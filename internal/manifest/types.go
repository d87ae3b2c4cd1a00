// Package manifest records what a generation run produced. The manifest is
// written as JSON under the output root and read by the editor bridge.
package manifest

import (
	"time"

	"github.com/bianoble/unity-assets/internal/spec"
)

// FileName is the manifest's name inside the output root.
const FileName = "manifest.json"

// Manifest lists the artifacts of one run.
type Manifest struct {
	Project     string    `json:"project"`
	GeneratedAt time.Time `json:"generatedAt"`
	// AssetRoot is the output root relative to the Unity project, in the
	// "Assets/..." form the editor expects. Empty when no project is known.
	AssetRoot         string     `json:"assetRoot,omitempty"`
	Assets            []Artifact `json:"assets"`
	RequiresBatchMode bool       `json:"requiresBatchMode"`
}

// Artifact is one generated asset. Paths are slash-separated and relative
// to the output root.
type Artifact struct {
	Name        string    `json:"name"`
	Type        spec.Kind `json:"type"`
	Path        string    `json:"path"`
	MetaPath    string    `json:"metaPath,omitempty"`
	SHA256      string    `json:"sha256"`
	MetaSHA256  string    `json:"metaSha256,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// New creates an empty manifest for project.
func New(project string, now time.Time) *Manifest {
	return &Manifest{Project: project, GeneratedAt: now, Assets: []Artifact{}}
}

// Add appends an artifact and updates RequiresBatchMode.
func (m *Manifest) Add(a Artifact) {
	m.Assets = append(m.Assets, a)
	if a.Type.NeedsPostProcessing() {
		m.RequiresBatchMode = true
	}
}

// Find returns the artifact with the given kind and name.
func (m *Manifest) Find(kind spec.Kind, name string) (Artifact, bool) {
	for _, a := range m.Assets {
		if a.Type == kind && a.Name == name {
			return a, true
		}
	}
	return Artifact{}, false
}

// RequiresPostProcessing reports whether any of kinds needs the editor to
// import it after generation.
func RequiresPostProcessing(kinds []spec.Kind) bool {
	for _, k := range kinds {
		if k.NeedsPostProcessing() {
			return true
		}
	}
	return false
}
