// Package layout maps asset kinds to output folders and file extensions.
package layout

import (
	"path"
	"sort"

	"github.com/bianoble/unity-assets/internal/spec"
)

// Fallbacks for kinds without a mapping.
const (
	DefaultFolder    = "Other"
	DefaultExtension = ".txt"
	MetaExtension    = ".meta"
)

var builtinFolders = map[spec.Kind]string{
	spec.KindScript:             "Scripts",
	spec.KindScriptableObject:   "ScriptableObjects",
	spec.KindScriptableInstance: "Data",
	spec.KindMaterial:           "Materials",
	spec.KindShader:             "Shaders",
	spec.KindPrefab:             "Prefabs",
	spec.KindAnimation:          "Animations",
}

var extensions = map[spec.Kind]string{
	spec.KindScript:             ".cs",
	spec.KindScriptableObject:   ".cs",
	spec.KindScriptableInstance: ".asset",
	spec.KindMaterial:           ".mat",
	spec.KindShader:             ".shader",
	spec.KindPrefab:             ".prefab",
	spec.KindAnimation:          ".anim",
}

// Extension returns the file extension for kind, including the dot.
func Extension(kind spec.Kind) string {
	if ext, ok := extensions[kind]; ok {
		return ext
	}
	return DefaultExtension
}

// Layout resolves folders with built-in defaults and optional overrides.
type Layout struct {
	folders map[spec.Kind]string
}

// New creates a Layout. Each override maps a kind name to a folder relative
// to the output root and replaces the built-in folder for that kind.
func New(overrides ...map[string]string) *Layout {
	folders := make(map[spec.Kind]string, len(builtinFolders))
	for kind, folder := range builtinFolders {
		folders[kind] = folder
	}
	for _, o := range overrides {
		for kind, folder := range o {
			folders[spec.Kind(kind)] = path.Clean(folder)
		}
	}
	return &Layout{folders: folders}
}

// Folder returns the output folder for kind.
func (l *Layout) Folder(kind spec.Kind) string {
	if folder, ok := l.folders[kind]; ok {
		return folder
	}
	return DefaultFolder
}

// Paths are slash-separated paths relative to the output root.
type Paths struct {
	File string
	Meta string
}

// Resolve returns where the asset file and its .meta go. Meta is always
// filled in; callers drop it for kinds that have no .meta.
func (l *Layout) Resolve(kind spec.Kind, name string) Paths {
	file := path.Join(l.Folder(kind), name+Extension(kind))
	return Paths{File: file, Meta: file + MetaExtension}
}

// IsCustom reports whether the folder for kind was overridden.
func (l *Layout) IsCustom(kind spec.Kind) bool {
	builtin, ok := builtinFolders[kind]
	return !ok || builtin != l.folders[kind]
}

// Folders returns a copy of the kind to folder mapping.
func (l *Layout) Folders() map[spec.Kind]string {
	out := make(map[spec.Kind]string, len(l.folders))
	for k, v := range l.folders {
		out[k] = v
	}
	return out
}

// SortedKinds returns the kinds with a folder, sorted by name.
func (l *Layout) SortedKinds() []spec.Kind {
	kinds := make([]spec.Kind, 0, len(l.folders))
	for k := range l.folders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
