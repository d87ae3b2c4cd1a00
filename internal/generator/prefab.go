package generator

import (
	"fmt"

	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

// Prefab renders a .prefab document. Transform descriptors after the first
// one on a GameObject are ignored and reported as warnings.
func Prefab(def *spec.Prefab) (string, []string) {
	h := unityyaml.BuildHierarchy(def.Node())

	var warnings []string
	for _, role := range h.IgnoredTransforms {
		warnings = append(warnings, fmt.Sprintf("prefab '%s': ignoring extra transform %s", def.Name, role))
	}
	return h.Document(), warnings
}
