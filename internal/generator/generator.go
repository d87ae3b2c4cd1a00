// Package generator renders asset definitions into Unity files: serialized
// YAML documents, C# sources and shader programs, plus their .meta files.
//
// Every generator is a pure function of its definition. Rendering the same
// definition twice produces byte-identical output.
package generator

import (
	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/spec"
)

// Output is one rendered asset.
type Output struct {
	Kind spec.Kind
	Name string
	// Content is the asset file body.
	Content string
	// Meta is the companion .meta body, empty when the kind has none.
	Meta string
	// Warnings are non-fatal problems found while rendering.
	Warnings []string
}

// HasMeta reports whether the output carries a .meta file.
func (o *Output) HasMeta() bool {
	return o.Meta != ""
}

// Render dispatches def to the generator of its kind. An *spec.Unknown
// definition returns an error wrapping errors.ErrUnknownKind.
func Render(def spec.Definition) (*Output, error) {
	h := def.Header()
	out := &Output{Kind: h.Type, Name: h.Name}

	switch d := def.(type) {
	case *spec.Prefab:
		out.Content, out.Warnings = Prefab(d)
		out.Meta = PrefabMeta(d.Name)
	case *spec.Material:
		out.Content, out.Warnings = Material(d)
		out.Meta = MaterialMeta(d.Name)
	case *spec.Shader:
		out.Content = Shader(d)
		out.Meta = ShaderMeta(d.Name)
	case *spec.Script:
		out.Content = Script(d)
	case *spec.ScriptableObject:
		out.Content = ScriptableObjectClass(d)
	case *spec.ScriptableInstance:
		out.Content = ScriptableInstance(d)
	case *spec.Animation:
		out.Content = Animation(d)
		out.Meta = AnimationMeta(d.Name)
	case *spec.Unknown:
		return nil, errors.Wrapf(errors.ErrUnknownKind, "asset '%s' has type '%s'", d.Name, d.Type)
	default:
		return nil, errors.Wrapf(errors.ErrUnknownKind, "asset '%s': unsupported definition %T", h.Name, def)
	}

	return out, nil
}
