// Package spec defines the asset spec file: the project settings and the
// ordered list of asset definitions to generate.
package spec

import (
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

// Kind is the value of an asset's "type" tag.
type Kind string

const (
	KindScript             Kind = "script"
	KindScriptableObject   Kind = "scriptable-object"
	KindScriptableInstance Kind = "scriptable-instance"
	KindMaterial           Kind = "material"
	KindShader             Kind = "shader"
	KindPrefab             Kind = "prefab"
	KindAnimation          Kind = "animation"
)

// Kinds lists every supported kind.
var Kinds = []Kind{
	KindScript,
	KindScriptableObject,
	KindScriptableInstance,
	KindMaterial,
	KindShader,
	KindPrefab,
	KindAnimation,
}

// Known reports whether k has a generator.
func (k Kind) Known() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// NeedsPostProcessing reports whether the editor must import assets of this
// kind after they are written.
func (k Kind) NeedsPostProcessing() bool {
	return k == KindPrefab || k == KindScriptableInstance
}

// Spec is a parsed asset spec file.
type Spec struct {
	Project          string            `yaml:"project"`
	OutputDir        string            `yaml:"outputDir"`
	UnityProject     string            `yaml:"unityProject,omitempty"`
	UnityVersion     string            `yaml:"unityVersion,omitempty"`
	DefaultNamespace string            `yaml:"defaultNamespace,omitempty"`
	Folders          map[string]string `yaml:"folders,omitempty"`
	Assets           []Definition      `yaml:"-"`
}

// Definition is one asset of the spec. The concrete type is one of *Script,
// *ScriptableObject, *ScriptableInstance, *Material, *Shader, *Prefab,
// *Animation or *Unknown.
type Definition interface {
	Header() *Base
	isDefinition()
}

// Base holds the fields shared by every definition.
type Base struct {
	Type        Kind   `yaml:"type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Namespace   string `yaml:"namespace,omitempty"`
}

// Header returns the shared fields.
func (b *Base) Header() *Base { return b }

func (*Base) isDefinition() {}

// Field declares a member of a generated class or a shader property.
type Field struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"`
	Default any       `yaml:"default,omitempty"`
	Values  []string  `yaml:"values,omitempty"`
	Tooltip string    `yaml:"tooltip,omitempty"`
	Range   []float64 `yaml:"range,omitempty"`
	Header  string    `yaml:"header,omitempty"`
	Space   bool      `yaml:"space,omitempty"`
}

// HasDefault reports whether the field declares a default value.
func (f Field) HasDefault() bool { return f.Default != nil }

// IsEnum reports whether the field carries an enumerated value list.
func (f Field) IsEnum() bool { return len(f.Values) > 0 }

// Script types.
const (
	ScriptMonoBehaviour    = "MonoBehaviour"
	ScriptScriptableObject = "ScriptableObject"
	ScriptInterface        = "interface"
	ScriptEnum             = "enum"
	ScriptStatic           = "static"
)

// Script is a C# class, interface or enum.
type Script struct {
	Base       `yaml:",inline"`
	ScriptType string   `yaml:"scriptType,omitempty"`
	BaseClass  string   `yaml:"baseClass,omitempty"`
	Interfaces []string `yaml:"interfaces,omitempty"`
	Fields     []Field  `yaml:"fields,omitempty"`
	Usings     []string `yaml:"usings,omitempty"`
	Methods    []string `yaml:"methods,omitempty"`
}

// ScriptableObject is a ScriptableObject class with a CreateAssetMenu entry.
type ScriptableObject struct {
	Base     `yaml:",inline"`
	MenuPath string  `yaml:"menuPath,omitempty"`
	Fields   []Field `yaml:"fields"`
}

// ScriptableInstance is a .asset holding values for a ScriptableObject type.
type ScriptableInstance struct {
	Base           `yaml:",inline"`
	ScriptableType string           `yaml:"scriptableType"`
	ScriptGUID     string           `yaml:"scriptGuid,omitempty"`
	Values         unityyaml.Record `yaml:"values"`
}

// Material is a .mat asset.
type Material struct {
	Base        `yaml:",inline"`
	Shader      string           `yaml:"shader"`
	Properties  unityyaml.Record `yaml:"properties,omitempty"`
	Keywords    []string         `yaml:"keywords,omitempty"`
	RenderQueue *int             `yaml:"renderQueue,omitempty"`
}

// Shader pipelines.
const (
	PipelineURP     = "urp"
	PipelineHDRP    = "hdrp"
	PipelineBuiltin = "builtin"
)

// Shader is a .shader program.
type Shader struct {
	Base       `yaml:",inline"`
	Pipeline   string   `yaml:"pipeline,omitempty"`
	Properties []Field  `yaml:"properties,omitempty"`
	Features   []string `yaml:"features,omitempty"`
}

// Component is a component attached to a prefab's GameObject.
type Component struct {
	Type       string           `yaml:"type"`
	Properties unityyaml.Record `yaml:"properties,omitempty"`
}

// Prefab is a GameObject hierarchy saved as a .prefab.
type Prefab struct {
	Base       `yaml:",inline"`
	Tag        string      `yaml:"tag,omitempty"`
	Layer      int         `yaml:"layer,omitempty"`
	Components []Component `yaml:"components"`
	Children   []Prefab    `yaml:"children,omitempty"`
}

// Node converts the prefab into a hierarchy node.
func (p *Prefab) Node() unityyaml.Node {
	n := unityyaml.Node{Name: p.Name, Tag: p.Tag, Layer: p.Layer}
	for _, c := range p.Components {
		n.Components = append(n.Components, unityyaml.Component{Type: c.Type, Properties: c.Properties})
	}
	for i := range p.Children {
		n.Children = append(n.Children, p.Children[i].Node())
	}
	return n
}

// Animation is a .anim clip of float curves.
type Animation struct {
	Base      `yaml:",inline"`
	Length    float64 `yaml:"length,omitempty"`
	FrameRate float64 `yaml:"frameRate,omitempty"`
	Loop      bool    `yaml:"loop,omitempty"`
	Curves    []Curve `yaml:"curves,omitempty"`
}

// Curve animates one float attribute of the object at Path.
type Curve struct {
	Path      string `yaml:"path"`
	Property  string `yaml:"property"`
	Component string `yaml:"component,omitempty"`
	Keys      []Key  `yaml:"keys"`
}

// Key is one keyframe.
type Key struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"inTangent,omitempty"`
	OutTangent float64 `yaml:"outTangent,omitempty"`
}

// Unknown carries an asset whose type tag is not recognized. It is kept so
// the generator can report and skip it.
type Unknown struct {
	Base `yaml:",inline"`
	Raw  unityyaml.Record `yaml:"-"`
}
