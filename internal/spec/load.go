package spec

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

// Load reads, parses and validates an asset spec file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading spec %s", path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing spec %s", path)
	}

	if errs := Validate(s); len(errs) > 0 {
		return nil, errors.Mark(&ValidationError{Errors: errs}, errors.ErrValidation)
	}

	s.ApplyDefaults()
	return s, nil
}

// Parse decodes spec YAML without validating it.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UnmarshalYAML decodes the spec and dispatches each asset on its type tag.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	type plain Spec
	var raw struct {
		plain  `yaml:",inline"`
		Assets []yaml.Node `yaml:"assets"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*s = Spec(raw.plain)
	s.Assets = make([]Definition, 0, len(raw.Assets))
	for i := range raw.Assets {
		def, err := decodeDefinition(&raw.Assets[i])
		if err != nil {
			return errors.Wrapf(err, "asset[%d]", i)
		}
		s.Assets = append(s.Assets, def)
	}
	return nil
}

func decodeDefinition(node *yaml.Node) (Definition, error) {
	var base Base
	if err := node.Decode(&base); err != nil {
		return nil, err
	}

	var def Definition
	switch base.Type {
	case KindScript:
		def = &Script{}
	case KindScriptableObject:
		def = &ScriptableObject{}
	case KindScriptableInstance:
		def = &ScriptableInstance{}
	case KindMaterial:
		def = &Material{}
	case KindShader:
		def = &Shader{}
	case KindPrefab:
		def = &Prefab{}
	case KindAnimation:
		def = &Animation{}
	default:
		raw, err := unityyaml.FromNode(node)
		if err != nil {
			return nil, err
		}
		u := &Unknown{Base: base}
		u.Raw, _ = raw.(unityyaml.Record)
		return u, nil
	}

	if err := node.Decode(def); err != nil {
		return nil, err
	}
	return def, nil
}

// ApplyDefaults fills the default namespace into class-producing
// definitions that do not set one.
func (s *Spec) ApplyDefaults() {
	if s.DefaultNamespace == "" {
		return
	}
	for _, def := range s.Assets {
		switch def.(type) {
		case *Script, *ScriptableObject:
			if h := def.Header(); h.Namespace == "" {
				h.Namespace = s.DefaultNamespace
			}
		}
	}
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spec validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Spec for required fields and well-formed values.
// Returns a list of validation error messages (empty if valid). Unknown
// asset types are not errors; they are skipped at generation time.
func Validate(s *Spec) []string {
	var errs []string

	if s.Project == "" {
		errs = append(errs, "'project' is required")
	}
	if s.OutputDir == "" {
		errs = append(errs, "'outputDir' is required")
	}
	if s.UnityVersion != "" {
		if _, err := semver.NewConstraint(s.UnityVersion); err != nil {
			errs = append(errs, fmt.Sprintf("'unityVersion' %q is not a valid version constraint: %v", s.UnityVersion, err))
		}
	}
	for kind := range s.Folders {
		if !Kind(kind).Known() {
			errs = append(errs, fmt.Sprintf("folders: unknown asset type '%s'", kind))
		}
	}
	if len(s.Assets) == 0 {
		errs = append(errs, "at least one asset is required")
	}

	seen := make(map[string]bool)
	for i, def := range s.Assets {
		h := def.Header()
		prefix := fmt.Sprintf("asset[%d]", i)
		if h.Name != "" {
			prefix = fmt.Sprintf("asset '%s'", h.Name)
		}

		if h.Type == "" {
			errs = append(errs, fmt.Sprintf("%s: 'type' is required", prefix))
		}
		if h.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: 'name' is required", prefix))
		} else if strings.ContainsAny(h.Name, `/\`) || h.Name == "." || h.Name == ".." {
			errs = append(errs, fmt.Sprintf("%s: name must not contain path separators", prefix))
		} else {
			key := string(h.Type) + "/" + h.Name
			if seen[key] {
				errs = append(errs, fmt.Sprintf("%s: duplicate %s name '%s'", prefix, h.Type, h.Name))
			}
			seen[key] = true
		}

		errs = append(errs, validateDefinition(def, prefix)...)
	}

	return errs
}

func validateDefinition(def Definition, prefix string) []string {
	var errs []string

	switch d := def.(type) {
	case *Script:
		switch d.ScriptType {
		case "", ScriptMonoBehaviour, ScriptScriptableObject, ScriptInterface, ScriptEnum, ScriptStatic:
		default:
			errs = append(errs, fmt.Sprintf("%s: invalid scriptType '%s' — must be one of: MonoBehaviour, ScriptableObject, interface, enum, static", prefix, d.ScriptType))
		}
		errs = append(errs, validateFields(d.Fields, prefix)...)
	case *ScriptableObject:
		errs = append(errs, validateFields(d.Fields, prefix)...)
	case *ScriptableInstance:
		if d.ScriptableType == "" {
			errs = append(errs, fmt.Sprintf("%s: type 'scriptable-instance' requires 'scriptableType'", prefix))
		}
		if d.ScriptGUID != "" && len(d.ScriptGUID) != 32 {
			errs = append(errs, fmt.Sprintf("%s: 'scriptGuid' must be 32 hex characters", prefix))
		}
	case *Material:
		if d.Shader == "" {
			errs = append(errs, fmt.Sprintf("%s: type 'material' requires 'shader' — add 'shader: Standard' or another shader name", prefix))
		}
	case *Shader:
		switch d.Pipeline {
		case "", PipelineURP, PipelineHDRP, PipelineBuiltin:
		default:
			errs = append(errs, fmt.Sprintf("%s: invalid pipeline '%s' — must be one of: urp, hdrp, builtin", prefix, d.Pipeline))
		}
		errs = append(errs, validateFields(d.Properties, prefix)...)
	case *Prefab:
		errs = append(errs, validatePrefab(d, prefix)...)
	case *Animation:
		if d.Length < 0 {
			errs = append(errs, fmt.Sprintf("%s: 'length' must not be negative", prefix))
		}
		for i, c := range d.Curves {
			if c.Property == "" {
				errs = append(errs, fmt.Sprintf("%s: curve[%d]: 'property' is required", prefix, i))
			}
			if len(c.Keys) == 0 {
				errs = append(errs, fmt.Sprintf("%s: curve[%d]: at least one key is required", prefix, i))
			}
		}
	}

	return errs
}

func validateFields(fields []Field, prefix string) []string {
	var errs []string
	names := make(map[string]bool)
	for i, f := range fields {
		fp := fmt.Sprintf("%s: field[%d]", prefix, i)
		if f.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: 'name' is required", fp))
		} else if names[f.Name] {
			errs = append(errs, fmt.Sprintf("%s: duplicate field name '%s'", fp, f.Name))
		} else {
			names[f.Name] = true
		}
		if f.Type == "" && !f.IsEnum() {
			errs = append(errs, fmt.Sprintf("%s: 'type' is required", fp))
		}
		if len(f.Range) > 0 && len(f.Range) != 2 {
			errs = append(errs, fmt.Sprintf("%s: 'range' must be [min, max]", fp))
		}
	}
	return errs
}

func validatePrefab(p *Prefab, prefix string) []string {
	var errs []string
	for i, c := range p.Components {
		if c.Type == "" {
			errs = append(errs, fmt.Sprintf("%s: component[%d]: 'type' is required", prefix, i))
		}
	}
	for i := range p.Children {
		child := &p.Children[i]
		cp := fmt.Sprintf("%s: child[%d]", prefix, i)
		if child.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: 'name' is required", cp))
		}
		errs = append(errs, validatePrefab(child, cp)...)
	}
	return errs
}
