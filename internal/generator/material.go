package generator

import (
	"fmt"

	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

// DefaultShader is used for shader names missing from ShaderGUIDs.
const DefaultShader = "Standard"

// ShaderGUIDs maps built-in shader names to their GUIDs.
var ShaderGUIDs = map[string]string{
	"Standard":                             "0000000000000000f000000000000000",
	"Universal Render Pipeline/Lit":        "933532a4fcc9baf4fa0491de14d08ed7",
	"Universal Render Pipeline/Unlit":      "0406db5a14f94604a8c57ccfbc9f3b46",
	"Universal Render Pipeline/Simple Lit": "8d2bb70cbf9db8d4da26e15b26e74248",
	"Particles/Standard Unlit":             "0000000000000000f000000000000046",
	"Sprites/Default":                      "0000000000000000f000000000000046",
	"UI/Default":                           "0000000000000000f000000000000046",
}

var textureSlots = []string{"_BaseMap", "_BumpMap", "_EmissionMap", "_MainTex", "_OcclusionMap"}

// Material renders a .mat document. Properties are split by
// unityyaml.Classify: colors and vectors go to m_Colors, everything else to
// m_Floats.
func Material(def *spec.Material) (string, []string) {
	var warnings []string
	shaderGUID, ok := ShaderGUIDs[def.Shader]
	if !ok {
		shaderGUID = ShaderGUIDs[DefaultShader]
		warnings = append(warnings, fmt.Sprintf("material '%s': unknown shader '%s', using %s", def.Name, def.Shader, DefaultShader))
	}

	var colors, floats []string
	for _, p := range def.Properties {
		switch unityyaml.Classify(p.Key, p.Value) {
		case unityyaml.Color:
			colors = append(colors, "    - "+p.Key+": "+colorValue(p.Value))
		case unityyaml.Vector:
			colors = append(colors, "    - "+p.Key+": "+vectorValue(p.Value))
		default:
			floats = append(floats, "    - "+p.Key+": "+unityyaml.Format(p.Value, "      "))
		}
	}

	renderQueue := -1
	if def.RenderQueue != nil {
		renderQueue = *def.RenderQueue
	}

	o := unityyaml.NewObject(MaterialFileID, unityyaml.ClassMaterial, "Material")
	o.Value("serializedVersion", 8).
		Value("m_ObjectHideFlags", 0).
		Ref("m_CorrespondingSourceObject", 0).
		Ref("m_PrefabInstance", 0).
		Ref("m_PrefabAsset", 0).
		Value("m_Name", def.Name).
		Line("  m_Shader: {fileID: 4800000, guid: " + shaderGUID + ", type: 3}").
		Ref("m_Parent", 0).
		Value("m_ModifiedSerializedProperties", 0)
	list(o, "  ", "m_ValidKeywords", prefixed("  - ", def.Keywords))
	o.Line("  m_InvalidKeywords: []").
		Value("m_LightmapFlags", 4).
		Value("m_EnableInstancingVariants", 0).
		Value("m_DoubleSidedGI", 0).
		Value("m_CustomRenderQueue", renderQueue).
		Line("  stringTagMap:").
		Line("    RenderType: Opaque").
		Line("  disabledShaderPasses: []").
		Value("m_LockedProperties", "").
		Line("  m_SavedProperties:").
		Line("    serializedVersion: 3").
		Line("    m_TexEnvs:")
	for _, slot := range textureSlots {
		o.Line("    - " + slot + ":").
			Line("        m_Texture: {fileID: 0}").
			Line("        m_Scale: {x: 1, y: 1}").
			Line("        m_Offset: {x: 0, y: 0}")
	}
	o.Line("    m_Ints: []")
	list(o, "    ", "m_Floats", floats)
	list(o, "    ", "m_Colors", colors)
	o.Line("  m_BuildTextureStacks: []")

	return unityyaml.Document(o), warnings
}

func list(o *unityyaml.Object, indent, key string, items []string) {
	if len(items) == 0 {
		o.Line(indent + key + ": []")
		return
	}
	o.Line(indent + key + ":")
	for _, item := range items {
		o.Line(item)
	}
}

func prefixed(prefix string, items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = prefix + item
	}
	return out
}

// colorValue renders an RGBA color. Sequences of three or more numbers
// default alpha to 1; records look up r, g, b and a, each defaulting to 1.
func colorValue(v any) string {
	if nums, ok := unityyaml.NumericSequence(v); ok && len(nums) >= 3 {
		if len(nums) == 3 {
			nums = append(nums, 1)
		}
		return unityyaml.FormatTuple(nums, unityyaml.ColorFields)
	}
	if r, ok := v.(unityyaml.Record); ok {
		values := make([]any, len(unityyaml.ColorFields))
		for i, k := range unityyaml.ColorFields {
			values[i] = 1
			if c, ok := r.Get(k); ok && unityyaml.IsNumber(c) {
				values[i] = c
			}
		}
		return unityyaml.FormatTuple(values, unityyaml.ColorFields)
	}
	return "{r: 1, g: 1, b: 1, a: 1}"
}

// vectorValue renders a four-component vector, padding missing components
// with 0.
func vectorValue(v any) string {
	values := []any{0, 0, 0, 0}
	if nums, ok := unityyaml.NumericSequence(v); ok {
		copy(values, nums)
	}
	return unityyaml.FormatTuple(values, unityyaml.VectorFields)
}
