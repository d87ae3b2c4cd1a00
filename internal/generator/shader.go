package generator

import (
	"strings"

	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

var shaderLabTypes = map[string]string{
	"float":  "Float",
	"range":  "Range(0, 1)",
	"int":    "Int",
	"color":  "Color",
	"vector": "Vector",
	"2d":     "2D",
	"3d":     "3D",
	"cube":   "Cube",
}

var shaderLabDefaults = map[string]string{
	"float":  "1",
	"range":  "0.5",
	"int":    "1",
	"color":  "(1, 1, 1, 1)",
	"vector": "(0, 0, 0, 0)",
	"2d":     `"white" {}`,
	"3d":     `"" {}`,
	"cube":   `"" {}`,
}

// ShaderName is the name a generated shader registers under.
func ShaderName(def *spec.Shader) string {
	return "Custom/" + PascalCase(def.Name)
}

func shaderLabType(f spec.Field) string {
	if len(f.Range) == 2 {
		lo, _ := unityyaml.FormatNumber(f.Range[0])
		hi, _ := unityyaml.FormatNumber(f.Range[1])
		return "Range(" + lo + ", " + hi + ")"
	}
	if t, ok := shaderLabTypes[strings.ToLower(f.Type)]; ok {
		return t
	}
	return "Float"
}

func shaderLabDefault(f spec.Field) string {
	t := strings.ToLower(f.Type)
	if nums, ok := unityyaml.NumericSequence(f.Default); ok && (t == "color" || t == "vector") {
		values := []any{0, 0, 0, 0}
		if t == "color" {
			values[3] = 1
		}
		copy(values, nums)
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i], _ = unityyaml.FormatNumber(v)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	if n, ok := unityyaml.FormatNumber(f.Default); ok {
		return n
	}
	if d, ok := shaderLabDefaults[t]; ok {
		return d
	}
	return "1"
}

// declarations are the program-side variables backing the properties.
type declarations struct {
	// global lines live outside the constant buffer (texture objects).
	global []string
	// buffered lines belong in the per-material constant buffer.
	buffered []string
}

func hlslDeclarations(fields []spec.Field) declarations {
	var d declarations
	for _, f := range fields {
		name := PropertyName(f.Name)
		switch strings.ToLower(f.Type) {
		case "2d":
			d.global = append(d.global, "TEXTURE2D("+name+");", "SAMPLER(sampler"+name+");")
			d.buffered = append(d.buffered, "float4 "+name+"_ST;")
		case "3d":
			d.global = append(d.global, "TEXTURE3D("+name+");", "SAMPLER(sampler"+name+");")
		case "cube":
			d.global = append(d.global, "TEXTURECUBE("+name+");", "SAMPLER(sampler"+name+");")
		case "int":
			d.buffered = append(d.buffered, "int "+name+";")
		case "color":
			d.buffered = append(d.buffered, "half4 "+name+";")
		case "vector":
			d.buffered = append(d.buffered, "float4 "+name+";")
		default:
			d.buffered = append(d.buffered, "half "+name+";")
		}
	}
	return d
}

func cgDeclarations(fields []spec.Field) []string {
	var out []string
	for _, f := range fields {
		name := PropertyName(f.Name)
		switch strings.ToLower(f.Type) {
		case "2d":
			out = append(out, "sampler2D "+name+";", "float4 "+name+"_ST;")
		case "3d":
			out = append(out, "sampler3D "+name+";")
		case "cube":
			out = append(out, "samplerCUBE "+name+";")
		case "int":
			out = append(out, "int "+name+";")
		case "color":
			out = append(out, "fixed4 "+name+";")
		case "vector":
			out = append(out, "float4 "+name+";")
		default:
			out = append(out, "float "+name+";")
		}
	}
	return out
}

// featurePragmas declares one local shader feature keyword per feature.
func featurePragmas(features []string) []string {
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = "#pragma shader_feature_local _" + strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(f))
	}
	return out
}

// Shader renders a ShaderLab program for the definition's pipeline. The
// pipeline defaults to URP.
func Shader(def *spec.Shader) string {
	w := newCodeWriter()
	w.open("Shader %s", quote(ShaderName(def)))
	w.open("Properties")
	for _, f := range def.Properties {
		w.linef("%s (%s, %s) = %s", PropertyName(f.Name), quote(DisplayName(f.Name)), shaderLabType(f), shaderLabDefault(f))
	}
	w.close()
	w.blank()

	switch def.Pipeline {
	case spec.PipelineBuiltin:
		builtinSubShader(w, def)
		w.blank()
		w.line(`FallBack "Diffuse"`)
	case spec.PipelineHDRP:
		hdrpSubShader(w, def)
		w.blank()
		w.line(`FallBack "HDRP/Lit"`)
	default:
		urpSubShader(w, def)
		w.blank()
		w.line(`FallBack "Universal Render Pipeline/Lit"`)
	}
	w.close()
	return w.String()
}

func lines(w *codeWriter, text string) {
	for _, l := range strings.Split(strings.Trim(text, "\n"), "\n") {
		w.line(l)
	}
}

func urpSubShader(w *codeWriter, def *spec.Shader) {
	decl := hlslDeclarations(def.Properties)

	w.open("SubShader")
	w.open("Tags")
	w.line(`"RenderType" = "Opaque"`)
	w.line(`"RenderPipeline" = "UniversalPipeline"`)
	w.line(`"Queue" = "Geometry"`)
	w.close()
	w.blank()
	w.open("Pass")
	w.line(`Name "ForwardLit"`)
	w.line(`Tags { "LightMode" = "UniversalForward" }`)
	w.blank()
	w.line("HLSLPROGRAM")
	w.line("#pragma vertex vert")
	w.line("#pragma fragment frag")
	w.line("#pragma multi_compile_fog")
	for _, p := range featurePragmas(def.Features) {
		w.line(p)
	}
	w.blank()
	w.line(`#include "Packages/com.unity.render-pipelines.universal/ShaderLibrary/Core.hlsl"`)
	w.line(`#include "Packages/com.unity.render-pipelines.universal/ShaderLibrary/Lighting.hlsl"`)
	w.blank()
	lines(w, `
struct Attributes
{
    float4 positionOS : POSITION;
    float3 normalOS : NORMAL;
    float2 uv : TEXCOORD0;
};

struct Varyings
{
    float4 positionCS : SV_POSITION;
    float2 uv : TEXCOORD0;
    float3 normalWS : TEXCOORD1;
    float3 positionWS : TEXCOORD2;
    float fogFactor : TEXCOORD3;
};
`)
	w.blank()
	if len(decl.global) > 0 {
		for _, l := range decl.global {
			w.line(l)
		}
		w.blank()
	}
	w.line("CBUFFER_START(UnityPerMaterial)")
	w.depth++
	for _, l := range decl.buffered {
		w.line(l)
	}
	w.depth--
	w.line("CBUFFER_END")
	w.blank()
	lines(w, `
Varyings vert(Attributes input)
{
    Varyings output;
    output.positionWS = TransformObjectToWorld(input.positionOS.xyz);
    output.positionCS = TransformWorldToHClip(output.positionWS);
    output.normalWS = TransformObjectToWorldNormal(input.normalOS);
    output.uv = input.uv;
    output.fogFactor = ComputeFogFactor(output.positionCS.z);
    return output;
}

half4 frag(Varyings input) : SV_Target
{
    Light mainLight = GetMainLight();
    half3 lighting = mainLight.color * saturate(dot(input.normalWS, mainLight.direction));
    lighting += half3(0.1, 0.1, 0.1);

    half4 color = half4(1, 1, 1, 1);
    color.rgb *= lighting;

    color.rgb = MixFog(color.rgb, input.fogFactor);
    return color;
}
`)
	w.line("ENDHLSL")
	w.close()
	w.close()
}

func hdrpSubShader(w *codeWriter, def *spec.Shader) {
	decl := hlslDeclarations(def.Properties)

	w.open("SubShader")
	w.open("Tags")
	w.line(`"RenderType" = "Opaque"`)
	w.line(`"RenderPipeline" = "HDRenderPipeline"`)
	w.close()
	w.blank()
	w.open("Pass")
	w.line(`Name "ForwardOnly"`)
	w.line(`Tags { "LightMode" = "ForwardOnly" }`)
	w.blank()
	w.line("HLSLPROGRAM")
	w.line("#pragma vertex vert")
	w.line("#pragma fragment frag")
	for _, p := range featurePragmas(def.Features) {
		w.line(p)
	}
	w.blank()
	w.line(`#include "Packages/com.unity.render-pipelines.high-definition/Runtime/RenderPipeline/ShaderPass/ShaderPassForward.hlsl"`)
	w.blank()
	for _, l := range decl.global {
		w.line(l)
	}
	w.line("CBUFFER_START(UnityPerMaterial)")
	w.depth++
	for _, l := range decl.buffered {
		w.line(l)
	}
	w.depth--
	w.line("CBUFFER_END")
	w.line("ENDHLSL")
	w.close()
	w.close()
}

func builtinSubShader(w *codeWriter, def *spec.Shader) {
	w.open("SubShader")
	w.line(`Tags { "RenderType" = "Opaque" "Queue" = "Geometry" }`)
	w.line("LOD 200")
	w.blank()
	w.open("Pass")
	w.line(`Tags { "LightMode" = "ForwardBase" }`)
	w.blank()
	w.line("CGPROGRAM")
	w.line("#pragma vertex vert")
	w.line("#pragma fragment frag")
	w.line("#pragma multi_compile_fog")
	for _, p := range featurePragmas(def.Features) {
		w.line(p)
	}
	w.blank()
	w.line(`#include "UnityCG.cginc"`)
	w.line(`#include "Lighting.cginc"`)
	w.blank()
	lines(w, `
struct appdata
{
    float4 vertex : POSITION;
    float3 normal : NORMAL;
    float2 uv : TEXCOORD0;
};

struct v2f
{
    float4 pos : SV_POSITION;
    float2 uv : TEXCOORD0;
    float3 worldNormal : TEXCOORD1;
    float3 worldPos : TEXCOORD2;
    UNITY_FOG_COORDS(3)
};
`)
	w.blank()
	for _, l := range cgDeclarations(def.Properties) {
		w.line(l)
	}
	w.blank()
	lines(w, `
v2f vert(appdata v)
{
    v2f o;
    o.pos = UnityObjectToClipPos(v.vertex);
    o.worldPos = mul(unity_ObjectToWorld, v.vertex).xyz;
    o.worldNormal = UnityObjectToWorldNormal(v.normal);
    o.uv = v.uv;
    UNITY_TRANSFER_FOG(o, o.pos);
    return o;
}

fixed4 frag(v2f i) : SV_Target
{
    float3 lightDir = normalize(_WorldSpaceLightPos0.xyz);
    float diff = max(0, dot(i.worldNormal, lightDir));
    float3 lighting = _LightColor0.rgb * diff + UNITY_LIGHTMODEL_AMBIENT.rgb;

    fixed4 col = fixed4(1, 1, 1, 1);
    col.rgb *= lighting;

    UNITY_APPLY_FOG(i.fogCoord, col);
    return col;
}
`)
	w.line("ENDCG")
	w.close()
	w.close()
}
