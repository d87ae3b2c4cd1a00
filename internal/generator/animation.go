package generator

import (
	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

// DefaultFrameRate is the clip sample rate when none is given.
const DefaultFrameRate = 60

// ClipLength is the declared length, or the time of the last key when the
// length is unset.
func ClipLength(def *spec.Animation) float64 {
	if def.Length > 0 {
		return def.Length
	}
	var end float64
	for _, c := range def.Curves {
		for _, k := range c.Keys {
			if k.Time > end {
				end = k.Time
			}
		}
	}
	return end
}

// Animation renders a .anim clip with one float curve per definition curve.
func Animation(def *spec.Animation) string {
	rate := def.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}

	o := unityyaml.NewObject(AnimationClipFileID, unityyaml.ClassAnimationClip, "AnimationClip")
	o.Value("m_ObjectHideFlags", 0).
		Ref("m_CorrespondingSourceObject", 0).
		Ref("m_PrefabInstance", 0).
		Ref("m_PrefabAsset", 0).
		Value("m_Name", def.Name).
		Value("serializedVersion", 7).
		Value("m_Legacy", 0).
		Value("m_Compressed", 0).
		Value("m_UseHighQualityCurve", 1).
		Line("  m_RotationCurves: []").
		Line("  m_CompressedRotationCurves: []").
		Line("  m_EulerCurves: []").
		Line("  m_PositionCurves: []").
		Line("  m_ScaleCurves: []")
	writeFloatCurves(o, "m_FloatCurves", def.Curves)
	o.Line("  m_PPtrCurves: []").
		Value("m_SampleRate", rate).
		Value("m_WrapMode", 0).
		Line("  m_Bounds:").
		Line("    m_Center: {x: 0, y: 0, z: 0}").
		Line("    m_Extent: {x: 0, y: 0, z: 0}").
		Line("  m_ClipBindingConstant:").
		Line("    genericBindings: []").
		Line("    pptrCurveMapping: []").
		Line("  m_AnimationClipSettings:").
		Line("    serializedVersion: 2").
		Line("    m_AdditiveReferencePoseClip: {fileID: 0}").
		Line("    m_AdditiveReferencePoseTime: 0").
		Line("    m_StartTime: 0").
		Line("    m_StopTime: " + unityyaml.Format(ClipLength(def), "")).
		Line("    m_OrientationOffsetY: 0").
		Line("    m_Level: 0").
		Line("    m_CycleOffset: 0").
		Line("    m_HasAdditiveReferencePose: 0").
		Line("    m_LoopTime: " + unityyaml.Format(def.Loop, "")).
		Line("    m_LoopBlendOrientation: 0").
		Line("    m_LoopBlendPositionY: 0").
		Line("    m_LoopBlendPositionXZ: 0").
		Line("    m_KeepOriginalOrientation: 0").
		Line("    m_KeepOriginalPositionY: 1").
		Line("    m_KeepOriginalPositionXZ: 0").
		Line("    m_HeightFromFeet: 0").
		Line("    m_Mirror: 0")
	writeFloatCurves(o, "m_EditorCurves", def.Curves)
	o.Line("  m_EulerEditorCurves: []").
		Value("m_HasGenericRootTransform", 0).
		Value("m_HasMotionFloatCurves", 0).
		Line("  m_Events: []")

	return unityyaml.Document(o)
}

func writeFloatCurves(o *unityyaml.Object, key string, curves []spec.Curve) {
	if len(curves) == 0 {
		o.Line("  " + key + ": []")
		return
	}
	o.Line("  " + key + ":")
	for _, c := range curves {
		component := c.Component
		if component == "" {
			component = "Transform"
		}
		classID, ok := unityyaml.ClassID(component)
		if !ok {
			classID = unityyaml.ClassMonoBehaviour
		}

		o.Line("  - curve:").
			Line("      serializedVersion: 2").
			Line("      m_Curve:")
		for _, k := range c.Keys {
			o.Line("      - serializedVersion: 3").
				Line("        time: " + unityyaml.Format(k.Time, "")).
				Line("        value: " + unityyaml.Format(k.Value, "")).
				Line("        inSlope: " + unityyaml.Format(k.InTangent, "")).
				Line("        outSlope: " + unityyaml.Format(k.OutTangent, "")).
				Line("        tangentMode: 0").
				Line("        weightedMode: 0").
				Line("        inWeight: 0.33333334").
				Line("        outWeight: 0.33333334")
		}
		o.Line("      m_PreInfinity: 2").
			Line("      m_PostInfinity: 2").
			Line("      m_RotationOrder: 4").
			Line("    attribute: " + c.Property).
			Line("    path: " + c.Path).
			Line("    classID: " + unityyaml.Format(classID, "")).
			Line("    script: {fileID: 0}")
	}
}
