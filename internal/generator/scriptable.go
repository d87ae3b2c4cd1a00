package generator

import (
	"github.com/bianoble/unity-assets/internal/guid"
	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

// MenuPath is the CreateAssetMenu path of a ScriptableObject class.
func MenuPath(def *spec.ScriptableObject) string {
	if def.MenuPath != "" {
		return def.MenuPath
	}
	return "ScriptableObjects/" + PascalCase(def.Name)
}

// ScriptableObjectClass renders a ScriptableObject subclass with a
// CreateAssetMenu attribute.
func ScriptableObjectClass(def *spec.ScriptableObject) string {
	name := PascalCase(def.Name)
	return renderClass(classSource{
		Name:        name,
		Namespace:   def.Namespace,
		Description: def.Description,
		ScriptType:  spec.ScriptScriptableObject,
		Fields:      def.Fields,
		Attributes: []string{
			"[CreateAssetMenu(fileName = " + quote(name) + ", menuName = " + quote(MenuPath(def)) + ")]",
		},
	})
}

// ScriptGUID is the script GUID an instance's m_Script points at: the
// explicit scriptGuid, or one derived from the ScriptableObject type name.
func ScriptGUID(def *spec.ScriptableInstance) string {
	if def.ScriptGUID != "" {
		return def.ScriptGUID
	}
	return guid.Derive(def.ScriptableType)
}

// ScriptableInstance renders a .asset holding one ScriptableObject.
func ScriptableInstance(def *spec.ScriptableInstance) string {
	o := unityyaml.NewObject(MonoBehaviourFileID, unityyaml.ClassMonoBehaviour, "MonoBehaviour")
	o.Value("m_ObjectHideFlags", 0).
		Ref("m_CorrespondingSourceObject", 0).
		Ref("m_PrefabInstance", 0).
		Ref("m_PrefabAsset", 0).
		Ref("m_GameObject", 0).
		Value("m_Enabled", true).
		Value("m_EditorHideFlags", 0).
		Line("  m_Script: {fileID: 11500000, guid: " + ScriptGUID(def) + ", type: 3}").
		Value("m_Name", def.Name).
		Value("m_EditorClassIdentifier", "")

	for _, f := range def.Values {
		if unityyaml.Classify(f.Key, f.Value) == unityyaml.Color {
			if nums, ok := unityyaml.NumericSequence(f.Value); ok && len(nums) >= 3 {
				o.Line("  " + f.Key + ": " + colorValue(nums))
				continue
			}
		}
		o.Value(f.Key, f.Value)
	}
	return unityyaml.Document(o)
}
