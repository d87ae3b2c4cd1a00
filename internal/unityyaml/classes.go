package unityyaml

// Class IDs used by the generators.
const (
	ClassGameObject    = 1
	ClassTransform     = 4
	ClassMaterial      = 21
	ClassAnimationClip = 74
	ClassMonoBehaviour = 114
	ClassRectTransform = 224
)

var componentClassIDs = map[string]int{
	"GameObject":          ClassGameObject,
	"Transform":           ClassTransform,
	"Camera":              20,
	"MeshRenderer":        23,
	"MeshFilter":          33,
	"Rigidbody":           54,
	"MeshCollider":        64,
	"BoxCollider":         65,
	"AudioListener":       81,
	"AudioSource":         82,
	"Animator":            95,
	"Light":               108,
	"Animation":           111,
	"SphereCollider":      135,
	"CapsuleCollider":     136,
	"SkinnedMeshRenderer": 137,
	"ParticleSystem":      198,
	"CanvasRenderer":      222,
	"Canvas":              223,
	"RectTransform":       ClassRectTransform,

	// UI components are MonoBehaviours.
	"Image":  ClassMonoBehaviour,
	"Text":   ClassMonoBehaviour,
	"Button": ClassMonoBehaviour,
}

// ClassID returns the class ID for a component type name. Unknown names
// report false; callers render them as MonoBehaviour.
func ClassID(typeName string) (int, bool) {
	id, ok := componentClassIDs[typeName]
	return id, ok
}

// IsTransform reports whether typeName is one of the transform types.
func IsTransform(typeName string) bool {
	return typeName == "Transform" || typeName == "RectTransform"
}
