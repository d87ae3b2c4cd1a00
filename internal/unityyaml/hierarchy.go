package unityyaml

import (
	"strconv"
)

// Roles in a built hierarchy. Child roles are prefixed with "child[i].".
const (
	RoleRoot      = "root"
	RoleTransform = "transform"
)

// ComponentRole names the i-th component descriptor of a node.
func ComponentRole(i int) string {
	return "component[" + strconv.Itoa(i) + "]"
}

// ChildRole is the role prefix of a node's i-th child.
func ChildRole(i int) string {
	return "child[" + strconv.Itoa(i) + "]."
}

// Component is a typed property bag attached to a GameObject.
type Component struct {
	Type       string
	Properties Record
}

// Node describes a GameObject: its components and nested children.
type Node struct {
	Name       string
	Tag        string
	Layer      int
	Components []Component
	Children   []Node
}

// Hierarchy is the result of BuildHierarchy.
type Hierarchy struct {
	Objects []*Object
	// Roles maps logical roles to allocated file IDs.
	Roles map[string]int64
	// IgnoredTransforms lists the roles of transform descriptors beyond the
	// first one on a node. They do not produce objects.
	IgnoredTransforms []string
}

// Document renders the hierarchy as a complete document.
func (h *Hierarchy) Document() string {
	return Document(h.Objects...)
}

// BuildHierarchy allocates file IDs for root and its descendants and builds
// their object blocks.
//
// Per node, the GameObject is allocated first and its transform second. The
// transform is the node's first Transform or RectTransform descriptor, or a
// synthesized Transform when there is none. The remaining components follow
// in input order, then the children depth-first. The GameObject's
// m_Component list always starts with the transform.
func BuildHierarchy(root Node) *Hierarchy {
	b := &hierarchyBuilder{
		graph: NewGraph(),
		h:     &Hierarchy{Roles: make(map[string]int64)},
	}
	b.node(root, "", 0)
	b.h.Objects = b.graph.Objects()
	return b.h
}

type hierarchyBuilder struct {
	graph *Graph
	h     *Hierarchy
}

// node builds n and its subtree and returns the ID of n's transform.
func (b *hierarchyBuilder) node(n Node, prefix string, father int64) int64 {
	rootID := b.graph.Allocate()
	transformID := b.graph.Allocate()
	b.h.Roles[prefix+RoleRoot] = rootID
	b.h.Roles[prefix+RoleTransform] = transformID

	transformIndex := -1
	for i, c := range n.Components {
		if IsTransform(c.Type) {
			transformIndex = i
			break
		}
	}

	transform := Component{Type: "Transform"}
	if transformIndex >= 0 {
		transform = n.Components[transformIndex]
		b.h.Roles[prefix+ComponentRole(transformIndex)] = transformID
	}

	var components []*Object
	for i, c := range n.Components {
		if i == transformIndex {
			continue
		}
		role := prefix + ComponentRole(i)
		if IsTransform(c.Type) {
			b.h.IgnoredTransforms = append(b.h.IgnoredTransforms, role)
			continue
		}
		id := b.graph.Allocate()
		b.h.Roles[role] = id
		components = append(components, componentObject(id, rootID, c))
	}

	gameObject := NewObject(rootID, ClassGameObject, "GameObject")
	writeHeader(gameObject)
	gameObject.Value("serializedVersion", 6)
	gameObject.Line("  m_Component:")
	gameObject.Line("  - component: " + FileRef(transformID))
	for _, c := range components {
		gameObject.Line("  - component: " + FileRef(c.ID))
	}
	tag := n.Tag
	if tag == "" {
		tag = "Untagged"
	}
	gameObject.
		Value("m_Layer", n.Layer).
		Value("m_Name", n.Name).
		Value("m_TagString", tag).
		Ref("m_Icon", 0).
		Value("m_NavMeshLayer", 0).
		Value("m_StaticEditorFlags", 0).
		Value("m_IsActive", true)

	b.graph.Add(gameObject)
	transformObj := NewObject(transformID, ClassTransform, transform.Type)
	b.graph.Add(transformObj)
	b.graph.Add(components...)

	var children []int64
	for i, child := range n.Children {
		children = append(children, b.node(child, prefix+ChildRole(i), transformID))
	}

	writeTransform(transformObj, rootID, father, children, transform)
	return transformID
}

func writeHeader(o *Object) {
	o.Value("m_ObjectHideFlags", 0).
		Ref("m_CorrespondingSourceObject", 0).
		Ref("m_PrefabInstance", 0).
		Ref("m_PrefabAsset", 0)
}

var transformAliases = map[string]string{
	"position":      "m_LocalPosition",
	"localPosition": "m_LocalPosition",
	"rotation":      "m_LocalRotation",
	"localRotation": "m_LocalRotation",
	"scale":         "m_LocalScale",
	"localScale":    "m_LocalScale",
}

func writeTransform(o *Object, owner, father int64, children []int64, c Component) {
	if c.Type == "RectTransform" {
		o.ClassID = ClassRectTransform
	}
	o.Owner = owner

	fields := Record{
		{Key: "m_LocalRotation", Value: []any{0, 0, 0, 1}},
		{Key: "m_LocalPosition", Value: []any{0, 0, 0}},
		{Key: "m_LocalScale", Value: []any{1, 1, 1}},
	}
	if c.Type == "RectTransform" {
		fields = append(fields,
			Field{Key: "m_AnchorMin", Value: []any{0.5, 0.5}},
			Field{Key: "m_AnchorMax", Value: []any{0.5, 0.5}},
			Field{Key: "m_AnchoredPosition", Value: []any{0, 0}},
			Field{Key: "m_SizeDelta", Value: []any{100, 100}},
			Field{Key: "m_Pivot", Value: []any{0.5, 0.5}},
		)
	}
	for _, p := range c.Properties {
		key := p.Key
		if alias, ok := transformAliases[key]; ok {
			key = alias
		}
		fields.Set(key, p.Value)
	}

	writeHeader(o)
	o.Ref("m_GameObject", owner)
	o.Value("serializedVersion", 2)
	for _, key := range []string{"m_LocalRotation", "m_LocalPosition", "m_LocalScale"} {
		v, _ := fields.Get(key)
		o.Value(key, v)
	}
	o.Value("m_ConstrainProportionsScale", 0)
	if len(children) == 0 {
		o.Line("  m_Children: []")
	} else {
		o.Line("  m_Children:")
		for _, id := range children {
			o.Line("  - " + FileRef(id))
		}
	}
	o.Ref("m_Father", father)
	o.Value("m_LocalEulerAnglesHint", []any{0, 0, 0})
	for _, f := range fields[3:] {
		o.Value(f.Key, f.Value)
	}
}

func componentObject(id, owner int64, c Component) *Object {
	classID, known := ClassID(c.Type)
	if !known || classID == ClassMonoBehaviour {
		o := NewObject(id, ClassMonoBehaviour, "MonoBehaviour")
		o.Owner = owner
		writeHeader(o)
		o.Ref("m_GameObject", owner).
			Value("m_Enabled", true).
			Value("m_EditorHideFlags", 0).
			Ref("m_Script", 0).
			Value("m_Name", "").
			Value("m_EditorClassIdentifier", "").
			Fields(c.Properties)
		return o
	}

	o := NewObject(id, classID, c.Type)
	o.Owner = owner
	writeHeader(o)
	o.Ref("m_GameObject", owner).
		Value("m_Enabled", true).
		Fields(c.Properties)
	return o
}
