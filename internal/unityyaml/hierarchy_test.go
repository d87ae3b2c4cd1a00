package unityyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAllocatesIncreasingIDs(t *testing.T) {
	g := NewGraph()
	assert.Equal(t, BaseFileID, g.Allocate())
	assert.Equal(t, BaseFileID+1, g.Allocate())
	assert.Equal(t, 2, g.Allocated())

	// A new graph starts over.
	assert.Equal(t, BaseFileID, NewGraph().Allocate())
}

func TestBuildHierarchyAllocatesNPlusTwo(t *testing.T) {
	components := []Component{
		{Type: "MeshFilter"},
		{Type: "MeshRenderer"},
		{Type: "Transform", Properties: Record{{Key: "position", Value: []any{0, 1, 0}}}},
		{Type: "BoxCollider"},
		{Type: "EnemyAI"},
	}
	h := BuildHierarchy(Node{Name: "Crate", Components: components})

	// Four extra components plus root and transform.
	require.Len(t, h.Objects, 6)
	for i := 1; i < len(h.Objects); i++ {
		assert.Greater(t, h.Objects[i].ID, h.Objects[i-1].ID)
	}
	assert.Equal(t, BaseFileID, h.Roles[RoleRoot])
	assert.Equal(t, BaseFileID+1, h.Roles[RoleTransform])
	assert.Equal(t, h.Roles[RoleTransform], h.Roles[ComponentRole(2)])
	assert.Equal(t, BaseFileID+2, h.Roles[ComponentRole(0)])
	assert.Equal(t, BaseFileID+5, h.Roles[ComponentRole(4)])

	root := h.Objects[0].String()
	first := strings.Index(root, "- component: {fileID: 1000001}")
	require.NotEqual(t, -1, first)
	assert.Less(t, first, strings.Index(root, "- component: {fileID: 1000002}"))

	transform := h.Objects[1].String()
	assert.Contains(t, transform, "m_LocalPosition: {x: 0, y: 1, z: 0}")
	assert.Contains(t, transform, "m_GameObject: {fileID: 1000000}")
}

func TestBuildHierarchyEnemyWithRigidbody(t *testing.T) {
	h := BuildHierarchy(Node{Name: "Enemy", Components: []Component{{Type: "Rigidbody"}}})
	doc := h.Document()

	assert.True(t, strings.HasPrefix(doc, Preamble))
	assert.True(t, strings.HasSuffix(doc, "\n"))
	assert.Equal(t, 3, strings.Count(doc, "--- !u!"))
	assert.Contains(t, doc, "--- !u!1 &1000000\nGameObject:")
	assert.Contains(t, doc, "--- !u!4 &1000001\nTransform:")
	assert.Contains(t, doc, "--- !u!54 &1000002\nRigidbody:")
	assert.Contains(t, doc, "  m_Component:\n  - component: {fileID: 1000001}\n  - component: {fileID: 1000002}\n  m_Layer: 0")
	assert.Contains(t, doc, "  m_Name: Enemy\n")
	assert.Contains(t, doc, "  m_Children: []\n  m_Father: {fileID: 0}")
}

func TestBuildHierarchyUnknownComponentIsMonoBehaviour(t *testing.T) {
	h := BuildHierarchy(Node{Name: "Boss", Components: []Component{{
		Type:       "BossBrain",
		Properties: Record{{Key: "health", Value: 500}, {Key: "phases", Value: []any{"rage", "flee"}}},
	}}})
	obj := h.Objects[2]
	assert.Equal(t, ClassMonoBehaviour, obj.ClassID)
	body := obj.String()
	assert.Contains(t, body, "MonoBehaviour:\n")
	assert.Contains(t, body, "  m_Script: {fileID: 0}")
	assert.Contains(t, body, "  health: 500")
	assert.Contains(t, body, "  phases:\n    - rage\n    - flee")
}

func TestBuildHierarchyChildren(t *testing.T) {
	h := BuildHierarchy(Node{
		Name:       "Player",
		Components: []Component{{Type: "Rigidbody"}},
		Children: []Node{
			{Name: "Weapon", Components: []Component{{Type: "MeshRenderer"}}},
			{Name: "Camera", Components: []Component{{Type: "Camera"}}},
		},
	})

	require.Len(t, h.Objects, 9)
	parentTransform := h.Roles[RoleTransform]
	weaponTransform := h.Roles[ChildRole(0)+RoleTransform]
	cameraTransform := h.Roles[ChildRole(1)+RoleTransform]
	assert.Equal(t, BaseFileID+3, h.Roles[ChildRole(0)+RoleRoot])
	assert.Equal(t, BaseFileID+6, h.Roles[ChildRole(1)+RoleRoot])

	parent := h.Objects[1].String()
	assert.Contains(t, parent, "  m_Children:\n  - "+FileRef(weaponTransform)+"\n  - "+FileRef(cameraTransform))

	var weapon *Object
	for _, o := range h.Objects {
		if o.ID == weaponTransform {
			weapon = o
		}
	}
	require.NotNil(t, weapon)
	assert.Contains(t, weapon.String(), "  m_Father: "+FileRef(parentTransform))
}

func TestBuildHierarchyRectTransformAndExtraTransforms(t *testing.T) {
	h := BuildHierarchy(Node{Name: "Panel", Components: []Component{
		{Type: "RectTransform", Properties: Record{{Key: "m_SizeDelta", Value: []any{200, 50}}}},
		{Type: "Image"},
		{Type: "Transform"},
	}})

	require.Len(t, h.Objects, 3)
	assert.Equal(t, []string{ComponentRole(2)}, h.IgnoredTransforms)

	rect := h.Objects[1]
	assert.Equal(t, ClassRectTransform, rect.ClassID)
	body := rect.String()
	assert.Contains(t, body, "RectTransform:\n")
	assert.Contains(t, body, "  m_SizeDelta: {x: 200, y: 50}")
	assert.Contains(t, body, "  m_AnchorMin: {x: 0.5, y: 0.5}")
	assert.Equal(t, ClassMonoBehaviour, h.Objects[2].ClassID)
}
