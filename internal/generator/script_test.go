package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bianoble/unity-assets/internal/spec"
)

func TestScriptWithoutNamespace(t *testing.T) {
	got := Script(&spec.Script{
		Base: spec.Base{Type: spec.KindScript, Name: "player-health"},
		Fields: []spec.Field{
			{Name: "max_health", Type: "int", Default: 100},
			{Name: "regen", Type: "float", Default: 1.5, Range: []float64{0, 5}, Tooltip: "Per second"},
		},
	})

	want := `using UnityEngine;

public class PlayerHealth : MonoBehaviour
{
    #region Fields
    [SerializeField] private int maxHealth = 100;

    [Tooltip("Per second")]
    [Range(0f, 5f)]
    [SerializeField] private float regen = 1.5f;
    #endregion

    #region Properties
    public int MaxHealth => maxHealth;
    public float Regen => regen;
    #endregion
}
`
	assert.Equal(t, want, got)
}

func TestScriptWithNamespaceEnumsAndMethods(t *testing.T) {
	got := Script(&spec.Script{
		Base:       spec.Base{Type: spec.KindScript, Name: "Enemy", Namespace: "Game.AI", Description: "Chases the player."},
		Interfaces: []string{"IDamageable"},
		Usings:     []string{"UnityEngine", "System"},
		Fields: []spec.Field{
			{Name: "state", Values: []string{"idle", "chase"}, Default: "chase", Header: "AI", Space: true},
			{Name: "waypoints", Type: "list<transform>"},
		},
		Methods: []string{"public void TakeDamage(int amount)\n{\n}"},
	})

	want := `using UnityEngine;
using System.Collections.Generic;
using System;

namespace Game.AI
{
    /// <summary>
    /// Chases the player.
    /// </summary>
    public class Enemy : MonoBehaviour, IDamageable
    {
        public enum StateType
        {
            Idle,
            Chase
        }

        #region Fields
        [Space]
        [Header("AI")]
        [SerializeField] private StateType state = StateType.Chase;

        [SerializeField] private List<Transform> waypoints;
        #endregion

        #region Properties
        public StateType State => state;
        public List<Transform> Waypoints => waypoints;
        #endregion

        #region Methods
        public void TakeDamage(int amount)
        {
        }
        #endregion
    }
}
`
	assert.Equal(t, want, got)
}

func TestScriptOtherTypes(t *testing.T) {
	iface := Script(&spec.Script{
		Base:       spec.Base{Type: spec.KindScript, Name: "IInteractable"},
		ScriptType: spec.ScriptInterface,
		Fields:     []spec.Field{{Name: "prompt", Type: "string"}},
	})
	assert.Contains(t, iface, "public interface IInteractable\n{\n    string Prompt { get; }\n}\n")

	enum := Script(&spec.Script{
		Base:       spec.Base{Type: spec.KindScript, Name: "Faction"},
		ScriptType: spec.ScriptEnum,
		Fields:     []spec.Field{{Name: "neutral"}, {Name: "hostile", Default: 5}},
	})
	assert.Contains(t, enum, "public enum Faction\n{\n    Neutral,\n    Hostile = 5\n}\n")

	static := Script(&spec.Script{
		Base:       spec.Base{Type: spec.KindScript, Name: "GameConstants"},
		ScriptType: spec.ScriptStatic,
		Fields:     []spec.Field{{Name: "gravity", Type: "float", Default: -9.81}},
	})
	assert.Contains(t, static, "public static class GameConstants\n{\n    public static float Gravity = -9.81f;\n}\n")
}

func TestCSharpType(t *testing.T) {
	tests := []struct {
		field spec.Field
		want  string
	}{
		{spec.Field{Name: "a", Type: "Vector3"}, "Vector3"},
		{spec.Field{Name: "a", Type: "gameobject[]"}, "GameObject[]"},
		{spec.Field{Name: "a", Type: "item[]"}, "Item[]"},
		{spec.Field{Name: "a", Type: "List<Sprite>"}, "List<Sprite>"},
		{spec.Field{Name: "a", Type: "InventorySlot"}, "InventorySlot"},
		{spec.Field{Name: "move_mode", Type: "string", Values: []string{"walk"}}, "MoveModeType"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CSharpType(tt.field), tt.field.Type)
	}
}

func TestDefaultLiteral(t *testing.T) {
	tests := []struct {
		field spec.Field
		want  string
	}{
		{spec.Field{Name: "n", Type: "int"}, ""},
		{spec.Field{Name: "n", Type: "string", Default: `say "hi"`}, ` = "say \"hi\""`},
		{spec.Field{Name: "n", Type: "float", Default: 2}, " = 2f"},
		{spec.Field{Name: "n", Type: "int", Default: 2}, " = 2"},
		{spec.Field{Name: "n", Type: "bool", Default: false}, " = false"},
		{spec.Field{Name: "n", Type: "vector2", Default: []any{1, 2}}, " = new Vector2(1f, 2f)"},
		{spec.Field{Name: "n", Type: "vector3", Default: []any{1, 2, 3}}, " = new Vector3(1f, 2f, 3f)"},
		{spec.Field{Name: "n", Type: "color", Default: []any{1, 0, 0}}, " = new Color(1f, 0f, 0f, 1f)"},
		{spec.Field{Name: "n", Type: "gameobject", Default: []any{1, 0}}, ""},
		{spec.Field{Name: "kind", Values: []string{"light", "heavy_armor"}, Default: "heavy_armor"}, " = KindType.HeavyArmor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultLiteral(tt.field))
	}
}
