package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

func TestAnimation(t *testing.T) {
	def := &spec.Animation{
		Base: spec.Base{Type: spec.KindAnimation, Name: "Bob"},
		Loop: true,
		Curves: []spec.Curve{{
			Path:     "Body",
			Property: "m_LocalPosition.y",
			Keys: []spec.Key{
				{Time: 0, Value: 0},
				{Time: 1.5, Value: 0.25, InTangent: 0.5},
			},
		}},
	}
	got := Animation(def)

	assert.True(t, strings.HasPrefix(got, unityyaml.Preamble+"--- !u!74 &7400000\nAnimationClip:\n"))
	assert.Contains(t, got, "  m_Name: Bob\n")
	assert.Contains(t, got, "  m_FloatCurves:\n  - curve:\n      serializedVersion: 2\n      m_Curve:\n      - serializedVersion: 3\n        time: 0\n")
	assert.Contains(t, got, "        time: 1.5\n        value: 0.25\n        inSlope: 0.5\n        outSlope: 0\n")
	assert.Contains(t, got, "    attribute: m_LocalPosition.y\n    path: Body\n    classID: 4\n")
	assert.Contains(t, got, "    m_StopTime: 1.5\n")
	assert.Contains(t, got, "    m_LoopTime: 1\n")
	assert.Contains(t, got, "  m_SampleRate: 60\n")
	assert.Equal(t, 2, strings.Count(got, "attribute: m_LocalPosition.y"))
}

func TestAnimationEmpty(t *testing.T) {
	got := Animation(&spec.Animation{Base: spec.Base{Name: "Idle"}, Length: 2, FrameRate: 30})
	assert.Contains(t, got, "  m_FloatCurves: []\n")
	assert.Contains(t, got, "  m_EditorCurves: []\n")
	assert.Contains(t, got, "    m_StopTime: 2\n")
	assert.Contains(t, got, "    m_LoopTime: 0\n")
	assert.Contains(t, got, "  m_SampleRate: 30\n")
}

func TestClipLengthFromKeys(t *testing.T) {
	def := &spec.Animation{Curves: []spec.Curve{{Keys: []spec.Key{{Time: 0.5}, {Time: 2.25}}}}}
	assert.Equal(t, 2.25, ClipLength(def))
}
