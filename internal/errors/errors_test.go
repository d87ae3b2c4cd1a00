package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrap(ErrConfiguration, "resolving editor")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "resolving editor")
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsUnknownKind(err))
}

func TestWithHintSurvivesWrap(t *testing.T) {
	err := WithHint(ErrConfiguration, "set UNITY_PATH")
	err = Wrap(err, "batch mode")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "set UNITY_PATH", hints[0])
}

func TestNilHelpers(t *testing.T) {
	assert.False(t, IsConfigurationError(nil))
	assert.False(t, IsUnknownKind(nil))
}

func TestUnknownKindWrapf(t *testing.T) {
	err := Wrapf(ErrUnknownKind, "asset %q (type %q)", "Walk", "timeline")
	assert.True(t, IsUnknownKind(err))
	assert.Contains(t, err.Error(), `asset "Walk" (type "timeline")`)
}
