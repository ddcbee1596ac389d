package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const swipeScript = `
steps:
  - action: press
    x: 0
    y: 0
  - action: wait
    ms: 500
  - action: moveTo
    x: 100
    y: 200
  - action: release
`

const twoFingerScript = `
pointers:
  - steps:
      - action: press
        x: 10
        y: 10
      - action: release
  - steps:
      - action: press
        x: 20
        y: 20
      - action: release
`

func TestBuildSequenceFromScript(t *testing.T) {
	var script gestureScript
	require.NoError(t, yaml.Unmarshal([]byte(swipeScript), &script))
	require.Len(t, script.Steps, 4)
	require.Empty(t, script.Pointers)

	// no element selectors in this script, so no driver is consulted
	seq, err := buildSequence(nil, script.Steps)
	require.NoError(t, err)

	steps := seq.Serialize()
	require.Len(t, steps, 4)
	assert.Equal(t, "press", steps[0]["action"])
	assert.Equal(t, "wait", steps[1]["action"])
	assert.Equal(t, map[string]interface{}{"ms": 500}, steps[1]["options"])
	assert.Equal(t, "moveTo", steps[2]["action"])
	assert.Equal(t, map[string]interface{}{"x": 100, "y": 200}, steps[2]["options"])
	assert.Equal(t, "release", steps[3]["action"])
}

func TestGestureScriptParsesPointers(t *testing.T) {
	var script gestureScript
	require.NoError(t, yaml.Unmarshal([]byte(twoFingerScript), &script))

	require.Len(t, script.Pointers, 2)
	for _, pointer := range script.Pointers {
		assert.Len(t, pointer.Steps, 2)
	}
}

func TestBuildSequenceRejectsUnknownAction(t *testing.T) {
	_, err := buildSequence(nil, []gestureStep{{Action: "teleport"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestBuildSequenceRejectsTargetlessPress(t *testing.T) {
	_, err := buildSequence(nil, []gestureStep{{Action: "press"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "press needs")
}

func TestBuildSequenceZeroCoordinatesAreValid(t *testing.T) {
	zero := 0
	seq, err := buildSequence(nil, []gestureStep{
		{Action: "press", X: &zero, Y: &zero},
		{Action: "release"},
	})
	require.NoError(t, err)

	steps := seq.Serialize()
	require.Len(t, steps, 2)
	assert.Equal(t, map[string]interface{}{"x": 0, "y": 0}, steps[0]["options"])
}
