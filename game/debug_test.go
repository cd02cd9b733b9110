package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugHUD(t *testing.T) {
	w := NewWorld(testConfig(), &ManualClock{}, nil)
	w.Step(InputState{Mouse: Vec2{200, 100}, LeftButton: true})

	hud := debugHUD(w, 59.94)
	assert.Contains(t, hud, "TPS: 59.9")
	assert.Contains(t, hud, "tick: 1")
	assert.Contains(t, hud, "bullets: 1")
	assert.Contains(t, hud, "heading: 0.0")
	assert.Contains(t, hud, "cooldown: 9")
}

func TestDebugToggle(t *testing.T) {
	d := &DebugState{}
	d.Toggle()
	assert.True(t, d.ShowOverlay)
	d.Toggle()
	assert.False(t, d.ShowOverlay)
}
