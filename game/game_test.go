package game_test

import (
	"testing"

	"topdown/game"
	"topdown/game/mocks"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGame(t *testing.T) (*game.Game, *mocks.MockInputSource, *mocks.MockEventSource) {
	t.Helper()
	ctrl := gomock.NewController(t)

	input := mocks.NewMockInputSource(ctrl)
	events := mocks.NewMockEventSource(ctrl)

	cfg := game.DefaultConfig()
	cfg.PlayerStart = game.Vec2{X: 100, Y: 100}
	cfg.ShootCooldown = 10

	g := game.NewGame(cfg, nil, input, events, &game.ManualClock{})
	return g, input, events
}

func TestGameStartsRunning(t *testing.T) {
	g, _, _ := newTestGame(t)
	assert.Equal(t, game.StateRunning, g.State())
	assert.Equal(t, "running", g.State().String())

	w, h := g.Layout(1, 1)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}

func TestGameUpdateStepsWorld(t *testing.T) {
	g, input, events := newTestGame(t)

	events.EXPECT().QuitRequested().Return(false)
	input.EXPECT().Snapshot().Return(game.InputState{
		Mouse:      game.Vec2{X: 200, Y: 100},
		LeftButton: true,
	})

	require.NoError(t, g.Update())

	w := g.World()
	assert.Equal(t, uint64(1), w.Tick())
	assert.Len(t, w.Bullets(), 1)
	assert.Equal(t, game.Vec2{X: 200, Y: 100}, w.Crosshair().Pos)
}

func TestGameQuitTransition(t *testing.T) {
	g, input, events := newTestGame(t)

	gomock.InOrder(
		events.EXPECT().QuitRequested().Return(false),
		events.EXPECT().QuitRequested().Return(true),
	)
	input.EXPECT().Snapshot().Return(game.InputState{}).Times(1)

	require.NoError(t, g.Update())

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, game.StateQuitting, g.State())

	// Quitting is terminal: no more polling or stepping
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, uint64(1), g.World().Tick())
}

func TestGameTogglesDebugOverlay(t *testing.T) {
	g, input, events := newTestGame(t)

	events.EXPECT().QuitRequested().Return(false).Times(3)
	gomock.InOrder(
		input.EXPECT().Snapshot().Return(game.InputState{ToggleDebug: true}),
		input.EXPECT().Snapshot().Return(game.InputState{}),
		input.EXPECT().Snapshot().Return(game.InputState{ToggleDebug: true}),
	)

	require.NoError(t, g.Update())
	assert.True(t, g.Debug().ShowOverlay)
	require.NoError(t, g.Update())
	assert.True(t, g.Debug().ShowOverlay)
	require.NoError(t, g.Update())
	assert.False(t, g.Debug().ShowOverlay)
}
