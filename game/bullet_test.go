package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletVelocityIsFixed(t *testing.T) {
	b := NewBullet(Vec2{10, 10}, 30, 20, 750, 0)
	vel := b.Vel
	assert.InDelta(t, 20, vel.Len(), eps)

	pos := b.Pos
	for now := int64(0); now < 500; now += 16 {
		require.True(t, b.Tick(now))
		assert.Equal(t, vel, b.Vel)
		assert.Equal(t, 30.0, b.Theta)
		assert.Equal(t, pos.Add(vel), b.Pos)
		pos = b.Pos
	}
}

func TestBulletLifetimeBoundary(t *testing.T) {
	b := NewBullet(Vec2{}, 0, 20, 750, 1000)

	assert.True(t, b.Tick(1000))
	assert.True(t, b.Tick(1750), "exactly at lifetime is still live")
	assert.False(t, b.Tick(1751))
	assert.True(t, b.Expired(1751))
}

func TestWorldSweepsExpiredBullets(t *testing.T) {
	cfg := testConfig()
	cfg.BulletLifetime = 750
	clock := &ManualClock{}
	w := NewWorld(cfg, clock, nil)

	w.Step(InputState{Mouse: Vec2{200, 100}, LeftButton: true})
	require.Len(t, w.Bullets(), 1)

	idle := InputState{Mouse: Vec2{200, 100}}
	clock.Advance(749)
	w.Step(idle)
	assert.Len(t, w.Bullets(), 1)

	clock.Advance(1)
	w.Step(idle)
	assert.Len(t, w.Bullets(), 1, "live while now-spawn == lifetime")

	clock.Advance(1)
	w.Step(idle)
	assert.Empty(t, w.Bullets())
	assert.Len(t, w.AllEntities, 2)
}

func TestBulletsAdvanceEveryTick(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, &ManualClock{}, nil)

	w.Step(InputState{Mouse: Vec2{200, 100}, LeftButton: true})
	b := w.Bullets()[0]
	spawn := b.Pos
	assert.Equal(t, w.Player().Muzzle(), spawn, "not advanced on the tick it was spawned")

	for i := 1; i <= 5; i++ {
		w.Step(InputState{Mouse: Vec2{200, 100}})
		assert.InDelta(t, spawn.X+float64(i)*cfg.BulletSpeed, b.Pos.X, 1e-6)
		assert.InDelta(t, spawn.Y, b.Pos.Y, 1e-6)
	}
}
