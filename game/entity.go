package game

import (
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityID is a unique identifier for any entity in the game.
type EntityID uint64

var nextEntityID atomic.Uint64

// newEntityID hands out increasing IDs, starting at 1
func newEntityID() EntityID {
	return EntityID(nextEntityID.Add(1))
}

// Entity represents a game entity (player, crosshair or bullet)
type Entity interface {
	ID() EntityID

	// Update advances the entity by one tick and returns false once it
	// should be removed from the world
	Update(w *World) bool

	// Draw renders the entity's sprite at its current position
	Draw(dst *ebiten.Image, sprites *Sprites)
}

// drawSprite draws img centred on pos, rotated counter-clockwise by
// angle degrees
func drawSprite(dst, img *ebiten.Image, pos Vec2, angle float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(b.Dx(), b.Dy(), pos, angle)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// spriteGeoM builds the transform that centres a w*h sprite on pos and
// rotates it counter-clockwise (as seen on screen) by angle degrees
func spriteGeoM(w, h int, pos Vec2, angle float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(w)/2, -float64(h)/2)
	m.Rotate(-angle * math.Pi / 180)
	m.Translate(pos.X, pos.Y)
	return m
}
