package game

import "github.com/hajimehoshi/ebiten/v2"

// Crosshair follows the mouse pointer
type Crosshair struct {
	id  EntityID
	Pos Vec2
}

func NewCrosshair() *Crosshair {
	return &Crosshair{id: newEntityID()}
}

func (c *Crosshair) ID() EntityID {
	return c.id
}

func (c *Crosshair) Update(w *World) bool {
	c.Pos = w.Input().Mouse
	return true
}

func (c *Crosshair) Draw(dst *ebiten.Image, sprites *Sprites) {
	drawSprite(dst, sprites.Crosshair, c.Pos, 0)
}
