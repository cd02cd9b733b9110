package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws the world onto the screen each frame
type Renderer struct {
	debug *DebugState
}

// NewRenderer creates a new renderer
func NewRenderer(debug *DebugState) *Renderer {
	return &Renderer{
		debug: debug,
	}
}

// Render draws the background, then every live entity in collection
// order, then the debug overlay when enabled
func (r *Renderer) Render(screen *ebiten.Image, world *World, tps float64) {
	sprites := world.Sprites
	if sprites == nil {
		return
	}

	// The background is already scaled to the viewport at load time
	if sprites.Background != nil {
		screen.DrawImage(sprites.Background, nil)
	}

	for _, entity := range world.AllEntities {
		entity.Draw(screen, sprites)
	}

	if r.debug != nil && r.debug.ShowOverlay {
		drawDebugOverlay(screen, world, tps)
	}
}
