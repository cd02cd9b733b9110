package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugState holds debug flags that persist for the lifetime of a game
type DebugState struct {
	ShowOverlay bool // heading, muzzle and bullet vectors plus HUD text
}

func (d *DebugState) Toggle() {
	d.ShowOverlay = !d.ShowOverlay
}

var (
	colorHeading  = color.RGBA{0, 255, 0, 255}
	colorMuzzle   = color.RGBA{255, 60, 60, 255}
	colorVelocity = color.RGBA{255, 255, 0, 255}
)

const headingLineLength = 60.0

// drawDebugOverlay draws heading/muzzle markers and the HUD line
func drawDebugOverlay(screen *ebiten.Image, w *World, tps float64) {
	if p := w.Player(); p != nil {
		tip := p.Pos.Add(FromAngle(p.Theta).Scale(headingLineLength))
		vector.StrokeLine(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(tip.X), float32(tip.Y), 1, colorHeading, true)

		m := p.Muzzle()
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), 3, colorMuzzle, true)
	}

	for _, b := range w.Bullets() {
		end := b.Pos.Add(b.Vel)
		vector.StrokeLine(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(end.X), float32(end.Y), 1, colorVelocity, true)
	}

	ebitenutil.DebugPrint(screen, debugHUD(w, tps))
}

// debugHUD formats the overlay text
func debugHUD(w *World, tps float64) string {
	hud := fmt.Sprintf("TPS: %.1f  tick: %d  bullets: %d", tps, w.Tick(), len(w.Bullets()))
	if p := w.Player(); p != nil {
		hud += fmt.Sprintf("\npos: (%.0f, %.0f)  heading: %.1f  cooldown: %d", p.Pos.X, p.Pos.Y, p.Theta, p.ShootCooldown)
	}
	return hud
}
