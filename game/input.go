package game

//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . InputSource,EventSource

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is a point-in-time snapshot of keyboard and mouse
type InputState struct {
	Up, Left, Down, Right bool // W, A, S, D

	Mouse Vec2

	LeftButton   bool
	RightButton  bool
	MiddleButton bool

	// ToggleDebug is true on the tick F1 went down
	ToggleDebug bool
}

// Trigger reports whether the fire button is held. With strict set only
// the exact combination left-down, right-up, middle-up counts.
func (s InputState) Trigger(strict bool) bool {
	if strict {
		return s.LeftButton && !s.RightButton && !s.MiddleButton
	}
	return s.LeftButton
}

// InputSource provides one input snapshot per tick
type InputSource interface {
	Snapshot() InputState
}

// EventSource reports platform events the frame loop reacts to
type EventSource interface {
	// QuitRequested returns true once the user asked to close the game
	QuitRequested() bool
}

// EbitenInput reads keyboard and mouse state from ebiten
type EbitenInput struct{}

// NewEbitenInput creates a new ebiten input source
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Snapshot samples the current key and button state
func (EbitenInput) Snapshot() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Up:           ebiten.IsKeyPressed(ebiten.KeyW),
		Left:         ebiten.IsKeyPressed(ebiten.KeyA),
		Down:         ebiten.IsKeyPressed(ebiten.KeyS),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD),
		Mouse:        Vec2{X: float64(mx), Y: float64(my)},
		LeftButton:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		RightButton:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		MiddleButton: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		ToggleDebug:  inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
}

// EbitenEvents turns window close requests into a quit signal
type EbitenEvents struct{}

// NewEbitenEvents takes over window close handling from ebiten so the
// frame loop can leave through its own quit transition
func NewEbitenEvents() *EbitenEvents {
	ebiten.SetWindowClosingHandled(true)
	return &EbitenEvents{}
}

func (EbitenEvents) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed()
}
