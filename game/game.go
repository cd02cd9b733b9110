package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// State is the frame loop state
type State int

const (
	StateRunning State = iota
	StateQuitting
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuitting:
		return "quitting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Game represents the main game state
type Game struct {
	world    *World
	renderer *Renderer
	config   Config

	input  InputSource
	events EventSource

	state State
	debug *DebugState

	// Tick rate tracking and optional profiling on drops
	monitor  *FrameMonitor
	profiler *Profiler
}

// NewGame creates a new game instance. sprites may be nil when nothing
// will be drawn.
func NewGame(config Config, sprites *Sprites, input InputSource, events EventSource, clock Clock) *Game {
	debug := &DebugState{ShowOverlay: config.Debug}

	g := &Game{
		world:    NewWorld(config, clock, sprites),
		renderer: NewRenderer(debug),
		config:   config,
		input:    input,
		events:   events,
		state:    StateRunning,
		debug:    debug,
		monitor:  NewFrameMonitor(config.MinTPS, time.Now()),
	}

	if config.ProfileDir != "" {
		profiler, err := NewProfiler(config.ProfileDir)
		if err != nil {
			logWarning("Profiling disabled: %v", err)
		} else {
			g.profiler = profiler
		}
	}

	return g
}

// World returns the game world
func (g *Game) World() *World {
	return g.world
}

// Debug returns the debug flags toggled with F1
func (g *Game) Debug() *DebugState {
	return g.debug
}

// State returns the current frame loop state
func (g *Game) State() State {
	return g.state
}

// Update runs one tick. It returns ebiten.Termination once a quit has
// been requested.
func (g *Game) Update() error {
	if g.state == StateQuitting {
		return ebiten.Termination
	}
	if g.events.QuitRequested() {
		g.state = StateQuitting
		log.Printf("quit requested after %d ticks", g.world.Tick())
		return ebiten.Termination
	}

	in := g.input.Snapshot()
	if in.ToggleDebug {
		g.debug.Toggle()
	}

	g.world.Step(in)

	if g.monitor.Frame(time.Now()) {
		g.reportFrameDrop()
	}

	return nil
}

func (g *Game) reportFrameDrop() {
	bullets := len(g.world.Bullets())
	logWarning("Tick rate drop detected (%.0f TPS, %d bullets)", g.monitor.TPS(), bullets)

	if g.profiler == nil {
		return
	}
	reason := fmt.Sprintf("tps%.0f-bullets%d", g.monitor.TPS(), bullets)
	if err := g.profiler.CaptureProfile(reason); err != nil {
		log.Printf("Failed to capture profile: %v", err)
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world, ebiten.ActualTPS())
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
