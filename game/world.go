package game

import "log"

// World owns the live-entity collection and the per-tick context the
// entities read from
type World struct {
	// Configuration
	Config Config

	// Shared sprite handles, nil when running headless
	Sprites *Sprites

	// All live entities in update order
	AllEntities []Entity

	// Entities spawned during the current pass
	pending []Entity

	clock Clock
	input InputState
	now   int64
	tick  uint64
}

// NewWorld creates a world holding only the player and the crosshair
func NewWorld(config Config, clock Clock, sprites *Sprites) *World {
	w := &World{
		Config:      config,
		Sprites:     sprites,
		AllEntities: make([]Entity, 0, 64),
		pending:     make([]Entity, 0, 8),
		clock:       clock,
		now:         clock.Now(),
	}
	w.RegisterEntity(NewPlayer(config))
	w.RegisterEntity(NewCrosshair())
	return w
}

// RegisterEntity appends an entity to the live collection
func (w *World) RegisterEntity(e Entity) {
	w.AllEntities = append(w.AllEntities, e)
}

// Spawn queues an entity created during Step; it joins the collection
// after the current pass and is first updated on the next tick
func (w *World) Spawn(e Entity) {
	if w.Config.Verbose {
		log.Printf("spawn entity %d", e.ID())
	}
	w.pending = append(w.pending, e)
}

// Step advances every live entity by one tick and drops the ones whose
// Update reports them dead
func (w *World) Step(in InputState) {
	w.input = in
	w.now = w.clock.Now()
	w.tick++

	live := w.AllEntities[:0]
	for _, e := range w.AllEntities {
		if e.Update(w) {
			live = append(live, e)
		} else if w.Config.Verbose {
			log.Printf("entity %d expired at %dms", e.ID(), w.now)
		}
	}
	clear(w.AllEntities[len(live):])

	w.AllEntities = append(live, w.pending...)
	clear(w.pending)
	w.pending = w.pending[:0]
}

// Input returns the snapshot of the current tick
func (w *World) Input() InputState {
	return w.input
}

// Now returns the clock time sampled at the start of the current tick
func (w *World) Now() int64 {
	return w.now
}

// Tick returns how many steps have run
func (w *World) Tick() uint64 {
	return w.tick
}

// Player returns the player entity
func (w *World) Player() *Player {
	for _, e := range w.AllEntities {
		if p, ok := e.(*Player); ok {
			return p
		}
	}
	return nil
}

// Crosshair returns the crosshair entity
func (w *World) Crosshair() *Crosshair {
	for _, e := range w.AllEntities {
		if c, ok := e.(*Crosshair); ok {
			return c
		}
	}
	return nil
}

// Bullets returns the live bullets, oldest first
func (w *World) Bullets() []*Bullet {
	bullets := make([]*Bullet, 0, len(w.AllEntities))
	for _, e := range w.AllEntities {
		if b, ok := e.(*Bullet); ok {
			bullets = append(bullets, b)
		}
	}
	return bullets
}
