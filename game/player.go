package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Player is the controllable character. It is the only entity that
// produces bullets.
type Player struct {
	id EntityID

	Pos Vec2

	// Theta is the heading toward the cursor in degrees
	Theta float64

	Speed float64

	// ShootCooldown counts ticks until the next shot is allowed
	ShootCooldown int

	// Shoot is true while the trigger is held
	Shoot bool

	cooldown      int
	gunOffset     Vec2
	bulletSpeed   float64
	bulletLife    int64
	strictTrigger bool
}

// NewPlayer creates a player at the configured start position
func NewPlayer(cfg Config) *Player {
	return &Player{
		id:            newEntityID(),
		Pos:           cfg.PlayerStart,
		Speed:         cfg.PlayerSpeed,
		cooldown:      cfg.ShootCooldown,
		gunOffset:     cfg.GunOffset,
		bulletSpeed:   cfg.BulletSpeed,
		bulletLife:    cfg.BulletLifetime,
		strictTrigger: cfg.StrictTrigger,
	}
}

func (p *Player) ID() EntityID {
	return p.id
}

// SampleInput maps WASD to a velocity and reads the trigger. When both
// axes move the velocity is scaled down so diagonal speed matches axis
// speed. S wins over W and D wins over A.
func (p *Player) SampleInput(in InputState) (Vec2, bool) {
	var vel Vec2
	if in.Up {
		vel.Y = -p.Speed
	}
	if in.Left {
		vel.X = -p.Speed
	}
	if in.Down {
		vel.Y = p.Speed
	}
	if in.Right {
		vel.X = p.Speed
	}

	if vel.X != 0 && vel.Y != 0 {
		vel.X /= math.Sqrt2
		vel.Y /= math.Sqrt2
	}

	p.Shoot = in.Trigger(p.strictTrigger)
	return vel, p.Shoot
}

func (p *Player) Move(vel Vec2) {
	p.Pos = p.Pos.Add(vel)
}

// Aim points the player at mouse and returns the new heading
func (p *Player) Aim(mouse Vec2) float64 {
	p.Theta = mouse.Sub(p.Pos).Angle()
	return p.Theta
}

// SpriteAngle is the counter-clockwise sprite rotation; screen Y points
// down so it is the negated heading
func (p *Player) SpriteAngle() float64 {
	return -p.Theta
}

// Muzzle returns the world position of the gun tip for the current heading
func (p *Player) Muzzle() Vec2 {
	return p.Pos.Add(p.gunOffset.Rotate(p.Theta))
}

func (p *Player) TickCooldown() {
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}
}

// TryFire spawns a bullet from the muzzle when the trigger is held and
// the weapon is ready
func (p *Player) TryFire(now int64) (*Bullet, bool) {
	if p.ShootCooldown != 0 || !p.Shoot {
		return nil, false
	}
	p.ShootCooldown = p.cooldown
	return NewBullet(p.Muzzle(), p.Theta, p.bulletSpeed, p.bulletLife, now), true
}

// Update runs one tick. Aim has to come before TryFire because the muzzle
// depends on the heading, and the cooldown is only decremented after the
// fire check.
func (p *Player) Update(w *World) bool {
	in := w.Input()
	vel, _ := p.SampleInput(in)
	p.Move(vel)
	p.Aim(in.Mouse)
	if b, ok := p.TryFire(w.Now()); ok {
		w.Spawn(b)
	}
	p.TickCooldown()
	return true
}

func (p *Player) Draw(dst *ebiten.Image, sprites *Sprites) {
	drawSprite(dst, sprites.Player, p.Pos, p.SpriteAngle())
}
