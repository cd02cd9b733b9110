package game

import "github.com/hajimehoshi/ebiten/v2"

// Bullet is a fired projectile. Heading and velocity are fixed at spawn;
// only the position changes afterwards.
type Bullet struct {
	id EntityID

	Pos   Vec2
	Theta float64
	Vel   Vec2

	// SpawnedAt is the clock time at spawn in milliseconds
	SpawnedAt int64

	// Lifetime in milliseconds
	Lifetime int64
}

// NewBullet spawns a bullet at pos heading theta degrees
func NewBullet(pos Vec2, theta, speed float64, lifetime, now int64) *Bullet {
	return &Bullet{
		id:        newEntityID(),
		Pos:       pos,
		Theta:     theta,
		Vel:       FromAngle(theta).Scale(speed),
		SpawnedAt: now,
		Lifetime:  lifetime,
	}
}

func (b *Bullet) ID() EntityID {
	return b.id
}

// Tick moves the bullet one step and reports whether it is still live
func (b *Bullet) Tick(now int64) bool {
	b.Pos = b.Pos.Add(b.Vel)
	return !b.Expired(now)
}

// Expired reports whether the bullet outlived its lifetime at now
func (b *Bullet) Expired(now int64) bool {
	return now-b.SpawnedAt > b.Lifetime
}

func (b *Bullet) Update(w *World) bool {
	return b.Tick(w.Now())
}

func (b *Bullet) Draw(dst *ebiten.Image, sprites *Sprites) {
	drawSprite(dst, sprites.Bullet, b.Pos, -b.Theta)
}
