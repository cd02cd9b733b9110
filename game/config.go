package game

import (
	"errors"
	"fmt"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// TPS is the fixed tick rate; all per-tick movement is tied to it
	TPS int

	// MinTPS is the rate below which a frame-rate drop is reported
	MinTPS float64

	// PlayerStart is the spawn position of the player
	PlayerStart Vec2

	// PlayerSpeed is the movement per tick along one axis, in pixels
	PlayerSpeed float64

	// PlayerScale scales the player sprite at load time
	PlayerScale float64

	// CrosshairScale scales the crosshair sprite at load time
	CrosshairScale float64

	// BulletScale scales the bullet sprite at load time
	BulletScale float64

	// BulletSpeed is the distance a bullet travels per tick, in pixels
	BulletSpeed float64

	// BulletLifetime is how long a bullet stays live, in milliseconds
	BulletLifetime int64

	// ShootCooldown is the number of ticks between two shots
	ShootCooldown int

	// GunOffset is the muzzle position relative to the player centre
	// when the player faces +X
	GunOffset Vec2

	// StrictTrigger requires the left button alone to be down to fire;
	// holding right or middle at the same time suppresses firing
	StrictTrigger bool

	// AssetDir, when set, loads PNG sprites from disk instead of the
	// embedded SVGs
	AssetDir string

	// ProfileDir, when set, enables CPU profile capture on frame-rate drops
	ProfileDir string

	// Debug starts the game with the debug overlay shown
	Debug bool

	// Verbose logs every bullet spawn and expiry
	Verbose bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    1280,
		ScreenHeight:   720,
		TPS:            60,
		MinTPS:         55,
		PlayerStart:    Vec2{X: 400, Y: 250},
		PlayerSpeed:    8,
		PlayerScale:    0.5,
		CrosshairScale: 0.5,
		BulletScale:    1.4,
		BulletSpeed:    20,
		BulletLifetime: 750,
		ShootCooldown:  20,
		GunOffset:      Vec2{X: 45, Y: 5},
		StrictTrigger:  true,
	}
}

// Validate reports the first setting that would make the game unplayable
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.TPS <= 0:
		return fmt.Errorf("invalid tick rate %d", c.TPS)
	case c.PlayerScale <= 0 || c.CrosshairScale <= 0 || c.BulletScale <= 0:
		return errors.New("sprite scales must be positive")
	case c.BulletLifetime < 0:
		return fmt.Errorf("invalid bullet lifetime %dms", c.BulletLifetime)
	case c.ShootCooldown < 0:
		return fmt.Errorf("invalid shoot cooldown %d", c.ShootCooldown)
	}
	return nil
}

// TickMillis returns the nominal length of one tick in milliseconds
func (c Config) TickMillis() float64 {
	return 1000 / float64(c.TPS)
}
