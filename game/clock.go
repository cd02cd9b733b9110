package game

import "time"

// Clock provides the current time in milliseconds
type Clock interface {
	Now() int64
}

// WallClock counts milliseconds since it was created
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to
type ManualClock struct {
	ms int64
}

func (c *ManualClock) Now() int64 {
	return c.ms
}

// Advance moves the clock forward by ms milliseconds
func (c *ManualClock) Advance(ms int64) {
	c.ms += ms
}
