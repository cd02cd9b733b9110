package game

import "math"

// Vec2 is a 2D vector in screen space (y grows downward)
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Len returns the euclidean length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate rotates v by deg degrees, positive toward +Y
func (v Vec2) Rotate(deg float64) Vec2 {
	sinA, cosA := math.Sincos(deg * math.Pi / 180)
	return Vec2{
		X: v.X*cosA - v.Y*sinA,
		Y: v.X*sinA + v.Y*cosA,
	}
}

// Angle returns the direction of v in degrees, in (-180, 180]
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// FromAngle returns the unit vector pointing deg degrees from +X
func FromAngle(deg float64) Vec2 {
	sinA, cosA := math.Sincos(deg * math.Pi / 180)
	return Vec2{cosA, sinA}
}
