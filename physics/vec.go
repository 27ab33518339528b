package physics

import "math"

// Vec2 is a simple immutable 2D vector. Every operation returns a new value.
type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2    { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2    { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Mul(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Div(s float64) Vec2 { return Vec2{a.X / s, a.Y / s} }
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64       { return math.Sqrt(a.X*a.X + a.Y*a.Y) }

// Unit returns a vector of length 1 in the same direction, or the zero
// vector when a has no length.
func (a Vec2) Unit() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{0, 0}
	}
	return a.Div(l)
}

// Perp returns the normal of a, rotated 90 degrees.
func (a Vec2) Perp() Vec2 { return Vec2{-a.Y, a.X} }

// Dot is the free-function form of Vec2.Dot.
func Dot(a, b Vec2) float64 { return a.Dot(b) }

// Angle returns the angle in radians between a and b.
// The result is NaN if either vector has zero length.
func Angle(a, b Vec2) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		return math.NaN()
	}
	cross := a.X*b.Y - a.Y*b.X
	return math.Atan2(math.Abs(cross), Dot(a, b))
}
