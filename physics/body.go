package physics

import (
	"fmt"
	"image/color"
	"math"
)

const (
	restSpeed    = 0.1  // below this a body is held by static friction
	snapVelocity = 0.01 // velocity components smaller than this settle to zero
)

// Controls is the directional input applied to a body for one tick.
type Controls struct {
	Left, Right, Up, Down bool
}

// Body is a circle with mass derived from its radius. Radius, mass and the
// friction limits are fixed at construction.
type Body struct {
	Pos   Vec2
	Vel   Vec2
	Force Vec2
	Color color.RGBA

	radius       float64
	mass         float64
	accel        float64
	kineticLimit float64
	staticLimit  float64
}

// NewBody builds a body at pos. Mass is density·π·r², the friction limits
// are coefficient·mass·gravity.
func NewBody(c Constants, pos Vec2, radius float64, col color.RGBA) (*Body, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("radius %v: %w", radius, ErrInvalidRadius)
	}
	m := c.Density * math.Pi * (radius * radius)
	return &Body{
		Pos:          pos,
		Color:        col,
		radius:       radius,
		mass:         m,
		accel:        c.Accel,
		kineticLimit: c.KineticCoeff * m * c.Gravity,
		staticLimit:  c.StaticCoeff * m * c.Gravity,
	}, nil
}

func (b *Body) Radius() float64       { return b.radius }
func (b *Body) Mass() float64         { return b.mass }
func (b *Body) KineticLimit() float64 { return b.kineticLimit }
func (b *Body) StaticLimit() float64  { return b.staticLimit }
func (b *Body) Accel() float64        { return b.accel }

// Acceleration is the net force of the last tick divided by mass.
func (b *Body) Acceleration() Vec2 { return b.Force.Div(b.mass) }

// Integrate advances the body by one tick: directional force, friction,
// velocity, position, then containment within [0, bounds].
func (b *Body) Integrate(in Controls, bounds Vec2) {
	push := b.accel * b.mass
	fx, fy := 0.0, 0.0
	if in.Left {
		fx = -push
	}
	if in.Right {
		fx = push
	}
	if in.Up {
		fy = -push
	}
	if in.Down {
		fy = push
	}
	b.Force = Vec2{fx, fy}

	netForce := b.Force.Len()
	speed := b.Vel.Len()

	if speed < restSpeed && netForce < b.staticLimit {
		b.Force = Vec2{}
		b.Vel = Vec2{}
	} else if speed > restSpeed {
		friction := b.Vel.Div(speed).Mul(-b.kineticLimit)
		// friction may stop the body, never reverse it
		if friction.Len() > speed*b.mass {
			friction = b.Vel.Mul(-b.mass)
		}
		b.Force = b.Force.Add(friction)
	}
	// TODO: speeds up to 0.1 under a force at or above the static limit get no
	// friction at all; decide whether kinetic friction should cover that band.

	v := b.Vel.Add(b.Force.Div(b.mass))
	b.Vel = Vec2{settle(v.X), settle(v.Y)}

	b.Pos = b.Pos.Add(b.Vel)
	b.Pos = Vec2{
		contain(b.Pos.X, b.radius, bounds.X),
		contain(b.Pos.Y, b.radius, bounds.Y),
	}
}

func settle(c float64) float64 {
	if math.Abs(c) < snapVelocity {
		return 0
	}
	return c
}

func contain(p, r, hi float64) float64 {
	if p-r < 0 {
		p = r
	}
	if p+r > hi {
		p = hi - r
	}
	return p
}
