package physics

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConstants = errors.New("invalid physical constants")
	ErrInvalidRadius    = errors.New("radius must be positive")
)

// Constants holds the physical parameters shared by every body in a world.
// Mass and friction limits are derived from them once, at body construction.
type Constants struct {
	Density      float64 `json:"density"`
	KineticCoeff float64 `json:"kinetic_coeff"`
	StaticCoeff  float64 `json:"static_coeff"` // must exceed KineticCoeff
	Gravity      float64 `json:"gravity"`
	Accel        float64 `json:"accel"` // magnitude of the directional push, per unit mass
}

func DefaultConstants() Constants {
	return Constants{
		Density:      1,
		KineticCoeff: 0.1,
		StaticCoeff:  0.2,
		Gravity:      10,
		Accel:        2,
	}
}

// Validate reports the first constraint c violates.
func (c Constants) Validate() error {
	switch {
	case c.Density <= 0:
		return fmt.Errorf("density %v: %w", c.Density, ErrInvalidConstants)
	case c.Gravity <= 0:
		return fmt.Errorf("gravity %v: %w", c.Gravity, ErrInvalidConstants)
	case c.Accel <= 0:
		return fmt.Errorf("accel %v: %w", c.Accel, ErrInvalidConstants)
	case c.KineticCoeff < 0:
		return fmt.Errorf("kinetic coefficient %v: %w", c.KineticCoeff, ErrInvalidConstants)
	case c.StaticCoeff <= c.KineticCoeff:
		return fmt.Errorf("static coefficient %v not above kinetic %v: %w", c.StaticCoeff, c.KineticCoeff, ErrInvalidConstants)
	}
	return nil
}
