// Package physics moves circular bodies on a bounded plane: directional
// push, static and kinetic friction, wall containment and pairwise overlap
// resolution, one tick at a time.
package physics

import "image/color"

// Contact records an overlapping pair found during a step, by body index, I < J.
type Contact struct {
	I, J int
}

// World owns an insertion-ordered set of bodies and the index of the one
// currently driven by input.
type World struct {
	Constants Constants
	Bounds    Vec2
	// Elastic enables velocity exchange on contact in addition to
	// positional correction.
	Elastic bool

	bodies []*Body
	active int
}

func NewWorld(c Constants, bounds Vec2) *World {
	return &World{Constants: c, Bounds: bounds}
}

// Spawn creates a body with the world's constants and appends it.
func (w *World) Spawn(pos Vec2, radius float64, col color.RGBA) (*Body, error) {
	b, err := NewBody(w.Constants, pos, radius, col)
	if err != nil {
		return nil, err
	}
	w.Add(b)
	return b, nil
}

func (w *World) Add(b *Body) { w.bodies = append(w.bodies, b) }

func (w *World) Bodies() []*Body { return w.bodies }
func (w *World) Len() int        { return len(w.bodies) }
func (w *World) Active() int     { return w.active }

func (w *World) Body(i int) (*Body, bool) {
	if i < 0 || i >= len(w.bodies) {
		return nil, false
	}
	return w.bodies[i], true
}

// ActiveBody returns the selected body, or nil for an empty world.
func (w *World) ActiveBody() *Body {
	b, _ := w.Body(w.active)
	return b
}

// Select makes body i the active one. Indices outside the world are
// ignored and leave the selection unchanged.
func (w *World) Select(i int) bool {
	if _, ok := w.Body(i); !ok {
		return false
	}
	w.active = i
	return true
}

func (w *World) SetBounds(b Vec2) { w.Bounds = b }

// Step runs one tick: the active body integrates in, then every pair
// (i, j), i < j, is checked in ascending order and separated if it
// overlaps. Corrections apply immediately, so later pairs see them.
func (w *World) Step(in Controls) []Contact {
	active := w.ActiveBody()
	if active == nil {
		return nil
	}
	active.Integrate(in, w.Bounds)

	var contacts []Contact
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			a, b := w.bodies[i], w.bodies[j]
			if !Overlaps(a, b) {
				continue
			}
			ResolvePenetration(a, b)
			if w.Elastic {
				ResolveVelocity(a, b)
			}
			contacts = append(contacts, Contact{i, j})
		}
	}
	return contacts
}
