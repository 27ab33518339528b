package physics

// Overlaps reports whether two circles touch or intersect.
func Overlaps(a, b *Body) bool {
	return a.radius+b.radius >= b.Pos.Sub(a.Pos).Len()
}

// ResolvePenetration pushes a and b apart along the line between their
// centers, half the penetration depth each. Bodies with coincident centers
// have no separating direction and are left where they are.
func ResolvePenetration(a, b *Body) {
	dist := a.Pos.Sub(b.Pos)
	depth := a.radius + b.radius - dist.Len()
	shift := dist.Unit().Mul(depth / 2)
	a.Pos = a.Pos.Add(shift)
	b.Pos = b.Pos.Sub(shift)
}

// ResolveVelocity reflects the relative velocity of a and b along the
// collision normal, split evenly between the two bodies. Pairs already
// moving apart are left alone.
func ResolveVelocity(a, b *Body) {
	normal := a.Pos.Sub(b.Pos).Unit()
	sepVel := Dot(a.Vel.Sub(b.Vel), normal)
	if sepVel >= 0 {
		return
	}
	impulse := normal.Mul(-sepVel)
	a.Vel = a.Vel.Add(impulse)
	b.Vel = b.Vel.Sub(impulse)
}
