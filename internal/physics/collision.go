package physics

// collisionEpsilon is the wall-contact tolerance used both to detect an
// inbound particle near a wall and to decide whether reflection applies.
const collisionEpsilon = 1e-5

// Room is a closed axis-aligned box centred at the origin with the given
// half-extents.
type Room struct {
	HalfExtents Vec3
}

// interpenetrates reports whether the given position lies strictly
// outside the room on any axis.
func (r Room) interpenetrates(pos Vec3) bool {
	return pos.X < -r.HalfExtents.X || pos.X > r.HalfExtents.X ||
		pos.Y < -r.HalfExtents.Y || pos.Y > r.HalfExtents.Y ||
		pos.Z < -r.HalfExtents.Z || pos.Z > r.HalfExtents.Z
}

// resolveAxis reflects momentum component m if position p sits at or past
// the wall on half-extent h and is still moving into the wall, reporting
// whether a reflection occurred.
func resolveAxis(p, m, h float64) (float64, bool) {
	if p < -h+collisionEpsilon && m < 0 {
		return -m, true
	}
	if p > h-collisionEpsilon && m > 0 {
		return -m, true
	}
	return m, false
}

// applyImpulse runs the per-axis reflection and restitution scaling pass
// over a single dynamic particle's position and momentum, returning the
// (possibly) updated momentum.
func (r Room) applyImpulse(pos, mom Vec3, restitution float64) Vec3 {
	mx, hitX := resolveAxis(pos.X, mom.X, r.HalfExtents.X)
	my, hitY := resolveAxis(pos.Y, mom.Y, r.HalfExtents.Y)
	mz, hitZ := resolveAxis(pos.Z, mom.Z, r.HalfExtents.Z)

	result := Vec3{X: mx, Y: my, Z: mz}
	if hitX || hitY || hitZ {
		result = result.Scale(restitution)
	}
	return result
}
