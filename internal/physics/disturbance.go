package physics

import "math/rand"

// RandomMomentumSample draws an independent uniform sample in [-1, 1]^3 from
// a nondeterministic source, used by SoftBox.ApplyRandomDisturbance to kick
// every dynamic particle's momentum.
func RandomMomentumSample() Vec3 {
	return NewVec3(
		rand.Float64()*2-1,
		rand.Float64()*2-1,
		rand.Float64()*2-1,
	)
}
