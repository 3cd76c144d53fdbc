package physics

import "math"

// endpointDegenerateLength is the distance below which a spring's direction
// is considered numerically unreliable; the fallback direction (1,0,0) is
// substituted to avoid dividing by near-zero.
const endpointDegenerateLength = 1e-4

// SpringConstraint is an undirected damped-spring link between two endpoints.
// EndpointA and EndpointB use the sign convention: a non-negative value i
// refers to dynamic particle i; a negative value -k-1 refers to static
// particle k.
type SpringConstraint struct {
	RestLength        float64
	SpringConstant    float64
	AttenuationFactor float64
	EndpointA         int
	EndpointB         int
}

// endpointState is the minimal view of a particle (dynamic or static) a
// spring needs to compute its force.
type endpointState struct {
	Position Vec3
	Momentum Vec3
	InvMass  float64
}

// isDynamicEndpoint reports whether an endpoint index refers to a dynamic
// particle rather than a static one.
func isDynamicEndpoint(endpoint int) bool {
	return endpoint >= 0
}

// staticEndpointIndex converts a negative endpoint reference -k-1 back to
// the static-particle index k.
func staticEndpointIndex(endpoint int) int {
	return -endpoint - 1
}

// force returns the vector force this spring exerts on endpoint A; the
// force on B is its negation (equal and opposite).
func (s *SpringConstraint) force(a, b endpointState) Vec3 {
	r := b.Position.Sub(a.Position)
	length := r.Length()

	var dir Vec3
	if length < endpointDegenerateLength {
		dir = Vec3{X: 1}
	} else {
		dir = r.Scale(1.0 / length)
	}

	vA := a.InvMass * dir.Dot(a.Momentum)
	vB := b.InvMass * dir.Dot(b.Momentum)

	magnitude := -s.AttenuationFactor*(vB-vA) - s.SpringConstant*(length-s.RestLength)

	return dir.Scale(-magnitude)
}

// bothDynamic reports whether both endpoints refer to dynamic particles.
func (s *SpringConstraint) bothDynamic() bool {
	return isDynamicEndpoint(s.EndpointA) && isDynamicEndpoint(s.EndpointB)
}

// involvesStatic reports whether at least one endpoint refers to a static
// particle.
func (s *SpringConstraint) involvesStatic() bool {
	return !isDynamicEndpoint(s.EndpointA) || !isDynamicEndpoint(s.EndpointB)
}

// distanceBetween returns the Euclidean distance between two points.
func distanceBetween(a, b Vec3) float64 {
	d := b.Sub(a)
	return math.Sqrt(d.Dot(d))
}
