package physics

// maxSubstep is the largest Δt a single RK4 substep may advance, regardless
// of how much wall-clock time a visual frame actually took.
const maxSubstep = 0.01

// minRemainingTime is the threshold below which ParticleSystem.Update stops
// looping substeps; what's left is considered fully consumed.
const minRemainingTime = 1e-5

// bisectionFloor is the lower bound of the contact-time search. It is
// nonzero so a particle that starts a substep already touching a wall
// doesn't re-trigger a zero-length bisection on every tick.
const bisectionFloor = 0.001

// bisectionTolerance bounds how precisely the contact time is located; it
// also bounds how far a particle may have drifted past a wall once a
// substep finishes.
const bisectionTolerance = 1e-2

// ParticleSystem owns a set of dynamic particles, a set of static anchor
// particles, the spring graph connecting them, and the room they're
// confined to. It advances dynamic state via RK4 substeps truncated at the
// first wall interpenetration.
type ParticleSystem struct {
	particles []Particle
	statics   []StaticParticle
	springs   []SpringConstraint

	room        Room
	drag        float64 // movement-attenuation factor
	restitution float64 // elastic-collision factor

	stepper *RK4Stepper
}

// NewParticleSystem returns an empty particle system confined to the given
// room, with zero drag and full (1.0) restitution until overridden.
func NewParticleSystem(room Room) *ParticleSystem {
	return &ParticleSystem{
		room:        room,
		restitution: 1.0,
		stepper:     NewRK4Stepper(),
	}
}

// Clear empties the dynamic particles, static particles, and springs.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
	ps.statics = ps.statics[:0]
	ps.springs = ps.springs[:0]
}

// AddParticle appends a dynamic particle and returns its stable index.
func (ps *ParticleSystem) AddParticle(p Particle) int {
	ps.particles = append(ps.particles, p)
	return len(ps.particles) - 1
}

// AddConstraint appends a spring constraint to the system.
func (ps *ParticleSystem) AddConstraint(s SpringConstraint) {
	ps.springs = append(ps.springs, s)
}

// SetStaticParticles replaces the entire static-particle vector.
func (ps *ParticleSystem) SetStaticParticles(statics []StaticParticle) {
	ps.statics = append(ps.statics[:0], statics...)
}

// StaticParticles returns the current static-particle vector.
func (ps *ParticleSystem) StaticParticles() []StaticParticle {
	return ps.statics
}

// ParticleStates returns the current dynamic particles, in stable index
// order.
func (ps *ParticleSystem) ParticleStates() []Particle {
	return ps.particles
}

// Springs returns the current spring constraints, in stable index order.
func (ps *ParticleSystem) Springs() []SpringConstraint {
	return ps.springs
}

// UpdateSoftBoxParticlesMass sets invMass = 1/mass on every dynamic
// particle.
func (ps *ParticleSystem) UpdateSoftBoxParticlesMass(mass float64) {
	invMass := 1.0 / mass
	for i := range ps.particles {
		ps.particles[i].InvMass = invMass
	}
}

// UpdateSoftBoxConstraints sets (springConstant, attenuation) on every
// spring whose endpoints are both dynamic.
func (ps *ParticleSystem) UpdateSoftBoxConstraints(k, gamma float64) {
	for i := range ps.springs {
		if ps.springs[i].bothDynamic() {
			ps.springs[i].SpringConstant = k
			ps.springs[i].AttenuationFactor = gamma
		}
	}
}

// UpdateFrameConstraints sets (springConstant, attenuation) on every spring
// with at least one static endpoint.
func (ps *ParticleSystem) UpdateFrameConstraints(k, gamma float64) {
	for i := range ps.springs {
		if ps.springs[i].involvesStatic() {
			ps.springs[i].SpringConstant = k
			ps.springs[i].AttenuationFactor = gamma
		}
	}
}

// UpdateEnvironmentConstant sets the global movement-attenuation (drag)
// and elastic-collision (restitution) factors.
func (ps *ParticleSystem) UpdateEnvironmentConstant(drag, restitution float64) {
	ps.drag = drag
	ps.restitution = restitution
}

// ApplyRandomDisturbance replaces every dynamic particle's momentum with
// an independent uniform sample from RandomMomentumSample.
func (ps *ParticleSystem) ApplyRandomDisturbance() {
	for i := range ps.particles {
		ps.particles[i].Momentum = RandomMomentumSample()
	}
}

// storeState flattens dynamic particle position and momentum into a state
// vector, six scalars per particle: (pos.xyz, mom.xyz).
func (ps *ParticleSystem) storeState() []float64 {
	state := make([]float64, 6*len(ps.particles))
	for i, p := range ps.particles {
		base := 6 * i
		state[base+0] = p.Position.X
		state[base+1] = p.Position.Y
		state[base+2] = p.Position.Z
		state[base+3] = p.Momentum.X
		state[base+4] = p.Momentum.Y
		state[base+5] = p.Momentum.Z
	}
	return state
}

// applyState writes a state vector back into the particles' position and
// momentum fields.
func (ps *ParticleSystem) applyState(state []float64) {
	for i := range ps.particles {
		base := 6 * i
		ps.particles[i].Position = Vec3{X: state[base+0], Y: state[base+1], Z: state[base+2]}
		ps.particles[i].Momentum = Vec3{X: state[base+3], Y: state[base+4], Z: state[base+5]}
	}
}

// endpointStateFor resolves a signed endpoint reference into the position,
// momentum, and inverse mass needed to evaluate a spring's force. Static
// endpoints report invMass 0 since they're never displaced by the force.
func (ps *ParticleSystem) endpointStateFor(endpoint int) endpointState {
	if isDynamicEndpoint(endpoint) {
		p := ps.particles[endpoint]
		return endpointState{Position: p.Position, Momentum: p.Momentum, InvMass: p.InvMass}
	}
	s := ps.statics[staticEndpointIndex(endpoint)]
	return endpointState{Position: s.Position, Momentum: s.Momentum, InvMass: 0}
}

// derive implements the Derivative function the RK4 stepper calls: it
// commits state into the particles, assembles spring and drag forces, and
// emits (velocity, netForce) per particle.
func (ps *ParticleSystem) derive(state []float64, t float64) []float64 {
	ps.applyState(state)

	for i := range ps.particles {
		ps.particles[i].NetForce = Vec3{}
	}

	for _, s := range ps.springs {
		a := ps.endpointStateFor(s.EndpointA)
		b := ps.endpointStateFor(s.EndpointB)
		f := s.force(a, b)

		if isDynamicEndpoint(s.EndpointA) {
			ps.particles[s.EndpointA].NetForce = ps.particles[s.EndpointA].NetForce.Add(f)
		}
		if isDynamicEndpoint(s.EndpointB) {
			ps.particles[s.EndpointB].NetForce = ps.particles[s.EndpointB].NetForce.Sub(f)
		}
	}

	deriv := make([]float64, 6*len(ps.particles))
	for i := range ps.particles {
		p := &ps.particles[i]
		p.Velocity = p.Momentum.Scale(p.InvMass)
		p.NetForce = p.NetForce.Add(p.Velocity.Scale(-ps.drag))

		base := 6 * i
		deriv[base+0] = p.Velocity.X
		deriv[base+1] = p.Velocity.Y
		deriv[base+2] = p.Velocity.Z
		deriv[base+3] = p.NetForce.X
		deriv[base+4] = p.NetForce.Y
		deriv[base+5] = p.NetForce.Z
	}
	return deriv
}

// anyInterpenetration reports whether any dynamic particle currently lies
// outside the room.
func (ps *ParticleSystem) anyInterpenetration() bool {
	for _, p := range ps.particles {
		if ps.room.interpenetrates(p.Position) {
			return true
		}
	}
	return false
}

// runImpulsePass applies the wall-contact impulse response to every
// dynamic particle's momentum in place.
func (ps *ParticleSystem) runImpulsePass() {
	for i := range ps.particles {
		ps.particles[i].Momentum = ps.room.applyImpulse(ps.particles[i].Position, ps.particles[i].Momentum, ps.restitution)
	}
}

// singleStep advances the system by up to h seconds, truncating at the
// first wall interpenetration via bisection, and returns the time actually
// advanced.
func (ps *ParticleSystem) singleStep(h float64) float64 {
	if len(ps.particles) == 0 {
		return h
	}

	s0 := ps.storeState()

	s1 := ps.stepper.Step(ps.derive, s0, 0, h)
	ps.applyState(s1)
	if !ps.anyInterpenetration() {
		return h
	}

	hl, hu := bisectionFloor, h
	for hu-hl > bisectionTolerance {
		m := (hl + hu) / 2
		candidate := ps.stepper.Step(ps.derive, s0, 0, m)
		ps.applyState(candidate)
		if ps.anyInterpenetration() {
			hu = m
		} else {
			hl = m
		}
	}

	tStar := hl
	final := ps.stepper.Step(ps.derive, s0, 0, tStar)
	ps.applyState(final)
	ps.runImpulsePass()
	return tStar
}

// Update advances the system by Δt seconds, clamped to at most one
// maxSubstep per call and split into as many RK4 substeps as collisions
// require.
func (ps *ParticleSystem) Update(dt float64) {
	if dt > maxSubstep {
		dt = maxSubstep
	}
	remaining := dt
	for remaining > minRemainingTime {
		advanced := ps.singleStep(remaining)
		remaining -= advanced
	}
}
