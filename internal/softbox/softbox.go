package softbox

import "softbox/internal/physics"

// AABB is an axis-aligned bounding box described by its min and max
// corners, used to seed the lattice's resting positions.
type AABB struct {
	Min physics.Vec3
	Max physics.Vec3
}

// Coord identifies a lattice point by its three integer grid indices.
type Coord struct {
	X, Y, Z int
}

// SoftBox is a lattice of particles connected by internal springs and
// anchored to a control frame by corner springs. It owns a particle
// system and the frame it tracks.
type SoftBox struct {
	Nx, Ny, Nz int

	ParticleMass           float64
	InternalSpringConstant float64
	InternalAttenuation    float64
	MovementAttenuation    float64
	ElasticCollisionFactor float64

	Frame  *ControlFrame
	System *physics.ParticleSystem

	cornerParticleIndex [8]int
}

// NewSoftBox returns an empty soft box with the given lattice dimensions,
// confined to a room with the given half-extents.
func NewSoftBox(nx, ny, nz int, roomHalfExtents physics.Vec3) *SoftBox {
	return &SoftBox{
		Nx: nx, Ny: ny, Nz: nz,
		ElasticCollisionFactor: 1.0,
		Frame:                  NewControlFrame(2.0, 1.0),
		System:                 physics.NewParticleSystem(physics.Room{HalfExtents: roomHalfExtents}),
	}
}

// GetParticleMatrixSize returns the lattice dimensions.
func (b *SoftBox) GetParticleMatrixSize() (int, int, int) {
	return b.Nx, b.Ny, b.Nz
}

// GetParticleIndex maps a lattice coordinate to its flat index, row-major
// with x innermost. The mapping is a bijection onto [0, Nx*Ny*Nz). It
// panics on a coordinate outside the lattice.
func (b *SoftBox) GetParticleIndex(c Coord) int {
	if !b.withinLattice(c) {
		panic("softbox: lattice coordinate out of range")
	}
	return b.Nx*b.Ny*c.Z + b.Nx*c.Y + c.X
}

// GetSoftBoxParticle returns the dynamic particle at the given lattice
// coordinate.
func (b *SoftBox) GetSoftBoxParticle(c Coord) physics.Particle {
	return b.System.ParticleStates()[b.GetParticleIndex(c)]
}

// withinLattice reports whether a coordinate lies inside [0,Nx)x[0,Ny)x[0,Nz).
func (b *SoftBox) withinLattice(c Coord) bool {
	return c.X >= 0 && c.X < b.Nx && c.Y >= 0 && c.Y < b.Ny && c.Z >= 0 && c.Z < b.Nz
}

// DistributeUniformly clears the particle system and reseeds it with a
// fresh lattice of particles spread evenly across box, the internal spring
// graph connecting them, and the eight frame-anchor springs.
func (b *SoftBox) DistributeUniformly(box AABB) {
	b.System.Clear()

	for z := 0; z < b.Nz; z++ {
		for y := 0; y < b.Ny; y++ {
			for x := 0; x < b.Nx; x++ {
				tx := lerpFactor(x, b.Nx)
				ty := lerpFactor(y, b.Ny)
				tz := lerpFactor(z, b.Nz)
				pos := physics.Vec3{
					X: box.Min.X + (box.Max.X-box.Min.X)*tx,
					Y: box.Min.Y + (box.Max.Y-box.Min.Y)*ty,
					Z: box.Min.Z + (box.Max.Z-box.Min.Z)*tz,
				}
				mass := b.ParticleMass
				if mass == 0 {
					mass = 1
				}
				b.System.AddParticle(physics.NewParticle(pos, mass))
			}
		}
	}

	b.addInternalSprings()
	b.addFrameAnchors()
}

// lerpFactor returns i/(n-1) for n>1, else 0; used to spread lattice
// points evenly across an AABB including its boundary.
func lerpFactor(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// addInternalSprings builds the half-neighbourhood spring topology: for
// every lattice point and every offset (i,j,k) with i,j in {-1,0,1} and k
// in {0,1}, skipping (0,0,0) and out-of-lattice targets, one spring is
// added whose rest length is the particles' current separation.
func (b *SoftBox) addInternalSprings() {
	particles := b.System.ParticleStates()

	for z := 0; z < b.Nz; z++ {
		for y := 0; y < b.Ny; y++ {
			for x := 0; x < b.Nx; x++ {
				source := Coord{X: x, Y: y, Z: z}
				sourceIdx := b.GetParticleIndex(source)

				for di := -1; di <= 1; di++ {
					for dj := -1; dj <= 1; dj++ {
						for dk := 0; dk <= 1; dk++ {
							if di == 0 && dj == 0 && dk == 0 {
								continue
							}
							target := Coord{X: x + di, Y: y + dj, Z: z + dk}
							if !b.withinLattice(target) {
								continue
							}
							targetIdx := b.GetParticleIndex(target)
							rest := distance(particles[sourceIdx].Position, particles[targetIdx].Position)
							b.System.AddConstraint(physics.SpringConstraint{
								RestLength:        rest,
								SpringConstant:    b.InternalSpringConstant,
								AttenuationFactor: b.InternalAttenuation,
								EndpointA:         sourceIdx,
								EndpointB:         targetIdx,
							})
						}
					}
				}
			}
		}
	}
}

// addFrameAnchors connects each of the eight lattice corners to the
// matching static anchor particle with a zero-rest-length centring spring.
func (b *SoftBox) addFrameAnchors() {
	for zs := 0; zs < 2; zs++ {
		for ys := 0; ys < 2; ys++ {
			for xs := 0; xs < 2; xs++ {
				corner := Coord{X: xs * (b.Nx - 1), Y: ys * (b.Ny - 1), Z: zs * (b.Nz - 1)}
				particleIdx := b.GetParticleIndex(corner)
				k := CornerIndex(xs, ys, zs)
				b.cornerParticleIndex[k] = particleIdx

				b.System.AddConstraint(physics.SpringConstraint{
					RestLength:        0,
					SpringConstant:    2.0,
					AttenuationFactor: 1.0,
					EndpointA:         particleIdx,
					EndpointB:         -(k + 1),
				})
			}
		}
	}
}

// distance returns the Euclidean distance between two points.
func distance(a, b physics.Vec3) float64 {
	d := b.Sub(a)
	return d.Length()
}

// refreshAnchors rebuilds the eight static particles from the frame's
// current pose and pushes them into the particle system.
func (b *SoftBox) refreshAnchors() {
	corners := b.Frame.WorldCorners()
	statics := make([]physics.StaticParticle, 8)
	for k, pos := range corners {
		statics[k] = physics.StaticParticle{Position: pos}
	}
	b.System.SetStaticParticles(statics)
}

// pushTunables writes the soft box's current UI-driven tunables into the
// particle system ahead of the integration step.
func (b *SoftBox) pushTunables() {
	mass := b.ParticleMass
	if mass == 0 {
		mass = 1
	}
	b.System.UpdateSoftBoxParticlesMass(mass)
	b.System.UpdateSoftBoxConstraints(b.InternalSpringConstant, b.InternalAttenuation)
	b.System.UpdateFrameConstraints(b.Frame.SpringConstant, b.Frame.Attenuation)
	b.System.UpdateEnvironmentConstant(b.MovementAttenuation, b.ElasticCollisionFactor)
}

// Update refreshes the frame anchors, pushes tunables, and advances the
// particle system by dt seconds.
func (b *SoftBox) Update(dt float64) {
	b.refreshAnchors()
	b.pushTunables()
	b.System.Update(dt)
}

// SpringEndpoint pairs a spring constraint with its resolved world-space
// endpoint positions, for rendering.
type SpringEndpoint struct {
	Spring physics.SpringConstraint
	A, B   physics.Vec3
}

// SpringEndpointPositions resolves every spring's endpoints into current
// world-space positions, for the renderer to draw as lines.
func (b *SoftBox) SpringEndpointPositions() []SpringEndpoint {
	particles := b.System.ParticleStates()
	statics := b.System.StaticParticles()
	springs := b.System.Springs()

	endpointPosition := func(endpoint int) physics.Vec3 {
		if endpoint >= 0 {
			return particles[endpoint].Position
		}
		return statics[-endpoint-1].Position
	}

	result := make([]SpringEndpoint, len(springs))
	for i, s := range springs {
		result[i] = SpringEndpoint{
			Spring: s,
			A:      endpointPosition(s.EndpointA),
			B:      endpointPosition(s.EndpointB),
		}
	}
	return result
}

// ApplyRandomDisturbance kicks every dynamic particle's momentum with an
// independent random sample.
func (b *SoftBox) ApplyRandomDisturbance() {
	b.System.ApplyRandomDisturbance()
}

// UpdateUserInterface is the soft box's hook for a host GUI adapter. Its
// body is empty: it reads, returns and changes nothing. The host's tunable
// panel edits config.Config, which main copies into the soft box's fields.
func (b *SoftBox) UpdateUserInterface() {}

// Centroid returns the mean position of the dynamic particles, used by
// renderer and diagnostic code.
func (b *SoftBox) Centroid() physics.Vec3 {
	particles := b.System.ParticleStates()
	if len(particles) == 0 {
		return physics.Vec3{}
	}
	sum := physics.Vec3{}
	for _, p := range particles {
		sum = sum.Add(p.Position)
	}
	return sum.Scale(1.0 / float64(len(particles)))
}
