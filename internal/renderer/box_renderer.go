package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"softbox/internal/physics"
	"softbox/internal/softbox"
)

// Color represents an RGBA color
type Color struct {
	R, G, B, A float32
}

// toRaylib converts a Color to raylib's color type.
func (c Color) toRaylib() rl.Color {
	return rl.Color{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// BoxRenderer draws a soft box's particles and springs: particles as
// spheres, springs as lines colored by how far they are stretched or
// compressed from rest.
type BoxRenderer struct {
	camera         *Camera
	particleRadius float32
	wireframe      bool
	cullingEnabled bool
}

// NewBoxRenderer creates a new box renderer with a default particle
// radius suited to a lattice spanning a few metres.
func NewBoxRenderer() *BoxRenderer {
	return &BoxRenderer{
		particleRadius: 0.08,
	}
}

// SetCamera sets the camera used for visibility culling.
func (r *BoxRenderer) SetCamera(camera *Camera) {
	r.camera = camera
}

// EnableCulling enables or disables frustum culling of particles.
func (r *BoxRenderer) EnableCulling(enable bool) {
	r.cullingEnabled = enable
}

// SetWireframe toggles whether springs are drawn as bare lines (true) or
// whether particles are additionally drawn as solid spheres (false).
func (r *BoxRenderer) SetWireframe(wireframe bool) {
	r.wireframe = wireframe
}

// IsWireframe reports the current wireframe setting.
func (r *BoxRenderer) IsWireframe() bool {
	return r.wireframe
}

// SetParticleRadius sets the sphere radius used to draw each particle.
func (r *BoxRenderer) SetParticleRadius(radius float32) {
	r.particleRadius = radius
}

// GetParticleRadius returns the sphere radius used to draw each particle.
func (r *BoxRenderer) GetParticleRadius() float32 {
	return r.particleRadius
}

// isVisible reports whether a world-space point passes the camera's
// frustum test, or true unconditionally when culling is disabled or no
// camera is set.
func (r *BoxRenderer) isVisible(p physics.Vec3) bool {
	if !r.cullingEnabled || r.camera == nil {
		return true
	}
	return r.camera.IsPointInFrustum(p)
}

// ParticleColor maps a particle's speed to a color: slow particles are
// blue, fast particles are red.
func ParticleColor(p physics.Particle) Color {
	speed := p.Momentum.Scale(p.InvMass).Length()
	norm := speed / (speed + 1.0) // compress unbounded speed into [0,1)

	return Color{
		R: float32(norm),
		G: 0.4,
		B: float32(1.0 - norm),
		A: 1.0,
	}
}

// SpringStrainColor maps a spring's current length relative to its rest
// length to a color: compressed springs are blue, stretched springs are
// red, and springs near rest length are green.
func SpringStrainColor(s physics.SpringConstraint, a, b physics.Vec3) Color {
	if s.RestLength < 1e-9 {
		return Color{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
	}

	length := b.Sub(a).Length()
	strain := (length - s.RestLength) / s.RestLength
	clamped := math.Max(-1, math.Min(1, strain))

	if clamped >= 0 {
		return Color{R: float32(clamped), G: float32(1 - clamped), B: 0, A: 1.0}
	}
	return Color{R: 0, G: float32(1 + clamped), B: float32(-clamped), A: 1.0}
}

// Render draws every particle as a sphere (skipped in wireframe mode) and
// every spring as a color-coded line. Intended to run inside an active
// raylib 3D drawing context; it performs no work if no camera is set.
func (r *BoxRenderer) Render(box *softbox.SoftBox) {
	if r.camera == nil {
		return
	}

	particles := box.System.ParticleStates()

	if !r.wireframe {
		for _, p := range particles {
			if !r.isVisible(p.Position) {
				continue
			}
			rl.DrawSphere(p.Position.ToRaylib(), r.particleRadius, ParticleColor(p).toRaylib())
		}
	}

	for _, s := range box.SpringEndpointPositions() {
		if !r.isVisible(s.A) && !r.isVisible(s.B) {
			continue
		}
		color := SpringStrainColor(s.Spring, s.A, s.B)
		rl.DrawLine3D(s.A.ToRaylib(), s.B.ToRaylib(), color.toRaylib())
	}
}
