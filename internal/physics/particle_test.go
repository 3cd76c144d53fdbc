package physics

import (
	"math"
	"testing"
)

// TestNewParticle tests the creation of a new dynamic particle
func TestNewParticle(t *testing.T) {
	p := NewParticle(NewVec3(10, 20, 30), 2.0)

	if p.Position.X != 10.0 || p.Position.Y != 20.0 || p.Position.Z != 30.0 {
		t.Errorf("Expected position (10, 20, 30), got (%f, %f, %f)",
			p.Position.X, p.Position.Y, p.Position.Z)
	}
	if p.Momentum != (Vec3{}) {
		t.Errorf("Expected zero momentum, got %v", p.Momentum)
	}
	if math.Abs(p.InvMass-0.5) > 1e-9 {
		t.Errorf("Expected InvMass 0.5, got %f", p.InvMass)
	}
}

// TestNewParticleZeroMass tests that zero mass produces an infinitely heavy particle
func TestNewParticleZeroMass(t *testing.T) {
	p := NewParticle(NewVec3(0, 0, 0), 0)
	if p.InvMass != 0 {
		t.Errorf("Expected InvMass 0 for zero mass, got %f", p.InvMass)
	}
}

// TestParticleKineticEnergy tests kinetic energy calculation from momentum
func TestParticleKineticEnergy(t *testing.T) {
	p := NewParticle(NewVec3(0, 0, 0), 2.0) // invMass = 0.5
	p.Momentum = NewVec3(3.0, 4.0, 0)       // |p| = 5

	ke := p.KineticEnergy()
	expected := 0.5 * p.Momentum.Dot(p.Momentum.Scale(0.5))

	if math.Abs(ke-expected) > 1e-9 {
		t.Errorf("Expected kinetic energy %f, got %f", expected, ke)
	}
}

// TestParticleKineticEnergyStatic tests that an infinitely heavy particle reports zero KE
func TestParticleKineticEnergyStatic(t *testing.T) {
	p := NewParticle(NewVec3(0, 0, 0), 0)
	p.Momentum = NewVec3(100, 100, 100)

	if p.KineticEnergy() != 0 {
		t.Errorf("Expected zero kinetic energy for a kinematic particle, got %f", p.KineticEnergy())
	}
}
