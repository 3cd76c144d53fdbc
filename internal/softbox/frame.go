package softbox

import "softbox/internal/physics"

// ControlFrame is the pose of an oriented unit cube the user manipulates.
// The soft box's eight corner springs anchor to this frame's world-space
// corners every tick.
type ControlFrame struct {
	Position    physics.Vec3
	Orientation physics.Vec3 // Euler angles, radians: pitch (X), yaw (Y), roll (Z)
	Size        float64

	SpringConstant float64
	Attenuation    float64
}

// NewControlFrame returns a frame at the origin with unit size and the
// given anchor-spring tunables.
func NewControlFrame(springConstant, attenuation float64) *ControlFrame {
	return &ControlFrame{
		Size:           1.0,
		SpringConstant: springConstant,
		Attenuation:    attenuation,
	}
}

// ModelMatrix composes the frame's pose into T(position) * R(orientation) *
// S(size), applied pitch-yaw-roll around body axes.
func (f *ControlFrame) ModelMatrix() physics.Mat4 {
	t := physics.Mat4Translation(f.Position.X, f.Position.Y, f.Position.Z)
	r := physics.Mat4RotationY(f.Orientation.Y).
		Multiply(physics.Mat4RotationX(f.Orientation.X)).
		Multiply(physics.Mat4RotationZ(f.Orientation.Z))
	s := physics.Mat4Scale(f.Size, f.Size, f.Size)
	return t.Multiply(r).Multiply(s)
}

// unitCubeCorner returns the local-space corner (±0.5, ±0.5, ±0.5)
// identified by (xs, ys, zs) each 0 or 1.
func unitCubeCorner(xs, ys, zs int) physics.Vec3 {
	sign := func(b int) float64 {
		if b == 0 {
			return -0.5
		}
		return 0.5
	}
	return physics.NewVec3(sign(xs), sign(ys), sign(zs))
}

// CornerIndex returns the enumeration index k = 4*zs + 2*ys + xs used to
// order the eight anchor points consistently between the frame and the
// soft box's static-particle vector.
func CornerIndex(xs, ys, zs int) int {
	return 4*zs + 2*ys + xs
}

// WorldCorners returns the eight world-space corners of the frame, ordered
// by CornerIndex.
func (f *ControlFrame) WorldCorners() [8]physics.Vec3 {
	model := f.ModelMatrix()
	var corners [8]physics.Vec3
	for zs := 0; zs < 2; zs++ {
		for ys := 0; ys < 2; ys++ {
			for xs := 0; xs < 2; xs++ {
				corners[CornerIndex(xs, ys, zs)] = model.TransformPoint(unitCubeCorner(xs, ys, zs))
			}
		}
	}
	return corners
}
