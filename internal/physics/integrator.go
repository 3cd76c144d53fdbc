package physics

import "gonum.org/v1/gonum/floats"

// Derivative evaluates f(state, t) into a vector of the same dimension as
// state. Implementations may mutate transient fields of whatever owns
// state, but must treat (state, t) as the sole input for the duration of
// one RK4Stepper.Step call.
type Derivative func(state []float64, t float64) []float64

// RK4Stepper advances a state vector by one fixed-step classical
// Runge-Kutta 4 integration. It holds its own stage buffers so that
// repeated Step calls perform no allocation beyond what a dimension
// change requires.
type RK4Stepper struct {
	k1, k2, k3, k4 []float64
	scratch        []float64
	result         []float64
}

// NewRK4Stepper returns a ready-to-use stepper. Buffers are sized lazily
// on first Step.
func NewRK4Stepper() *RK4Stepper {
	return &RK4Stepper{}
}

// ensureCapacity grows the stepper's scratch buffers to dimension n,
// reusing the existing backing arrays when the dimension hasn't changed.
func (r *RK4Stepper) ensureCapacity(n int) {
	if len(r.scratch) == n {
		return
	}
	r.k1 = make([]float64, n)
	r.k2 = make([]float64, n)
	r.k3 = make([]float64, n)
	r.k4 = make([]float64, n)
	r.scratch = make([]float64, n)
	r.result = make([]float64, n)
}

// Step advances state by h seconds using derivative f evaluated at time t,
// returning the new state. It panics if f returns a vector whose dimension
// differs from state's. The returned slice is owned by the caller to
// modify freely but aliases the stepper's internal result buffer until the
// next Step call.
func (r *RK4Stepper) Step(f Derivative, state []float64, t, h float64) []float64 {
	n := len(state)
	r.ensureCapacity(n)

	checkDim := func(k []float64) []float64 {
		if len(k) != n {
			panic("physics: derivative dimension does not match state dimension")
		}
		return k
	}

	k1 := checkDim(f(state, t))
	copy(r.k1, k1)

	floats.AddScaledTo(r.scratch, state, h/2, r.k1)
	k2 := checkDim(f(r.scratch, t+h/2))
	copy(r.k2, k2)

	floats.AddScaledTo(r.scratch, state, h/2, r.k2)
	k3 := checkDim(f(r.scratch, t+h/2))
	copy(r.k3, k3)

	floats.AddScaledTo(r.scratch, state, h, r.k3)
	k4 := checkDim(f(r.scratch, t+h))
	copy(r.k4, k4)

	floats.Add(r.k1, r.k4)
	floats.Add(r.k2, r.k3)
	floats.AddScaled(r.k1, 2, r.k2)
	floats.AddScaledTo(r.result, state, h/6, r.k1)

	return r.result
}
