package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/vmath"
)

// ApplyForce accumulates force/mass into the acceleration accumulator
// Non-finite forces are ignored, returns false when rejected
func ApplyForce(k *core.Kinetic, force vmath.Vec) bool {
	if !vmath.IsFinite(force) {
		return false
	}
	mass := k.Mass
	if !(mass >= parameter.MassMin) {
		mass = parameter.MassMin
	}
	k.Acc = r2.Add(k.Acc, r2.Scale(1/mass, force))
	return true
}

// Integrate performs semi-implicit Euler: v += a*dt, damp, cap; p += v*dt
// damping is the retention factor per reference frame (parameter.ReferenceRate)
// The accumulator is always cleared; a step that would produce non-finite state
// is discarded and velocity is zeroed, so NaN never reaches position
// Returns false when the step was discarded
func Integrate(k *core.Kinetic, dt, maxSpeed, damping float64) bool {
	acc := k.Acc
	k.Acc = vmath.Vec{}

	if !(dt > 0) || math.IsInf(dt, 0) {
		return true
	}
	if !vmath.IsFinite(acc) {
		acc = vmath.Vec{}
	}

	vel := r2.Add(k.Vel, r2.Scale(dt, acc))
	if damping > 0 && damping < 1 {
		vel = r2.Scale(math.Pow(damping, dt*parameter.ReferenceRate), vel)
	}
	CapSpeed(&vel, maxSpeed)
	pos := r2.Add(k.Pos, r2.Scale(dt, vel))

	if !vmath.IsFinite(vel) || !vmath.IsFinite(pos) {
		k.Vel = vmath.Vec{}
		return false
	}
	k.Vel = vel
	k.Pos = pos
	return true
}
