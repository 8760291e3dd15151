package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/vmath"
)

// Seek returns the raw steering toward target: desired velocity minus current velocity
// Desired velocity points at the target with magnitude maxSpeed
// The result is not clamped; Combine applies the force cap once for the whole tick
func Seek(k *core.Kinetic, target vmath.Vec, maxSpeed float64) vmath.Vec {
	desired := vmath.WithMagnitude(r2.Sub(target, k.Pos), maxSpeed)
	return r2.Sub(desired, k.Vel)
}

// SeekCapped is Seek limited to maxForce, for callers steering with a single behaviour
func SeekCapped(k *core.Kinetic, target vmath.Vec, maxSpeed, maxForce float64) vmath.Vec {
	return vmath.ClampMagnitude(Seek(k, target, maxSpeed), maxForce)
}
