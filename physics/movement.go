package physics

import (
	"github.com/lixenwraith/flock/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec, maxSpeed float64) bool {
	if maxSpeed < 0 {
		maxSpeed = 0
	}
	if vmath.MagnitudeSq(*vel) <= maxSpeed*maxSpeed {
		return false
	}
	*vel = vmath.ClampMagnitude(*vel, maxSpeed)
	return true
}
