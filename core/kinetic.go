package core

import "github.com/lixenwraith/flock/vmath"

// Kinetic is the per-agent kinematic state
// Acc accumulates acceleration (force / mass) during a tick and is cleared after integration
type Kinetic struct {
	Pos vmath.Vec
	Vel vmath.Vec
	Acc vmath.Vec

	// Mass scales responsiveness to force, always > 0 after construction
	Mass float64
}
