package component

import (
	"github.com/lixenwraith/flock/core"
)

// KineticComponent provides the reusable kinematic container for agents
// Uses float64 vectors; integration lives in package physics
type KineticComponent struct {
	core.Kinetic
}
