package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/navigation"
	"github.com/lixenwraith/flock/vmath"
)

// Ring is a circular containment boundary
type Ring struct {
	Center vmath.Vec
	Radius float64
	// Margin is the inward bias band; containment ramps in over [Radius-Margin, Radius]
	Margin float64
}

// Contain steers an agent back inside ring
// Zero while the agent is inside Radius-Margin; beyond that it seeks the inner
// edge of the band with a weight ramping linearly to 1 at Radius, so there is no
// on/off discontinuity at the boundary
func Contain(k *core.Kinetic, ring Ring, maxSpeed float64) vmath.Vec {
	offset := r2.Sub(k.Pos, ring.Center)
	dist := vmath.Magnitude(offset)

	margin := ring.Margin
	if margin < 0 {
		margin = 0
	}
	inner := ring.Radius - margin
	if inner < 0 {
		inner = 0
	}
	if dist <= inner {
		return vmath.Vec{}
	}

	weight := 1.0
	if margin > 0 {
		weight = vmath.Clamp((dist-inner)/margin, 0, 1)
	}

	target := r2.Add(ring.Center, r2.Scale(inner, vmath.Normalize(offset)))
	return r2.Scale(weight, Seek(k, target, maxSpeed))
}

// Predict returns where the agent will be lookahead units along its heading
// A stationary agent predicts its own position
func Predict(k *core.Kinetic, lookahead float64) vmath.Vec {
	return r2.Add(k.Pos, r2.Scale(lookahead, vmath.Normalize(k.Vel)))
}

// PathTarget returns the point FollowPath seeks: the path point nearest the
// predicted position
func PathTarget(k *core.Kinetic, path *navigation.Path, lookahead float64) vmath.Vec {
	return path.Nearest(Predict(k, lookahead))
}

// FollowPath steers toward the path point nearest the predicted position
// Target selection depends on heading not speed, and the path has no preferred
// direction, so an agent keeps orbiting whichever way it travels
func FollowPath(k *core.Kinetic, path *navigation.Path, lookahead, maxSpeed float64) vmath.Vec {
	if path == nil {
		return vmath.Vec{}
	}
	return Seek(k, PathTarget(k, path, lookahead), maxSpeed)
}
