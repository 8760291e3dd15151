package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/flock/vmath"
)

// Contribution is one weighted steering term
type Contribution struct {
	Force  vmath.Vec
	Weight float64
}

// Combine sums weighted contributions and clamps the total to maxForce
// Clamping happens once, after summation; non-finite terms are dropped
func Combine(maxForce float64, parts ...Contribution) vmath.Vec {
	var sum vmath.Vec
	for _, c := range parts {
		w := vmath.FiniteOr(c.Weight, 0)
		if w == 0 || !vmath.IsFinite(c.Force) {
			continue
		}
		sum = r2.Add(sum, r2.Scale(w, c.Force))
	}
	if !vmath.IsFinite(sum) {
		return vmath.Vec{}
	}
	return vmath.ClampMagnitude(sum, maxForce)
}
