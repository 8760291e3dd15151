package navigation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/flock/vmath"
)

// ErrInvalidPath is returned for degenerate orbit parameters
var ErrInvalidPath = errors.New("invalid path")

// Path is a closed polyline approximating a circular orbit
// Points are ordered by increasing angle around Center and evenly spaced
// Immutable after construction, safe to share across agents and goroutines
type Path struct {
	points    []vmath.Vec
	center    vmath.Vec
	radius    float64
	tolerance float64
}

// Projection is the nearest point on a path to a query point
type Projection struct {
	Point    vmath.Vec
	Segment  int     // index of the segment start vertex
	T        float64 // fraction along the segment, [0,1]
	Distance float64 // distance from the query point
}

// NewOrbit builds a K-point closed orbit of the given radius around center
// tolerance is the nominal lane half-width kept for overlays, may be 0
func NewOrbit(center vmath.Vec, radius float64, k int, tolerance float64) (*Path, error) {
	if k < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrInvalidPath, k)
	}
	if !(radius > 0) || math.IsInf(radius, 0) || !vmath.IsFinite(center) {
		return nil, fmt.Errorf("%w: radius %v center %v", ErrInvalidPath, radius, center)
	}

	p := &Path{
		points:    make([]vmath.Vec, k),
		center:    center,
		radius:    radius,
		tolerance: tolerance,
	}
	for i := range p.points {
		angle := float64(i) / float64(k) * vmath.TwoPi
		p.points[i] = vmath.Polar(center, radius, angle)
	}
	return p, nil
}

// Len returns the number of vertices
func (p *Path) Len() int { return len(p.points) }

// Center returns the orbit center
func (p *Path) Center() vmath.Vec { return p.center }

// Radius returns the nominal orbit radius
func (p *Path) Radius() float64 { return p.radius }

// Tolerance returns the lane half-width
func (p *Path) Tolerance() float64 { return p.tolerance }

// Point returns vertex i, index wraps modulo Len
func (p *Path) Point(i int) vmath.Vec {
	return p.points[vmath.WrapIndex(i, len(p.points))]
}

// Points returns a copy of the vertices
func (p *Path) Points() []vmath.Vec {
	out := make([]vmath.Vec, len(p.points))
	copy(out, p.points)
	return out
}

// Project returns the nearest point on the closed polyline to q
func (p *Path) Project(q vmath.Vec) Projection {
	best := Projection{Distance: math.Inf(1)}
	n := len(p.points)

	for i := 0; i < n; i++ {
		a := p.points[i]
		b := p.points[(i+1)%n]
		ab := r2.Sub(b, a)

		t := 0.0
		if l2 := r2.Norm2(ab); l2 > vmath.Epsilon {
			t = vmath.Clamp(r2.Dot(r2.Sub(q, a), ab)/l2, 0, 1)
		}
		foot := vmath.Lerp(a, b, t)
		d := vmath.Distance(q, foot)
		if d < best.Distance {
			best = Projection{Point: foot, Segment: i, T: t, Distance: d}
		}
	}
	return best
}

// Nearest returns the path point closest to predicted
// Path following seeks this point directly, so either direction of travel holds
func (p *Path) Nearest(predicted vmath.Vec) vmath.Vec {
	return p.Project(predicted).Point
}
