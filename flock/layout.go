package flock

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/flock/navigation"
	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/physics"
	"github.com/lixenwraith/flock/vmath"
)

// ErrInvalidLayout is returned for unusable chart or ring parameters
var ErrInvalidLayout = errors.New("invalid layout")

// RingSpec declares one orbit ring, outermost first
type RingSpec struct {
	Capacity string  `yaml:"capacity" json:"capacity"`
	Factor   float64 `yaml:"factor" json:"factor"`
}

// DefaultRings returns the small/medium/big venue rings
func DefaultRings() []RingSpec {
	captions := []string{"Small venue", "Medium", "Big"}
	rings := make([]RingSpec, len(parameter.DefaultRingFactors))
	for i, f := range parameter.DefaultRingFactors {
		rings[i] = RingSpec{Capacity: captions[i%len(captions)], Factor: f}
	}
	return rings
}

// Layout is the frame-immutable geometry shared by all agents
// Ring i has radius Size/2 * Factor and one orbit path
type Layout struct {
	size   float64
	center vmath.Vec
	focal  vmath.Vec
	rings  []RingSpec
	paths  []*navigation.Path
}

// NewLayout builds rings and orbit paths for a square chart of side size
func NewLayout(size float64, rings []RingSpec) (*Layout, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: chart size %v", ErrInvalidLayout, size)
	}
	if len(rings) == 0 {
		return nil, fmt.Errorf("%w: no rings", ErrInvalidLayout)
	}

	center := vmath.V(size/2, size/2)
	l := &Layout{
		size:   size,
		center: center,
		focal:  center,
		rings:  append([]RingSpec(nil), rings...),
		paths:  make([]*navigation.Path, len(rings)),
	}
	for i, r := range rings {
		if !(r.Factor > 0) || r.Factor > 1 {
			return nil, fmt.Errorf("%w: ring %d factor %v not in (0,1]", ErrInvalidLayout, i, r.Factor)
		}
		p, err := navigation.NewOrbit(center, size/2*r.Factor, parameter.PathPoints, parameter.PathTolerance)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		l.paths[i] = p
	}
	return l, nil
}

func (l *Layout) Size() float64 { return l.size }
func (l *Layout) Center() vmath.Vec { return l.center }
func (l *Layout) RingCount() int { return len(l.rings) }
func (l *Layout) Rings() []RingSpec { return append([]RingSpec(nil), l.rings...) }

// Focal is the point highlighted agents are drawn toward
func (l *Layout) Focal() vmath.Vec { return l.focal }

// ClampRing maps any ring index into range
func (l *Layout) ClampRing(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(l.rings) {
		return len(l.rings) - 1
	}
	return i
}

// Path returns the orbit of ring i (clamped)
func (l *Layout) Path(i int) *navigation.Path {
	return l.paths[l.ClampRing(i)]
}

// RingRadius returns the orbit radius of ring i (clamped)
func (l *Layout) RingRadius(i int) float64 {
	return l.Path(i).Radius()
}

// Containment returns the containment boundary for agents following ring i
func (l *Layout) Containment(i int) physics.Ring {
	return physics.Ring{
		Center: l.center,
		Radius: l.RingRadius(i) + parameter.ContainSlack,
		Margin: parameter.ContainMargin,
	}
}
