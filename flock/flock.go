// Package flock holds the steered agents, their shared layout and the
// per-mode behaviour profiles.
package flock

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/flock/component"
	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/vmath"
)

// ErrInvalidEntity is returned when an entity list cannot be turned into agents
var ErrInvalidEntity = errors.New("flock: invalid entity")

// Options controls agent construction
type Options struct {
	// Seed drives spawn placement; equal seeds give equal layouts
	Seed uint64
	// LabelTier is the tier whose agents carry a caption
	LabelTier core.Tier
}

// DefaultOptions labels the big tier and uses the default seed
func DefaultOptions() Options {
	return Options{Seed: parameter.DefaultSeed, LabelTier: core.TierBig}
}

// Flock is the ordered agent set
type Flock struct {
	layout *Layout
	boids  []*Boid
	byID   map[string]*Boid
}

// New builds one agent per entity, spawned near the outermost ring
func New(entities []component.Entity, layout *Layout, opts Options) (*Flock, error) {
	if layout == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrInvalidLayout)
	}
	if err := component.ValidateAll(entities); err != nil {
		return nil, errors.Join(ErrInvalidEntity, err)
	}

	maxEngagement := 1.0
	for _, e := range entities {
		maxEngagement = max(maxEngagement, e.Engagement)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	outer := layout.RingRadius(0)
	gap := outer * 0.1
	if layout.RingCount() > 1 {
		gap = outer - layout.RingRadius(1)
	}
	jitter := gap * parameter.SpawnJitter

	f := &Flock{
		layout: layout,
		boids:  make([]*Boid, len(entities)),
		byID:   make(map[string]*Boid, len(entities)),
	}
	for i, e := range entities {
		radius := vmath.SqrtScale(e.Engagement, 1, maxEngagement, parameter.RadiusMin, parameter.RadiusMax)
		t := (radius - parameter.RadiusMin) / (parameter.RadiusMax - parameter.RadiusMin)
		mass := parameter.MassBase + parameter.MassGrowth*t

		angle := rng.Float64() * vmath.TwoPi
		dist := outer - jitter + rng.Float64()*jitter
		pos := vmath.Polar(layout.Center(), dist, angle)

		b := newBoid(i, e, pos, radius, mass, e.Tier == opts.LabelTier)
		f.boids[i] = b
		f.byID[e.ID] = b
	}
	return f, nil
}

func (f *Flock) Layout() *Layout { return f.layout }
func (f *Flock) Len() int { return len(f.boids) }

// At returns the agent at construction index i
func (f *Flock) At(i int) *Boid {
	if i < 0 || i >= len(f.boids) {
		return nil
	}
	return f.boids[i]
}

// Lookup resolves an entity id to its agent
func (f *Flock) Lookup(id string) (*Boid, bool) {
	b, ok := f.byID[id]
	return b, ok
}

// Each visits agents in construction order
func (f *Flock) Each(fn func(*Boid)) {
	for _, b := range f.boids {
		fn(b)
	}
}

// SetMode assigns m to every agent for the next tick
func (f *Flock) SetMode(m core.Mode) {
	for _, b := range f.boids {
		b.SetMode(m)
	}
}

// ClearHighlights exits the highlight state and hides every caption
func (f *Flock) ClearHighlights() {
	for _, b := range f.boids {
		b.ExitBig()
		b.ToggleText(false)
	}
}

// Tick advances every agent by dt and returns the number of discarded steps
func (f *Flock) Tick(dt float64) int {
	discarded := 0
	for _, b := range f.boids {
		if !b.Tick(dt, f.layout) {
			discarded++
		}
	}
	return discarded
}

// Snapshots appends one snapshot per agent to dst in construction order
func (f *Flock) Snapshots(dst []Snapshot) []Snapshot {
	for _, b := range f.boids {
		dst = append(dst, b.Snapshot())
	}
	return dst
}
