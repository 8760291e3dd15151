package flock

import (
	"math"

	"github.com/lixenwraith/flock/component"
	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/physics"
	"github.com/lixenwraith/flock/vmath"
)

// Boid is one steered agent bound to an upstream entity
type Boid struct {
	index  int
	entity component.Entity
	radius float64

	kinetic component.KineticComponent

	mode       core.Mode
	pending    core.Mode
	hasPending bool

	highlighted bool
	label       *component.LabelComponent
}

// Snapshot is the read-only per-frame view of an agent handed to renderers
type Snapshot struct {
	Index        int
	ID           string
	Tier         core.Tier
	Mode         core.Mode
	Pos          vmath.Vec
	Vel          vmath.Vec
	Radius       float64
	Highlighted  bool
	HasLabel     bool
	LabelVisible bool
	Label        string
}

func newBoid(index int, e component.Entity, pos vmath.Vec, radius, mass float64, withLabel bool) *Boid {
	if !(mass > 0) || math.IsInf(mass, 1) {
		mass = parameter.MassMin
	}
	b := &Boid{
		index:  index,
		entity: e,
		radius: radius,
		kinetic: component.KineticComponent{Kinetic: core.Kinetic{
			Pos:  pos,
			Mass: mass,
		}},
		mode: core.ModeRest,
	}
	if withLabel {
		text := e.Name
		if text == "" {
			text = e.ID
		}
		if r := []rune(text); len(r) > parameter.LabelMaxLen {
			text = string(r[:parameter.LabelMaxLen])
		}
		b.label = &component.LabelComponent{Text: text}
	}
	return b
}

func (b *Boid) Index() int { return b.index }
func (b *Boid) ID() string { return b.entity.ID }
func (b *Boid) Entity() component.Entity { return b.entity }
func (b *Boid) Tier() core.Tier { return b.entity.Tier }
func (b *Boid) Radius() float64 { return b.radius }
func (b *Boid) Position() vmath.Vec { return b.kinetic.Pos }
func (b *Boid) Velocity() vmath.Vec { return b.kinetic.Vel }
func (b *Boid) Mass() float64 { return b.kinetic.Mass }
func (b *Boid) Highlighted() bool { return b.highlighted }
func (b *Boid) HasLabel() bool { return b.label != nil }

// Mode returns the mode used by the last tick
func (b *Boid) Mode() core.Mode { return b.mode }

// AssignedMode returns the most recent assignment, including one not yet committed by a tick
func (b *Boid) AssignedMode() core.Mode {
	if b.hasPending {
		return b.pending
	}
	return b.mode
}

// SetMode records the mode for the next tick
// Invalid modes are ignored
func (b *Boid) SetMode(m core.Mode) {
	if !m.Valid() {
		return
	}
	b.pending = m
	b.hasPending = true
}

// LabelVisible reports whether the caption is currently drawn
func (b *Boid) LabelVisible() bool {
	return b.label != nil && b.label.Visible
}

// EnterBig marks the agent as highlighted and optionally shows its caption
func (b *Boid) EnterBig(withLabel bool) {
	b.highlighted = true
	if withLabel {
		b.ToggleText(true)
	}
}

// ExitBig clears the highlight; the caption is left to the caller
func (b *Boid) ExitBig() {
	b.highlighted = false
}

// ToggleText sets caption visibility; agents without a caption are unaffected
func (b *Boid) ToggleText(visible bool) bool {
	if b.label == nil {
		return false
	}
	b.label.Visible = visible
	return true
}

// Profile resolves the behaviour set for the mode committed on the next tick
func (b *Boid) Profile() Profile {
	return ResolveProfile(b.AssignedMode(), b.entity.Tier)
}

// Steering returns the combined, clamped force for the current state
func (b *Boid) Steering(l *Layout, p Profile) vmath.Vec {
	k := &b.kinetic.Kinetic
	maxSpeed := parameter.MaxSpeed * p.SpeedScale

	follow := physics.FollowPath(k, l.Path(p.Ring), parameter.LookAhead, maxSpeed)
	if !b.highlighted {
		contain := physics.Contain(k, l.Containment(p.Ring), maxSpeed)
		return physics.Combine(parameter.MaxForce,
			physics.Contribution{Force: follow, Weight: p.Follow},
			physics.Contribution{Force: contain, Weight: p.Contain},
		)
	}

	focal := physics.Seek(k, l.Focal(), maxSpeed)
	return physics.Combine(parameter.MaxForce,
		physics.Contribution{Force: follow, Weight: p.Follow},
		physics.Contribution{Force: focal, Weight: parameter.WeightFocal},
	)
}

// Tick commits a pending mode, applies steering and integrates one step
// Returns false if the step was discarded as non-finite
func (b *Boid) Tick(dt float64, l *Layout) bool {
	if b.hasPending {
		b.mode = b.pending
		b.hasPending = false
	}
	p := ResolveProfile(b.mode, b.entity.Tier)

	k := &b.kinetic.Kinetic
	physics.ApplyForce(k, b.Steering(l, p))
	return physics.Integrate(k, dt, parameter.MaxSpeed*p.SpeedScale, parameter.Damping)
}

// Snapshot copies the render-relevant state
func (b *Boid) Snapshot() Snapshot {
	s := Snapshot{
		Index:       b.index,
		ID:          b.entity.ID,
		Tier:        b.entity.Tier,
		Mode:        b.mode,
		Pos:         b.kinetic.Pos,
		Vel:         b.kinetic.Vel,
		Radius:      b.radius,
		Highlighted: b.highlighted,
	}
	if b.label != nil {
		s.HasLabel = true
		s.LabelVisible = b.label.Visible
		s.Label = b.label.Text
	}
	return s
}
