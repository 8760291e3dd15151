// Package scene maps narrative scroll events onto agent modes and the
// highlight stack.
package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/flock/flock"
	"github.com/lixenwraith/flock/highlight"
	"github.com/lixenwraith/flock/parameter"
)

var (
	ErrIndexRange    = errors.New("scene index out of range")
	ErrSceneMismatch = errors.New("scene id does not match index")
	ErrUnknownEntity = errors.New("unknown entity reference")
)

// Cause identifies which external event produced a transition
type Cause uint8

const (
	CauseEnter Cause = iota
	CauseLeave
	CauseAdvance
)

func (c Cause) String() string {
	switch c {
	case CauseEnter:
		return "enter"
	case CauseLeave:
		return "leave"
	case CauseAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// Effect is the highlight stack change caused by a transition
type Effect uint8

const (
	EffectNone Effect = iota
	EffectPush
	EffectPop
	EffectClear
)

// Transition describes one applied scene change
type Transition struct {
	Cause  Cause
	From   int
	To     int
	ID     string
	Entity string
	Effect Effect
	// Depth is the highlight stack size after the transition
	Depth int
}

// Observer is notified after each applied transition
type Observer func(Transition)

// Controller is the scene state machine
// It is not safe for concurrent use; callers serialize access
type Controller struct {
	scenes []Scene
	flock  *flock.Flock
	stack  *highlight.Stack
	log    *slog.Logger

	index int
	id    string

	observers []Observer
}

// NewController binds scenes to a flock and applies scene 0 to every agent
func NewController(scenes []Scene, f *flock.Flock, stack *highlight.Stack, logger *slog.Logger) (*Controller, error) {
	if len(scenes) == 0 {
		return nil, fmt.Errorf("%w: no scenes", ErrInvalidConfig)
	}
	if f == nil || stack == nil {
		return nil, errors.New("scene: nil flock or stack")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Controller{
		scenes: append([]Scene(nil), scenes...),
		flock:  f,
		stack:  stack,
		log:    logger.With("component", "scene"),
	}
	c.apply(0, "")
	return c, nil
}

// Observe registers fn for subsequent transitions
func (c *Controller) Observe(fn Observer) {
	c.observers = append(c.observers, fn)
}

// Index returns the current scene index
func (c *Controller) Index() int { return c.index }

// ID returns the current scene id
func (c *Controller) ID() string { return c.id }

// Current returns the active scene
func (c *Controller) Current() Scene { return c.scenes[c.index] }

func (c *Controller) Len() int { return len(c.scenes) }

// Scenes returns a copy of the static scene list
func (c *Controller) Scenes() []Scene {
	return append([]Scene(nil), c.scenes...)
}

// IDOf returns the scene id at index i
func (c *Controller) IDOf(i int) (string, error) {
	if i < 0 || i >= len(c.scenes) {
		return "", fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(c.scenes))
	}
	return c.scenes[i].ID, nil
}

// Enter applies scene index with the given id
// entityRef is only meaningful for band scenes, where it toggles that agent's highlight
// A rejected event returns an error and leaves state untouched
func (c *Controller) Enter(index int, id, entityRef string) (Transition, error) {
	return c.enter(CauseEnter, index, id, entityRef)
}

// Leave reapplies the predecessor of index (floored at 0)
// Band toggles are not replayed; leave is not the inverse of enter
func (c *Controller) Leave(index int) (Transition, error) {
	if index < 0 || index >= len(c.scenes) {
		return c.reject(CauseLeave, fmt.Errorf("%w: leave %d of %d", ErrIndexRange, index, len(c.scenes)))
	}
	prev := max(0, index-1)
	return c.enter(CauseLeave, prev, c.scenes[prev].ID, "")
}

// Advance enters the next scene with its configured entity, as a scroll event would
func (c *Controller) Advance() (Transition, error) {
	next := c.index + 1
	if next >= len(c.scenes) {
		return c.reject(CauseAdvance, fmt.Errorf("%w: advance past %d", ErrIndexRange, c.index))
	}
	s := c.scenes[next]
	return c.enter(CauseAdvance, next, s.ID, s.Entity)
}

// Back leaves the current scene
func (c *Controller) Back() (Transition, error) {
	return c.Leave(c.index)
}

// RingLabels reports per-ring label visibility for n rings
// Explore hides all; otherwise ring i shows once i <= index - RingLabelOffset
func (c *Controller) RingLabels(n int) []bool {
	visible := make([]bool, max(n, 0))
	if c.id == parameter.SceneExplore {
		return visible
	}
	for i := range visible {
		visible[i] = i <= c.index-parameter.RingLabelOffset
	}
	return visible
}

func (c *Controller) enter(cause Cause, index int, id, entityRef string) (Transition, error) {
	if index < 0 || index >= len(c.scenes) {
		return c.reject(cause, fmt.Errorf("%w: %d of %d", ErrIndexRange, index, len(c.scenes)))
	}
	if c.scenes[index].ID != id {
		return c.reject(cause, fmt.Errorf("%w: index %d is %q, got %q", ErrSceneMismatch, index, c.scenes[index].ID, id))
	}
	if entityRef != "" {
		if _, ok := c.flock.Lookup(entityRef); !ok {
			return c.reject(cause, fmt.Errorf("%w: %q", ErrUnknownEntity, entityRef))
		}
	}

	from := c.index
	effect := c.apply(index, entityRef)
	t := Transition{
		Cause:  cause,
		From:   from,
		To:     index,
		ID:     id,
		Entity: entityRef,
		Effect: effect,
		Depth:  c.stack.Len(),
	}
	c.log.Info("scene."+cause.String(), "from", from, "to", index, "id", id, "entity", entityRef, "depth", t.Depth)
	for _, fn := range c.observers {
		fn(t)
	}
	return t, nil
}

func (c *Controller) reject(cause Cause, err error) (Transition, error) {
	c.log.Warn("scene event rejected", "cause", cause.String(), "index", c.index, "error", err)
	return Transition{}, err
}

// apply mutates state for a validated event
func (c *Controller) apply(index int, entityRef string) Effect {
	s := c.scenes[index]
	c.index = index
	c.id = s.ID
	c.flock.SetMode(s.Mode)

	switch {
	case s.ID == parameter.SceneBig:
		c.clearHighlights()
		return EffectClear
	case s.ID == parameter.SceneBand && entityRef != "":
		if c.toggleBand(entityRef) {
			return EffectPush
		}
		return EffectPop
	}
	return EffectNone
}

func (c *Controller) toggleBand(ref string) bool {
	pushed := c.stack.Toggle(ref)
	if !pushed {
		if b, ok := c.flock.Lookup(ref); ok {
			b.ExitBig()
			b.ToggleText(false)
		}
	}

	top, _ := c.stack.Top()
	for _, id := range c.stack.IDs() {
		b, ok := c.flock.Lookup(id)
		if !ok {
			continue
		}
		b.EnterBig(false)
		b.ToggleText(id == top)
	}
	return pushed
}

func (c *Controller) clearHighlights() {
	for _, id := range c.stack.IDs() {
		if b, ok := c.flock.Lookup(id); ok {
			b.ExitBig()
			b.ToggleText(false)
		}
	}
	c.stack.Reset()
}
