// Package render defines the per-frame drawing contract and its adapters:
// a tcell terminal view, an SVG exporter and an in-memory recorder.
package render

import (
	"github.com/lixenwraith/flock/flock"
	"github.com/lixenwraith/flock/status"
	"github.com/lixenwraith/flock/vmath"
)

// RingView is one orbit ring as drawn this frame
type RingView struct {
	Center       vmath.Vec
	Radius       float64
	Caption      string
	LabelVisible bool
}

// Frame carries the frame-wide state drawn before agents
type Frame struct {
	Tick       uint64
	Size       float64
	Center     vmath.Vec
	Rings      []RingView
	SceneIndex int
	SceneID    string
	Caption    string
	Metrics    []status.Entry
}

// Adapter draws one frame: BeginFrame, one DrawAgent per agent, EndFrame
// Agents without a label arrive with HasLabel false and must be drawn without one
type Adapter interface {
	BeginFrame(f Frame) error
	DrawAgent(s flock.Snapshot)
	EndFrame() error
	Close() error
}

// Draw runs one full frame through a
func Draw(a Adapter, f Frame, agents []flock.Snapshot) error {
	if err := a.BeginFrame(f); err != nil {
		return err
	}
	for _, s := range agents {
		a.DrawAgent(s)
	}
	return a.EndFrame()
}
