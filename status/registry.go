// Package status holds the lock-free telemetry registry read by the
// terminal status bar and tests.
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys published by the simulation
const (
	KeyTicks       = "sim.ticks"
	KeyAgents      = "sim.agents"
	KeyDiscarded   = "sim.discarded"
	KeySceneIndex  = "scene.index"
	KeySceneID     = "scene.id"
	KeyRejected    = "scene.rejected"
	KeyHighlight   = "highlight.depth"
	KeyDeltaTime   = "loop.dt"
	KeyFrameRate   = "loop.fps"
	KeyLoopRunning = "loop.running"
)

// Registry is the central metrics facade
// Producers cache pointers at construction and write atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every metric, grouped by type and sorted by key within each group
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, fmt.Sprintf("%d", v.Load())})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Entry{k, v.Load()})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Entry{k, fmt.Sprintf("%.3f", v.Load())})
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, fmt.Sprintf("%t", v.Load())})
	})
	return out
}
