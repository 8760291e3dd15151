package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/flock/component"
	"github.com/lixenwraith/flock/flock"
	"github.com/lixenwraith/flock/highlight"
	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/render"
	"github.com/lixenwraith/flock/scene"
	"github.com/lixenwraith/flock/status"
)

// Config assembles a Simulation
type Config struct {
	Entities  []component.Entity
	Scenes    *scene.Config
	ChartSize float64
	Logger    *slog.Logger

	// Options zero value selects flock.DefaultOptions
	Options flock.Options

	// Registry receives telemetry; nil creates a private one
	Registry *status.Registry
}

// Simulation is the single context owning agents, highlight stack and scene state
// Scene events and ticks may arrive from different goroutines; each is applied
// atomically under one mutex, so a transition is observed from the next tick on
type Simulation struct {
	mu sync.Mutex

	layout *flock.Layout
	flock  *flock.Flock
	stack  *highlight.Stack
	scenes *scene.Controller
	log    *slog.Logger

	ticks uint64

	reg           *status.Registry
	statTicks     *atomic.Int64
	statAgents    *atomic.Int64
	statDiscarded *atomic.Int64
	statIndex     *atomic.Int64
	statRejected  *atomic.Int64
	statDepth     *atomic.Int64
	statID        *status.AtomicString
	statDT        *status.AtomicFloat
	statFPS       *status.AtomicFloat
}

// NewSimulation validates input and builds the agent set in scene 0
func NewSimulation(cfg Config) (*Simulation, error) {
	if cfg.Scenes == nil {
		return nil, fmt.Errorf("%w: nil scene config", scene.ErrInvalidConfig)
	}
	if err := cfg.Scenes.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	size := cfg.ChartSize
	if size == 0 {
		size = parameter.ChartSize
	}

	layout, err := flock.NewLayout(size, cfg.Scenes.Rings)
	if err != nil {
		return nil, err
	}
	opts := cfg.Options
	if opts == (flock.Options{}) {
		opts = flock.DefaultOptions()
	}
	f, err := flock.New(cfg.Entities, layout, opts)
	if err != nil {
		return nil, err
	}
	if err := cfg.Scenes.CheckEntities(f); err != nil {
		return nil, err
	}

	stack := &highlight.Stack{}
	ctl, err := scene.NewController(cfg.Scenes.Scenes, f, stack, logger)
	if err != nil {
		return nil, err
	}

	reg := cfg.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}
	s := &Simulation{
		layout:        layout,
		flock:         f,
		stack:         stack,
		scenes:        ctl,
		log:           logger.With("component", "simulation"),
		reg:           reg,
		statTicks:     reg.Ints.Get(status.KeyTicks),
		statAgents:    reg.Ints.Get(status.KeyAgents),
		statDiscarded: reg.Ints.Get(status.KeyDiscarded),
		statIndex:     reg.Ints.Get(status.KeySceneIndex),
		statRejected:  reg.Ints.Get(status.KeyRejected),
		statDepth:     reg.Ints.Get(status.KeyHighlight),
		statID:        reg.Strings.Get(status.KeySceneID),
		statDT:        reg.Floats.Get(status.KeyDeltaTime),
		statFPS:       reg.Floats.Get(status.KeyFrameRate),
	}
	s.statAgents.Store(int64(f.Len()))
	s.publishScene()
	s.log.Info("simulation ready", "agents", f.Len(), "scenes", ctl.Len(), "rings", layout.RingCount())
	return s, nil
}

// Registry exposes the telemetry registry
func (s *Simulation) Registry() *status.Registry { return s.reg }

// Observe registers fn for applied scene transitions
// fn runs with the simulation locked and must not call back into it
func (s *Simulation) Observe(fn scene.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenes.Observe(fn)
}

// Enter applies a scroll enter event
func (s *Simulation) Enter(index int, id, entityRef string) (scene.Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settle(s.scenes.Enter(index, id, entityRef))
}

// Leave applies a scroll leave event
func (s *Simulation) Leave(index int) (scene.Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settle(s.scenes.Leave(index))
}

// Advance moves to the next scene as the manual trigger does
func (s *Simulation) Advance() (scene.Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settle(s.scenes.Advance())
}

// Back leaves the current scene
func (s *Simulation) Back() (scene.Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settle(s.scenes.Back())
}

func (s *Simulation) settle(t scene.Transition, err error) (scene.Transition, error) {
	if err != nil {
		s.statRejected.Add(1)
		return t, err
	}
	s.publishScene()
	return t, nil
}

func (s *Simulation) publishScene() {
	s.statIndex.Store(int64(s.scenes.Index()))
	s.statID.Store(s.scenes.ID())
	s.statDepth.Store(int64(s.stack.Len()))
}

// Tick advances every agent by dt seconds
func (s *Simulation) Tick(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if discarded := s.flock.Tick(dt); discarded > 0 {
		s.statDiscarded.Add(int64(discarded))
		s.log.Warn("discarded non-finite steps", "count", discarded, "tick", s.ticks)
	}
	s.ticks++
	s.statTicks.Store(int64(s.ticks))
	s.statDT.Store(dt)
	if dt > 0 {
		s.statFPS.Smooth(1/dt, parameter.FrameRateSmoothing)
	}
}

// Ticks returns the number of completed ticks
func (s *Simulation) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Scene returns the current scene
func (s *Simulation) Scene() scene.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scenes.Current()
}

// Scenes returns the static scene list
func (s *Simulation) Scenes() []scene.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scenes.Scenes()
}

// Highlighted returns the highlight stack, bottom first
func (s *Simulation) Highlighted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.IDs()
}

// Agent returns a snapshot of one agent by entity id
func (s *Simulation) Agent(id string) (flock.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.flock.Lookup(id)
	if !ok {
		return flock.Snapshot{}, false
	}
	return b.Snapshot(), true
}

// Capture copies the drawable state into f and agents, reusing their storage
func (s *Simulation) Capture(f *render.Frame, agents []flock.Snapshot) []flock.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	rings := s.layout.Rings()
	visible := s.scenes.RingLabels(len(rings))
	f.Rings = f.Rings[:0]
	for i, r := range rings {
		f.Rings = append(f.Rings, render.RingView{
			Center:       s.layout.Center(),
			Radius:       s.layout.RingRadius(i),
			Caption:      r.Capacity,
			LabelVisible: visible[i],
		})
	}
	cur := s.scenes.Current()
	f.Tick = s.ticks
	f.Size = s.layout.Size()
	f.Center = s.layout.Center()
	f.SceneIndex = s.scenes.Index()
	f.SceneID = cur.ID
	f.Caption = cur.Caption
	f.Metrics = s.reg.Snapshot()

	return s.flock.Snapshots(agents[:0])
}
