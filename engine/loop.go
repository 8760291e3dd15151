package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/flock"
	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/render"
	"github.com/lixenwraith/flock/status"
)

var (
	ErrLoopRunning = errors.New("loop already running")
	ErrLoopStopped = errors.New("loop stopped")
)

// Loop drives a Simulation and an Adapter: tick every agent, then draw one frame
// It holds no simulation state beyond reusable frame buffers
type Loop struct {
	sim      *Simulation
	adapter  render.Adapter
	clock    Clock
	interval time.Duration
	log      *slog.Logger

	// frame buffers and the closed flag, owned by whoever holds stepMu
	stepMu sync.Mutex
	frame  render.Frame
	agents []flock.Snapshot
	closed bool

	stopChan chan struct{}
	stopOnce sync.Once
	closeErr error
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool
	statRun  *atomic.Bool
}

// NewLoop creates a loop at parameter.FrameInterval using the system clock
func NewLoop(sim *Simulation, adapter render.Adapter, logger *slog.Logger) *Loop {
	return NewLoopWithClock(sim, adapter, SystemClock, parameter.FrameInterval, logger)
}

// NewLoopWithClock creates a loop with an explicit clock and tick interval
func NewLoopWithClock(sim *Simulation, adapter render.Adapter, clock Clock, interval time.Duration, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if interval <= 0 {
		interval = parameter.FrameInterval
	}
	return &Loop{
		sim:      sim,
		adapter:  adapter,
		clock:    clock,
		interval: interval,
		log:      logger.With("component", "loop"),
		stopChan: make(chan struct{}),
		statRun:  sim.Registry().Bools.Get(status.KeyLoopRunning),
	}
}

// Step advances one tick of dt seconds and renders, synchronously
// Rejected while the real-time loop is running
func (l *Loop) Step(dt float64) error {
	if l.stopped.Load() {
		return ErrLoopStopped
	}
	if l.running.Load() {
		return ErrLoopRunning
	}
	return l.step(dt)
}

func (l *Loop) step(dt float64) error {
	l.stepMu.Lock()
	defer l.stepMu.Unlock()
	if l.closed {
		return ErrLoopStopped
	}

	l.sim.Tick(dt)
	l.agents = l.sim.Capture(&l.frame, l.agents)
	return render.Draw(l.adapter, l.frame, l.agents)
}

// Start runs the loop on its own goroutine until Stop or ctx is done
func (l *Loop) Start(ctx context.Context) error {
	if l.stopped.Load() {
		return ErrLoopStopped
	}
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	l.wg.Add(1)
	core.Go(func() { l.run(ctx) })
	return nil
}

// Run blocks running the loop until Stop or ctx is done
// Returns ctx.Err() on cancellation and nil after Stop
func (l *Loop) Run(ctx context.Context) error {
	if l.stopped.Load() {
		return ErrLoopStopped
	}
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	l.wg.Add(1)
	return l.run(ctx)
}

func (l *Loop) run(ctx context.Context) error {
	defer l.wg.Done()
	defer l.running.Store(false)
	defer l.statRun.Store(false)
	l.statRun.Store(true)

	l.log.Debug("loop started", "interval", l.interval)
	defer l.log.Debug("loop exited")

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := l.clock.Now()
	for {
		select {
		case <-l.stopChan:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		now := l.clock.Now()
		dt := min(now.Sub(last).Seconds(), parameter.MaxDeltaTime)
		last = now
		if err := l.step(dt); err != nil {
			l.log.Warn("frame failed", "error", err)
		}
	}
}

// Stop halts the loop, waits for it and any in-flight Step to finish, then
// closes the adapter
// Safe to call more than once; later calls return the first result
func (l *Loop) Stop() error {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		close(l.stopChan)
		l.wg.Wait()

		l.stepMu.Lock()
		l.closed = true
		l.closeErr = l.adapter.Close()
		l.stepMu.Unlock()
		l.log.Debug("loop stopped", "ticks", l.sim.Ticks())
	})
	return l.closeErr
}
