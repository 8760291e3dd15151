package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flock/flock"
	"github.com/lixenwraith/flock/render"
	"github.com/lixenwraith/flock/status"
)

func TestStepRendersEachTick(t *testing.T) {
	sim := newTestSimulation(t)
	rec := render.NewRecorder(0)
	loop := NewLoop(sim, rec, nil)

	for range 3 {
		require.NoError(t, loop.Step(1.0/60))
	}
	frames := rec.Frames()
	require.Len(t, frames, 3)
	assert.Equal(t, uint64(3), frames[2].Frame.Tick)
	assert.Len(t, frames[2].Agents, 4)

	require.NoError(t, loop.Stop())
	assert.True(t, rec.Closed())
	assert.ErrorIs(t, loop.Step(1.0/60), ErrLoopStopped)
	require.NoError(t, loop.Stop())
}

func TestStartStop(t *testing.T) {
	sim := newTestSimulation(t)
	rec := render.NewRecorder(8)
	clock := &FixedStepClock{Step: 5 * time.Second}
	loop := NewLoopWithClock(sim, rec, clock, time.Millisecond, nil)

	require.NoError(t, loop.Start(context.Background()))
	assert.ErrorIs(t, loop.Start(context.Background()), ErrLoopRunning)
	assert.ErrorIs(t, loop.Step(0.01), ErrLoopRunning)

	assert.Eventually(t, func() bool { return sim.Ticks() >= 3 }, 2*time.Second, time.Millisecond)
	assert.True(t, sim.Registry().Bools.Get(status.KeyLoopRunning).Load())
	// every reading jumps 5s; dt is capped
	assert.InDelta(t, 0.1, sim.Registry().Floats.Get(status.KeyDeltaTime).Load(), 1e-12)

	require.NoError(t, loop.Stop())
	assert.True(t, rec.Closed())
	assert.False(t, sim.Registry().Bools.Get(status.KeyLoopRunning).Load())

	ticks := sim.Ticks()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, sim.Ticks(), "no ticks after Stop")
	assert.ErrorIs(t, loop.Start(context.Background()), ErrLoopStopped)
}

func TestRunReturnsOnCancel(t *testing.T) {
	sim := newTestSimulation(t)
	rec := render.NewRecorder(1)
	loop := NewLoopWithClock(sim, rec, &FixedStepClock{Start: time.Unix(0, 0)}, time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	assert.Eventually(t, func() bool { return sim.Ticks() > 0 }, 2*time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}

	// frozen mock clock yields dt 0: agents never move
	last, ok := rec.Last()
	require.True(t, ok)
	first := sim.Capture(&render.Frame{}, nil)
	for i := range first {
		assert.Equal(t, first[i].Pos, last.Agents[i].Pos)
	}
	require.NoError(t, loop.Stop())
}

// slowAdapter holds each frame open for delay and counts draws after Close
type slowAdapter struct {
	delay  time.Duration
	began  chan struct{}
	closed atomic.Bool
	late   atomic.Int32
}

func (a *slowAdapter) BeginFrame(render.Frame) error {
	select {
	case a.began <- struct{}{}:
	default:
	}
	time.Sleep(a.delay)
	a.checkOpen()
	return nil
}

func (a *slowAdapter) DrawAgent(flock.Snapshot) { a.checkOpen() }

func (a *slowAdapter) EndFrame() error {
	a.checkOpen()
	return nil
}

func (a *slowAdapter) Close() error {
	a.closed.Store(true)
	return nil
}

func (a *slowAdapter) checkOpen() {
	if a.closed.Load() {
		a.late.Add(1)
	}
}

func TestStopWaitsForInFlightStep(t *testing.T) {
	sim := newTestSimulation(t)
	adapter := &slowAdapter{delay: 20 * time.Millisecond, began: make(chan struct{}, 1)}
	loop := NewLoop(sim, adapter, nil)

	stepped := make(chan error, 1)
	go func() { stepped <- loop.Step(1.0 / 60) }()

	select {
	case <-adapter.began:
	case <-time.After(2 * time.Second):
		t.Fatal("step never reached the adapter")
	}
	require.NoError(t, loop.Stop())
	assert.True(t, adapter.closed.Load())

	require.NoError(t, <-stepped)
	assert.Zero(t, adapter.late.Load(), "adapter drawn after Close")
	assert.ErrorIs(t, loop.Step(1.0/60), ErrLoopStopped)
}

func TestFixedStepClock(t *testing.T) {
	start := time.Unix(100, 0)
	c := &FixedStepClock{Start: start, Step: 16 * time.Millisecond}
	assert.Equal(t, start.Add(16*time.Millisecond), c.Now())
	assert.Equal(t, start.Add(32*time.Millisecond), c.Now())

	frozen := &FixedStepClock{Start: start}
	assert.Equal(t, frozen.Now(), frozen.Now())
	assert.WithinDuration(t, time.Now(), SystemClock.Now(), time.Second)
}
