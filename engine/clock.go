package engine

import (
	"sync/atomic"
	"time"
)

// Clock supplies the time the loop derives dt from
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the monotonic wall clock
var SystemClock Clock = ClockFunc(time.Now)

// FixedStepClock moves forward by Step on every reading, from Start
// A zero Step freezes time, so every tick sees dt 0
type FixedStepClock struct {
	Start time.Time
	Step  time.Duration
	reads atomic.Int64
}

func (c *FixedStepClock) Now() time.Time {
	return c.Start.Add(time.Duration(c.reads.Add(1)) * c.Step)
}
