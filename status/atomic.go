package status

import (
	"math"
	"sync/atomic"
)

// MaxStringLen bounds stored strings so status bar cells stay fixed width
const MaxStringLen = 24

// AtomicFloat is a float64 gauge stored as IEEE bits
// Zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.update(func(v float64) float64 { return v + delta })
}

// Smooth folds sample into an exponential moving average with weight alpha
// The first sample on a zero gauge is stored as is
func (f *AtomicFloat) Smooth(sample, alpha float64) float64 {
	return f.update(func(v float64) float64 {
		if v == 0 {
			return sample
		}
		return v + alpha*(sample-v)
	})
}

func (f *AtomicFloat) update(fn func(float64) float64) float64 {
	for {
		old := f.bits.Load()
		next := fn(math.Float64frombits(old))
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// AtomicString holds a short label such as the current scene id
// Zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating to MaxStringLen runes
func (s *AtomicString) Store(val string) {
	if r := []rune(val); len(r) > MaxStringLen {
		val = string(r[:MaxStringLen])
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
