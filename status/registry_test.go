package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMapCachesPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	assert.Same(t, a, b)
	got, ok := r.Ints.Lookup(KeyTicks)
	assert.True(t, ok)
	assert.Same(t, a, got)
	_, ok = r.Ints.Lookup(KeyAgents)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Ints.Count())
}

func TestConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyTicks).Add(1)
			r.Floats.Get(KeyDeltaTime).Add(0.5)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(16), r.Ints.Get(KeyTicks).Load())
	assert.InDelta(t, 8.0, r.Floats.Get(KeyDeltaTime).Load(), 1e-9)
	assert.Equal(t, 2, r.TotalCount())
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("ünïcödé-scene-identifier-that-is-long")
	assert.Len(t, []rune(s.Load()), MaxStringLen)
}

func TestSnapshotOrder(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeySceneIndex).Store(3)
	r.Ints.Get(KeyAgents).Store(12)
	r.Strings.Get(KeySceneID).Store("band")
	r.Floats.Get(KeyDeltaTime).Store(0.0166)
	r.Bools.Get(KeyLoopRunning).Store(true)

	assert.Equal(t, []Entry{
		{KeySceneIndex, "3"},
		{KeyAgents, "12"},
		{KeySceneID, "band"},
		{KeyDeltaTime, "0.017"},
		{KeyLoopRunning, "true"},
	}, r.Snapshot())
}

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 60.0, f.Smooth(60, 0.1))
	assert.InDelta(t, 57.0, f.Smooth(30, 0.1), 1e-9)
	assert.InDelta(t, 57.0, f.Load(), 1e-9)
}
