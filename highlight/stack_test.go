package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestToggle(t *testing.T) {
	var s Stack
	assert.True(t, s.Toggle("a"))
	assert.True(t, s.Toggle("b"))
	assert.True(t, s.Toggle("c"))
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	top, ok := s.Top()
	assert.True(t, ok)
	assert.Equal(t, "c", top)

	// removal by id, not by position
	assert.False(t, s.Toggle("b"))
	assert.Equal(t, []string{"a", "c"}, s.IDs())
	assert.False(t, s.Contains("b"))

	s.Reset()
	assert.Equal(t, 0, s.Len())
	_, ok = s.Top()
	assert.False(t, ok)
}

func TestRemoveAbsent(t *testing.T) {
	var s Stack
	s.Toggle("a")
	assert.False(t, s.Remove("zz"))
	assert.Equal(t, []string{"a"}, s.IDs())
}

func TestIDsIsCopy(t *testing.T) {
	var s Stack
	s.Toggle("a")
	ids := s.IDs()
	ids[0] = "mutated"
	assert.True(t, s.Contains("a"))
}

func TestStackHoldsUniqueIDs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s Stack
		model := map[string]bool{}
		ops := rapid.SliceOf(rapid.SampledFrom([]string{"a", "b", "c", "d"})).Draw(t, "ops")
		for _, id := range ops {
			pushed := s.Toggle(id)
			if pushed == model[id] {
				t.Fatalf("toggle %s: pushed=%v but present=%v", id, pushed, model[id])
			}
			model[id] = !model[id]
		}

		seen := map[string]bool{}
		for _, id := range s.IDs() {
			if seen[id] {
				t.Fatalf("duplicate %s", id)
			}
			seen[id] = true
			if !model[id] {
				t.Fatalf("unexpected %s", id)
			}
		}
		for id, in := range model {
			if in != s.Contains(id) {
				t.Fatalf("%s: want %v", id, in)
			}
		}
	})
}
