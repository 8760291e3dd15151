// Package highlight tracks which agents are currently enlarged in a band
// scene, most recent last.
package highlight

import "slices"

// Stack is an ordered set of agent ids
// An id appears at most once; Toggle pushes or removes it
type Stack struct {
	ids []string
}

// Toggle pushes id when absent and removes it when present
// Returns true when id was pushed
func (s *Stack) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove deletes id wherever it sits; reports whether it was present
func (s *Stack) Remove(id string) bool {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

func (s *Stack) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// Top returns the most recently pushed id
func (s *Stack) Top() (string, bool) {
	if len(s.ids) == 0 {
		return "", false
	}
	return s.ids[len(s.ids)-1], true
}

func (s *Stack) Len() int { return len(s.ids) }

// IDs returns a copy, bottom first
func (s *Stack) IDs() []string {
	return slices.Clone(s.ids)
}

func (s *Stack) Reset() {
	s.ids = s.ids[:0]
}
