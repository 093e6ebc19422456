// internal/types/ids.go
package types

import "sort"

// IDSet is a set of element ids.
type IDSet map[int]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership. Safe on a nil set.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Add(id int)    { s[id] = struct{}{} }
func (s IDSet) Remove(id int) { delete(s, id) }

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clone returns an independent copy of the set.
func (s IDSet) Clone() IDSet {
	c := make(IDSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Equal reports whether both sets hold the same ids.
func (s IDSet) Equal(o IDSet) bool {
	if len(s) != len(o) {
		return false
	}
	for id := range s {
		if !o.Has(id) {
			return false
		}
	}
	return true
}

// Modifiers carries the keyboard modifier state of a pointer event.
type Modifiers struct {
	Ctrl  bool
	Meta  bool
	Shift bool
}

// Multi reports whether the multi-select modifier (Ctrl or Meta) is held.
func (m Modifiers) Multi() bool {
	return m.Ctrl || m.Meta
}
