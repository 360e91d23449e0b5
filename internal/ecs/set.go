package ecs

// Set is an insertion-ordered collection with unique membership.
// Iteration order is the order in which members were first added.
//
// Remove leaves a hole that is swept out by the next Items call, or by
// Add once holes make up half the backing slice.
type Set[T comparable] struct {
	name    string
	entries []entry[T]
	index   map[T]int
	holes   int
}

type entry[T comparable] struct {
	v    T
	live bool
}

// NewSet creates an empty named set
func NewSet[T comparable](name string) *Set[T] {
	return &Set[T]{
		name:  name,
		index: make(map[T]int),
	}
}

// Name returns the label used for metrics and logs
func (s *Set[T]) Name() string {
	return s.name
}

// Add inserts v. Adding an existing member is a no-op and keeps its position.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	if s.holes > 0 && s.holes*2 >= len(s.entries) {
		s.compact()
	}
	s.index[v] = len(s.entries)
	s.entries = append(s.entries, entry[T]{v: v, live: true})
	return true
}

// Remove deletes v, preserving the order of the remaining members.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.entries[i] = entry[T]{}
	s.holes++
	return true
}

// Has reports membership
func (s *Set[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the member count
func (s *Set[T]) Len() int {
	return len(s.index)
}

// Items returns a snapshot copy in insertion order.
// Callers may add or remove members while ranging over the snapshot.
func (s *Set[T]) Items() []T {
	s.compact()
	out := make([]T, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.v
	}
	return out
}

// Clear removes every member
func (s *Set[T]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.holes = 0
	clear(s.index)
}

// Detach removes v if it is a T. It lets a Registry hold sets of
// different element types behind one interface.
func (s *Set[T]) Detach(v any) bool {
	t, ok := v.(T)
	if !ok {
		return false
	}
	return s.Remove(t)
}

// compact drops holes in one pass and reindexes the survivors
func (s *Set[T]) compact() {
	if s.holes == 0 {
		return
	}
	n := 0
	for _, e := range s.entries {
		if !e.live {
			continue
		}
		s.entries[n] = e
		s.index[e.v] = n
		n++
	}
	clear(s.entries[n:])
	s.entries = s.entries[:n]
	s.holes = 0
}
