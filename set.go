package swisstable

// Set is a thin projection of Map[K, struct{}]: it carries no invariants of
// its own beyond the map it wraps and simply renames operations to set
// semantics.
type Set[K comparable] struct {
	table[K, struct{}]
}

// NewSet returns an empty Set with the default capacity.
func NewSet[K comparable](opts ...Option[K, struct{}]) *Set[K] {
	return NewSetWithCapacity[K](defaultCapacity, opts...)
}

// NewSetWithCapacity returns an empty Set with at least capacity slots
// (floored at the default, 16, and rounded up to a power of two). At most
// 7/8 of the slots hold elements before an insert grows the set.
func NewSetWithCapacity[K comparable](capacity int, opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.init(capacity, opts...)
	return &s
}

// Len returns the number of elements currently stored.
func (s *Set[K]) Len() int { return int(s.size) }

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool { return s.size == 0 }

// Capacity returns N, the total number of slots currently allocated.
func (s *Set[K]) Capacity() int { return int(s.capacity) }

// Clear removes every element, leaving capacity unchanged.
func (s *Set[K]) Clear() { s.clear() }

// Insert adds v to the set, returning true if v was not already present. A
// genuinely new element may grow the set; re-inserting an existing one
// never does.
func (s *Set[K]) Insert(v K) (inserted bool, err error) {
	_, replaced, err := s.insert(v, struct{}{})
	if err != nil {
		return false, err
	}
	return !replaced, nil
}

// Remove deletes v if present, returning true if it was.
func (s *Set[K]) Remove(v K) bool {
	_, ok := s.remove(v)
	return ok
}

// Contains reports whether v is present.
func (s *Set[K]) Contains(v K) bool {
	return s.containsKey(v)
}

// Values returns a newly allocated slice of every element, in
// internal-array order at the time of the call. The slice is a snapshot.
func (s *Set[K]) Values() []K {
	values := make([]K, 0, s.size)
	s.each(func(k K, _ struct{}) bool {
		values = append(values, k)
		return true
	})
	return values
}

// Compact reclaims tombstone slots without changing capacity; see
// Map.Compact.
func (s *Set[K]) Compact() { s.compact() }

// Stats returns a point-in-time snapshot of the set's internal state.
func (s *Set[K]) Stats() Stats { return s.statsSnapshot() }

// All returns a live iterator over every element, in the same order as
// Values. Like Map.All, any mutation during iteration invalidates it.
func (s *Set[K]) All() func(yield func(K) bool) {
	return func(yield func(K) bool) {
		s.each(func(k K, _ struct{}) bool {
			return yield(k)
		})
	}
}
