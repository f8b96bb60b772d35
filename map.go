package swisstable

// Map is an associative container built on a SwissTable: a dense array of
// key/value slots alongside a parallel array of control bytes, so a 7-bit
// hash fingerprint can rule out most slots without touching a key. Map
// grows transparently — inserting a new key never fails for lack of room;
// capacity doubles on its own once the load-factor cap is reached.
type Map[K comparable, V any] struct {
	table[K, V]
}

// New returns an empty Map with the default capacity (16).
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	return NewWithCapacity[K, V](defaultCapacity, opts...)
}

// NewWithCapacity returns an empty Map with at least capacity slots (floored
// at the default, 16, and rounded up to a power of two). At most 7/8 of the
// slots hold entries before an insert grows the map.
func NewWithCapacity[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)
	return &m
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int { return int(m.size) }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Capacity returns N, the total number of slots currently allocated.
func (m *Map[K, V]) Capacity() int { return int(m.capacity) }

// Clear removes every entry, leaving capacity unchanged.
func (m *Map[K, V]) Clear() { m.clear() }

// Insert sets the value for key, returning the previous value and true if
// key was already present. A new key may grow the map; replacing an
// existing key's value never does.
func (m *Map[K, V]) Insert(key K, value V) (previous V, replaced bool, err error) {
	return m.insert(key, value)
}

// Get returns the value stored for key, and whether key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.containsKey(key)
}

// Remove deletes key if present, returning its value and true. Removing an
// absent key is a no-op that returns the zero value and false.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.remove(key)
}

// Keys returns a newly allocated slice of every key, in internal-array
// order at the time of the call. The slice is a snapshot: later mutations
// of the map do not affect it.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.each(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns a newly allocated slice of every value, in the same order
// as Keys and Entries.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	m.each(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Entry is one key/value pair returned by Map.Entries.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Entries returns a newly allocated slice of every key/value pair, in the
// same order as Keys and Values.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	m.each(func(k K, v V) bool {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return entries
}

// Compact reclaims tombstone slots without changing capacity. Insert calls
// this automatically when tombstones dominate the load-cap pressure; it is
// exposed directly for callers that know a burst of removals just happened
// and want the probe chains healthy again before the next insert forces the
// decision.
func (m *Map[K, V]) Compact() { m.compact() }

// Stats returns a point-in-time snapshot of the map's internal state.
func (m *Map[K, V]) Stats() Stats { return m.statsSnapshot() }

// All returns an iterator over every key/value pair, in the same order as
// Entries. Any mutation of the map during iteration invalidates it — All
// is a live view over internal storage, not a snapshot; use Entries when
// the map will be mutated while the result is still in use.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		m.each(yield)
	}
}
