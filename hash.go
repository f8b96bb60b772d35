package swisstable

import "hash/maphash"

// HashFunc is the hash capability a key type supplies: it must be
// deterministic for the lifetime of k and agree with the equality
// capability (equal(a,b) => hash(a) == hash(b)).
type HashFunc[K comparable] func(k K) uint64

// EqualFunc is the equality capability a key type supplies. A table built
// without WithEqualFunc uses Go's built-in == via defaultEqual; EqualFunc
// only needs wiring when a caller's notion of equality differs from ==.
type EqualFunc[K comparable] func(a, b K) bool

// MakeDefaultHashFunc returns the default HashFunc for comparable key types:
// maphash.Comparable seeded once per table instance, so two tables never
// share a seed, guarding against hash-flooding a long-lived table built
// from attacker-controlled keys.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

func defaultEqual[K comparable](a, b K) bool {
	return a == b
}

// HashSplit divides a key's hash into the bucket seed h1 (all but the low 7
// bits) and the fingerprint h2 (the low 7 bits).
func HashSplit(hash uint64) (h1 uintptr, h2 uint8) {
	return uintptr(hash >> 7), uint8(hash & 0x7f)
}
