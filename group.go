package swisstable

// groupSize is the number of slots packed into a single group. Eight lets the
// group's control bytes fit in one uint64, so matching against them is a
// handful of bitwise ops instead of a byte-by-byte scan.
const groupSize = 8

type group[K comparable, V any] struct {
	// 8 bytes of control metadata (h2 fingerprint, or Empty/Deleted).
	// Loaded as a single uint64 by the bitset matchers in bits.go.
	ctrls [groupSize]uint8

	// 8 keys, parallel to ctrls. On a 64-bit system this group is
	// (8 + 8*8) = 72 bytes, just over one cache line.
	slots [groupSize]K

	// 8 values, parallel to ctrls. If V is struct{} the Go compiler still
	// reserves ctrls/slots layout as above; pick V carefully, a large V
	// pushes neighboring groups out of cache.
	values [groupSize]V
}

// emptyGroupCtrls is copied into a fresh or reset group's control bytes.
var emptyGroupCtrls = [groupSize]uint8{
	slotEmpty, slotEmpty, slotEmpty, slotEmpty,
	slotEmpty, slotEmpty, slotEmpty, slotEmpty,
}
