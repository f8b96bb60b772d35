package swisstable

import "math/bits"

const (
	bitsetLSB = 0x0101010101010101
	bitsetMSB = 0x8080808080808080
)

// bitset represents a set of slots within a group.
//
// The underlying representation uses one byte per slot, where each byte is
// either 0x80 if the slot is part of the set or 0x00 otherwise. This makes it
// convenient to compute for an entire group at once with plain arithmetic,
// standing in for the SIMD compare-and-movemask the SwissTable design was
// built around.
type bitset uint64

// first assumes only the MSB of each control byte can be set (e.g. bitset is
// the result of matchEmpty or similar) and returns the relative index of the
// first control byte in the group that has the MSB set.
//
// Returns groupSize if the bitset is empty.
func (b bitset) first() uintptr {
	return uintptr(bits.TrailingZeros64(uint64(b)) >> 3)
}

// removeFirst clears the least significant set bit's byte, so a second call
// to first() (or another removeFirst) moves on to the next match.
func (b bitset) removeFirst() bitset {
	return b & ^(bitset(slotEmpty) << (bits.TrailingZeros64(uint64(b)) & ^7))
}

// matchH2 returns a bitset of the lanes in group whose control byte equals
// h2. Ported from Abseil's raw_hash_set Group::Match.
//
//go:inline
func matchH2(group uint64, h2 uint8) bitset {
	v := group ^ (bitsetLSB * uint64(h2))
	return bitset(((v - bitsetLSB) &^ v) & bitsetMSB)
}

// matchEmpty returns a bitset of the lanes that are exactly slotEmpty.
// (0x80 is 1000_0000; 0xFE is 1111_1110 — the two differ in bit 1.)
//
//go:inline
func matchEmpty(group uint64) bitset {
	return bitset((group &^ (group << 6)) & bitsetMSB)
}

// matchFull returns a bitset of the lanes holding a live entry: any byte
// with its MSB clear is a 7-bit h2 fingerprint.
//
//go:inline
func matchFull(group uint64) bitset {
	return bitset(^group & bitsetMSB)
}

// matchEmptyOrDeleted returns a bitset of the lanes available for a new
// entry: both slotEmpty and slotDeleted have their MSB set, Full lanes don't.
//
//go:inline
func matchEmptyOrDeleted(group uint64) bitset {
	return bitset(group & bitsetMSB)
}

// invertCtrls is the core of an in-place compaction: Full lanes become
// Deleted (marking "previously occupied, still needs moving") and Deleted
// lanes become Empty (dropping the tombstone), while Empty lanes are left
// alone. table.compact walks the result to relocate every marked-Deleted
// entry to its ideal probe position.
func invertCtrls(group uint64) uint64 {
	var out uint64
	for i := uint(0); i < groupSize; i++ {
		shift := i * 8
		switch b := uint8(group >> shift); {
		case b == slotEmpty:
			out |= uint64(slotEmpty) << shift
		case b == slotDeleted:
			out |= uint64(slotEmpty) << shift
		default:
			out |= uint64(slotDeleted) << shift
		}
	}
	return out
}
