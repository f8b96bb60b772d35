package swisstable

import (
	"math/bits"
	"unsafe"
)

// nextPow2 returns the smallest power of two >= v. Callers only ever pass
// v >= defaultCapacity, so the v == 0 edge case that this formula
// mishandles never arises here.
func nextPow2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

// CapacityFromSize estimates how many slots of a table[K, V] fit in a given
// memory budget, rounding down to a whole number of groups. Useful for
// sizing a table against a fixed memory allowance instead of an expected
// entry count.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	sizeOfGroup := unsafe.Sizeof(group[K, V]{})
	numGroups := size / sizeOfGroup
	return int(numGroups * groupSize)
}
