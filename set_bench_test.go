package swisstable

import "testing"

func BenchmarkSet_Contains(b *testing.B) {
	const capacity = 8192
	keys := setupBenchKeys(capacity / 2)
	s := NewSetWithCapacity[uint64](capacity)
	for _, k := range keys {
		s.Insert(k)
	}

	for i := 0; b.Loop(); i++ {
		s.Contains(uint64(i))
	}
}

func BenchmarkStdMapAsSet_Contains(b *testing.B) {
	const capacity = 8192
	keys := setupBenchKeys(capacity / 2)
	std := make(map[uint64]struct{}, capacity)
	for _, k := range keys {
		std[k] = struct{}{}
	}

	for i := 0; b.Loop(); i++ {
		_, _ = std[uint64(i)]
	}
}

// BenchmarkLargeScaleSet_Contains exercises cache-miss-heavy lookups across
// a multi-megabyte table, jumping around with an odd stride (1337, coprime
// with the power-of-two key count) instead of walking sequentially.
func BenchmarkLargeScaleSet_Contains(b *testing.B) {
	const capacity = 1 << 20
	keys := make([]uint64, capacity/2)
	for i := range keys {
		keys[i] = uint64(i * 9876543210123)
	}

	s := NewSetWithCapacity[uint64](capacity)
	for _, k := range keys {
		s.Insert(k)
	}

	for i := 0; b.Loop(); i++ {
		s.Contains(keys[(uintptr(i)*1337)%uintptr(len(keys))])
	}
}

func BenchmarkLargeScaleStdMapAsSet_Contains(b *testing.B) {
	const capacity = 1 << 20
	keys := make([]uint64, capacity/2)
	for i := range keys {
		keys[i] = uint64(i * 9876543210123)
	}

	std := make(map[uint64]struct{}, capacity)
	for _, k := range keys {
		std[k] = struct{}{}
	}

	for i := 0; b.Loop(); i++ {
		_, _ = std[keys[(uintptr(i)*1337)%uintptr(len(keys))]]
	}
}
