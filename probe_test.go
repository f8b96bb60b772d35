package swisstable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestProbeSeqVisitsEveryGroupOnce checks that, because numGroups is always
// a power of two, the probe sequence visits every group exactly once before
// repeating.
func TestProbeSeqVisitsEveryGroupOnce(t *testing.T) {
	for trial := 0; trial < 200; trial++ {
		numGroups := uintptr(1) << (1 + uintptr(rand.Intn(8))) // 2..256
		mask := numGroups - 1

		h1 := uintptr(rand.Uint64())
		ps := newProbeSeq(h1, mask)

		seen := make(map[uintptr]bool, numGroups)
		for i := uintptr(0); i < numGroups; i++ {
			require.Falsef(t, seen[ps.index], "group %d visited twice before a full cycle", ps.index)
			seen[ps.index] = true
			ps.advance()
		}
		require.Len(t, seen, int(numGroups))
	}
}
