package swisstable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchH2(t *testing.T) {
	// bytes, LSB (index 0) to MSB (index 7): FE 80 7F 00 02 01 7F 00
	group := uint64(0x00_7F_01_02_00_7F_80_FE)
	m := matchH2(group, 0x00)
	require.Equal(t, uintptr(3), m.first())
	m = m.removeFirst()
	require.Equal(t, uintptr(7), m.first())
	m = m.removeFirst()
	require.Equal(t, bitset(0), m)
}

func TestMatchEmpty(t *testing.T) {
	group := uint64(0x80_FE_00_01_7F_FE_80_80)
	m := matchEmpty(group)
	require.Equal(t, uintptr(0), m.first())
	m = m.removeFirst()
	require.Equal(t, uintptr(1), m.first())
	m = m.removeFirst()
	require.Equal(t, uintptr(7), m.first())
}

func TestMatchFullAndEmptyOrDeleted(t *testing.T) {
	group := uint64(0x80_FE_00_01_7F_FE_80_80)
	full := matchFull(group)
	emptyOrDeleted := matchEmptyOrDeleted(group)

	require.NotEqual(t, bitset(0), full)
	require.NotEqual(t, bitset(0), emptyOrDeleted)
	require.Equal(t, bitset(0), bitset(uint64(full)&uint64(emptyOrDeleted)))
}

func TestInvertCtrls(t *testing.T) {
	tests := []struct {
		name  string
		input uint64
		want  uint64
	}{
		{"all empty", 0x8080808080808080, 0x8080808080808080},
		{"all deleted", 0xFEFEFEFEFEFEFEFE, 0x8080808080808080},
		{"all full h2=0", 0x0000000000000000, 0xFEFEFEFEFEFEFEFE},
		{"all full h2=0x7F", 0x7F7F7F7F7F7F7F7F, 0xFEFEFEFEFEFEFEFE},
		{"mixed h2 values", 0x0102030405060708, 0xFEFEFEFEFEFEFEFE},
		{"mixed full/empty/deleted", 0x00_80_FE_42_80_FE_7F_01, 0xFE_80_80_FE_80_80_FE_FE},
		{"alternating full/empty", 0x80_00_80_00_80_00_80_00, 0x80_FE_80_FE_80_FE_80_FE},
		{"single full first byte", 0x8080808080808000, 0x808080808080_80FE},
		{"single deleted last byte", 0xFE80808080808080, 0x8080808080808080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invertCtrls(tt.input)
			require.Equalf(t, tt.want, got, "invertCtrls(0x%016X)", tt.input)
		})
	}
}
