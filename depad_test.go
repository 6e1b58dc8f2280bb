package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDepadTensorSymmetric2D depads a 4x4 padded key space (edge_len
// [3,3], padding [1,1]) with mode 0 symmetric to mode 1. Of the 16
// possible padded keys, only the 6 upper-triangular positions of the
// unpadded 3x3 symmetric matrix survive: (0,0) (0,1) (1,1) (0,2) (1,2)
// (2,2), i.e. keys {0, 4, 5, 8, 9, 10}.
func TestDepadTensorSymmetric2D(t *testing.T) {
	s := NewFloat64Structure()
	n := int64(16)
	buf := s.PairAlloc(n)
	it := NewIterator(buf, s.PairSize())
	for k := int64(0); k < n; k++ {
		it.WriteKey(k, k)
		val := s.Alloc(1)
		s.CastDouble(float64(k), val)
		it.WriteVal(k, val)
	}

	out, total := DepadTensor(2, []int{3, 3}, []Sym{SY, NS}, []int{1, 1}, []int{0, 0}, NewConstIterator(buf, s.PairSize()), s)

	require.Equal(t, int64(6), total)
	got := make([]int64, total)
	for i := int64(0); i < total; i++ {
		got[i] = out.Key(i)
	}
	require.Equal(t, []int64{0, 4, 5, 8, 9, 10}, got)

	for i := int64(0); i < total; i++ {
		require.Equal(t, float64(got[i]), s.CastToDouble(out.Value(i)))
	}
}

func TestDepadTensorNoSymmetryKeepsLogicalRegion(t *testing.T) {
	s := NewFloat64Structure()
	// edge_len [2,2], padding [1,0]: padded radix [3,2]. Logical keys
	// are those whose mode-0 digit is < 2 (mode 1 has no padding).
	n := int64(6)
	buf := s.PairAlloc(n)
	it := NewIterator(buf, s.PairSize())
	for k := int64(0); k < n; k++ {
		it.WriteKey(k, k)
	}

	out, total := DepadTensor(2, []int{2, 2}, []Sym{NS, NS}, []int{1, 0}, []int{0, 0}, NewConstIterator(buf, s.PairSize()), s)

	// k=0:(0,0) keep; k=1:(1,0) keep; k=2:(2,0) pad, drop;
	// k=3:(0,1) keep; k=4:(1,1) keep; k=5:(2,1) pad, drop.
	require.Equal(t, int64(4), total)
	got := make([]int64, total)
	for i := int64(0); i < total; i++ {
		got[i] = out.Key(i)
	}
	require.Equal(t, []int64{0, 1, 3, 4}, got)
}
