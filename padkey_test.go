package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPadKeyWithoutOffsets(t *testing.T) {
	s := NewFloat64Structure()
	buf := s.PairAlloc(1)
	it := NewIterator(buf, s.PairSize())
	it.WriteKey(0, 5)
	val := s.Alloc(1)
	s.CastDouble(1.0, val)
	it.WriteVal(0, val)

	PadKey(2, []int{3, 2}, []int{1, 0}, it, nil)

	require.Equal(t, int64(6), it.Key(0))
	require.Equal(t, 1.0, s.CastToDouble(it.Value(0)))
}

func TestPadKeyWithOffsets(t *testing.T) {
	s := NewFloat64Structure()
	buf := s.PairAlloc(1)
	it := NewIterator(buf, s.PairSize())
	it.WriteKey(0, 5)

	PadKey(2, []int{3, 2}, []int{1, 0}, it, []int{1, 0})

	// digits are (2, 1); with the mode-0 digit biased by 1 before
	// recomposing: knew = 1*(2+1) + 4*1 = 3 + 4 = 7.
	require.Equal(t, int64(7), it.Key(0))
}

func TestPadKeyManyPairsParallel(t *testing.T) {
	s := NewInt32Structure()
	const n = 500
	buf := s.PairAlloc(n)
	it := NewIterator(buf, s.PairSize())
	for i := int64(0); i < n; i++ {
		it.WriteKey(i, i%6)
	}

	PadKey(2, []int{3, 2}, []int{1, 0}, it, nil)

	for i := int64(0); i < n; i++ {
		k := i % 6
		want := (k % 3) + 4*((k/3)%2)
		require.Equalf(t, want, it.Key(i), "pair %d", i)
	}
}
