package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPadTensorCountingInvariant(t *testing.T) {
	s := NewFloat64Structure()
	td := &TensorDescriptor{
		Order:        2,
		EdgeLen:      []int{3, 2},
		Padding:      []int{1, 0},
		Sym:          []Sym{NS, NS},
		PhysPhase:    []int{1, 1},
		VirtPhase:    []int{1, 1},
		VirtPhysRank: []int{0, 0},
	}

	size := int64(6)
	oldIt := NewIterator(s.PairAlloc(size), s.PairSize())
	for i := int64(0); i < size; i++ {
		oldIt.WriteKey(i, i)
		val := s.Alloc(1)
		s.CastDouble(float64(i+1), val)
		oldIt.WriteVal(i, val)
	}

	out, padEl := PadTensor(td, oldIt.Bytes(), size, s)

	require.Equal(t, int64(8), padEl)
	require.Equal(t, int64(2), padEl-size)

	// The last `size` slots carry the original data, in order.
	for i := int64(0); i < size; i++ {
		pos := padEl - size + i
		require.Equal(t, float64(i+1), s.CastToDouble(out.Value(pos)))
	}
}

func TestPadTensorPanicsOnDescriptorMismatch(t *testing.T) {
	s := NewFloat64Structure()
	td := &TensorDescriptor{
		Order:        2,
		EdgeLen:      []int{3, 2},
		Padding:      []int{1, 0},
		Sym:          []Sym{NS, NS},
		PhysPhase:    []int{1, 1},
		VirtPhase:    []int{1, 1},
		VirtPhysRank: []int{0, 0},
	}
	old := s.PairAlloc(5)
	require.Panics(t, func() { PadTensor(td, old, 5, s) })
}
