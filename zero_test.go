package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroPaddingOrderZeroIsNoOp(t *testing.T) {
	s := NewFloat64Structure()
	data := s.Alloc(3)
	for i := int64(0); i < 3; i++ {
		s.CastDouble(float64(i+1), data[i*8:(i+1)*8])
	}
	before := append([]byte(nil), data...)

	ZeroPadding(0, 3, 1, nil, nil, nil, nil, nil, nil, data, s)

	require.Equal(t, before, data)
}

func TestZeroPaddingOneMode(t *testing.T) {
	s := NewFloat64Structure()
	// Logical extent 3, one padding slot -> padded edge_len 4.
	data := s.Alloc(4)
	for i := int64(0); i < 4; i++ {
		s.CastDouble(float64(10*(i+1)), data[i*8:(i+1)*8])
	}

	ZeroPadding(1, 4, 1, []int{4}, []int{1}, []int{1}, []int{1}, []int{0}, []Sym{NS}, data, s)

	require.Equal(t, 10.0, s.CastToDouble(data[0:8]))
	require.Equal(t, 20.0, s.CastToDouble(data[8:16]))
	require.Equal(t, 30.0, s.CastToDouble(data[16:24]))
	require.Equal(t, 0.0, s.CastToDouble(data[24:32]))
}

func TestZeroPaddingIsIdempotent(t *testing.T) {
	s := NewFloat64Structure()
	data := s.Alloc(4)
	for i := int64(0); i < 4; i++ {
		s.CastDouble(float64(10*(i+1)), data[i*8:(i+1)*8])
	}

	ZeroPadding(1, 4, 1, []int{4}, []int{1}, []int{1}, []int{1}, []int{0}, []Sym{NS}, data, s)
	once := append([]byte(nil), data...)
	ZeroPadding(1, 4, 1, []int{4}, []int{1}, []int{1}, []int{1}, []int{0}, []Sym{NS}, data, s)

	require.Equal(t, once, data)
}
