package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat64StructureArith(t *testing.T) {
	s := NewFloat64Structure()
	a := s.Alloc(1)
	b := s.Alloc(1)
	out := s.Alloc(1)
	s.CastDouble(2.5, a)
	s.CastDouble(4.0, b)

	s.Add(a, b, out)
	require.Equal(t, 6.5, s.CastToDouble(out))

	s.Mul(a, b, out)
	require.Equal(t, 10.0, s.CastToDouble(out))

	require.True(t, s.IsOrdered())
	s.Min(a, b, out)
	require.Equal(t, 2.5, s.CastToDouble(out))
	s.Max(a, b, out)
	require.Equal(t, 4.0, s.CastToDouble(out))

	require.True(t, s.AddID(out))
	require.Equal(t, 0.0, s.CastToDouble(out))
	require.True(t, s.MulID(out))
	require.Equal(t, 1.0, s.CastToDouble(out))
}

func TestBoolStructureOrderingWithoutLessOperator(t *testing.T) {
	s := NewBoolStructure()
	a, b, out := s.Alloc(1), s.Alloc(1), s.Alloc(1)

	store(a, false)
	store(b, true)
	s.Min(a, b, out)
	require.Equal(t, false, load[bool](out))
	s.Max(a, b, out)
	require.Equal(t, true, load[bool](out))

	require.Equal(t, int64(1), s.CastToInt(b))
	require.Equal(t, int64(0), s.CastToInt(a))
}

func TestByteStructureHasNoIdentities(t *testing.T) {
	s := NewByteStructure()
	out := s.Alloc(1)
	require.False(t, s.AddID(out))
	require.False(t, s.MulID(out))
}

func TestComplex128StructureIsUnordered(t *testing.T) {
	s := NewComplex128Structure()
	a, b, out := s.Alloc(1), s.Alloc(1), s.Alloc(1)
	store(a, complex(1, 2))
	store(b, complex(3, 4))

	s.Add(a, b, out)
	require.Equal(t, complex(4.0, 6.0), load[complex128](out))

	require.False(t, s.IsOrdered())
	require.Panics(t, func() { s.Min(a, b, out) })
	require.Panics(t, func() { s.Abs(a, out) })
}

func TestStructureWithoutNumericCastsPanics(t *testing.T) {
	s := NewStructure[int32]()
	out := s.Alloc(1)
	require.Panics(t, func() { s.CastDouble(1.0, out) })
	require.Panics(t, func() { s.CastInt(1, out) })
	require.Panics(t, func() { s.Add(out, out, out) })
}
