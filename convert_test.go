package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCooToCSRSmallExample(t *testing.T) {
	s := NewFloat64Structure()
	coo := NewCOO(s, 3, 3, 4)
	coo.Rs = []int{1, 2, 2, 3}
	coo.Cs = []int{1, 2, 3, 1}
	for i, v := range []float64{1, 2, 3, 4} {
		s.CastDouble(v, coo.Vs[i*8:(i+1)*8])
	}

	csr := CooToCSR(s, coo)
	require.Equal(t, []int{1, 2, 4, 5}, csr.Ia)
	require.Equal(t, []int{1, 2, 3, 1}, csr.Ja)
	require.Equal(t, int64(4), csr.NNZ())

	require.Equal(t, 1.0, s.CastToDouble(csr.At(s, 1, 1)))
	require.Equal(t, 2.0, s.CastToDouble(csr.At(s, 2, 2)))
	require.Equal(t, 3.0, s.CastToDouble(csr.At(s, 2, 3)))
	require.Equal(t, 4.0, s.CastToDouble(csr.At(s, 3, 1)))
	require.Equal(t, 0.0, s.CastToDouble(csr.At(s, 1, 2)))
}

func TestCooToCSRPreservesDuplicateCoordinates(t *testing.T) {
	s := NewFloat64Structure()
	coo := NewCOO(s, 2, 2, 3)
	coo.Rs = []int{1, 1, 2}
	coo.Cs = []int{1, 1, 2}
	for i, v := range []float64{5, -5, 9} {
		s.CastDouble(v, coo.Vs[i*8:(i+1)*8])
	}

	csr := CooToCSR(s, coo)
	require.Equal(t, int64(3), csr.NNZ())
	require.Equal(t, []int{1, 3, 4}, csr.Ia)
	require.Equal(t, []int{1, 1, 2}, csr.Ja)

	// Both (1, 1) entries survive as distinct stored slots, in their
	// original relative order; CSR.At only ever reports the first one
	// it finds walking the row, which is why this checks the raw
	// storage rather than At.
	require.Equal(t, 5.0, s.CastToDouble(csr.Vs[0:8]))
	require.Equal(t, -5.0, s.CastToDouble(csr.Vs[8:16]))
	require.Equal(t, 9.0, s.CastToDouble(csr.Vs[16:24]))

	require.Equal(t, 5.0, s.CastToDouble(csr.At(s, 1, 1)))
	require.Equal(t, 9.0, s.CastToDouble(csr.At(s, 2, 2)))
}

func TestCsrToCooRoundTrip(t *testing.T) {
	s := NewFloat64Structure()
	coo := NewCOO(s, 3, 3, 4)
	coo.Rs = []int{1, 2, 2, 3}
	coo.Cs = []int{1, 2, 3, 1}
	for i, v := range []float64{1, 2, 3, 4} {
		s.CastDouble(v, coo.Vs[i*8:(i+1)*8])
	}

	csr := CooToCSR(s, coo)
	back := CsrToCOO(s, csr)

	require.Equal(t, int(csr.NNZ()), len(back.Rs))
	for i := range back.Rs {
		require.Equal(t, s.CastToDouble(csr.At(s, back.Rs[i], back.Cs[i])), s.CastToDouble(back.Vs[i*8:(i+1)*8]))
	}
}

func TestCooToCSRInt32GenericPath(t *testing.T) {
	s := NewInt32Structure()
	coo := NewCOO(s, 2, 2, 2)
	coo.Rs = []int{1, 2}
	coo.Cs = []int{2, 1}
	s.CastInt(7, coo.Vs[0:4])
	s.CastInt(-3, coo.Vs[4:8])

	csr := CooToCSR(s, coo)
	require.Equal(t, int64(7), s.CastToInt(csr.At(s, 1, 2)))
	require.Equal(t, int64(-3), s.CastToInt(csr.At(s, 2, 1)))
}
