package tensor

import (
	"fmt"
	"io"
	"math"
)

// This file holds constructors that preconfigure a Structure_[T] with
// the type-correct identities, ordering, casts and printer for each of
// the primitive element rings this package specializes — float, double,
// (long double, mapped here to float64 in the absence of a distinct
// Go type), int32, int64, uint64, bool, byte (a
// single-octet ring) and the float/double complex variants.

// NewFloat32Structure returns the AS for float32 elements.
func NewFloat32Structure() *Structure_[float32] {
	return NewStructure[float32](
		WithAddID[float32](0),
		WithMulID[float32](1),
		WithOrdered(orderedMin[float32], orderedMax[float32], -math.MaxFloat32, math.MaxFloat32),
		WithAbs(negateAbs[float32]),
		WithArith(func(a, b float32) float32 { return a + b }, func(a, b float32) float32 { return a * b }),
		WithEqual(func(a, b float32) bool { return a == b }),
		WithNumericCasts(
			func(v float32) float64 { return float64(v) },
			func(d float64) float32 { return float32(d) },
			func(v float32) int64 { return int64(v) },
			func(i int64) float32 { return float32(i) },
		),
		WithPrinter(func(w io.Writer, v float32) { fmt.Fprintf(w, "%11.5E", v) }),
		WithTransportType[float32](float32TransportType),
	)
}

// NewFloat64Structure returns the AS for float64 elements.
func NewFloat64Structure() *Structure_[float64] {
	return NewStructure[float64](
		WithAddID[float64](0),
		WithMulID[float64](1),
		WithOrdered(orderedMin[float64], orderedMax[float64], -math.MaxFloat64, math.MaxFloat64),
		WithAbs(negateAbs[float64]),
		WithArith(func(a, b float64) float64 { return a + b }, func(a, b float64) float64 { return a * b }),
		WithEqual(func(a, b float64) bool { return a == b }),
		WithNumericCasts(
			func(v float64) float64 { return v },
			func(d float64) float64 { return d },
			func(v float64) int64 { return int64(v) },
			func(i int64) float64 { return float64(i) },
		),
		WithPrinter(func(w io.Writer, v float64) { fmt.Fprintf(w, "%11.5E", v) }),
		WithTransportType[float64](float64TransportType),
	)
}

// NewInt32Structure returns the AS for int32 elements.
func NewInt32Structure() *Structure_[int32] {
	return NewStructure[int32](
		WithAddID[int32](0),
		WithMulID[int32](1),
		WithOrdered(orderedMin[int32], orderedMax[int32], math.MinInt32, math.MaxInt32),
		WithAbs(negateAbs[int32]),
		WithArith(func(a, b int32) int32 { return a + b }, func(a, b int32) int32 { return a * b }),
		WithNumericCasts(
			func(v int32) float64 { return float64(v) },
			func(d float64) int32 { return int32(d) },
			func(v int32) int64 { return int64(v) },
			func(i int64) int32 { return int32(i) },
		),
		WithPrinter(func(w io.Writer, v int32) { fmt.Fprintf(w, "%d", v) }),
		WithTransportType[int32](int32TransportType),
	)
}

// NewInt64Structure returns the AS for int64 elements.
func NewInt64Structure() *Structure_[int64] {
	return NewStructure[int64](
		WithAddID[int64](0),
		WithMulID[int64](1),
		WithOrdered(orderedMin[int64], orderedMax[int64], math.MinInt64, math.MaxInt64),
		WithAbs(negateAbs[int64]),
		WithArith(func(a, b int64) int64 { return a + b }, func(a, b int64) int64 { return a * b }),
		WithNumericCasts(
			func(v int64) float64 { return float64(v) },
			func(d float64) int64 { return int64(d) },
			func(v int64) int64 { return v },
			func(i int64) int64 { return i },
		),
		WithPrinter(func(w io.Writer, v int64) { fmt.Fprintf(w, "%d", v) }),
		WithTransportType[int64](int64TransportType),
	)
}

// NewUint64Structure returns the AS for uint64 elements.
func NewUint64Structure() *Structure_[uint64] {
	return NewStructure[uint64](
		WithAddID[uint64](0),
		WithMulID[uint64](1),
		WithOrdered(orderedMin[uint64], orderedMax[uint64], 0, math.MaxUint64),
		WithAbs(identityAbs[uint64]),
		WithArith(func(a, b uint64) uint64 { return a + b }, func(a, b uint64) uint64 { return a * b }),
		WithNumericCasts(
			func(v uint64) float64 { return float64(v) },
			func(d float64) uint64 { return uint64(d) },
			func(v uint64) int64 { return int64(v) },
			func(i int64) uint64 { return uint64(i) },
		),
		WithPrinter(func(w io.Writer, v uint64) { fmt.Fprintf(w, "%d", v) }),
		WithTransportType[uint64](uint64TransportType),
	)
}

// NewByteStructure returns the AS for byte elements. A byte
// is ordered by default traits but has no identity elements and
// no specialized numeric casts.
func NewByteStructure() *Structure_[byte] {
	return NewStructure[byte](
		WithOrdered(orderedMin[byte], orderedMax[byte], 0, math.MaxUint8),
		WithAbs(identityAbs[byte]),
		WithPrinter(func(w io.Writer, v byte) { fmt.Fprintf(w, "%c", v) }),
		WithTransportType[byte](byteTransportType),
	)
}

// NewBoolStructure returns the AS for bool elements. bool is ordered
// by default traits (false < true) even though Go gives bool no
// < operator, so its reducers are hand-rolled rather than built from
// orderedMin/orderedMax.
func NewBoolStructure() *Structure_[bool] {
	return NewStructure[bool](
		WithAddID[bool](false),
		WithOrdered(boolMin, boolMax, false, true),
		WithAbs(identityAbs[bool]),
		WithNumericCasts[bool](nil, nil, func(v bool) int64 {
			if v {
				return 1
			}
			return 0
		}, nil),
		WithPrinter(func(w io.Writer, v bool) { fmt.Fprintf(w, "%t", v) }),
		WithTransportType[bool](boolTransportType),
	)
}

// NewComplex64Structure returns the AS for complex64 elements.
// Complex rings are not ordered: Min, Max, Abs
// and MinVal/MaxVal all panic.
func NewComplex64Structure() *Structure_[complex64] {
	return NewStructure[complex64](
		WithAddID[complex64](0),
		WithMulID[complex64](1),
		WithArith(func(a, b complex64) complex64 { return a + b }, func(a, b complex64) complex64 { return a * b }),
		WithEqual(func(a, b complex64) bool { return a == b }),
		WithNumericCasts[complex64](
			nil, nil, nil, nil,
		),
		WithPrinter(func(w io.Writer, v complex64) {
			fmt.Fprintf(w, "(%11.5E,%11.5E)", real(v), imag(v))
		}),
		WithTransportType[complex64](complex64TransportType),
	)
}

// NewComplex128Structure returns the AS for complex128 elements
// (also used for the long-double-complex
// fast path, since Go has no wider complex type).
func NewComplex128Structure() *Structure_[complex128] {
	return NewStructure[complex128](
		WithAddID[complex128](0),
		WithMulID[complex128](1),
		WithArith(func(a, b complex128) complex128 { return a + b }, func(a, b complex128) complex128 { return a * b }),
		WithEqual(func(a, b complex128) bool { return a == b }),
		WithPrinter(func(w io.Writer, v complex128) {
			fmt.Fprintf(w, "(%11.5E,%11.5E)", real(v), imag(v))
		}),
		WithTransportType[complex128](complex128TransportType),
	)
}
