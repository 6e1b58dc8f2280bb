package tensor

import "golang.org/x/exp/constraints"

// This file is the compile-time (here, generic-constraint-time) lookup
// from a concrete element type to the defaults a Structure_ inherits
// unless explicitly overridden. It mirrors a reference engine's
// default-is-ordered, default-abs, default-min/default-max traits and
// their numeric_limits bounds from set.h, minus the
// enable_if-on-a-bool-template-parameter plumbing that C++ needs and
// Go generics don't.

// orderedMin and orderedMax are the shared default reducers for any
// element type whose underlying Go type supports <, > directly
// (everything except bool, which default traits also treat as ordered but which
// Go does not give a < operator).
func orderedMin[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func orderedMax[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// negateAbs implements default_abs's abs(a) = max(a, -a) for any
// signed or floating-point type, where negation is well defined.
func negateAbs[T constraints.Signed | constraints.Float](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// identityAbs backs the unsigned / single-bit element types for which
// "abs" is the value itself: there is no representable negative to
// compare against, so default_abs's max(a,-a) derivation does not
// apply, but the types are still ordered.
func identityAbs[T any](a T) T { return a }

func boolLess(a, b bool) bool { return !a && b }

func boolMin(a, b bool) bool {
	if boolLess(a, b) {
		return a
	}
	return b
}

func boolMax(a, b bool) bool {
	if boolLess(a, b) {
		return b
	}
	return a
}
