/*
Package blas provides a float64-specialized fast path for
coordinate-to-compressed conversion, the kind of routine the reference
engine offloads to a vendor sparse BLAS library (MKL's mkl_?csrcoo and
friends) for the element types it recognizes. No such vendor binding is
available in the surrounding Go ecosystem, so the fast path here is a
plain-Go equivalent restricted to the one element type (float64) it is
worth specializing; every other element size takes the
structure-generic conversion in convert.go.
*/
package blas
