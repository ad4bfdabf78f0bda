// SPDX-License-Identifier: MIT
// Package scalar: the Float constraint, fixed tolerance, and generic
// wrappers over math. All helpers are pure and allocation-free; the
// float32 path round-trips through float64, which is exact for every
// float32 input.

package scalar

import "math"

// Float is the scalar field vmath types are generic over.
type Float interface {
	~float32 | ~float64
}

// Eps is the fixed tolerance for approximate equality across vmath.
// It is a package constant, not configurable: callers needing a
// different tolerance must compare components themselves.
const Eps = 1e-6

// Abs returns |x|.
// Complexity: O(1).
func Abs[S Float](x S) S {
	if x < 0 {
		return -x
	}

	return x
}

// Eq reports whether a and b are equal within Eps.
// Complexity: O(1).
func Eq[S Float](a, b S) bool {
	return Abs(a-b) <= Eps
}

// IsZero reports whether x is zero within Eps.
// Complexity: O(1).
func IsZero[S Float](x S) bool {
	return Abs(x) <= Eps
}

// Sqrt returns the square root of x.
func Sqrt[S Float](x S) S {
	return S(math.Sqrt(float64(x)))
}

// Sin returns the sine of x (radians).
func Sin[S Float](x S) S {
	return S(math.Sin(float64(x)))
}

// Cos returns the cosine of x (radians).
func Cos[S Float](x S) S {
	return S(math.Cos(float64(x)))
}

// Mod returns the floating-point remainder of a/b, with the sign of a.
func Mod[S Float](a, b S) S {
	return S(math.Mod(float64(a), float64(b)))
}
