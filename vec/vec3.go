// SPDX-License-Identifier: MIT
// Package vec: Vec3 — a 3-component vector over any floating scalar.
// Cross lives here only; it is what the 3×3 adjugate inverse and the
// look-at basis construction are built from.

package vec

import "github.com/katalvlaran/vmath/scalar"

// Vec3 is a 3-component vector. Component i is v[i].
type Vec3[S scalar.Float] [3]S

// NewVec3 builds a Vec3 from its three components.
func NewVec3[S scalar.Float](x, y, z S) Vec3[S] {
	return Vec3[S]{x, y, z}
}

// At returns component i, or ErrOutOfRange when i is outside [0, 3).
// Complexity: O(1).
func (v Vec3[S]) At(i int) (S, error) {
	if i < 0 || i >= 3 {
		return 0, ErrOutOfRange
	}

	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange when i is outside [0, 3).
// Complexity: O(1).
func (v *Vec3[S]) Set(i int, s S) error {
	if i < 0 || i >= 3 {
		return ErrOutOfRange
	}
	v[i] = s

	return nil
}

// Swap exchanges components a and b in place.
// Returns ErrOutOfRange when either index is outside [0, 3).
func (v *Vec3[S]) Swap(a, b int) error {
	if a < 0 || a >= 3 || b < 0 || b >= 3 {
		return ErrOutOfRange
	}
	v[a], v[b] = v[b], v[a]

	return nil
}

// Add returns v + o component-wise.
func (v Vec3[S]) Add(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v − o component-wise.
func (v Vec3[S]) Sub(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// MulS returns v scaled by s.
func (v Vec3[S]) MulS(s S) Vec3[S] {
	return Vec3[S]{v[0] * s, v[1] * s, v[2] * s}
}

// DivS returns v divided component-wise by s.
func (v Vec3[S]) DivS(s S) Vec3[S] {
	return Vec3[S]{v[0] / s, v[1] / s, v[2] / s}
}

// RemS returns the component-wise floating remainder of v by s.
func (v Vec3[S]) RemS(s S) Vec3[S] {
	return Vec3[S]{scalar.Mod(v[0], s), scalar.Mod(v[1], s), scalar.Mod(v[2], s)}
}

// Neg returns −v.
func (v Vec3[S]) Neg() Vec3[S] {
	return Vec3[S]{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product v · o.
func (v Vec3[S]) Dot(o Vec3[S]) S {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the cross product v × o (right-handed).
func (v Vec3[S]) Cross(o Vec3[S]) Vec3[S] {
	return Vec3[S]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Len returns the Euclidean length of v.
func (v Vec3[S]) Len() S {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// Precondition: v is not the zero vector (unchecked).
func (v Vec3[S]) Normalize() Vec3[S] {
	return v.DivS(v.Len())
}

// ApproxEq reports component-wise equality within scalar.Eps.
func (v Vec3[S]) ApproxEq(o Vec3[S]) bool {
	return scalar.Eq(v[0], o[0]) && scalar.Eq(v[1], o[1]) && scalar.Eq(v[2], o[2])
}
