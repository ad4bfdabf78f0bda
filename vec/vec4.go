// SPDX-License-Identifier: MIT
// Package vec: Vec4 — a 4-component vector over any floating scalar.

package vec

import "github.com/katalvlaran/vmath/scalar"

// Vec4 is a 4-component vector. Component i is v[i].
type Vec4[S scalar.Float] [4]S

// NewVec4 builds a Vec4 from its four components.
func NewVec4[S scalar.Float](x, y, z, w S) Vec4[S] {
	return Vec4[S]{x, y, z, w}
}

// At returns component i, or ErrOutOfRange when i is outside [0, 4).
// Complexity: O(1).
func (v Vec4[S]) At(i int) (S, error) {
	if i < 0 || i >= 4 {
		return 0, ErrOutOfRange
	}

	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange when i is outside [0, 4).
// Complexity: O(1).
func (v *Vec4[S]) Set(i int, s S) error {
	if i < 0 || i >= 4 {
		return ErrOutOfRange
	}
	v[i] = s

	return nil
}

// Swap exchanges components a and b in place.
// Returns ErrOutOfRange when either index is outside [0, 4).
func (v *Vec4[S]) Swap(a, b int) error {
	if a < 0 || a >= 4 || b < 0 || b >= 4 {
		return ErrOutOfRange
	}
	v[a], v[b] = v[b], v[a]

	return nil
}

// Add returns v + o component-wise.
func (v Vec4[S]) Add(o Vec4[S]) Vec4[S] {
	return Vec4[S]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns v − o component-wise.
func (v Vec4[S]) Sub(o Vec4[S]) Vec4[S] {
	return Vec4[S]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// MulS returns v scaled by s.
func (v Vec4[S]) MulS(s S) Vec4[S] {
	return Vec4[S]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// DivS returns v divided component-wise by s.
func (v Vec4[S]) DivS(s S) Vec4[S] {
	return Vec4[S]{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// RemS returns the component-wise floating remainder of v by s.
func (v Vec4[S]) RemS(s S) Vec4[S] {
	return Vec4[S]{scalar.Mod(v[0], s), scalar.Mod(v[1], s), scalar.Mod(v[2], s), scalar.Mod(v[3], s)}
}

// Neg returns −v.
func (v Vec4[S]) Neg() Vec4[S] {
	return Vec4[S]{-v[0], -v[1], -v[2], -v[3]}
}

// Dot returns the dot product v · o.
func (v Vec4[S]) Dot(o Vec4[S]) S {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

// Len returns the Euclidean length of v.
func (v Vec4[S]) Len() S {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// Precondition: v is not the zero vector (unchecked).
func (v Vec4[S]) Normalize() Vec4[S] {
	return v.DivS(v.Len())
}

// ApproxEq reports component-wise equality within scalar.Eps.
func (v Vec4[S]) ApproxEq(o Vec4[S]) bool {
	return scalar.Eq(v[0], o[0]) && scalar.Eq(v[1], o[1]) &&
		scalar.Eq(v[2], o[2]) && scalar.Eq(v[3], o[3])
}
