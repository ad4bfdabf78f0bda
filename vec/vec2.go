// SPDX-License-Identifier: MIT
// Package vec: Vec2 — a 2-component vector over any floating scalar.
// All operations are pure value computations; mutating variants exist
// only as pointer-receiver Set/Swap used by matrix kernels.

package vec

import "github.com/katalvlaran/vmath/scalar"

// Vec2 is a 2-component vector. Component i is v[i].
type Vec2[S scalar.Float] [2]S

// NewVec2 builds a Vec2 from its two components.
func NewVec2[S scalar.Float](x, y S) Vec2[S] {
	return Vec2[S]{x, y}
}

// At returns component i, or ErrOutOfRange when i is outside [0, 2).
// Complexity: O(1).
func (v Vec2[S]) At(i int) (S, error) {
	if i < 0 || i >= 2 {
		return 0, ErrOutOfRange
	}

	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange when i is outside [0, 2).
// Complexity: O(1).
func (v *Vec2[S]) Set(i int, s S) error {
	if i < 0 || i >= 2 {
		return ErrOutOfRange
	}
	v[i] = s

	return nil
}

// Swap exchanges components a and b in place.
// Returns ErrOutOfRange when either index is outside [0, 2).
func (v *Vec2[S]) Swap(a, b int) error {
	if a < 0 || a >= 2 || b < 0 || b >= 2 {
		return ErrOutOfRange
	}
	v[a], v[b] = v[b], v[a]

	return nil
}

// Add returns v + o component-wise.
func (v Vec2[S]) Add(o Vec2[S]) Vec2[S] {
	return Vec2[S]{v[0] + o[0], v[1] + o[1]}
}

// Sub returns v − o component-wise.
func (v Vec2[S]) Sub(o Vec2[S]) Vec2[S] {
	return Vec2[S]{v[0] - o[0], v[1] - o[1]}
}

// MulS returns v scaled by s.
func (v Vec2[S]) MulS(s S) Vec2[S] {
	return Vec2[S]{v[0] * s, v[1] * s}
}

// DivS returns v divided component-wise by s.
func (v Vec2[S]) DivS(s S) Vec2[S] {
	return Vec2[S]{v[0] / s, v[1] / s}
}

// RemS returns the component-wise floating remainder of v by s.
func (v Vec2[S]) RemS(s S) Vec2[S] {
	return Vec2[S]{scalar.Mod(v[0], s), scalar.Mod(v[1], s)}
}

// Neg returns −v.
func (v Vec2[S]) Neg() Vec2[S] {
	return Vec2[S]{-v[0], -v[1]}
}

// Dot returns the dot product v · o.
func (v Vec2[S]) Dot(o Vec2[S]) S {
	return v[0]*o[0] + v[1]*o[1]
}

// Len returns the Euclidean length of v.
func (v Vec2[S]) Len() S {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// Precondition: v is not the zero vector (unchecked).
func (v Vec2[S]) Normalize() Vec2[S] {
	return v.DivS(v.Len())
}

// ApproxEq reports component-wise equality within scalar.Eps.
func (v Vec2[S]) ApproxEq(o Vec2[S]) bool {
	return scalar.Eq(v[0], o[0]) && scalar.Eq(v[1], o[1])
}
