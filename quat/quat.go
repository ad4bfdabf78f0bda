// SPDX-License-Identifier: MIT
// Package quat: the quaternion value type and the Mat3 conversions.

package quat

import (
	"github.com/katalvlaran/vmath/mat"
	"github.com/katalvlaran/vmath/scalar"
	"github.com/katalvlaran/vmath/vec"
)

// Quat is a quaternion w + xi + yj + zk.
type Quat[S scalar.Float] struct {
	W, X, Y, Z S
}

// New builds a quaternion from its four components.
func New[S scalar.Float](w, x, y, z S) Quat[S] {
	return Quat[S]{W: w, X: x, Y: y, Z: z}
}

// Ident returns the identity quaternion (1, 0, 0, 0).
func Ident[S scalar.Float]() Quat[S] {
	return New[S](1, 0, 0, 0)
}

// FromAxisAngle builds the unit quaternion rotating by the given angle
// (radians) about axis. Precondition: axis has unit length (unchecked).
func FromAxisAngle[S scalar.Float](axis vec.Vec3[S], radians S) Quat[S] {
	half := radians / 2
	s := scalar.Sin(half)

	return New(scalar.Cos(half), axis[0]*s, axis[1]*s, axis[2]*s)
}

// FromMat3 extracts a unit quaternion from a matrix assumed to be a
// proper rotation (orthonormal, determinant ≈ 1 — not verified).
// Implemented after Ken Shoemake's case analysis: branch on the trace
// first, then on the largest diagonal entry, so the square root always
// takes a comfortably positive argument. The result is not
// re-normalized.
func FromMat3[S scalar.Float](m mat.Mat3[S]) Quat[S] {
	var w, x, y, z, s S
	t := m.Trace()

	switch {
	case t >= 0:
		s = scalar.Sqrt(1 + t)
		w = s / 2
		s = 0.5 / s
		x = (m[1][2] - m[2][1]) * s
		y = (m[2][0] - m[0][2]) * s
		z = (m[0][1] - m[1][0]) * s
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s = scalar.Sqrt(0.5 + (m[0][0] - m[1][1] - m[2][2]))
		w = s / 2
		s = 0.5 / s
		x = (m[0][1] - m[1][0]) * s
		y = (m[2][0] - m[0][2]) * s
		z = (m[1][2] - m[2][1]) * s
	case m[1][1] > m[2][2]:
		s = scalar.Sqrt(0.5 + (m[1][1] - m[0][0] - m[2][2]))
		w = s / 2
		s = 0.5 / s
		x = (m[0][1] - m[1][0]) * s
		y = (m[1][2] - m[2][1]) * s
		z = (m[2][0] - m[0][2]) * s
	default:
		s = scalar.Sqrt(0.5 + (m[2][2] - m[0][0] - m[1][1]))
		w = s / 2
		s = 0.5 / s
		x = (m[2][0] - m[0][2]) * s
		y = (m[1][2] - m[2][1]) * s
		z = (m[0][1] - m[1][0]) * s
	}

	return New(w, x, y, z)
}

// ToMat3 returns the rotation matrix of q.
// Precondition: q has unit length (unchecked).
func (q Quat[S]) ToMat3() mat.Mat3[S] {
	x2, y2, z2 := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return mat.NewMat3(
		1-2*(y2+z2), 2*(xy+wz), 2*(xz-wy),
		2*(xy-wz), 1-2*(x2+z2), 2*(yz+wx),
		2*(xz+wy), 2*(yz-wx), 1-2*(x2+y2),
	)
}

// Len returns the Euclidean length of q.
func (q Quat[S]) Len() S {
	return scalar.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns q scaled to unit length.
// Precondition: q is not the zero quaternion (unchecked).
func (q Quat[S]) Normalize() Quat[S] {
	l := q.Len()

	return New(q.W/l, q.X/l, q.Y/l, q.Z/l)
}

// ApproxEq reports component-wise equality within scalar.Eps.
func (q Quat[S]) ApproxEq(o Quat[S]) bool {
	return scalar.Eq(q.W, o.W) && scalar.Eq(q.X, o.X) &&
		scalar.Eq(q.Y, o.Y) && scalar.Eq(q.Z, o.Z)
}
