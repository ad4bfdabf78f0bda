// SPDX-License-Identifier: MIT
// Package mat: Mat3 — constructors and the 3×3 algorithm set.
// Determinant expands cofactors along the first column; the inverse
// builds the adjugate from pairwise column cross products, exploiting
// the identity between 3×3 cofactors and cross products.

package mat

import (
	"github.com/katalvlaran/vmath/scalar"
	"github.com/katalvlaran/vmath/vec"
)

// NewMat3 builds a Mat3 from nine scalars in column-major order:
// c0r0..c0r2, c1r0..c1r2, c2r0..c2r2.
func NewMat3[S scalar.Float](c0r0, c0r1, c0r2, c1r0, c1r1, c1r2, c2r0, c2r1, c2r2 S) Mat3[S] {
	return Mat3FromCols(
		vec.NewVec3(c0r0, c0r1, c0r2),
		vec.NewVec3(c1r0, c1r1, c1r2),
		vec.NewVec3(c2r0, c2r1, c2r2),
	)
}

// Mat3FromCols builds a Mat3 directly from its three column vectors.
func Mat3FromCols[S scalar.Float](c0, c1, c2 vec.Vec3[S]) Mat3[S] {
	return Mat3[S]{c0, c1, c2}
}

// Mat3FromValue builds a diagonal Mat3 with v on the diagonal and
// zeros elsewhere.
func Mat3FromValue[S scalar.Float](v S) Mat3[S] {
	return NewMat3(
		v, 0, 0,
		0, v, 0,
		0, 0, v,
	)
}

// ZeroMat3 returns the 3×3 zero matrix.
func ZeroMat3[S scalar.Float]() Mat3[S] {
	return Mat3FromValue[S](0)
}

// IdentMat3 returns the 3×3 identity matrix.
func IdentMat3[S scalar.Float]() Mat3[S] {
	return Mat3FromValue[S](1)
}

// Mat3LookAt builds an orientation basis from a forward direction and
// an up hint. dir is normalized, side = dir × normalize(up), and the
// up column is recomputed as side × dir, normalized. The columns of
// the result are (up, side, dir).
//
// Precondition: dir and up are non-zero and not parallel (unchecked —
// degenerate input yields an unstable result).
func Mat3LookAt[S scalar.Float](dir, up vec.Vec3[S]) Mat3[S] {
	d := dir.Normalize()
	side := d.Cross(up.Normalize())
	u := side.Cross(d).Normalize()

	return Mat3FromCols(u, side, d)
}

// Col returns column i, or ErrOutOfRange when i is outside [0, 3).
func (m Mat3[S]) Col(i int) (vec.Vec3[S], error) {
	if i < 0 || i >= 3 {
		return vec.Vec3[S]{}, ErrOutOfRange
	}

	return m[i], nil
}

// Row gathers row i from every column, or returns ErrOutOfRange.
// Complexity: O(N) per call, no caching.
func (m Mat3[S]) Row(i int) (vec.Vec3[S], error) {
	if i < 0 || i >= 3 {
		return vec.Vec3[S]{}, ErrOutOfRange
	}

	return m.row(i), nil
}

// row is the unchecked gather used by the product kernels.
func (m Mat3[S]) row(r int) vec.Vec3[S] {
	return vec.NewVec3(m[0][r], m[1][r], m[2][r])
}

// At returns entry (c, r), or ErrOutOfRange for an invalid index.
func (m Mat3[S]) At(c, r int) (S, error) {
	if c < 0 || c >= 3 || r < 0 || r >= 3 {
		return 0, ErrOutOfRange
	}

	return m[c][r], nil
}

// Set assigns entry (c, r), or returns ErrOutOfRange for an invalid index.
func (m *Mat3[S]) Set(c, r int, v S) error {
	if c < 0 || c >= 3 || r < 0 || r >= 3 {
		return ErrOutOfRange
	}
	m[c][r] = v

	return nil
}

// SwapCols exchanges columns a and b in place.
func (m *Mat3[S]) SwapCols(a, b int) error {
	if a < 0 || a >= 3 || b < 0 || b >= 3 {
		return ErrOutOfRange
	}
	m[a], m[b] = m[b], m[a]

	return nil
}

// SwapRows exchanges rows a and b in place across every column.
func (m *Mat3[S]) SwapRows(a, b int) error {
	if a < 0 || a >= 3 || b < 0 || b >= 3 {
		return ErrOutOfRange
	}
	for c := range m {
		m[c][a], m[c][b] = m[c][b], m[c][a]
	}

	return nil
}

// MulS returns the matrix with every entry multiplied by s.
func (m Mat3[S]) MulS(s S) Mat3[S] {
	return Mat3FromCols(m[0].MulS(s), m[1].MulS(s), m[2].MulS(s))
}

// DivS returns the matrix with every entry divided by s.
func (m Mat3[S]) DivS(s S) Mat3[S] {
	return Mat3FromCols(m[0].DivS(s), m[1].DivS(s), m[2].DivS(s))
}

// RemS returns the matrix of entry-wise floating remainders by s.
func (m Mat3[S]) RemS(s S) Mat3[S] {
	return Mat3FromCols(m[0].RemS(s), m[1].RemS(s), m[2].RemS(s))
}

// MulSelfS multiplies every entry by s in place.
func (m *Mat3[S]) MulSelfS(s S) { *m = m.MulS(s) }

// DivSelfS divides every entry by s in place.
func (m *Mat3[S]) DivSelfS(s S) { *m = m.DivS(s) }

// RemSelfS replaces every entry with its floating remainder by s.
func (m *Mat3[S]) RemSelfS(s S) { *m = m.RemS(s) }

// Neg returns the matrix with every entry negated.
func (m Mat3[S]) Neg() Mat3[S] {
	return Mat3FromCols(m[0].Neg(), m[1].Neg(), m[2].Neg())
}

// NegSelf negates every entry in place.
func (m *Mat3[S]) NegSelf() { *m = m.Neg() }

// Add returns the component-wise sum m + o.
func (m Mat3[S]) Add(o Mat3[S]) Mat3[S] {
	return Mat3FromCols(m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]))
}

// Sub returns the component-wise difference m − o.
func (m Mat3[S]) Sub(o Mat3[S]) Mat3[S] {
	return Mat3FromCols(m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2]))
}

// AddSelf adds o to m in place.
func (m *Mat3[S]) AddSelf(o Mat3[S]) { *m = m.Add(o) }

// SubSelf subtracts o from m in place.
func (m *Mat3[S]) SubSelf(o Mat3[S]) { *m = m.Sub(o) }

// MulV returns the matrix-vector product m·v.
func (m Mat3[S]) MulV(v vec.Vec3[S]) vec.Vec3[S] {
	return vec.NewVec3(m.row(0).Dot(v), m.row(1).Dot(v), m.row(2).Dot(v))
}

// MulM returns the matrix product m·o (row of m times column of o).
func (m Mat3[S]) MulM(o Mat3[S]) Mat3[S] {
	r0, r1, r2 := m.row(0), m.row(1), m.row(2)

	return NewMat3(
		r0.Dot(o[0]), r1.Dot(o[0]), r2.Dot(o[0]),
		r0.Dot(o[1]), r1.Dot(o[1]), r2.Dot(o[1]),
		r0.Dot(o[2]), r1.Dot(o[2]), r2.Dot(o[2]),
	)
}

// Transpose returns the transposed matrix.
func (m Mat3[S]) Transpose() Mat3[S] {
	return NewMat3(
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
	)
}

// TransposeSelf transposes in place: three pairwise swaps for 3×3.
func (m *Mat3[S]) TransposeSelf() {
	m[0][1], m[1][0] = m[1][0], m[0][1]
	m[0][2], m[2][0] = m[2][0], m[0][2]
	m[1][2], m[2][1] = m[2][1], m[1][2]
}

// Trace returns the sum of the diagonal entries.
func (m Mat3[S]) Trace() S {
	return m[0][0] + m[1][1] + m[2][2]
}

// Det returns the determinant by cofactor expansion along the first
// column: three 2×2 minors with alternating sign.
func (m Mat3[S]) Det() S {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[1][0]*(m[0][1]*m[2][2]-m[2][1]*m[0][2]) +
		m[2][0]*(m[0][1]*m[1][2]-m[1][1]*m[0][2])
}

// Invert returns the inverse built from the adjugate: column i of the
// un-transposed adjugate is column (i+1)%3 × column (i+2)%3, each
// divided by the determinant, and the result transposed. Returns
// ErrSingular when the determinant is approximately zero.
func (m Mat3[S]) Invert() (Mat3[S], error) {
	det := m.Det()
	if scalar.IsZero(det) {
		return Mat3[S]{}, ErrSingular
	}

	adj := Mat3FromCols(
		m[1].Cross(m[2]).DivS(det),
		m[2].Cross(m[0]).DivS(det),
		m[0].Cross(m[1]).DivS(det),
	)

	return adj.Transpose(), nil
}

// InvertSelf replaces m with its inverse. It panics when m is singular:
// callers must establish IsInvertible first. Use Invert for the checked
// path.
func (m *Mat3[S]) InvertSelf() {
	inv, err := m.Invert()
	if err != nil {
		panic("mat: InvertSelf on a singular Mat3")
	}
	*m = inv
}

// ApproxEq reports entry-wise equality with o within scalar.Eps.
func (m Mat3[S]) ApproxEq(o Mat3[S]) bool {
	return m[0].ApproxEq(o[0]) && m[1].ApproxEq(o[1]) && m[2].ApproxEq(o[2])
}

// IsIdentity reports approximate equality with IdentMat3.
func (m Mat3[S]) IsIdentity() bool {
	return m.ApproxEq(IdentMat3[S]())
}

// IsRotated reports that m is approximately anything but the identity.
func (m Mat3[S]) IsRotated() bool {
	return !m.IsIdentity()
}

// IsInvertible reports that the determinant is not approximately zero.
func (m Mat3[S]) IsInvertible() bool {
	return !scalar.IsZero(m.Det())
}

// IsDiagonal reports that every off-diagonal entry is approximately zero.
func (m Mat3[S]) IsDiagonal() bool {
	return scalar.IsZero(m[0][1]) && scalar.IsZero(m[0][2]) &&
		scalar.IsZero(m[1][0]) && scalar.IsZero(m[1][2]) &&
		scalar.IsZero(m[2][0]) && scalar.IsZero(m[2][1])
}

// IsSymmetric reports that every off-diagonal pair agrees within scalar.Eps.
func (m Mat3[S]) IsSymmetric() bool {
	return scalar.Eq(m[0][1], m[1][0]) &&
		scalar.Eq(m[0][2], m[2][0]) &&
		scalar.Eq(m[1][2], m[2][1])
}
