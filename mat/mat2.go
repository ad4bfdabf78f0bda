// SPDX-License-Identifier: MIT
// Package mat: Mat2 — constructors and the 2×2 algorithm set.
// Determinant and inverse use the closed-form adjugate formulas.

package mat

import (
	"github.com/katalvlaran/vmath/scalar"
	"github.com/katalvlaran/vmath/vec"
)

// NewMat2 builds a Mat2 from four scalars in column-major order:
// c0r0, c0r1, c1r0, c1r1.
func NewMat2[S scalar.Float](c0r0, c0r1, c1r0, c1r1 S) Mat2[S] {
	return Mat2FromCols(vec.NewVec2(c0r0, c0r1), vec.NewVec2(c1r0, c1r1))
}

// Mat2FromCols builds a Mat2 directly from its two column vectors.
func Mat2FromCols[S scalar.Float](c0, c1 vec.Vec2[S]) Mat2[S] {
	return Mat2[S]{c0, c1}
}

// Mat2FromValue builds a diagonal Mat2 with v on the diagonal and
// zeros elsewhere.
func Mat2FromValue[S scalar.Float](v S) Mat2[S] {
	return NewMat2(v, 0, 0, v)
}

// ZeroMat2 returns the 2×2 zero matrix.
func ZeroMat2[S scalar.Float]() Mat2[S] {
	return Mat2FromValue[S](0)
}

// IdentMat2 returns the 2×2 identity matrix.
func IdentMat2[S scalar.Float]() Mat2[S] {
	return Mat2FromValue[S](1)
}

// Mat2FromAngle builds the counter-clockwise rotation by the given
// angle in radians: column 0 = (cos θ, sin θ), column 1 = (−sin θ, cos θ).
func Mat2FromAngle[S scalar.Float](radians S) Mat2[S] {
	sin, cos := scalar.Sin(radians), scalar.Cos(radians)

	return NewMat2(cos, sin, -sin, cos)
}

// Col returns column i, or ErrOutOfRange when i is outside [0, 2).
func (m Mat2[S]) Col(i int) (vec.Vec2[S], error) {
	if i < 0 || i >= 2 {
		return vec.Vec2[S]{}, ErrOutOfRange
	}

	return m[i], nil
}

// Row gathers row i from every column, or returns ErrOutOfRange.
// Complexity: O(N) per call, no caching.
func (m Mat2[S]) Row(i int) (vec.Vec2[S], error) {
	if i < 0 || i >= 2 {
		return vec.Vec2[S]{}, ErrOutOfRange
	}

	return m.row(i), nil
}

// row is the unchecked gather used by the product kernels.
func (m Mat2[S]) row(r int) vec.Vec2[S] {
	return vec.NewVec2(m[0][r], m[1][r])
}

// At returns entry (c, r), or ErrOutOfRange for an invalid index.
func (m Mat2[S]) At(c, r int) (S, error) {
	if c < 0 || c >= 2 || r < 0 || r >= 2 {
		return 0, ErrOutOfRange
	}

	return m[c][r], nil
}

// Set assigns entry (c, r), or returns ErrOutOfRange for an invalid index.
func (m *Mat2[S]) Set(c, r int, v S) error {
	if c < 0 || c >= 2 || r < 0 || r >= 2 {
		return ErrOutOfRange
	}
	m[c][r] = v

	return nil
}

// SwapCols exchanges columns a and b in place.
func (m *Mat2[S]) SwapCols(a, b int) error {
	if a < 0 || a >= 2 || b < 0 || b >= 2 {
		return ErrOutOfRange
	}
	m[a], m[b] = m[b], m[a]

	return nil
}

// SwapRows exchanges rows a and b in place across every column.
func (m *Mat2[S]) SwapRows(a, b int) error {
	if a < 0 || a >= 2 || b < 0 || b >= 2 {
		return ErrOutOfRange
	}
	for c := range m {
		m[c][a], m[c][b] = m[c][b], m[c][a]
	}

	return nil
}

// MulS returns the matrix with every entry multiplied by s.
func (m Mat2[S]) MulS(s S) Mat2[S] {
	return Mat2FromCols(m[0].MulS(s), m[1].MulS(s))
}

// DivS returns the matrix with every entry divided by s.
func (m Mat2[S]) DivS(s S) Mat2[S] {
	return Mat2FromCols(m[0].DivS(s), m[1].DivS(s))
}

// RemS returns the matrix of entry-wise floating remainders by s.
func (m Mat2[S]) RemS(s S) Mat2[S] {
	return Mat2FromCols(m[0].RemS(s), m[1].RemS(s))
}

// MulSelfS multiplies every entry by s in place.
func (m *Mat2[S]) MulSelfS(s S) { *m = m.MulS(s) }

// DivSelfS divides every entry by s in place.
func (m *Mat2[S]) DivSelfS(s S) { *m = m.DivS(s) }

// RemSelfS replaces every entry with its floating remainder by s.
func (m *Mat2[S]) RemSelfS(s S) { *m = m.RemS(s) }

// Neg returns the matrix with every entry negated.
func (m Mat2[S]) Neg() Mat2[S] {
	return Mat2FromCols(m[0].Neg(), m[1].Neg())
}

// NegSelf negates every entry in place.
func (m *Mat2[S]) NegSelf() { *m = m.Neg() }

// Add returns the component-wise sum m + o.
func (m Mat2[S]) Add(o Mat2[S]) Mat2[S] {
	return Mat2FromCols(m[0].Add(o[0]), m[1].Add(o[1]))
}

// Sub returns the component-wise difference m − o.
func (m Mat2[S]) Sub(o Mat2[S]) Mat2[S] {
	return Mat2FromCols(m[0].Sub(o[0]), m[1].Sub(o[1]))
}

// AddSelf adds o to m in place.
func (m *Mat2[S]) AddSelf(o Mat2[S]) { *m = m.Add(o) }

// SubSelf subtracts o from m in place.
func (m *Mat2[S]) SubSelf(o Mat2[S]) { *m = m.Sub(o) }

// MulV returns the matrix-vector product m·v.
func (m Mat2[S]) MulV(v vec.Vec2[S]) vec.Vec2[S] {
	return vec.NewVec2(m.row(0).Dot(v), m.row(1).Dot(v))
}

// MulM returns the matrix product m·o (row of m times column of o).
func (m Mat2[S]) MulM(o Mat2[S]) Mat2[S] {
	r0, r1 := m.row(0), m.row(1)

	return NewMat2(
		r0.Dot(o[0]), r1.Dot(o[0]),
		r0.Dot(o[1]), r1.Dot(o[1]),
	)
}

// Transpose returns the transposed matrix.
func (m Mat2[S]) Transpose() Mat2[S] {
	return NewMat2(
		m[0][0], m[1][0],
		m[0][1], m[1][1],
	)
}

// TransposeSelf transposes in place: a single pairwise swap for 2×2.
func (m *Mat2[S]) TransposeSelf() {
	m[0][1], m[1][0] = m[1][0], m[0][1]
}

// Trace returns the sum of the diagonal entries.
func (m Mat2[S]) Trace() S {
	return m[0][0] + m[1][1]
}

// Det returns the determinant a·d − b·c.
func (m Mat2[S]) Det() S {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

// Invert returns the inverse via the adjugate-over-determinant closed
// form: swap the diagonal, negate the off-diagonal, divide by Det.
// Returns ErrSingular when the determinant is approximately zero.
func (m Mat2[S]) Invert() (Mat2[S], error) {
	det := m.Det()
	if scalar.IsZero(det) {
		return Mat2[S]{}, ErrSingular
	}

	return NewMat2(
		m[1][1]/det, -m[0][1]/det,
		-m[1][0]/det, m[0][0]/det,
	), nil
}

// InvertSelf replaces m with its inverse. It panics when m is singular:
// callers must establish IsInvertible first. Use Invert for the checked
// path.
func (m *Mat2[S]) InvertSelf() {
	inv, err := m.Invert()
	if err != nil {
		panic("mat: InvertSelf on a singular Mat2")
	}
	*m = inv
}

// ApproxEq reports entry-wise equality with o within scalar.Eps.
func (m Mat2[S]) ApproxEq(o Mat2[S]) bool {
	return m[0].ApproxEq(o[0]) && m[1].ApproxEq(o[1])
}

// IsIdentity reports approximate equality with IdentMat2.
func (m Mat2[S]) IsIdentity() bool {
	return m.ApproxEq(IdentMat2[S]())
}

// IsRotated reports that m is approximately anything but the identity.
func (m Mat2[S]) IsRotated() bool {
	return !m.IsIdentity()
}

// IsInvertible reports that the determinant is not approximately zero.
func (m Mat2[S]) IsInvertible() bool {
	return !scalar.IsZero(m.Det())
}

// IsDiagonal reports that both off-diagonal entries are approximately zero.
func (m Mat2[S]) IsDiagonal() bool {
	return scalar.IsZero(m[0][1]) && scalar.IsZero(m[1][0])
}

// IsSymmetric reports that the off-diagonal pair agrees within scalar.Eps.
func (m Mat2[S]) IsSymmetric() bool {
	return scalar.Eq(m[0][1], m[1][0])
}
