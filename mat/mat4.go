// SPDX-License-Identifier: MIT
// Package mat: Mat4 — constructors and the 4×4 algorithm set.
// Determinant expands cofactors along the first column using four 3×3
// minors; inversion runs Gauss–Jordan elimination with partial COLUMN
// pivoting on the augmented system [A|I]. Swapping columns instead of
// rows applies the same permutation to both sides, so the reduced
// identity is still a correct inverse.

package mat

import (
	"github.com/katalvlaran/vmath/scalar"
	"github.com/katalvlaran/vmath/vec"
)

// NewMat4 builds a Mat4 from sixteen scalars in column-major order:
// c0r0..c0r3, c1r0..c1r3, c2r0..c2r3, c3r0..c3r3.
func NewMat4[S scalar.Float](
	c0r0, c0r1, c0r2, c0r3,
	c1r0, c1r1, c1r2, c1r3,
	c2r0, c2r1, c2r2, c2r3,
	c3r0, c3r1, c3r2, c3r3 S,
) Mat4[S] {
	return Mat4FromCols(
		vec.NewVec4(c0r0, c0r1, c0r2, c0r3),
		vec.NewVec4(c1r0, c1r1, c1r2, c1r3),
		vec.NewVec4(c2r0, c2r1, c2r2, c2r3),
		vec.NewVec4(c3r0, c3r1, c3r2, c3r3),
	)
}

// Mat4FromCols builds a Mat4 directly from its four column vectors.
func Mat4FromCols[S scalar.Float](c0, c1, c2, c3 vec.Vec4[S]) Mat4[S] {
	return Mat4[S]{c0, c1, c2, c3}
}

// Mat4FromValue builds a diagonal Mat4 with v on the diagonal and
// zeros elsewhere.
func Mat4FromValue[S scalar.Float](v S) Mat4[S] {
	return NewMat4(
		v, 0, 0, 0,
		0, v, 0, 0,
		0, 0, v, 0,
		0, 0, 0, v,
	)
}

// ZeroMat4 returns the 4×4 zero matrix.
func ZeroMat4[S scalar.Float]() Mat4[S] {
	return Mat4FromValue[S](0)
}

// IdentMat4 returns the 4×4 identity matrix.
func IdentMat4[S scalar.Float]() Mat4[S] {
	return Mat4FromValue[S](1)
}

// Col returns column i, or ErrOutOfRange when i is outside [0, 4).
func (m Mat4[S]) Col(i int) (vec.Vec4[S], error) {
	if i < 0 || i >= 4 {
		return vec.Vec4[S]{}, ErrOutOfRange
	}

	return m[i], nil
}

// Row gathers row i from every column, or returns ErrOutOfRange.
// Complexity: O(N) per call, no caching.
func (m Mat4[S]) Row(i int) (vec.Vec4[S], error) {
	if i < 0 || i >= 4 {
		return vec.Vec4[S]{}, ErrOutOfRange
	}

	return m.row(i), nil
}

// row is the unchecked gather used by the product kernels. Every row
// reads columns 0..3 exactly once.
func (m Mat4[S]) row(r int) vec.Vec4[S] {
	return vec.NewVec4(m[0][r], m[1][r], m[2][r], m[3][r])
}

// At returns entry (c, r), or ErrOutOfRange for an invalid index.
func (m Mat4[S]) At(c, r int) (S, error) {
	if c < 0 || c >= 4 || r < 0 || r >= 4 {
		return 0, ErrOutOfRange
	}

	return m[c][r], nil
}

// Set assigns entry (c, r), or returns ErrOutOfRange for an invalid index.
func (m *Mat4[S]) Set(c, r int, v S) error {
	if c < 0 || c >= 4 || r < 0 || r >= 4 {
		return ErrOutOfRange
	}
	m[c][r] = v

	return nil
}

// SwapCols exchanges columns a and b in place.
func (m *Mat4[S]) SwapCols(a, b int) error {
	if a < 0 || a >= 4 || b < 0 || b >= 4 {
		return ErrOutOfRange
	}
	m[a], m[b] = m[b], m[a]

	return nil
}

// SwapRows exchanges rows a and b in place across every column.
func (m *Mat4[S]) SwapRows(a, b int) error {
	if a < 0 || a >= 4 || b < 0 || b >= 4 {
		return ErrOutOfRange
	}
	for c := range m {
		m[c][a], m[c][b] = m[c][b], m[c][a]
	}

	return nil
}

// MulS returns the matrix with every entry multiplied by s.
func (m Mat4[S]) MulS(s S) Mat4[S] {
	return Mat4FromCols(m[0].MulS(s), m[1].MulS(s), m[2].MulS(s), m[3].MulS(s))
}

// DivS returns the matrix with every entry divided by s.
func (m Mat4[S]) DivS(s S) Mat4[S] {
	return Mat4FromCols(m[0].DivS(s), m[1].DivS(s), m[2].DivS(s), m[3].DivS(s))
}

// RemS returns the matrix of entry-wise floating remainders by s.
func (m Mat4[S]) RemS(s S) Mat4[S] {
	return Mat4FromCols(m[0].RemS(s), m[1].RemS(s), m[2].RemS(s), m[3].RemS(s))
}

// MulSelfS multiplies every entry by s in place.
func (m *Mat4[S]) MulSelfS(s S) { *m = m.MulS(s) }

// DivSelfS divides every entry by s in place.
func (m *Mat4[S]) DivSelfS(s S) { *m = m.DivS(s) }

// RemSelfS replaces every entry with its floating remainder by s.
func (m *Mat4[S]) RemSelfS(s S) { *m = m.RemS(s) }

// Neg returns the matrix with every entry negated.
func (m Mat4[S]) Neg() Mat4[S] {
	return Mat4FromCols(m[0].Neg(), m[1].Neg(), m[2].Neg(), m[3].Neg())
}

// NegSelf negates every entry in place.
func (m *Mat4[S]) NegSelf() { *m = m.Neg() }

// Add returns the component-wise sum m + o.
func (m Mat4[S]) Add(o Mat4[S]) Mat4[S] {
	return Mat4FromCols(m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]), m[3].Add(o[3]))
}

// Sub returns the component-wise difference m − o.
func (m Mat4[S]) Sub(o Mat4[S]) Mat4[S] {
	return Mat4FromCols(m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2]), m[3].Sub(o[3]))
}

// AddSelf adds o to m in place.
func (m *Mat4[S]) AddSelf(o Mat4[S]) { *m = m.Add(o) }

// SubSelf subtracts o from m in place.
func (m *Mat4[S]) SubSelf(o Mat4[S]) { *m = m.Sub(o) }

// MulV returns the matrix-vector product m·v.
func (m Mat4[S]) MulV(v vec.Vec4[S]) vec.Vec4[S] {
	return vec.NewVec4(m.row(0).Dot(v), m.row(1).Dot(v), m.row(2).Dot(v), m.row(3).Dot(v))
}

// MulM returns the matrix product m·o (row of m times column of o).
func (m Mat4[S]) MulM(o Mat4[S]) Mat4[S] {
	r0, r1, r2, r3 := m.row(0), m.row(1), m.row(2), m.row(3)

	return NewMat4(
		r0.Dot(o[0]), r1.Dot(o[0]), r2.Dot(o[0]), r3.Dot(o[0]),
		r0.Dot(o[1]), r1.Dot(o[1]), r2.Dot(o[1]), r3.Dot(o[1]),
		r0.Dot(o[2]), r1.Dot(o[2]), r2.Dot(o[2]), r3.Dot(o[2]),
		r0.Dot(o[3]), r1.Dot(o[3]), r2.Dot(o[3]), r3.Dot(o[3]),
	)
}

// Transpose returns the transposed matrix.
func (m Mat4[S]) Transpose() Mat4[S] {
	return NewMat4(
		m[0][0], m[1][0], m[2][0], m[3][0],
		m[0][1], m[1][1], m[2][1], m[3][1],
		m[0][2], m[1][2], m[2][2], m[3][2],
		m[0][3], m[1][3], m[2][3], m[3][3],
	)
}

// TransposeSelf transposes in place: six pairwise swaps for 4×4.
func (m *Mat4[S]) TransposeSelf() {
	m[0][1], m[1][0] = m[1][0], m[0][1]
	m[0][2], m[2][0] = m[2][0], m[0][2]
	m[0][3], m[3][0] = m[3][0], m[0][3]
	m[1][2], m[2][1] = m[2][1], m[1][2]
	m[1][3], m[3][1] = m[3][1], m[1][3]
	m[2][3], m[3][2] = m[3][2], m[2][3]
}

// Trace returns the sum of the diagonal entries.
func (m Mat4[S]) Trace() S {
	return m[0][0] + m[1][1] + m[2][2] + m[3][3]
}

// Det returns the determinant by cofactor expansion along the first
// column: four 3×3 minors (rows 1..3 of the remaining columns) with
// alternating sign.
func (m Mat4[S]) Det() S {
	m0 := NewMat3(
		m[1][1], m[2][1], m[3][1],
		m[1][2], m[2][2], m[3][2],
		m[1][3], m[2][3], m[3][3],
	)
	m1 := NewMat3(
		m[0][1], m[2][1], m[3][1],
		m[0][2], m[2][2], m[3][2],
		m[0][3], m[2][3], m[3][3],
	)
	m2 := NewMat3(
		m[0][1], m[1][1], m[3][1],
		m[0][2], m[1][2], m[3][2],
		m[0][3], m[1][3], m[3][3],
	)
	m3 := NewMat3(
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
		m[0][3], m[1][3], m[2][3],
	)

	return m[0][0]*m0.Det() - m[1][0]*m1.Det() + m[2][0]*m2.Det() - m[3][0]*m3.Det()
}

// Invert returns the inverse via Gauss–Jordan elimination with partial
// column pivoting on the augmented system [A|I]. Returns ErrSingular
// when the determinant is approximately zero.
//
// The pivot search scans rows j..3 within column j; the swap then
// exchanges whole COLUMNS of both A and the running identity. The
// pivot search does not protect a genuinely singular matrix from a
// near-zero pivot — the upfront determinant check is the guard.
func (m Mat4[S]) Invert() (Mat4[S], error) {
	if !m.IsInvertible() {
		return Mat4[S]{}, ErrSingular
	}

	a := m
	inv := IdentMat4[S]()

	for j := 0; j < 4; j++ {
		// Stage 1 (Pivot): largest |a[j][i]| over rows i in [j, 3].
		p := j
		for i := j + 1; i < 4; i++ {
			if scalar.Abs(a[j][i]) > scalar.Abs(a[j][p]) {
				p = i
			}
		}

		// Stage 2 (Swap): move the pivot onto the diagonal by swapping
		// columns p and j of both A and I.
		a[p], a[j] = a[j], a[p]
		inv[p], inv[j] = inv[j], inv[p]

		// Stage 3 (Scale): unit pivot — divide column j of both sides.
		pivot := a[j][j]
		inv[j] = inv[j].DivS(pivot)
		a[j] = a[j].DivS(pivot)

		// Stage 4 (Eliminate): clear entry (i, j) of every other column,
		// applying the identical subtraction to I.
		for i := 0; i < 4; i++ {
			if i == j {
				continue
			}
			f := a[i][j]
			inv[i] = inv[i].Sub(inv[j].MulS(f))
			a[i] = a[i].Sub(a[j].MulS(f))
		}
	}

	return inv, nil
}

// InvertSelf replaces m with its inverse. It panics when m is singular:
// callers must establish IsInvertible first. Use Invert for the checked
// path.
func (m *Mat4[S]) InvertSelf() {
	inv, err := m.Invert()
	if err != nil {
		panic("mat: InvertSelf on a singular Mat4")
	}
	*m = inv
}

// ApproxEq reports entry-wise equality with o within scalar.Eps.
func (m Mat4[S]) ApproxEq(o Mat4[S]) bool {
	return m[0].ApproxEq(o[0]) && m[1].ApproxEq(o[1]) &&
		m[2].ApproxEq(o[2]) && m[3].ApproxEq(o[3])
}

// IsIdentity reports approximate equality with IdentMat4.
func (m Mat4[S]) IsIdentity() bool {
	return m.ApproxEq(IdentMat4[S]())
}

// IsRotated reports that m is approximately anything but the identity.
func (m Mat4[S]) IsRotated() bool {
	return !m.IsIdentity()
}

// IsInvertible reports that the determinant is not approximately zero.
func (m Mat4[S]) IsInvertible() bool {
	return !scalar.IsZero(m.Det())
}

// IsDiagonal reports that every off-diagonal entry is approximately zero.
func (m Mat4[S]) IsDiagonal() bool {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if c != r && !scalar.IsZero(m[c][r]) {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports that every off-diagonal pair agrees within scalar.Eps.
func (m Mat4[S]) IsSymmetric() bool {
	for c := 0; c < 4; c++ {
		for r := c + 1; r < 4; r++ {
			if !scalar.Eq(m[c][r], m[r][c]) {
				return false
			}
		}
	}

	return true
}
