// SPDX-License-Identifier: MIT

// Package mat: matrix types and the shared Matrix capability.
// This file intentionally contains ONLY the three column-major matrix
// types and the generic interface they satisfy. Errors live in
// errors.go and per-dimension algorithm bodies in mat2/mat3/mat4.go,
// per the global conventions.
package mat

import (
	"github.com/katalvlaran/vmath/scalar"
	"github.com/katalvlaran/vmath/vec"
)

// Mat2 is a 2×2 column-major matrix: two Vec2 columns, entry (c, r) is m[c][r].
type Mat2[S scalar.Float] [2]vec.Vec2[S]

// Mat3 is a 3×3 column-major matrix: three Vec3 columns, entry (c, r) is m[c][r].
type Mat3[S scalar.Float] [3]vec.Vec3[S]

// Mat4 is a 4×4 column-major matrix: four Vec4 columns, entry (c, r) is m[c][r].
type Mat4[S scalar.Float] [4]vec.Vec4[S]

// Matrix is the dimension-generic capability shared by Mat2, Mat3 and
// Mat4. M is the concrete matrix type, V its column vector type. One
// contract, three algorithm sets: every dimension supplies its own
// determinant, inversion and transpose bodies.
//
// Mutating variants (Set, SwapCols, SwapRows, the *Self methods) are
// pointer-receiver methods on the concrete types and are deliberately
// not part of the capability.
//
// Complexity notes: Row is a gather, O(N) per call with no caching;
// MulM is O(N³); everything else is O(N) or O(N²).
type Matrix[S scalar.Float, M, V any] interface {
	// Col returns column i, or ErrOutOfRange when i is outside [0, N).
	Col(i int) (V, error)
	// Row reconstructs row i by gathering component i from every column.
	Row(i int) (V, error)
	// At returns entry (c, r), or ErrOutOfRange for an invalid index.
	At(c, r int) (S, error)

	// MulS, DivS and RemS apply the scalar operator to every entry.
	MulS(s S) M
	DivS(s S) M
	RemS(s S) M
	// Neg negates every entry.
	Neg() M

	// Add and Sub are component-wise matrix sums and differences.
	Add(o M) M
	Sub(o M) M
	// MulV is the matrix-vector product: component i = dot(row i, v).
	MulV(v V) V
	// MulM is the matrix-matrix product: entry (c, r) = dot(row r, o column c).
	MulM(o M) M

	// Transpose returns the matrix with entry (c, r) and (r, c) exchanged.
	Transpose() M
	// Trace returns the sum of the diagonal entries.
	Trace() S
	// Det returns the determinant.
	Det() S
	// Invert returns the inverse, or ErrSingular when Det is
	// approximately zero. Never returns a partial result.
	Invert() (M, error)

	// ApproxEq reports entry-wise equality within scalar.Eps.
	ApproxEq(o M) bool
	// IsIdentity reports approximate equality with the identity matrix.
	IsIdentity() bool
	// IsRotated is the negation of IsIdentity.
	IsRotated() bool
	// IsInvertible reports that Det is not approximately zero.
	IsInvertible() bool
	// IsDiagonal reports that every off-diagonal entry is approximately zero.
	IsDiagonal() bool
	// IsSymmetric reports entry (c, r) ≈ entry (r, c) for all pairs.
	IsSymmetric() bool
}

// Compile-time checks: the three concrete types satisfy the capability
// for both supported scalars.
var (
	_ Matrix[float64, Mat2[float64], vec.Vec2[float64]] = Mat2[float64]{}
	_ Matrix[float64, Mat3[float64], vec.Vec3[float64]] = Mat3[float64]{}
	_ Matrix[float64, Mat4[float64], vec.Vec4[float64]] = Mat4[float64]{}
	_ Matrix[float32, Mat3[float32], vec.Vec3[float32]] = Mat3[float32]{}
)
