// Package mat implements square matrices of fixed dimension 2, 3 and 4
// over any floating scalar — the algebraic core of vmath.
//
// The mat package provides:
//
//   - Mat2, Mat3 and Mat4 as fixed arrays of column vectors
//     (column-major: entry (c, r) is m[c][r]).
//   - Constructors from raw scalars, column vectors, a diagonal value,
//     a 2D rotation angle (Mat2FromAngle) and a view basis (Mat3LookAt).
//   - The dimension-generic Matrix capability: scalar and matrix
//     arithmetic, matrix-vector and matrix-matrix products, transpose,
//     trace, determinant, inversion and structural predicates.
//   - Per-dimension inversion algorithms: closed-form adjugate for 2×2,
//     cross-product adjugate for 3×3, and Gauss–Jordan elimination with
//     partial column pivoting for 4×4.
//
// Error policy: Invert is total — it returns ErrSingular when the
// determinant is approximately zero and never a partial result.
// InvertSelf is the convenience wrapper for callers that have already
// established invertibility; it panics on a singular receiver. Indexed
// accessors (At, Set, Col, Row, SwapCols, SwapRows) are bounds-checked
// and return ErrOutOfRange.
//
// All types are pure values: operations either return a new matrix or
// mutate a uniquely-owned receiver through a pointer method. Nothing is
// shared, so the package is trivially safe for concurrent use.
package mat
