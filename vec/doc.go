// Package vec implements fixed-size vectors of dimension 2, 3 and 4 over
// any floating scalar.
//
// The vec package provides:
//
//   - Vec2, Vec3 and Vec4 as plain [N]S arrays — component i is v[i],
//     value semantics throughout, comparable with == when exactness is
//     wanted.
//   - Element-wise arithmetic (Add, Sub, MulS, DivS, RemS, Neg), dot
//     product, cross product (Vec3 only), length and normalization.
//   - Checked indexed access: At, Set and Swap return ErrOutOfRange for
//     an index outside [0, N).
//
// Vectors are the column type of the mat package: a Mat3 is three Vec3
// columns, and the 3×3 inverse leans directly on Cross.
//
// Normalize on the zero vector is undefined (division by zero length);
// callers must guarantee a non-zero input.
package vec
