// Package vmath is a small, fixed-dimension linear-algebra kernel for
// graphics and simulation code — square matrices of dimension 2, 3 and 4
// over any floating scalar, plus the vector and quaternion plumbing they
// need.
//
// 🚀 What is vmath?
//
//	A compact library of pure value types:
//		• scalar/ — the Float constraint, fixed tolerance, approximate equality
//		• vec/    — Vec2/Vec3/Vec4: dot, cross, normalize, element-wise ops
//		• mat/    — Mat2/Mat3/Mat4: compose, transpose, trace, determinant, invert
//		• quat/   — unit quaternions: extraction from a 3×3 rotation and back
//
// ✨ Why choose vmath?
//
//   - Value semantics – every operation is a pure function of its inputs;
//     no shared mutable state, no hidden allocation, no concurrency hazards
//   - Column-major storage matching the conventions of graphics pipelines
//   - Explicit numerics – per-dimension closed-form determinants and
//     inverses, Gauss–Jordan with pivoting for 4×4, Shoemake's numerically
//     stable quaternion extraction
//   - Checked indexing – public accessors return ErrOutOfRange instead of
//     panicking
//
// Matrices are generic over the scalar (float32 or float64) but concrete
// over the dimension: Mat2, Mat3 and Mat4 each carry their own algorithm
// bodies behind the shared mat.Matrix capability.
package vmath
