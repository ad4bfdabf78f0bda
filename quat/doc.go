// Package quat implements unit quaternions over any floating scalar and
// the conversion between 3×3 rotation matrices and quaternions.
//
// The quat package provides:
//
//   - Quat, a plain (W, X, Y, Z) value type with length and
//     normalization helpers.
//   - FromMat3 — extraction of a unit quaternion from a matrix assumed
//     to be a proper rotation, using Shoemake's four-branch case
//     analysis: the branch with the largest diagonal contribution is
//     selected so the square-root argument stays away from zero.
//   - FromAxisAngle and ToMat3 for building rotations and going back to
//     matrix form.
//
// FromMat3 does not validate orthonormality and does not re-normalize
// its output; callers needing strict unit length must Normalize
// downstream.
package quat
