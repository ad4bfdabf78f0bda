// Package scalar defines the floating-point capability the rest of vmath
// is parameterized over.
//
// The scalar package provides:
//
//   - The Float constraint (~float32 | ~float64) used by vec, mat and quat.
//   - A fixed numeric tolerance Eps and the approximate-equality
//     predicates Eq and IsZero built on it.
//   - Generic wrappers (Abs, Sqrt, Sin, Cos, Mod) over the standard math
//     package, so algorithms stay generic without per-type switches.
//
// Every comparison in vmath that asks "are these equal?" goes through Eq:
// exact floating-point equality is never used for numeric results.
package scalar
