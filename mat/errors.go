// SPDX-License-Identifier: MIT
// Package mat: sentinel error set. All operations return these
// sentinels and tests check them via errors.Is. No user-triggered
// condition panics; the only panic in the package is the documented
// InvertSelf programmer-error contract.

package mat

import "errors"

var (
	// ErrSingular is returned by Invert (any dimension) when the
	// determinant is approximately zero. No partial inverse is ever
	// produced alongside it.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrOutOfRange indicates a row or column index outside [0, N) for
	// an N×N matrix. Public indexers return it, they never panic.
	ErrOutOfRange = errors.New("mat: index out of range")
)
