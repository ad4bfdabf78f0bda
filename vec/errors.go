// SPDX-License-Identifier: MIT
// Package vec: sentinel error set. Public indexers return these
// sentinels and callers match them via errors.Is; no user-triggered
// condition panics.

package vec

import "errors"

// ErrOutOfRange indicates a component index outside [0, N) for an
// N-component vector. At, Set and Swap return it; they never panic.
var ErrOutOfRange = errors.New("vec: index out of range")
