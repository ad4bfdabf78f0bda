package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vmath/scalar"
	"github.com/stretchr/testify/assert"
)

// TestEq_WithinTolerance verifies that values closer than Eps compare
// equal and values farther apart do not.
func TestEq_WithinTolerance(t *testing.T) {
	assert.True(t, scalar.Eq(1.0, 1.0+scalar.Eps/2), "difference below Eps must compare equal")
	assert.True(t, scalar.Eq(1.0, 1.0), "identical values must compare equal")
	assert.False(t, scalar.Eq(1.0, 1.0+10*scalar.Eps), "difference above Eps must compare unequal")
}

// TestEq_Float32 exercises the generic path with a float32 scalar.
func TestEq_Float32(t *testing.T) {
	assert.True(t, scalar.Eq[float32](2.5, 2.5))
	assert.False(t, scalar.Eq[float32](2.5, 2.6))
}

// TestIsZero covers both sides of the tolerance band.
func TestIsZero(t *testing.T) {
	assert.True(t, scalar.IsZero(0.0))
	assert.True(t, scalar.IsZero(scalar.Eps/2))
	assert.True(t, scalar.IsZero(-scalar.Eps/2))
	assert.False(t, scalar.IsZero(0.001))
}

// TestAbs checks sign handling including negative zero.
func TestAbs(t *testing.T) {
	assert.Equal(t, 3.0, scalar.Abs(-3.0))
	assert.Equal(t, 3.0, scalar.Abs(3.0))
	assert.Equal(t, 0.0, scalar.Abs(0.0))
}

// TestMathWrappers pins the generic wrappers against the stdlib.
func TestMathWrappers(t *testing.T) {
	assert.Equal(t, math.Sqrt(2), scalar.Sqrt(2.0))
	assert.Equal(t, math.Sin(0.5), scalar.Sin(0.5))
	assert.Equal(t, math.Cos(0.5), scalar.Cos(0.5))
	assert.Equal(t, math.Mod(7.5, 2), scalar.Mod(7.5, 2.0))
}
