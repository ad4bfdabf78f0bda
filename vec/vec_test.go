package vec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vmath/vec"
	"github.com/stretchr/testify/assert"
)

// TestVec3_DotCross pins the dot and cross products on the canonical basis.
func TestVec3_DotCross(t *testing.T) {
	x := vec.NewVec3(1.0, 0, 0)
	y := vec.NewVec3(0.0, 1, 0)
	z := vec.NewVec3(0.0, 0, 1)

	assert.Equal(t, 0.0, x.Dot(y), "orthogonal basis vectors have zero dot")
	assert.Equal(t, 1.0, x.Dot(x), "unit vector dot itself is 1")

	assert.Equal(t, z, x.Cross(y), "x × y = z (right-handed)")
	assert.Equal(t, x, y.Cross(z), "y × z = x")
	assert.Equal(t, y, z.Cross(x), "z × x = y")
	assert.Equal(t, z.Neg(), y.Cross(x), "cross is anti-commutative")
}

// TestVec3_Normalize checks length after normalization of a non-unit input.
func TestVec3_Normalize(t *testing.T) {
	v := vec.NewVec3(3.0, 0, 4)
	n := v.Normalize()

	assert.InDelta(t, 1.0, n.Len(), 1e-12, "normalized vector must have unit length")
	assert.InDelta(t, 0.6, n[0], 1e-12)
	assert.InDelta(t, 0.8, n[2], 1e-12)
}

// TestVec_Arithmetic covers element-wise ops across the three dimensions.
func TestVec_Arithmetic(t *testing.T) {
	a2 := vec.NewVec2(1.0, 2)
	b2 := vec.NewVec2(3.0, 5)
	assert.Equal(t, vec.NewVec2(4.0, 7), a2.Add(b2))
	assert.Equal(t, vec.NewVec2(-2.0, -3), a2.Sub(b2))
	assert.Equal(t, vec.NewVec2(2.0, 4), a2.MulS(2))
	assert.Equal(t, vec.NewVec2(0.5, 1), a2.DivS(2))

	a4 := vec.NewVec4(1.0, -2, 3, -4)
	assert.Equal(t, vec.NewVec4(-1.0, 2, -3, 4), a4.Neg())
	assert.Equal(t, 30.0, a4.Dot(a4))

	// RemS keeps the dividend's sign, as math.Mod does.
	r := vec.NewVec3(7.5, -7.5, 2).RemS(2)
	assert.Equal(t, math.Mod(7.5, 2), r[0])
	assert.Equal(t, math.Mod(-7.5, 2), r[1])
	assert.Equal(t, 0.0, r[2])
}

// TestVec_CheckedAccess verifies the At/Set/Swap bounds contract.
func TestVec_CheckedAccess(t *testing.T) {
	v := vec.NewVec3(1.0, 2, 3)

	got, err := v.At(2)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, got)

	_, err = v.At(3)
	assert.ErrorIs(t, err, vec.ErrOutOfRange, "At past the end must error")
	_, err = v.At(-1)
	assert.ErrorIs(t, err, vec.ErrOutOfRange, "negative index must error")

	assert.NoError(t, v.Set(0, 9))
	assert.Equal(t, 9.0, v[0])
	assert.ErrorIs(t, v.Set(3, 9), vec.ErrOutOfRange)

	assert.NoError(t, v.Swap(0, 2))
	assert.Equal(t, vec.NewVec3(3.0, 2, 9), v)
	assert.ErrorIs(t, v.Swap(0, 5), vec.ErrOutOfRange)
}

// TestVec_ApproxEq exercises the tolerance-based comparison.
func TestVec_ApproxEq(t *testing.T) {
	a := vec.NewVec3(1.0, 2, 3)
	b := vec.NewVec3(1.0+1e-9, 2, 3)
	c := vec.NewVec3(1.1, 2, 3)

	assert.True(t, a.ApproxEq(b), "sub-tolerance difference compares equal")
	assert.False(t, a.ApproxEq(c), "visible difference compares unequal")
}
