package quat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vmath/mat"
	"github.com/katalvlaran/vmath/quat"
	"github.com/katalvlaran/vmath/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromMat3_Identity: the identity rotation extracts to (1, 0, 0, 0).
func TestFromMat3_Identity(t *testing.T) {
	q := quat.FromMat3(mat.IdentMat3[float64]())

	assert.True(t, q.ApproxEq(quat.Ident[float64]()), "ident matrix must yield the identity quaternion")
	assert.InDelta(t, 1.0, q.Len(), 1e-12, "extraction of a rotation yields unit length")
}

// TestFromMat3_RoundTrip builds rotations from axis-angle, extracts the
// quaternion and rebuilds the matrix; both directions must agree within
// tolerance.
func TestFromMat3_RoundTrip(t *testing.T) {
	axes := []vec.Vec3[float64]{
		vec.NewVec3(0.0, 0, 1),
		vec.NewVec3(1.0, 0, 0),
		vec.NewVec3(1.0, 1, 1).Normalize(),
	}

	for _, axis := range axes {
		q := quat.FromAxisAngle(axis, math.Pi/2)
		m := q.ToMat3()
		require.True(t, m.IsRotated())

		back := quat.FromMat3(m)
		assert.True(t, back.ApproxEq(q), "matrix → quaternion must recover the source rotation")
		assert.True(t, back.ToMat3().ApproxEq(m), "quaternion → matrix must reproduce the source matrix")
	}
}

// TestFromMat3_BranchSelection drives each of the four extraction
// branches: trace ≥ 0 first, then the largest diagonal entry. The
// diagonal test matrices keep the off-diagonal differences at zero, so
// only w survives and its value pins the branch formula.
func TestFromMat3_BranchSelection(t *testing.T) {
	wantW := math.Sqrt(3.5) / 2

	for name, tc := range map[string]struct {
		m mat.Mat3[float64]
	}{
		"m00 dominant": {mat.NewMat3(1.0, 0, 0, 0, -1, 0, 0, 0, -1)},
		"m11 dominant": {mat.NewMat3(-1.0, 0, 0, 0, 1, 0, 0, 0, -1)},
		"m22 dominant": {mat.NewMat3(-1.0, 0, 0, 0, -1, 0, 0, 0, 1)},
	} {
		t.Run(name, func(t *testing.T) {
			q := quat.FromMat3(tc.m)
			assert.InDelta(t, wantW, q.W, 1e-12)
			assert.InDelta(t, 0.0, q.X, 1e-12)
			assert.InDelta(t, 0.0, q.Y, 1e-12)
			assert.InDelta(t, 0.0, q.Z, 1e-12)
		})
	}

	// Non-negative trace takes the first branch: sqrt(1+t)/2.
	q := quat.FromMat3(mat.IdentMat3[float64]())
	assert.InDelta(t, 1.0, q.W, 1e-12)
}

// TestFromAxisAngle pins the half-angle construction.
func TestFromAxisAngle(t *testing.T) {
	z := vec.NewVec3(0.0, 0, 1)

	assert.True(t, quat.FromAxisAngle(z, 0.0).ApproxEq(quat.Ident[float64]()), "zero angle is the identity")

	q := quat.FromAxisAngle(z, math.Pi)
	assert.InDelta(t, 0.0, q.W, 1e-12, "half turn has zero scalar part")
	assert.InDelta(t, 1.0, q.Z, 1e-12)
}

// TestToMat3_ZRotation compares the quaternion-built matrix with the
// directly-constructed z rotation.
func TestToMat3_ZRotation(t *testing.T) {
	theta := 0.7
	sin, cos := math.Sin(theta), math.Cos(theta)
	want := mat.NewMat3(
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	)

	got := quat.FromAxisAngle(vec.NewVec3(0.0, 0, 1), theta).ToMat3()
	assert.True(t, got.ApproxEq(want))
	assert.InDelta(t, 1.0, got.Det(), 1e-12, "a rotation has unit determinant")
}

// TestLenNormalize covers the helper surface.
func TestLenNormalize(t *testing.T) {
	q := quat.New(0.0, 3, 0, 4)
	assert.Equal(t, 5.0, q.Len())

	n := q.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Z, 1e-12)
}
