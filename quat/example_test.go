package quat_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vmath/quat"
	"github.com/katalvlaran/vmath/vec"
)

// ExampleFromMat3 extracts a quaternion from a 90° rotation about the
// z axis and shows the round trip back to matrix form.
func ExampleFromMat3() {
	q := quat.FromAxisAngle(vec.NewVec3(0.0, 0, 1), math.Pi/2)
	m := q.ToMat3()

	back := quat.FromMat3(m)
	fmt.Printf("w=%.4f z=%.4f\n", back.W, back.Z)
	fmt.Println("round trip:", back.ToMat3().ApproxEq(m))

	// Output:
	// w=0.7071 z=0.7071
	// round trip: true
}
