package prep_test

import (
	"fmt"

	"github.com/katalvlaran/curvedist/curvature"
	"github.com/katalvlaran/curvedist/prep"
)

// ExamplePrepare prints the 5-qubit initial labels for both branches of the
// 3-4-10 triangle.
func ExamplePrepare() {
	for _, br := range []curvature.Branch{curvature.Plus, curvature.Minus} {
		st, err := prep.Prepare(curvature.Input{A: 3, B: 4, R: 10, Branch: br}, nil)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s |%s>\n", br, st)
	}
	// Output:
	// plus |00001>
	// minus |00000>
}
