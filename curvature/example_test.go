package curvature_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/curvedist/curvature"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Legs a = 3, b = 4 on a surface of radius R = 10.
//	  flat       √25                 = 5
//	  hyperbolic √(25 + 1.44) = √26.44 ≈ 5.1420
//	  spherical  √(25 − 1.44) = √23.56 ≈ 4.8539
func ExampleDistance() {
	plus, _ := curvature.Distance(3, 4, 10, curvature.Plus)
	minus, _ := curvature.Distance(3, 4, 10, curvature.Minus)
	fmt.Printf("flat=%.4f\nplus=%.4f\nminus=%.4f\n", curvature.Euclid(3, 4), plus, minus)
	// Output:
	// flat=5.0000
	// plus=5.1420
	// minus=4.8539
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance_errors
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	R = 0 has no curvature radius; (1, 1, 0.5) on the Minus branch
//	subtracts a correction of 4 from a² + b² = 2.
func ExampleDistance_errors() {
	_, err := curvature.Distance(3, 4, 0, curvature.Plus)
	fmt.Println(errors.Is(err, curvature.ErrDivisionByZero))

	_, err = curvature.Distance(1, 1, 0.5, curvature.Minus)
	fmt.Println(errors.Is(err, curvature.ErrDomain))
	// Output:
	// true
	// true
}

// ExampleEvaluate shows the DomainNaN policy and the intermediate terms.
func ExampleEvaluate() {
	opts := curvature.DefaultOptions()
	opts.Domain = curvature.DomainNaN

	res, err := curvature.Evaluate(curvature.Input{A: 1, B: 1, R: 0.5, Branch: curvature.Minus}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("nan=%v correction=%.0f radicand=%.0f\n", math.IsNaN(res.Distance), res.Correction, res.Radicand)
	// Output:
	// nan=true correction=4 radicand=-2
}

// ExampleCompare prints the sign for both branches and the flat limit.
func ExampleCompare() {
	for _, r := range []float64{10, math.Inf(1)} {
		p, _ := curvature.Compare(3, 4, r, curvature.Plus)
		m, _ := curvature.Compare(3, 4, r, curvature.Minus)
		fmt.Printf("R=%v plus=%+d minus=%+d\n", r, p, m)
	}
	// Output:
	// R=10 plus=+1 minus=-1
	// R=+Inf plus=+0 minus=+0
}
