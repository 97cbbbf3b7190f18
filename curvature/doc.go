// Package curvature computes curvature-corrected hypotenuse lengths: a
// Pythagorean relation bent by a reference radius R.
//
// 🚀 What is a curvature-corrected distance?
//
//	On a flat plane the hypotenuse of legs a and b is √(a² + b²).
//	On a curved surface of radius R the relation picks up a correction
//	term that vanishes as R → ∞:
//
//	  correction = (a² · b²) / R²
//	  c²         = a² + b² ± correction
//
//	The "+" branch (Plus) models hyperbolic deviation, the "−" branch
//	(Minus) spherical deviation.
//
// ✨ Key features:
//   - one pure kernel (Evaluate) behind small helpers: Distance,
//     Hyperbolic, Spherical, Correction, Radicand, Compare
//   - sentinel errors for every failure: R = 0, negative radicand,
//     NaN/Inf inputs, float64 overflow, unknown branch
//   - DomainNaN policy for callers that prefer a signalling NaN over
//     ErrDomain on the Minus branch
//   - R = ±Inf is accepted and yields the flat length (math.Hypot)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/curvedist/curvature"
//
//	c, err := curvature.Distance(3, 4, 10, curvature.Plus) // √26.44 ≈ 5.1420
//	if errors.Is(err, curvature.ErrDivisionByZero) {
//	  // R was zero
//	}
//
//	opts := curvature.DefaultOptions()
//	opts.Domain = curvature.DomainNaN
//	res, _ := curvature.Evaluate(curvature.Input{A: 1, B: 1, R: 0.5, Branch: curvature.Minus}, &opts)
//	// math.IsNaN(res.Distance) == true
//
// Every function is pure and safe for concurrent use.
//
// Performance:
//
//   - Time:   O(1)
//   - Memory: O(1), no allocations
package curvature
