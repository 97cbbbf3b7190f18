// Package curvedist is a small toolkit around the curvature-corrected
// Pythagorean relation
//
//	c² = a² + b² ± (a²·b²)/R²
//
// 🚀 What is curvedist?
//
//	A pure-Go, allocation-free kernel plus the plumbing to use it:
//		• curvature: the distance itself, its terms and its sign against
//		  the flat hypotenuse, with sentinel errors for R = 0, negative
//		  radicands, NaN/Inf inputs and float64 overflow
//		• prep: the initial basis label of a qubit register, with one qubit
//		  flipped when the corrected distance is the longer one
//		• batch: concurrent evaluation of YAML batches with ordered,
//		  per-item outcomes and a YAML report
//		• cmd/curvedist: the command-line front end
//
// ✨ Why curvedist?
//
//   - Deterministic - same inputs, same result or same error
//   - Explicit failures - every error is a sentinel, match with errors.Is
//   - Concurrency-safe - the kernel touches no shared state
//
// Layout:
//
//	curvature/     - Distance, Evaluate, Compare, Correction, Radicand
//	prep/          - State, Prepare
//	batch/         - Load, Run, Summarize, WriteReport
//	cmd/curvedist/ - distance, prepare and batch subcommands
//
// Quick example:
//
//	legs 3 and 4, R = 10
//	  flat       5
//	  plus  (+)  √26.44 ≈ 5.1420
//	  minus (−)  √23.56 ≈ 4.8539
//
//	go get github.com/katalvlaran/curvedist/curvature
package curvedist
