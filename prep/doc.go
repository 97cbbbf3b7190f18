// Package prep turns a curvature comparison into the initial basis state of
// a small qubit register.
//
// The circuits this module feeds start from |0…0⟩ and apply a single X
// (bit flip) on one qubit when the curvature-corrected distance is longer
// than the flat one. prep computes that decision and the resulting
// computational-basis label; building and simulating the circuit is left to
// whichever simulator the caller uses.
//
// Labels are little-endian: qubit 0 is the right-most character, so a
// 5-qubit register with qubit 0 flipped reads "00001".
//
//	st, err := prep.Prepare(curvature.Input{A: 3, B: 4, R: 10}, nil)
//	// st.String() == "00001"
package prep
