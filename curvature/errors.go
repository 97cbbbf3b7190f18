package curvature

import "errors"

// Every message is prefixed with "curvature: " for easy grepping. Public
// functions wrap these with the operation name (fmt.Errorf("Op: %w", ErrX));
// callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// R = 0 -> NaN/Inf input -> branch -> overflow -> domain.
var (
	// ErrDivisionByZero is returned when the curvature radius R is zero,
	// whatever the legs are.
	ErrDivisionByZero = errors.New("curvature: radius R must be non-zero")

	// ErrDomain is returned when the Minus branch radicand
	// a² + b² − (a²b²)/R² is negative and no real result exists.
	ErrDomain = errors.New("curvature: negative radicand, no real result")

	// ErrNaNInf signals a NaN input, or an infinite leg.
	// An infinite radius is allowed (flat limit).
	ErrNaNInf = errors.New("curvature: NaN or Inf input")

	// ErrOverflow signals that finite inputs produced a non-finite term
	// in float64 (a²b² overflowing, R² underflowing to zero, ...).
	ErrOverflow = errors.New("curvature: float64 overflow in intermediate term")

	// ErrBadBranch indicates a Branch value other than Plus or Minus,
	// or a branch name ParseBranch does not recognise.
	ErrBadBranch = errors.New("curvature: unknown branch")
)
