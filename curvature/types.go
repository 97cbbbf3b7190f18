package curvature

import (
	"fmt"
	"strings"
)

// Branch selects the sign of the correction term.
//
//   - Plus  - c² = a² + b² + (a²b²)/R² (hyperbolic). The zero value.
//   - Minus - c² = a² + b² − (a²b²)/R² (spherical).
type Branch int

const (
	// Plus adds the correction term.
	Plus Branch = iota

	// Minus subtracts the correction term.
	Minus
)

// String returns "plus" or "minus".
func (br Branch) String() string {
	switch br {
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	default:
		return fmt.Sprintf("Branch(%d)", int(br))
	}
}

// valid reports whether br is one of the declared branches.
func (br Branch) valid() bool {
	return br == Plus || br == Minus
}

// ParseBranch maps a branch name to a Branch. Accepted spellings are
// case-insensitive: "plus", "+", "hyperbolic", "minus", "-", "spherical".
// The empty string yields Plus, the default branch.
func ParseBranch(s string) (Branch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plus", "+", "hyperbolic":
		return Plus, nil
	case "minus", "-", "spherical":
		return Minus, nil
	default:
		return Plus, fmt.Errorf("ParseBranch %q: %w", s, ErrBadBranch)
	}
}

// DomainPolicy controls what Evaluate does with a negative radicand.
//
//   - DomainError - return ErrDomain (default).
//   - DomainNaN   - return a Result whose Distance is NaN and a nil error.
type DomainPolicy int

const (
	// DomainError reports a negative radicand as ErrDomain.
	DomainError DomainPolicy = iota

	// DomainNaN reports a negative radicand as Distance = NaN.
	DomainNaN
)

// Options configures Evaluate.
//
// Fields:
//   - Domain - negative radicand handling, see DomainPolicy.
//
// A nil *Options is the same as DefaultOptions().
type Options struct {
	Domain DomainPolicy
}

// DefaultOptions returns the options Distance and friends use.
func DefaultOptions() Options {
	return Options{Domain: DomainError}
}

// Input is one evaluation request: legs A and B, radius R, and the branch.
type Input struct {
	A, B, R float64
	Branch  Branch
}

// Result carries the corrected distance together with the terms it was
// built from.
type Result struct {
	// Distance is √Radicand, or NaN under DomainNaN when Radicand < 0.
	Distance float64

	// Euclid is the flat hypotenuse √(a² + b²).
	Euclid float64

	// Correction is (a²·b²)/R², always ≥ 0.
	Correction float64

	// Radicand is a² + b² ± Correction, before the square root.
	Radicand float64
}
