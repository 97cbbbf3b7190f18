package curvature

import (
	"fmt"
	"math"
)

// Evaluate - curvature-corrected hypotenuse
//
// Description:
//
//	Evaluate bends the Pythagorean relation by a reference radius R:
//	  correction = (a² · b²) / R²
//	  c²         = a² + b² + correction   (Plus)
//	  c²         = a² + b² − correction   (Minus)
//	  c          = √c²
//
// Algorithm Outline:
//  1. Reject R = 0, then NaN inputs and infinite legs, then unknown branches.
//  2. correction = t², t = a·b/R. A zero leg or R = ±Inf gives 0.
//     t is formed from the mantissas and exponents of a, b and R
//     (math.Frexp / math.Ldexp), so a·b and R² are never materialised and
//     cannot overflow or underflow on their own. An infinite t² is ErrOverflow.
//  3. radicand = a² + b² ± correction; a non-finite radicand is ErrOverflow.
//  4. radicand < 0 (Minus only): ErrDomain, or NaN under DomainNaN.
//  5. Distance = √radicand; Euclid = math.Hypot(a, b).
//
// Complexity: O(1) time, O(1) memory.
//
// Errors:
//   - ErrDivisionByZero - R == 0.
//   - ErrNaNInf         - NaN in a, b or R; ±Inf in a or b.
//   - ErrBadBranch      - in.Branch is neither Plus nor Minus.
//   - ErrOverflow       - a finite input produced a non-finite term.
//   - ErrDomain         - negative radicand with opts.Domain == DomainError.
func Evaluate(in Input, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if err := validate(in); err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}
	correction, err := correctionTerm(in.A, in.B, in.R)
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}

	a2, b2 := in.A*in.A, in.B*in.B
	radicand := a2 + b2
	if in.Branch == Plus {
		radicand += correction
	} else {
		radicand -= correction
	}
	if math.IsInf(radicand, 0) || math.IsNaN(radicand) {
		return Result{}, fmt.Errorf("Evaluate: radicand: %w", ErrOverflow)
	}

	res := Result{
		Euclid:     math.Hypot(in.A, in.B),
		Correction: correction,
		Radicand:   radicand,
	}
	if radicand < 0 {
		if o.Domain == DomainNaN {
			res.Distance = math.NaN()

			return res, nil
		}

		return Result{}, fmt.Errorf("Evaluate: a=%v b=%v R=%v radicand=%v: %w",
			in.A, in.B, in.R, radicand, ErrDomain)
	}
	res.Distance = math.Sqrt(radicand)

	return res, nil
}

// validate applies the input checks in priority order:
// R = 0, then NaN/Inf, then branch.
func validate(in Input) error {
	if in.R == 0 {
		return ErrDivisionByZero
	}
	if math.IsNaN(in.A) || math.IsNaN(in.B) || math.IsNaN(in.R) ||
		math.IsInf(in.A, 0) || math.IsInf(in.B, 0) {
		return fmt.Errorf("a=%v b=%v R=%v: %w", in.A, in.B, in.R, ErrNaNInf)
	}
	if !in.Branch.valid() {
		return fmt.Errorf("%v: %w", in.Branch, ErrBadBranch)
	}

	return nil
}

// correctionTerm returns (a·b/r)² for validated inputs.
func correctionTerm(a, b, r float64) (float64, error) {
	if a == 0 || b == 0 || math.IsInf(r, 0) {
		return 0, nil
	}
	// mantissas lie in [0.5, 1), so ma·mb/mr stays within (0.25, 2)
	ma, ea := math.Frexp(a)
	mb, eb := math.Frexp(b)
	mr, er := math.Frexp(r)
	t := math.Ldexp(ma*mb/mr, ea+eb-er)
	c := t * t
	if math.IsInf(c, 0) {
		return 0, ErrOverflow
	}

	return c, nil
}

// Distance returns the curvature-corrected hypotenuse √(a² + b² ± (a²b²)/R²)
// on the given branch, using DefaultOptions.
//
// Example:
//
//	c, err := Distance(3, 4, 10, Plus)  // ≈ 5.1420
//	c, err = Distance(3, 4, 10, Minus)  // ≈ 4.8539
//	_, err = Distance(1, 1, 0.5, Minus) // errors.Is(err, ErrDomain)
func Distance(a, b, r float64, branch Branch) (float64, error) {
	res, err := Evaluate(Input{A: a, B: b, R: r, Branch: branch}, nil)
	if err != nil {
		return 0, err
	}

	return res.Distance, nil
}

// Hyperbolic is Distance on the Plus branch.
func Hyperbolic(a, b, r float64) (float64, error) {
	return Distance(a, b, r, Plus)
}

// Spherical is Distance on the Minus branch.
func Spherical(a, b, r float64) (float64, error) {
	return Distance(a, b, r, Minus)
}

// Correction returns the correction term (a²·b²)/R² alone. It applies the
// input checks of Evaluate but not the radicand check, so a finite
// correction is returned even when a² + b² + correction overflows.
func Correction(a, b, r float64) (float64, error) {
	if err := validate(Input{A: a, B: b, R: r}); err != nil {
		return 0, fmt.Errorf("Correction: %w", err)
	}
	c, err := correctionTerm(a, b, r)
	if err != nil {
		return 0, fmt.Errorf("Correction: %w", err)
	}

	return c, nil
}

// Radicand returns c² before the square root. On the Minus branch the value
// may be negative; it is returned as is, not reported as ErrDomain.
func Radicand(a, b, r float64, branch Branch) (float64, error) {
	opts := Options{Domain: DomainNaN}
	res, err := Evaluate(Input{A: a, B: b, R: r, Branch: branch}, &opts)
	if err != nil {
		return 0, err
	}

	return res.Radicand, nil
}

// Euclid returns the flat hypotenuse √(a² + b²).
func Euclid(a, b float64) float64 {
	return math.Hypot(a, b)
}

// Compare reports how the corrected distance relates to the flat one:
// +1 when it is longer, -1 when shorter, 0 when the correction vanishes
// in float64 (a zero leg, R = ±Inf, or a correction below one ulp of a² + b²).
//
// Errors are those of Evaluate with DefaultOptions, so a negative Minus
// radicand is ErrDomain.
func Compare(a, b, r float64, branch Branch) (int, error) {
	res, err := Evaluate(Input{A: a, B: b, R: r, Branch: branch}, nil)
	if err != nil {
		return 0, err
	}
	if res.Radicand == a*a+b*b {
		return 0, nil
	}
	if branch == Plus {
		return 1, nil
	}

	return -1, nil
}
