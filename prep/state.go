package prep

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/curvedist/curvature"
)

// MaxQubits is the widest register a State can hold.
const MaxQubits = 64

// DefaultQubits is the register width used by DefaultOptions.
const DefaultQubits = 5

var (
	// ErrQubits indicates a register width outside 1..MaxQubits.
	ErrQubits = errors.New("prep: qubit count out of range")

	// ErrQubitIndex indicates a qubit index outside 0..Qubits-1.
	ErrQubitIndex = errors.New("prep: qubit index out of range")
)

// State is a computational-basis state of a register of Qubits qubits.
// Bit q of Bits is the value of qubit q. The zero State is invalid; use
// NewState.
type State struct {
	Qubits int
	Bits   uint64
}

// NewState returns |0…0⟩ on a register of the given width.
func NewState(qubits int) (State, error) {
	if qubits < 1 || qubits > MaxQubits {
		return State{}, fmt.Errorf("NewState(%d): %w", qubits, ErrQubits)
	}

	return State{Qubits: qubits}, nil
}

// Flip applies X to qubit q and returns the new state.
func (s State) Flip(q int) (State, error) {
	if q < 0 || q >= s.Qubits {
		return s, fmt.Errorf("Flip(%d) on %d qubits: %w", q, s.Qubits, ErrQubitIndex)
	}
	s.Bits ^= 1 << uint(q)

	return s, nil
}

// Bit returns the value (0 or 1) of qubit q. Out-of-range indices read as 0.
func (s State) Bit(q int) int {
	if q < 0 || q >= s.Qubits {
		return 0
	}

	return int(s.Bits>>uint(q)) & 1
}

// String renders the little-endian label, qubit 0 right-most.
func (s State) String() string {
	var sb strings.Builder
	sb.Grow(s.Qubits)
	for q := s.Qubits - 1; q >= 0; q-- {
		sb.WriteByte('0' + byte(s.Bit(q)))
	}

	return sb.String()
}

// Options configures Prepare.
//
// Fields:
//   - Qubits - register width, 1..MaxQubits.
//   - Target - qubit that receives the flip.
type Options struct {
	Qubits int
	Target int
}

// DefaultOptions returns a 5-qubit register flipping qubit 0.
func DefaultOptions() Options {
	return Options{Qubits: DefaultQubits, Target: 0}
}

// Prepare evaluates curvature.Compare on in and returns the initial state:
// |0…0⟩ with opts.Target flipped when the corrected distance is longer than
// the flat one. A nil opts means DefaultOptions().
//
// Errors:
//   - ErrQubits, ErrQubitIndex - bad register options (checked first).
//   - any curvature sentinel from Compare, wrapped.
func Prepare(in curvature.Input, opts *Options) (State, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	st, err := NewState(o.Qubits)
	if err != nil {
		return State{}, fmt.Errorf("Prepare: %w", err)
	}
	if o.Target < 0 || o.Target >= o.Qubits {
		return State{}, fmt.Errorf("Prepare: target %d on %d qubits: %w", o.Target, o.Qubits, ErrQubitIndex)
	}

	sign, err := curvature.Compare(in.A, in.B, in.R, in.Branch)
	if err != nil {
		return State{}, fmt.Errorf("Prepare: %w", err)
	}
	if sign > 0 {
		return st.Flip(o.Target)
	}

	return st, nil
}
