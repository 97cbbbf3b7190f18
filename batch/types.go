package batch

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/curvedist/curvature"
	"go.uber.org/zap"
)

var (
	// ErrWorkers indicates Options.Workers < 1.
	ErrWorkers = errors.New("batch: workers must be >= 1")

	// ErrDecode wraps YAML decoding failures of a batch document.
	ErrDecode = errors.New("batch: cannot decode batch document")

	// ErrEmpty indicates a batch document without items.
	ErrEmpty = errors.New("batch: document has no items")
)

// Item is one batch entry as it appears in YAML.
type Item struct {
	ID     string  `yaml:"id"`
	A      float64 `yaml:"a"`
	B      float64 `yaml:"b"`
	R      float64 `yaml:"r"`
	Branch string  `yaml:"branch,omitempty"`
}

// Input converts the item into a curvature.Input, parsing its branch name.
func (it Item) Input() (curvature.Input, error) {
	br, err := curvature.ParseBranch(it.Branch)
	if err != nil {
		return curvature.Input{}, fmt.Errorf("item %s: %w", it.ID, err)
	}

	return curvature.Input{A: it.A, B: it.B, R: it.R, Branch: br}, nil
}

// Outcome pairs an item with its evaluation. Err is nil on success.
type Outcome struct {
	Item   Item
	Result curvature.Result
	Err    error
}

// Options configures Run.
//
// Fields:
//   - Workers   - maximum concurrent evaluations, >= 1.
//   - Curvature - options passed to curvature.Evaluate.
//   - Logger    - receives per-item failures (debug) and a run summary (info).
//     nil means zap.NewNop().
type Options struct {
	Workers   int
	Curvature curvature.Options
	Logger    *zap.Logger
}

// DefaultOptions uses GOMAXPROCS workers, curvature defaults and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		Curvature: curvature.DefaultOptions(),
		Logger:    zap.NewNop(),
	}
}

// Summary counts outcomes. ByKind maps an error kind (see Kind) to its count.
type Summary struct {
	Total  int
	OK     int
	Failed int
	ByKind map[string]int
}
