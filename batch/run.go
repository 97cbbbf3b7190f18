package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/curvedist/curvature"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run evaluates every item with at most opts.Workers goroutines and returns
// one Outcome per item, in input order. A nil opts means DefaultOptions().
//
// Per-item failures are stored on the Outcome. Run itself fails only with
// ErrWorkers or when ctx is done before every item was evaluated; the
// outcomes are discarded in that case.
func Run(ctx context.Context, items []Item, opts *Options) ([]Outcome, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("Run: workers=%d: %w", o.Workers, ErrWorkers)
	}
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make([]Outcome, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	for i := range items {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = evaluate(items[i], &o.Curvature)
			if out[i].Err != nil {
				logger.Debug("batch item failed",
					zap.Int("index", i),
					zap.String("id", items[i].ID),
					zap.String("kind", Kind(out[i].Err)),
					zap.Error(out[i].Err))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	s := Summarize(out)
	logger.Info("batch finished",
		zap.Int("total", s.Total),
		zap.Int("ok", s.OK),
		zap.Int("failed", s.Failed),
		zap.Int("workers", o.Workers))

	return out, nil
}

// evaluate runs a single item.
func evaluate(it Item, opts *curvature.Options) Outcome {
	in, err := it.Input()
	if err != nil {
		return Outcome{Item: it, Err: err}
	}
	res, err := curvature.Evaluate(in, opts)
	if err != nil {
		return Outcome{Item: it, Err: fmt.Errorf("item %s: %w", it.ID, err)}
	}

	return Outcome{Item: it, Result: res}
}

// Error kinds reported by Kind.
const (
	KindOK             = "ok"
	KindDivisionByZero = "division_by_zero"
	KindDomain         = "domain"
	KindNaNInf         = "nan_inf"
	KindOverflow       = "overflow"
	KindBadBranch      = "bad_branch"
	KindOther          = "other"
)

// Kind classifies err by the curvature sentinel it wraps.
func Kind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, curvature.ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, curvature.ErrDomain):
		return KindDomain
	case errors.Is(err, curvature.ErrNaNInf):
		return KindNaNInf
	case errors.Is(err, curvature.ErrOverflow):
		return KindOverflow
	case errors.Is(err, curvature.ErrBadBranch):
		return KindBadBranch
	default:
		return KindOther
	}
}

// Summarize counts outcomes by success and error kind.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes), ByKind: make(map[string]int)}
	for _, oc := range outcomes {
		if oc.Err == nil {
			s.OK++
			continue
		}
		s.Failed++
		s.ByKind[Kind(oc.Err)]++
	}

	return s
}
