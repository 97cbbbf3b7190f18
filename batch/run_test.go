package batch_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/curvedist/batch"
	"github.com/katalvlaran/curvedist/curvature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// row is the comparable projection of an Outcome.
type row struct {
	ID       string
	Kind     string
	Distance float64
}

func project(outcomes []batch.Outcome) []row {
	rows := make([]row, len(outcomes))
	for i, oc := range outcomes {
		rows[i] = row{ID: oc.Item.ID, Kind: batch.Kind(oc.Err), Distance: oc.Result.Distance}
	}

	return rows
}

func mixedItems() []batch.Item {
	return []batch.Item{
		{ID: "plus", A: 3, B: 4, R: 10},
		{ID: "minus", A: 3, B: 4, R: 10, Branch: "minus"},
		{ID: "zero-r", A: 3, B: 4, R: 0},
		{ID: "domain", A: 1, B: 1, R: 0.5, Branch: "spherical"},
		{ID: "nan", A: math.NaN(), B: 1, R: 1},
		{ID: "overflow", A: 1e200, B: 1, R: 1},
		{ID: "branch", A: 1, B: 1, R: 1, Branch: "sideways"},
		{ID: "flat", A: 3, B: 4, R: math.Inf(1), Branch: "-"},
	}
}

// TestRun_MixedOutcomes checks order preservation and per-item error isolation.
func TestRun_MixedOutcomes(t *testing.T) {
	opts := batch.DefaultOptions()
	opts.Workers = 3

	out, err := batch.Run(context.Background(), mixedItems(), &opts)
	require.NoError(t, err)

	want := []row{
		{ID: "plus", Kind: batch.KindOK, Distance: math.Sqrt(26.44)},
		{ID: "minus", Kind: batch.KindOK, Distance: math.Sqrt(23.56)},
		{ID: "zero-r", Kind: batch.KindDivisionByZero},
		{ID: "domain", Kind: batch.KindDomain},
		{ID: "nan", Kind: batch.KindNaNInf},
		{ID: "overflow", Kind: batch.KindOverflow},
		{ID: "branch", Kind: batch.KindBadBranch},
		{ID: "flat", Kind: batch.KindOK, Distance: 5},
	}
	if diff := cmp.Diff(want, project(out), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}

	s := batch.Summarize(out)
	assert.Equal(t, 8, s.Total)
	assert.Equal(t, 3, s.OK)
	assert.Equal(t, 5, s.Failed)
	assert.Equal(t, map[string]int{
		batch.KindDivisionByZero: 1,
		batch.KindDomain:         1,
		batch.KindNaNInf:         1,
		batch.KindOverflow:       1,
		batch.KindBadBranch:      1,
	}, s.ByKind)
}

// TestRun_OrderUnderConcurrency evaluates many items and checks each lands at its index.
func TestRun_OrderUnderConcurrency(t *testing.T) {
	items := make([]batch.Item, 500)
	want := make([]row, len(items))
	for i := range items {
		a := float64(i)
		items[i] = batch.Item{ID: fmt.Sprintf("i%03d", i), A: a, B: 0, R: 1}
		want[i] = row{ID: items[i].ID, Kind: batch.KindOK, Distance: a}
	}

	opts := batch.DefaultOptions()
	opts.Workers = 8
	out, err := batch.Run(context.Background(), items, &opts)
	require.NoError(t, err)
	if diff := cmp.Diff(want, project(out)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

// TestRun_DomainNaN passes curvature options through.
func TestRun_DomainNaN(t *testing.T) {
	opts := batch.DefaultOptions()
	opts.Curvature.Domain = curvature.DomainNaN

	out, err := batch.Run(context.Background(), []batch.Item{{ID: "d", A: 1, B: 1, R: 0.5, Branch: "minus"}}, &opts)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NoError(t, out[0].Err)
	assert.True(t, math.IsNaN(out[0].Result.Distance))
}

// TestRun_BadWorkers rejects a non-positive worker count.
func TestRun_BadWorkers(t *testing.T) {
	opts := batch.DefaultOptions()
	opts.Workers = 0
	_, err := batch.Run(context.Background(), mixedItems(), &opts)
	assert.ErrorIs(t, err, batch.ErrWorkers)
}

// TestRun_Cancelled fails the run when the context is already done.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := batch.Run(ctx, mixedItems(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

// TestRun_Empty returns an empty result without error.
func TestRun_Empty(t *testing.T) {
	out, err := batch.Run(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestRun_Logging checks the debug line per failed item and the info summary.
func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := batch.DefaultOptions()
	opts.Logger = zap.New(core)

	_, err := batch.Run(context.Background(), mixedItems(), &opts)
	require.NoError(t, err)

	failed := logs.FilterMessage("batch item failed")
	assert.Equal(t, 5, failed.Len())

	done := logs.FilterMessage("batch finished").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	assert.EqualValues(t, 8, fields["total"])
	assert.EqualValues(t, 3, fields["ok"])
	assert.EqualValues(t, 5, fields["failed"])
}

// TestKind covers the nil and unknown-error cases.
func TestKind(t *testing.T) {
	assert.Equal(t, batch.KindOK, batch.Kind(nil))
	assert.Equal(t, batch.KindOther, batch.Kind(fmt.Errorf("boom")))
	assert.Equal(t, batch.KindDomain, batch.Kind(fmt.Errorf("wrapped: %w", curvature.ErrDomain)))
}
