package availability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrbd/availability"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/term"
)

const eps = 1e-12

// labelledDiamond builds 10-20, 10-30, 20-40, 30-40.
func labelledDiamond(t *testing.T) (*core.Graph, map[core.NodeID]float64) {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]core.NodeID{{10, 20}, {10, 30}, {20, 40}, {30, 40}} {
		require.NoError(t, g.AddEdge(e[0], e[1], core.DefaultWeight))
	}

	return g, map[core.NodeID]float64{10: 0.95, 20: 0.9, 30: 0.8, 40: 0.99}
}

func evaluator(t *testing.T, a availability.Algorithm, m availability.Mode) *availability.Evaluator {
	t.Helper()
	ev, err := availability.New(availability.Config{Algorithm: a, Mode: m})
	require.NoError(t, err)

	return ev
}

func TestEvaluatePair_AllAlgorithmsAgree(t *testing.T) {
	g, avail := labelledDiamond(t)
	want := 0.95 * 0.99 * (1 - 0.1*0.2)

	for _, a := range availability.Algorithms {
		t.Run(a.String(), func(t *testing.T) {
			res, err := evaluator(t, a, availability.Sequential).EvaluatePair(context.Background(), g, avail, 10, 40)
			require.NoError(t, err)
			assert.Equal(t, core.NodeID(10), res.Src)
			assert.Equal(t, core.NodeID(40), res.Dst)
			assert.InDelta(t, want, res.Availability, eps)
		})
	}
}

func TestEvaluatePair_AdjacentAndDisconnected(t *testing.T) {
	g, avail := labelledDiamond(t)
	g.AddNode(50)
	avail[50] = 0.7

	for _, a := range availability.Algorithms {
		t.Run(a.String(), func(t *testing.T) {
			ev := evaluator(t, a, availability.Sequential)

			adj, err := ev.EvaluatePair(context.Background(), g, avail, 20, 10)
			require.NoError(t, err)
			assert.InDelta(t, 0.9*0.95, adj.Availability, eps)

			off, err := ev.EvaluatePair(context.Background(), g, avail, 10, 50)
			require.NoError(t, err)
			assert.Zero(t, off.Availability)
		})
	}
}

// relays links src 1 and dst 2 through four node-disjoint relays 3..6, so
// the only interior cut has size 4 > ⌈6/2⌉.
func relays(t *testing.T) (*core.Graph, map[core.NodeID]float64) {
	t.Helper()
	g := core.NewGraph()
	g.AddNode(1)
	g.AddNode(2)
	avail := map[core.NodeID]float64{1: 0.5, 2: 0.5}
	for r := core.NodeID(3); r <= 6; r++ {
		require.NoError(t, g.AddEdge(1, r, core.DefaultWeight))
		require.NoError(t, g.AddEdge(r, 2, core.DefaultWeight))
		avail[r] = 0.5
	}

	return g, avail
}

func TestEvaluatePair_WideCutWithDefaultOrder(t *testing.T) {
	g, avail := relays(t)
	want := 0.25 * (1 - 0.0625)

	for _, a := range availability.Algorithms {
		t.Run(a.String(), func(t *testing.T) {
			res, err := evaluator(t, a, availability.Sequential).EvaluatePair(context.Background(), g, avail, 1, 2)
			require.NoError(t, err)
			assert.InDelta(t, want, res.Availability, eps)
		})
	}

	expr, err := evaluator(t, availability.MinimalCut, availability.Sequential).Expression(g, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "[[¬3 * ¬4 * ¬5 * ¬6]]", expr)
}

func TestEvaluatePair_LowOrderWarns(t *testing.T) {
	g, avail := relays(t)
	var logs bytes.Buffer
	ev, err := availability.New(availability.Config{
		Algorithm: availability.MinimalCut,
		Order:     3,
		Logger:    slog.New(slog.NewTextHandler(&logs, nil)),
	})
	require.NoError(t, err)

	res, err := ev.EvaluatePair(context.Background(), g, avail, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, res.Availability, eps)
	assert.Contains(t, logs.String(), "cut order below interior size")
	assert.Contains(t, logs.String(), "interior=4")
}

func TestEvaluatePair_ParallelSDP(t *testing.T) {
	g, avail := labelledDiamond(t)
	res, err := evaluator(t, availability.SumOfDisjointProducts, availability.Parallel).
		EvaluatePair(context.Background(), g, avail, 10, 40)
	require.NoError(t, err)
	assert.InDelta(t, 0.95*0.99*0.98, res.Availability, eps)
}

func TestEvaluatePair_Errors(t *testing.T) {
	g, avail := labelledDiamond(t)
	ctx := context.Background()
	seq := evaluator(t, availability.MinimalPath, availability.Sequential)

	t.Run("parallel unsupported fails before validation", func(t *testing.T) {
		ev := evaluator(t, availability.MinimalCut, availability.Parallel)
		_, err := ev.EvaluatePair(ctx, nil, nil, 1, 2)
		assert.ErrorIs(t, err, availability.ErrConfiguration)
		assert.ErrorIs(t, err, availability.ErrParallelUnsupported)
	})
	t.Run("same endpoints", func(t *testing.T) {
		_, err := seq.EvaluatePair(ctx, g, avail, 20, 20)
		assert.ErrorIs(t, err, availability.ErrConfiguration)
		assert.ErrorIs(t, err, availability.ErrSameEndpoints)
	})
	t.Run("nil graph", func(t *testing.T) {
		_, err := seq.EvaluatePair(ctx, nil, avail, 10, 40)
		assert.ErrorIs(t, err, availability.ErrValidation)
		assert.ErrorIs(t, err, availability.ErrGraphNil)
	})
	t.Run("partial map", func(t *testing.T) {
		_, err := seq.EvaluatePair(ctx, g, map[core.NodeID]float64{10: 0.9, 40: 0.9}, 10, 40)
		assert.ErrorIs(t, err, availability.ErrValidation)
		assert.ErrorIs(t, err, availability.ErrDomainMismatch)
	})
	t.Run("nil map", func(t *testing.T) {
		_, err := seq.EvaluatePair(ctx, g, nil, 10, 40)
		assert.ErrorIs(t, err, availability.ErrDomainMismatch)
	})
	t.Run("probability out of range", func(t *testing.T) {
		bad := map[core.NodeID]float64{10: 0.9, 20: 1.2, 30: 0.9, 40: 0.9}
		_, err := seq.EvaluatePair(ctx, g, bad, 10, 40)
		assert.ErrorIs(t, err, availability.ErrValidation)
		assert.ErrorIs(t, err, term.ErrInvalidProbability)
	})
	t.Run("unknown endpoint", func(t *testing.T) {
		_, err := seq.EvaluatePair(ctx, g, avail, 10, 99)
		assert.ErrorIs(t, err, availability.ErrValidation)
		assert.ErrorIs(t, err, availability.ErrNodeNotFound)
	})
	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := seq.EvaluatePair(cctx, g, avail, 10, 40)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEvaluate_Endpoints(t *testing.T) {
	g, avail := labelledDiamond(t)
	ev := evaluator(t, availability.RecursiveConditioning, availability.Sequential)
	src, dst := core.NodeID(10), core.NodeID(40)

	one, err := ev.Evaluate(context.Background(), g, avail, &src, &dst)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.InDelta(t, 0.95*0.99*0.98, one[0].Availability, eps)

	all, err := ev.Evaluate(context.Background(), g, avail, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	_, err = ev.Evaluate(context.Background(), g, avail, &src, nil)
	assert.ErrorIs(t, err, availability.ErrConfiguration)
	assert.ErrorIs(t, err, availability.ErrPartialEndpoints)
}
