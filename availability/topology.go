package availability

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/relabel"
)

// TopologyResult holds every pair of one all-pairs run.
type TopologyResult struct {
	// RunID correlates log lines and results of one run.
	RunID string
	// Pairs is ordered by (src, dst) position in the graph's node order.
	Pairs []PairResult
}

// EvaluateTopology evaluates every unordered pair (i < j in node order).
// In Parallel mode pairs are spread over Config.Workers goroutines, each
// pair running sequentially; results keep the sequential order.
//
// Errors: as EvaluatePair (validation once, up front), plus ctx.Err()
// when the context is cancelled between pairs.
func (e *Evaluator) EvaluateTopology(ctx context.Context, g *core.Graph, avail map[core.NodeID]float64) (*TopologyResult, error) {
	d, err := e.prepare(g, avail)
	if err != nil {
		return nil, err
	}

	n := d.Len()
	pairs := make([][2]core.NodeID, 0, n*(n-1)/2)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			pairs = append(pairs, [2]core.NodeID{core.NodeID(i), core.NodeID(j)})
		}
	}

	run := &TopologyResult{RunID: uuid.New().String(), Pairs: make([]PairResult, len(pairs))}
	log := e.log.With(slog.String("run_id", run.RunID), slog.String("mode", e.cfg.Mode.String()))
	log.Info("topology run started", slog.Int("nodes", n), slog.Int("pairs", len(pairs)))
	start := time.Now()

	if e.cfg.Mode == Parallel {
		err = e.fanOut(ctx, d, pairs, run.Pairs)
	} else {
		err = e.sequential(ctx, d, pairs, run.Pairs)
	}
	if e.cfg.Metrics != nil {
		e.cfg.Metrics.RecordTopology(e.cfg.Algorithm.Short(), e.cfg.Mode.String(), err, len(pairs))
	}
	if err != nil {
		log.Error("topology run failed", slog.Any("error", err))

		return nil, fmt.Errorf("availability: run %s: %w", run.RunID, err)
	}
	log.Info("topology run finished", slog.Duration("elapsed", time.Since(start)))

	return run, nil
}

func (e *Evaluator) sequential(ctx context.Context, d *relabel.Dense, pairs [][2]core.NodeID, out []PairResult) error {
	for k, p := range pairs {
		a, err := e.pair(ctx, d, p[0], p[1], false)
		if err != nil {
			return err
		}
		out[k] = PairResult{Src: d.Label(p[0]), Dst: d.Label(p[1]), Availability: a}
	}

	return nil
}

func (e *Evaluator) fanOut(ctx context.Context, d *relabel.Dense, pairs [][2]core.NodeID, out []PairResult) error {
	workers := e.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k, p := range pairs {
		g.Go(func() error {
			a, err := e.pair(gCtx, d, p[0], p[1], false)
			if err != nil {
				return err
			}
			out[k] = PairResult{Src: d.Label(p[0]), Dst: d.Label(p[1]), Availability: a}

			return nil
		})
	}

	return g.Wait()
}
