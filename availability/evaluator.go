package availability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/internal/logging"
	"github.com/katalvlaran/lvrbd/relabel"
	"github.com/katalvlaran/lvrbd/term"
)

// PairResult is the availability of one (Src, Dst) pair, in caller labels.
type PairResult struct {
	Src          core.NodeID
	Dst          core.NodeID
	Availability float64
}

// Evaluator runs one configured algorithm. It holds no per-call state and
// is safe for concurrent use.
type Evaluator struct {
	cfg Config
	log *slog.Logger
}

// New validates cfg and returns an Evaluator.
//
// Errors: ErrConfiguration joined with ErrUnknownAlgorithm, ErrUnknownMode
// or ErrInvalidConfig.
func New(cfg Config) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logging.New("availability")
	}

	return &Evaluator{cfg: cfg, log: log.With(slog.String("algorithm", cfg.Algorithm.String()))}, nil
}

// Config returns the validated configuration.
func (e *Evaluator) Config() Config { return e.cfg }

// Evaluate combines EvaluatePair and EvaluateTopology: with both
// endpoints it evaluates one pair, with neither it evaluates every pair.
//
// Errors: ErrConfiguration/ErrPartialEndpoints when exactly one endpoint is
// given; otherwise as EvaluatePair or EvaluateTopology.
func (e *Evaluator) Evaluate(ctx context.Context, g *core.Graph, avail map[core.NodeID]float64, src, dst *core.NodeID) ([]PairResult, error) {
	switch {
	case src != nil && dst != nil:
		res, err := e.EvaluatePair(ctx, g, avail, *src, *dst)
		if err != nil {
			return nil, err
		}

		return []PairResult{res}, nil
	case src == nil && dst == nil:
		run, err := e.EvaluateTopology(ctx, g, avail)
		if err != nil {
			return nil, err
		}

		return run.Pairs, nil
	default:
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrPartialEndpoints)
	}
}

// EvaluatePair returns the src→dst availability of g.
//
// Validation happens before any enumeration:
//   - Parallel mode with an algorithm other than SumOfDisjointProducts →
//     ErrConfiguration/ErrParallelUnsupported.
//   - src == dst → ErrConfiguration/ErrSameEndpoints.
//   - nil graph, avail not covering exactly the nodes of g, or values
//     outside [0,1] → ErrValidation.
//   - src or dst absent from g → ErrValidation/ErrNodeNotFound.
//
// A disconnected pair yields 0 for every algorithm.
func (e *Evaluator) EvaluatePair(ctx context.Context, g *core.Graph, avail map[core.NodeID]float64, src, dst core.NodeID) (PairResult, error) {
	parallel := e.cfg.Mode == Parallel
	if parallel && !e.cfg.Algorithm.supportsParallelPair() {
		return PairResult{}, fmt.Errorf("%w: %w: %s", ErrConfiguration, ErrParallelUnsupported, e.cfg.Algorithm)
	}
	if src == dst {
		return PairResult{}, fmt.Errorf("%w: %w: %d", ErrConfiguration, ErrSameEndpoints, src)
	}
	d, err := e.prepare(g, avail)
	if err != nil {
		return PairResult{}, err
	}
	s, t, err := endpoints(d, src, dst)
	if err != nil {
		return PairResult{}, err
	}

	a, err := e.pair(ctx, d, s, t, parallel)
	if err != nil {
		return PairResult{}, err
	}

	return PairResult{Src: src, Dst: dst, Availability: a}, nil
}

// prepare validates and relabels the inputs.
func (e *Evaluator) prepare(g *core.Graph, avail map[core.NodeID]float64) (*relabel.Dense, error) {
	if avail == nil {
		avail = map[core.NodeID]float64{}
	}
	d, err := relabel.FromGraph(g, avail)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return d, nil
}

// endpoints maps caller labels to dense ids.
func endpoints(d *relabel.Dense, src, dst core.NodeID) (core.NodeID, core.NodeID, error) {
	s, ok := d.ID(src)
	if !ok {
		return 0, 0, fmt.Errorf("%w: src %d: %w", ErrValidation, src, ErrNodeNotFound)
	}
	t, ok := d.ID(dst)
	if !ok {
		return 0, 0, fmt.Errorf("%w: dst %d: %w", ErrValidation, dst, ErrNodeNotFound)
	}

	return s, t, nil
}

// pair evaluates one dense pair, recording metrics and a debug log line.
func (e *Evaluator) pair(ctx context.Context, d *relabel.Dense, s, t core.NodeID, parallel bool) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	start := time.Now()
	out, err := e.resolve(parallel)(ctx, d, s, t)
	if err != nil && errors.Is(err, term.ErrUnknownNode) {
		err = fmt.Errorf("%w: %w", ErrLookup, err)
	}
	elapsed := time.Since(start)

	if e.cfg.Metrics != nil {
		e.cfg.Metrics.RecordEvaluation(e.cfg.Algorithm.Short(), err, elapsed, out.problemSet, out.terms)
	}
	if err != nil {
		e.log.Debug("pair failed",
			slog.Int("src", int(d.Label(s))), slog.Int("dst", int(d.Label(t))), slog.Any("error", err))

		return 0, err
	}
	e.log.Debug("pair evaluated",
		slog.Int("src", int(d.Label(s))),
		slog.Int("dst", int(d.Label(t))),
		slog.Float64("availability", out.availability),
		slog.Int("problem_set", out.problemSet),
		slog.Int("terms", out.terms),
		slog.Duration("elapsed", elapsed),
	)

	return out.availability, nil
}
