package availability

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvrbd/bfs"
	"github.com/katalvlaran/lvrbd/conditioning"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/cutset"
	"github.com/katalvlaran/lvrbd/disjoint"
	"github.com/katalvlaran/lvrbd/pathset"
	"github.com/katalvlaran/lvrbd/relabel"
	"github.com/katalvlaran/lvrbd/sdp"
)

// outcome carries one pair's value plus sizes for metrics; -1 means not
// applicable.
type outcome struct {
	availability float64
	problemSet   int
	terms        int
}

// pairFunc evaluates one pair of dense ids.
type pairFunc func(ctx context.Context, d *relabel.Dense, s, t core.NodeID) (outcome, error)

// resolve returns the method value for the configured algorithm.
func (e *Evaluator) resolve(parallel bool) pairFunc {
	switch e.cfg.Algorithm {
	case MinimalCut:
		return e.minimalCut
	case MinimalPath:
		return e.minimalPath
	case SumOfDisjointProducts:
		if parallel {
			return e.sumOfDisjointProductsParallel
		}

		return e.sumOfDisjointProducts
	default:
		return e.recursiveConditioning
	}
}

// order returns the configured cut-size ceiling for a graph of n nodes.
func (e *Evaluator) order(n int) int {
	if e.cfg.Order > 0 {
		return e.cfg.Order
	}

	return cutset.ExhaustiveOrder(n)
}

// disconnected short-circuits pairs without any path.
func disconnected(d *relabel.Dense, s, t core.NodeID) bool {
	return !bfs.HasPath(d.Graph, s, t)
}

func (e *Evaluator) minimalCut(_ context.Context, d *relabel.Dense, s, t core.NodeID) (outcome, error) {
	if disconnected(d, s, t) {
		return outcome{}, nil
	}
	order := e.order(d.Len())
	if full := cutset.ExhaustiveOrder(d.Len()); order < full {
		e.log.Warn("cut order below interior size, wide cuts are not counted",
			slog.Int("order", order), slog.Int("interior", full))
	}
	cs, err := cutset.MinimalCutsOptimized(d.Graph, s, t, order)
	if err != nil {
		return outcome{problemSet: -1, terms: -1}, err
	}
	terms := disjoint.FromCuts(cs, s, t)
	a, err := disjoint.CutAvailability(d.Probabilities, s, t, terms)

	return outcome{availability: a, problemSet: len(cs), terms: len(terms)}, err
}

func (e *Evaluator) minimalPath(_ context.Context, d *relabel.Dense, s, t core.NodeID) (outcome, error) {
	ps, err := pathset.MinimalPaths(d.Graph, s, t)
	if err != nil {
		return outcome{problemSet: -1, terms: -1}, err
	}
	terms := disjoint.FromPaths(ps)
	a, err := disjoint.PathAvailability(d.Probabilities, terms)

	return outcome{availability: a, problemSet: len(ps), terms: len(terms)}, err
}

func (e *Evaluator) sumOfDisjointProducts(_ context.Context, d *relabel.Dense, s, t core.NodeID) (outcome, error) {
	ps, err := pathset.MinimalPaths(d.Graph, s, t)
	if err != nil {
		return outcome{problemSet: -1, terms: -1}, err
	}
	groups := sdp.FromPaths(ps)
	a, err := sdp.Availability(d.Probabilities, groups)

	return outcome{availability: a, problemSet: len(ps), terms: len(groups)}, err
}

func (e *Evaluator) sumOfDisjointProductsParallel(ctx context.Context, d *relabel.Dense, s, t core.NodeID) (outcome, error) {
	ps, err := pathset.MinimalPaths(d.Graph, s, t)
	if err != nil {
		return outcome{problemSet: -1, terms: -1}, err
	}
	groups, err := sdp.FromPathsParallel(ctx, ps, e.cfg.Workers)
	if err != nil {
		return outcome{problemSet: len(ps), terms: -1}, err
	}
	a, err := sdp.Availability(d.Probabilities, groups)

	return outcome{availability: a, problemSet: len(ps), terms: len(groups)}, err
}

func (e *Evaluator) recursiveConditioning(_ context.Context, d *relabel.Dense, s, t core.NodeID) (outcome, error) {
	res, err := conditioning.Evaluate(d.Graph, s, t, d.Probabilities, conditioning.WithOrder(e.order(d.Len())))
	if err != nil {
		return outcome{problemSet: -1, terms: -1}, err
	}

	return outcome{
		availability: res.Availability,
		problemSet:   len(res.Branched),
		terms:        len(res.Success) + len(res.Failure),
	}, nil
}
