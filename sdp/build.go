package sdp

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/pathset"
	"github.com/katalvlaran/lvrbd/term"
)

// groupsFor returns the disjoint groups contributed by path i of sorted:
// path i up while every earlier path is down.
func groupsFor(sorted [][]core.NodeID, i int) []Group {
	g := Group{{Nodes: sorted[i]}}
	for j := 0; j < i; j++ {
		if rc := difference(sorted[j], sorted[i]); len(rc) > 0 {
			g = append(g, Product{Nodes: rc, Complement: true})
		}
	}

	return decompose(absorb(g))
}

// FromPaths builds the sum of disjoint products for ps.
//
// Complexity: O(P²·L) before decomposition; decomposition is exponential in
// the number of overlapping complements per path in the worst case.
func FromPaths(ps pathset.PathSet) []Group {
	sorted := Sort(ps)
	var out []Group
	for i := range sorted {
		out = append(out, groupsFor(sorted, i)...)
	}

	return out
}

// FromPathsParallel is FromPaths with the per-path work spread over up to
// workers goroutines (GOMAXPROCS when workers ≤ 0). Below
// ParallelThreshold paths it runs sequentially. Groups are returned in the
// same order FromPaths would return them.
func FromPathsParallel(ctx context.Context, ps pathset.PathSet, workers int) ([]Group, error) {
	if len(ps) < ParallelThreshold {
		return FromPaths(ps), nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sorted := Sort(ps)
	perPath := make([][]Group, len(sorted))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range sorted {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			perPath[i] = groupsFor(sorted, i)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("sdp: %w", err)
	}

	var out []Group
	for _, groups := range perPath {
		out = append(out, groups...)
	}

	return out, nil
}

// Availability sums the group probabilities: a normal product contributes
// Π p, a complemented one 1 − Π p.
func Availability(pm *term.ProbabilityMap, groups []Group) (float64, error) {
	total := 0.0
	for _, g := range groups {
		prob := 1.0
		for _, p := range g {
			all := 1.0
			for _, id := range p.Nodes {
				a, err := pm.Availability(id)
				if err != nil {
					return 0, fmt.Errorf("sdp: %w", err)
				}
				all *= a
			}
			if p.Complement {
				all = 1 - all
			}
			prob *= all
		}
		total += prob
	}

	return total, nil
}
