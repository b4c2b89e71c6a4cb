package cutset_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvrbd/bfs"
	"github.com/katalvlaran/lvrbd/builder"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/cutset"
)

// separates reports whether deleting every node of c disconnects src and dst.
func separates(g *core.Graph, src, dst core.NodeID, c []core.NodeID) bool {
	v := g.View()
	for _, id := range c {
		_ = v.Delete(id)
	}

	return !bfs.HasPath(v, src, dst)
}

// bruteForce enumerates minimal separating subsets of size ≤ order by
// checking every subset of the interior nodes.
func bruteForce(g *core.Graph, src, dst core.NodeID, order int) cutset.CutSet {
	var interior []core.NodeID
	for _, id := range g.Nodes() {
		if id != src && id != dst {
			interior = append(interior, id)
		}
	}
	var sep []cutset.Cut
	for mask := 1; mask < 1<<len(interior); mask++ {
		var c cutset.Cut
		for i, id := range interior {
			if mask&(1<<i) != 0 {
				c = append(c, id)
			}
		}
		if len(c) <= order && separates(g, src, dst, c) {
			sep = append(sep, c)
		}
	}
	out := cutset.CutSet{{src}, {dst}}
	for _, c := range sep {
		minimal := true
		for _, d := range sep {
			if len(d) < len(c) && subsetOf(d, c) {
				minimal = false
				break
			}
		}
		if minimal {
			out = append(out, c)
		}
	}

	return out
}

func subsetOf(a, b cutset.Cut) bool {
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// asSet keys a cut set for order-independent comparison.
func asSet(cs cutset.CutSet) map[string]bool {
	out := make(map[string]bool, len(cs))
	for _, c := range cs {
		out[fmt.Sprint(c)] = true
	}

	return out
}

func TestMinimalCuts_Properties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	build := func(n int, seed int64) *core.Graph {
		return builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, 0.45))
	}

	properties.Property("reference and optimized agree", prop.ForAll(
		func(n int, seed int64) bool {
			g := build(n, seed)
			order := cutset.DefaultOrder(n)
			ref, err := cutset.MinimalCuts(g, 1, core.NodeID(n), order)
			if err != nil {
				return false
			}
			opt, err := cutset.MinimalCutsOptimized(g, 1, core.NodeID(n), order)
			if err != nil {
				return false
			}

			return cmp.Equal(asSet(ref), asSet(opt))
		},
		gen.IntRange(3, 9),
		gen.Int64Range(1, 1<<20),
	))

	properties.Property("results form an antichain", prop.ForAll(
		func(n int, seed int64) bool {
			g := build(n, seed)
			cs, err := cutset.MinimalCutsOptimized(g, 1, core.NodeID(n), cutset.DefaultOrder(n))

			return err == nil && cs.IsAntichain()
		},
		gen.IntRange(3, 9),
		gen.Int64Range(1, 1<<20),
	))

	properties.Property("connected pairs match brute force", prop.ForAll(
		func(n int, seed int64) bool {
			g := build(n, seed)
			src, dst := core.NodeID(1), core.NodeID(n)
			if g.HasEdge(src, dst) || !bfs.HasPath(g, src, dst) {
				return true
			}
			order := cutset.DefaultOrder(n)
			got, err := cutset.MinimalCutsOptimized(g, src, dst, order)
			if err != nil {
				return false
			}

			return cmp.Equal(asSet(bruteForce(g, src, dst, order)), asSet(got))
		},
		gen.IntRange(3, 8),
		gen.Int64Range(1, 1<<20),
	))

	properties.TestingRun(t)
}

// TestMinimalCuts_AgreeOnShapes checks the optimized enumerator against the
// reference one for every pair of a fixed corpus of structured graphs.
func TestMinimalCuts_AgreeOnShapes(t *testing.T) {
	shapes := map[string]builder.Constructor{
		"cycle6":      builder.Cycle(6),
		"wheel6":      builder.Wheel(6),
		"ladder4":     builder.Ladder(4),
		"grid3x3":     builder.Grid(3, 3),
		"bipartite33": builder.CompleteBipartite(3, 3),
		"complete5":   builder.Complete(5),
	}
	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			g := builder.MustBuild(nil, shape)
			nodes := g.Nodes()
			order := cutset.DefaultOrder(len(nodes))
			for i := range nodes {
				for j := i + 1; j < len(nodes); j++ {
					ref, err := cutset.MinimalCuts(g, nodes[i], nodes[j], order)
					if err != nil {
						t.Fatalf("reference %d→%d: %v", nodes[i], nodes[j], err)
					}
					opt, err := cutset.MinimalCutsOptimized(g, nodes[i], nodes[j], order)
					if err != nil {
						t.Fatalf("optimized %d→%d: %v", nodes[i], nodes[j], err)
					}
					if diff := cmp.Diff(asSet(ref), asSet(opt)); diff != "" {
						t.Errorf("%d→%d mismatch (-reference +optimized):\n%s", nodes[i], nodes[j], diff)
					}
				}
			}
		})
	}
}
