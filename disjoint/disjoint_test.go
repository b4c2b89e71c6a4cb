package disjoint_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrbd/bfs"
	"github.com/katalvlaran/lvrbd/builder"
	"github.com/katalvlaran/lvrbd/conditioning"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/cutset"
	"github.com/katalvlaran/lvrbd/disjoint"
	"github.com/katalvlaran/lvrbd/pathset"
	"github.com/katalvlaran/lvrbd/term"
)

func uniform(t *testing.T, n int, p float64) *term.ProbabilityMap {
	t.Helper()
	avail := make(map[core.NodeID]float64, n)
	for i := 1; i <= n; i++ {
		avail[core.NodeID(i)] = p
	}
	pm, err := term.NewProbabilityMap(avail)
	require.NoError(t, err)

	return pm
}

func TestMakeDisjoint(t *testing.T) {
	cases := []struct {
		name string
		a, b term.Term
		want []term.Term
	}{
		{"conflict keeps b", term.Of(1, 2), term.Of(-2, 3), []term.Term{term.Of(-2, 3)}},
		{"covered b vanishes", term.Of(1, 2), term.Of(1, 2, 3), nil},
		{"single rest literal", term.Of(1, 2, 4), term.Of(1, 3, 4), []term.Term{term.Of(1, 3, 4, -2)}},
		{"expanding prefix", term.Of(5, 6), term.Of(7), []term.Term{term.Of(7, -5), term.Of(7, 5, -6)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, disjoint.MakeDisjoint(tc.a, tc.b))
		})
	}
}

func TestFromPaths_Diamond(t *testing.T) {
	ps := pathset.PathSet{{1, 2, 4}, {1, 3, 4}}
	terms := disjoint.FromPaths(ps)
	assert.Equal(t, []term.Term{term.Of(1, 2, 4), term.Of(1, 3, 4, -2)}, terms)

	avail, err := disjoint.PathAvailability(uniform(t, 4, 0.9), terms)
	require.NoError(t, err)
	assert.InDelta(t, 0.81*0.99, avail, 1e-12)
}

func TestFromCuts_Chain(t *testing.T) {
	cs := cutset.CutSet{{1}, {4}, {2}, {3}}
	terms := disjoint.FromCuts(cs, 1, 4)
	assert.Equal(t, []term.Term{term.Of(-2), term.Of(-3, 2)}, terms)

	avail, err := disjoint.CutAvailability(uniform(t, 4, 0.9), 1, 4, terms)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(0.9, 4), avail, 1e-12)
}

func TestFromCuts_DegenerateOnly(t *testing.T) {
	terms := disjoint.FromCuts(cutset.CutSet{{1}, {2}}, 1, 2)
	assert.Empty(t, terms)

	avail, err := disjoint.CutAvailability(uniform(t, 2, 0.5), 1, 2, terms)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, avail, 1e-12)
}

func TestAvailability_LookupError(t *testing.T) {
	pm := uniform(t, 2, 0.5)
	_, err := disjoint.PathAvailability(pm, []term.Term{term.Of(1, 3)})
	assert.ErrorIs(t, err, term.ErrUnknownNode)
	_, err = disjoint.CutAvailability(pm, 1, 7, nil)
	assert.ErrorIs(t, err, term.ErrUnknownNode)
}

func TestDisjoint_Properties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	type fixture struct {
		g  *core.Graph
		pm *term.ProbabilityMap
	}
	build := func(n int, seed int64) (fixture, bool) {
		g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, 0.5))
		src, dst := core.NodeID(1), core.NodeID(n)
		if !bfs.HasPath(g, src, dst) {
			return fixture{}, false
		}
		avail := make(map[core.NodeID]float64, n)
		for i := 1; i <= n; i++ {
			avail[core.NodeID(i)] = 0.6 + float64((int64(i)*31+seed)%40)/100
		}
		pm, _ := term.NewProbabilityMap(avail)

		return fixture{g: g, pm: pm}, true
	}

	pairwiseDisjoint := func(terms []term.Term) bool {
		for i := range terms {
			for j := i + 1; j < len(terms); j++ {
				if !terms[i].Conflicts(terms[j]) {
					return false
				}
			}
		}

		return true
	}

	properties.Property("path and cut forms agree with conditioning", prop.ForAll(
		func(n int, seed int64) bool {
			f, ok := build(n, seed)
			if !ok {
				return true
			}
			src, dst := core.NodeID(1), core.NodeID(n)
			ref, err := conditioning.Evaluate(f.g, src, dst, f.pm)
			if err != nil {
				return false
			}

			ps, err := pathset.MinimalPaths(f.g, src, dst)
			if err != nil {
				return false
			}
			pt := disjoint.FromPaths(ps)
			byPath, err := disjoint.PathAvailability(f.pm, pt)
			if err != nil || !pairwiseDisjoint(pt) {
				return false
			}

			cs, err := cutset.MinimalCuts(f.g, src, dst, n)
			if err != nil {
				return false
			}
			ct := disjoint.FromCuts(cs, src, dst)
			byCut, err := disjoint.CutAvailability(f.pm, src, dst, ct)
			if err != nil || !pairwiseDisjoint(ct) {
				return false
			}

			return math.Abs(byPath-ref.Availability) < 1e-9 && math.Abs(byCut-ref.Availability) < 1e-9
		},
		gen.IntRange(3, 8),
		gen.Int64Range(1, 1<<20),
	))

	properties.TestingRun(t)
}
