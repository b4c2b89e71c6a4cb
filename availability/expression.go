package availability

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvrbd/bfs"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/cutset"
	"github.com/katalvlaran/lvrbd/disjoint"
	"github.com/katalvlaran/lvrbd/pathset"
	"github.com/katalvlaran/lvrbd/relabel"
	"github.com/katalvlaran/lvrbd/sdp"
	"github.com/katalvlaran/lvrbd/term"
)

// Expression renders the disjoint Boolean form the configured algorithm
// sums, using the caller's node labels.
//
// Formats:
//   - MinimalPath: "[[1 * 2 * 4] + [1 * 3 * 4 * ¬2]]", terms whose
//     probabilities add up to the availability.
//   - MinimalCut: "[[¬2 * ¬3]]", terms whose probabilities add up to the
//     unavailability of the interior; endpoints are excluded.
//   - SumOfDisjointProducts: "[[1 * 2 * 4]] + [[1 * 3 * 4] * ¬[2]]", one
//     bracket per group, complemented products prefixed with ¬.
//
// A disconnected pair renders as "[]" for every algorithm.
//
// Errors: ErrConfiguration/ErrExpressionUnsupported for
// RecursiveConditioning; otherwise the structural checks of EvaluatePair.
func (e *Evaluator) Expression(g *core.Graph, src, dst core.NodeID) (string, error) {
	if e.cfg.Algorithm == RecursiveConditioning {
		return "", fmt.Errorf("%w: %w: %s", ErrConfiguration, ErrExpressionUnsupported, e.cfg.Algorithm)
	}
	if src == dst {
		return "", fmt.Errorf("%w: %w: %d", ErrConfiguration, ErrSameEndpoints, src)
	}
	d, err := relabel.FromGraph(g, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}
	s, t, err := endpoints(d, src, dst)
	if err != nil {
		return "", err
	}
	if !bfs.HasPath(d.Graph, s, t) {
		return "[]", nil
	}

	switch e.cfg.Algorithm {
	case MinimalCut:
		cs, err := cutset.MinimalCutsOptimized(d.Graph, s, t, e.order(d.Len()))
		if err != nil {
			return "", err
		}

		return renderTerms(d, disjoint.FromCuts(cs, s, t)), nil
	case MinimalPath:
		ps, err := pathset.MinimalPaths(d.Graph, s, t)
		if err != nil {
			return "", err
		}

		return renderTerms(d, disjoint.FromPaths(ps)), nil
	default:
		ps, err := pathset.MinimalPaths(d.Graph, s, t)
		if err != nil {
			return "", err
		}

		return renderGroups(d, sdp.FromPaths(ps)), nil
	}
}

func renderLabel(d *relabel.Dense, id core.NodeID) string {
	return strconv.Itoa(int(d.Label(id)))
}

func renderTerms(d *relabel.Dense, terms []term.Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		lits := make([]string, len(t))
		for j, l := range t {
			lits[j] = renderLabel(d, l.Node())
			if !l.Operational() {
				lits[j] = "¬" + lits[j]
			}
		}
		parts[i] = "[" + strings.Join(lits, " * ") + "]"
	}

	return "[" + strings.Join(parts, " + ") + "]"
}

func renderGroups(d *relabel.Dense, groups []sdp.Group) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		prods := make([]string, len(g))
		for j, p := range g {
			nodes := make([]string, len(p.Nodes))
			for k, id := range p.Nodes {
				nodes[k] = renderLabel(d, id)
			}
			prods[j] = "[" + strings.Join(nodes, " * ") + "]"
			if p.Complement {
				prods[j] = "¬" + prods[j]
			}
		}
		parts[i] = "[" + strings.Join(prods, " * ") + "]"
	}

	return strings.Join(parts, " + ")
}
