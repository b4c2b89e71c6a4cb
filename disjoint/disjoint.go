// Package disjoint turns minimal path sets and minimal cut sets into sums of
// mutually exclusive terms, whose probabilities can then be added.
package disjoint

import (
	"fmt"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/cutset"
	"github.com/katalvlaran/lvrbd/pathset"
	"github.com/katalvlaran/lvrbd/term"
)

// MakeDisjoint rewrites b into terms that exclude every outcome already
// covered by a while covering the rest of b.
//
// Implementation:
//   - If a and b already conflict, b is returned unchanged.
//   - Otherwise let R = a \ b. An empty R means b ⊆ a as events, so nothing
//     remains and the result is empty.
//   - For each i: b ∧ R[0] ∧ … ∧ R[i-1] ∧ ¬R[i].
//
// Complexity: O(|a|·|b| + |R|²).
func MakeDisjoint(a, b term.Term) []term.Term {
	if a.Conflicts(b) {
		return []term.Term{b}
	}
	var rest term.Term
	for _, l := range a {
		if !b.Contains(l) {
			rest = append(rest, l)
		}
	}
	if len(rest) == 0 {
		return nil
	}

	out := make([]term.Term, 0, len(rest))
	prefix := b
	for _, l := range rest {
		out = append(out, prefix.Extend(l.Negate()))
		prefix = prefix.Extend(l)
	}

	return out
}

// Reduce makes sets pairwise disjoint by repeatedly taking the head and
// rewriting every remaining set against it. Order of sets is preserved.
func Reduce(sets []term.Term) []term.Term {
	out := make([]term.Term, 0, len(sets))
	for len(sets) > 0 {
		head := sets[0]
		out = append(out, head)
		var next []term.Term
		for _, s := range sets[1:] {
			next = append(next, MakeDisjoint(head, s)...)
		}
		sets = next
	}

	return out
}

// FromPaths returns disjoint terms whose union is "some path fully up".
// Path endpoints are included in every term.
func FromPaths(ps pathset.PathSet) []term.Term {
	sets := make([]term.Term, len(ps))
	for i, p := range ps {
		t := make(term.Term, len(p))
		for j, id := range p {
			t[j] = term.Up(id)
		}
		sets[i] = t
	}

	return Reduce(sets)
}

// FromCuts returns disjoint terms whose union is "some interior cut fully
// down". The degenerate cuts {src} and {dst} are excluded.
func FromCuts(cs cutset.CutSet, src, dst core.NodeID) []term.Term {
	interior := cs.Interior(src, dst)
	sets := make([]term.Term, len(interior))
	for i, c := range interior {
		t := make(term.Term, len(c))
		for j, id := range c {
			t[j] = term.Down(id)
		}
		sets[i] = t
	}

	return Reduce(sets)
}

// PathAvailability sums the probabilities of terms built by FromPaths.
func PathAvailability(pm *term.ProbabilityMap, terms []term.Term) (float64, error) {
	avail, err := pm.Sum(terms)
	if err != nil {
		return 0, fmt.Errorf("disjoint: %w", err)
	}

	return avail, nil
}

// CutAvailability returns p(src)·p(dst)·(1 − Σ P(term)) for terms built by
// FromCuts.
func CutAvailability(pm *term.ProbabilityMap, src, dst core.NodeID, terms []term.Term) (float64, error) {
	lost, err := pm.Sum(terms)
	if err != nil {
		return 0, fmt.Errorf("disjoint: %w", err)
	}
	pSrc, err := pm.Availability(src)
	if err != nil {
		return 0, fmt.Errorf("disjoint: %w", err)
	}
	pDst, err := pm.Availability(dst)
	if err != nil {
		return 0, fmt.Errorf("disjoint: %w", err)
	}

	return pSrc * pDst * (1 - lost), nil
}
