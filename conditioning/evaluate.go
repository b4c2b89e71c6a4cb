package conditioning

import (
	"fmt"

	"github.com/katalvlaran/lvrbd/bfs"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/cutset"
	"github.com/katalvlaran/lvrbd/term"
)

// branch is one partial assignment and the working copy it produced.
type branch struct {
	term term.Term
	view *core.View
}

// evaluator holds the mutable state of one Evaluate call.
type evaluator struct {
	src, dst core.NodeID
	success  []term.Term
	failure  []term.Term
}

// Evaluate computes the exact src→dst availability of g by recursive
// conditioning on the nodes named by the minimal cut set.
//
// Implementation:
//   - Stage 1: Validate inputs; look up p(src) and p(dst).
//   - Stage 2: Adjacent endpoints → p(src)·p(dst). No path → 0.
//   - Stage 3: Seed = node seen most often among the smallest interior
//     cuts, ties by first appearance.
//   - Stage 4: Branch every unresolved assignment on the next node: present
//     (absorbed into its neighbours) and absent (deleted). Classify each
//     child as Success (src-dst edge), Failure (no path) or Unresolved.
//     Cut nodes are taken in first-seen order; if they run out with
//     branches still unresolved, the remaining nodes of g follow.
//   - Stage 5: Sum the smaller of the two term collections and multiply by
//     p(src)·p(dst).
//
// The input graph is never mutated: every branch owns a core.View.
//
// Errors:
//   - ErrGraphNil, ErrProbabilitiesNil, ErrSameEndpoints.
//   - core.ErrNodeNotFound when src, dst or a node named by WithCuts is absent.
//   - term.ErrUnknownNode when a branched node is missing from pm.
//   - Any error of the cut enumerator.
func Evaluate(g *core.Graph, src, dst core.NodeID, pm *term.ProbabilityMap, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if pm == nil {
		return nil, ErrProbabilitiesNil
	}
	if src == dst {
		return nil, ErrSameEndpoints
	}
	for _, id := range []core.NodeID{src, dst} {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("conditioning: endpoint %d: %w", id, core.ErrNodeNotFound)
		}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pSrc, err := pm.Availability(src)
	if err != nil {
		return nil, fmt.Errorf("conditioning: %w", err)
	}
	pDst, err := pm.Availability(dst)
	if err != nil {
		return nil, fmt.Errorf("conditioning: %w", err)
	}

	res := &Result{Connected: true}
	if g.HasEdge(src, dst) {
		res.Adjacent = true
		res.Availability = pSrc * pDst

		return res, nil
	}
	if !bfs.HasPath(g, src, dst) {
		res.Connected = false

		return res, nil
	}

	cuts := o.Cuts
	if cuts != nil {
		for _, id := range cuts.Nodes() {
			if !g.HasNode(id) {
				return nil, fmt.Errorf("conditioning: cut node %d: %w", id, core.ErrNodeNotFound)
			}
		}
	} else {
		order := o.Order
		if order <= 0 {
			order = cutset.DefaultOrder(g.NodeCount())
		}
		if cuts, err = o.Enumerator(g, src, dst, order); err != nil {
			return nil, fmt.Errorf("conditioning: %w", err)
		}
	}
	order := branchOrder(g, src, dst, cuts.Interior(src, dst))

	ev := &evaluator{src: src, dst: dst}
	frontier := []branch{{view: g.View()}}
	for _, node := range order {
		if len(frontier) == 0 {
			break
		}
		res.Branched = append(res.Branched, node)
		if frontier, err = ev.split(frontier, node); err != nil {
			return nil, fmt.Errorf("conditioning: branch on %d: %w", node, err)
		}
	}
	res.Seed = res.Branched[0]
	res.Success, res.Failure = ev.success, ev.failure

	sub, err := subsystem(pm, ev.success, ev.failure)
	if err != nil {
		return nil, fmt.Errorf("conditioning: %w", err)
	}
	res.Availability = sub * pSrc * pDst

	return res, nil
}

// split branches every frontier entry on node and returns the children that
// are still unresolved.
func (ev *evaluator) split(frontier []branch, node core.NodeID) ([]branch, error) {
	next := make([]branch, 0, 2*len(frontier))
	for _, b := range frontier {
		up := b.view.Clone()
		if err := up.Absorb(node); err != nil {
			return nil, err
		}
		down := b.view
		if err := down.Delete(node); err != nil {
			return nil, err
		}

		for _, child := range []branch{
			{term: b.term.Extend(term.Up(node)), view: up},
			{term: b.term.Extend(term.Down(node)), view: down},
		} {
			switch ev.classify(child.view) {
			case Success:
				ev.success = append(ev.success, child.term)
			case Failure:
				ev.failure = append(ev.failure, child.term)
			default:
				next = append(next, child)
			}
		}
	}

	return next, nil
}

// classify maps a working copy to its Outcome.
func (ev *evaluator) classify(v *core.View) Outcome {
	if v.HasEdge(ev.src, ev.dst) {
		return Success
	}
	if !bfs.HasPath(v, ev.src, ev.dst) {
		return Failure
	}

	return Unresolved
}

// subsystem sums whichever collection is smaller. Both partition the
// branched outcome space, so the two forms agree.
func subsystem(pm *term.ProbabilityMap, success, failure []term.Term) (float64, error) {
	if len(success) <= len(failure) {
		return pm.Sum(success)
	}
	lost, err := pm.Sum(failure)
	if err != nil {
		return 0, err
	}

	return 1 - lost, nil
}
