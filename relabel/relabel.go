// Package relabel maps an arbitrarily labelled graph and its availability
// map onto dense node ids 1…n, the form every enumerator and evaluator
// expects.
package relabel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/term"
)

var (
	// ErrGraphNil is returned when FromGraph receives a nil graph.
	ErrGraphNil = errors.New("relabel: graph is nil")

	// ErrDomainMismatch is returned when the availability map does not cover
	// exactly the node set of the graph.
	ErrDomainMismatch = errors.New("relabel: availability map does not match graph nodes")
)

// Dense is a relabelled graph with its probability map and id mapping.
// Dense id i (1-based) is the i-th node of the source graph in insertion
// order.
type Dense struct {
	Graph *core.Graph

	// Probabilities is nil when FromGraph was called without a map.
	Probabilities *term.ProbabilityMap

	forward map[core.NodeID]core.NodeID
	reverse []core.NodeID // dense id → label; index 0 unused
}

// FromGraph relabels g. avail may be nil for callers that only need the
// structure (e.g. to render expressions); otherwise its key set must equal
// the node set of g.
//
// Errors:
//   - ErrGraphNil.
//   - ErrDomainMismatch naming the first uncovered or extra node.
//   - term.ErrInvalidProbability for values outside [0,1].
func FromGraph(g *core.Graph, avail map[core.NodeID]float64) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	labels := g.Nodes()
	d := &Dense{
		Graph:   core.NewGraph(core.WithCapacity(len(labels))),
		forward: make(map[core.NodeID]core.NodeID, len(labels)),
		reverse: make([]core.NodeID, len(labels)+1),
	}
	for i, label := range labels {
		id := core.NodeID(i + 1)
		d.forward[label] = id
		d.reverse[id] = label
		d.Graph.AddNode(id)
	}
	for _, e := range g.Edges() {
		if err := d.Graph.AddEdge(d.forward[e.From], d.forward[e.To], e.Weight); err != nil {
			return nil, fmt.Errorf("relabel: edge %d-%d: %w", e.From, e.To, err)
		}
	}

	if avail == nil {
		return d, nil
	}
	if err := checkDomain(labels, avail); err != nil {
		return nil, err
	}
	dense := make(map[core.NodeID]float64, len(avail))
	for label, p := range avail {
		dense[d.forward[label]] = p
	}
	pm, err := term.NewProbabilityMap(dense)
	if err != nil {
		return nil, fmt.Errorf("relabel: %w", err)
	}
	d.Probabilities = pm

	return d, nil
}

// checkDomain verifies that avail covers exactly labels.
func checkDomain(labels []core.NodeID, avail map[core.NodeID]float64) error {
	for _, label := range labels {
		if _, ok := avail[label]; !ok {
			return fmt.Errorf("relabel: node %d has no availability: %w", label, ErrDomainMismatch)
		}
	}
	if len(avail) != len(labels) {
		known := make(map[core.NodeID]struct{}, len(labels))
		for _, label := range labels {
			known[label] = struct{}{}
		}
		for label := range avail {
			if _, ok := known[label]; !ok {
				return fmt.Errorf("relabel: availability given for unknown node %d: %w", label, ErrDomainMismatch)
			}
		}
	}

	return nil
}

// ID returns the dense id of label.
func (d *Dense) ID(label core.NodeID) (core.NodeID, bool) {
	id, ok := d.forward[label]

	return id, ok
}

// Label returns the original label of dense id. It panics when id is out
// of range, as a dense id always comes from this mapping.
func (d *Dense) Label(id core.NodeID) core.NodeID { return d.reverse[id] }

// Labels maps a slice of dense ids back to labels.
func (d *Dense) Labels(ids []core.NodeID) []core.NodeID {
	out := make([]core.NodeID, len(ids))
	for i, id := range ids {
		out[i] = d.reverse[id]
	}

	return out
}

// Len returns the number of nodes.
func (d *Dense) Len() int { return len(d.reverse) - 1 }
