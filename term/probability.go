package term

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvrbd/core"
)

// ProbabilityMap holds P(node operational) for dense positive node ids.
//
// The zero value is empty. A map is immutable after construction and safe
// for concurrent readers.
type ProbabilityMap struct {
	up      []float64 // index = node id
	present []bool
	size    int
}

// NewProbabilityMap validates avail and stores it for O(1) signed lookup.
//
// Errors:
//   - ErrZeroLiteral if some id ≤ 0.
//   - ErrInvalidProbability if some value is NaN or outside [0,1].
func NewProbabilityMap(avail map[core.NodeID]float64) (*ProbabilityMap, error) {
	maxID := core.NodeID(0)
	for id, p := range avail {
		if id <= 0 {
			return nil, fmt.Errorf("term: node %d: %w", id, ErrZeroLiteral)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, fmt.Errorf("term: node %d has p=%v: %w", id, p, ErrInvalidProbability)
		}
		if id > maxID {
			maxID = id
		}
	}
	pm := &ProbabilityMap{
		up:      make([]float64, maxID+1),
		present: make([]bool, maxID+1),
		size:    len(avail),
	}
	for id, p := range avail {
		pm.up[id] = p
		pm.present[id] = true
	}

	return pm, nil
}

// Len returns the number of covered nodes.
func (pm *ProbabilityMap) Len() int { return pm.size }

// Has reports whether id is covered.
func (pm *ProbabilityMap) Has(id core.NodeID) bool {
	return id > 0 && int(id) < len(pm.present) && pm.present[id]
}

// Availability returns P(id operational).
func (pm *ProbabilityMap) Availability(id core.NodeID) (float64, error) {
	if id <= 0 {
		return 0, fmt.Errorf("term: node %d: %w", id, ErrZeroLiteral)
	}
	if !pm.Has(id) {
		return 0, fmt.Errorf("term: node %d: %w", id, ErrUnknownNode)
	}

	return pm.up[id], nil
}

// Of returns p for a positive literal and 1-p for a negative one.
func (pm *ProbabilityMap) Of(l Literal) (float64, error) {
	if l == 0 {
		return 0, ErrZeroLiteral
	}
	p, err := pm.Availability(l.Node())
	if err != nil {
		return 0, err
	}
	if l.Operational() {
		return p, nil
	}

	return 1 - p, nil
}

// Probability returns the product of the literal probabilities of t.
// The empty term has probability 1.
func (pm *ProbabilityMap) Probability(t Term) (float64, error) {
	prob := 1.0
	for _, l := range t {
		p, err := pm.Of(l)
		if err != nil {
			return 0, err
		}
		prob *= p
	}

	return prob, nil
}

// Sum adds the probabilities of pairwise disjoint terms.
func (pm *ProbabilityMap) Sum(terms []Term) (float64, error) {
	var total float64
	for _, t := range terms {
		p, err := pm.Probability(t)
		if err != nil {
			return 0, err
		}
		total += p
	}

	return total, nil
}

// Nodes returns covered ids in ascending order.
func (pm *ProbabilityMap) Nodes() []core.NodeID {
	out := make([]core.NodeID, 0, pm.size)
	for id, ok := range pm.present {
		if ok {
			out = append(out, core.NodeID(id))
		}
	}

	return out
}
