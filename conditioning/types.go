package conditioning

import (
	"errors"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/cutset"
	"github.com/katalvlaran/lvrbd/term"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Evaluate.
	ErrGraphNil = errors.New("conditioning: graph is nil")

	// ErrProbabilitiesNil is returned when no probability map is supplied.
	ErrProbabilitiesNil = errors.New("conditioning: probability map is nil")

	// ErrSameEndpoints is returned when src == dst.
	ErrSameEndpoints = errors.New("conditioning: src and dst are the same node")
)

// Outcome classifies the src/dst relationship of one branch.
type Outcome int

const (
	// Unresolved: a path exists but src and dst are not adjacent.
	Unresolved Outcome = iota
	// Success: src and dst are directly adjacent.
	Success
	// Failure: no path remains.
	Failure
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unresolved"
	}
}

// Option configures Evaluate.
type Option func(*Options)

// Options holds the knobs of one evaluation.
type Options struct {
	// Order bounds the size of enumerated cuts. 0 means cutset.DefaultOrder;
	// every order gives the exact availability, unresolved branches fall back
	// to the remaining graph nodes.
	Order int

	// Cuts, when non-nil, is used instead of enumerating.
	Cuts cutset.CutSet

	// Enumerator produces the cut set when Cuts is nil.
	Enumerator cutset.Enumerator
}

// DefaultOptions returns the reference enumerator with the default order.
func DefaultOptions() Options {
	return Options{Enumerator: cutset.MinimalCuts}
}

// WithOrder sets the cut-size ceiling passed to the enumerator.
func WithOrder(order int) Option {
	return func(o *Options) { o.Order = order }
}

// WithCuts supplies a precomputed cut set for the same src and dst.
func WithCuts(cs cutset.CutSet) Option {
	return func(o *Options) { o.Cuts = cs }
}

// WithEnumerator swaps the cut enumerator (e.g. cutset.MinimalCutsOptimized).
func WithEnumerator(e cutset.Enumerator) Option {
	return func(o *Options) {
		if e != nil {
			o.Enumerator = e
		}
	}
}

// Result is the outcome of one (src, dst) evaluation.
//
// Success and Failure are pairwise disjoint and together cover every
// assignment of the branched nodes.
type Result struct {
	Availability float64
	Success      []term.Term
	Failure      []term.Term

	// Seed is the first branching node; zero when no branching happened.
	Seed core.NodeID
	// Branched lists branching nodes in the order they were introduced.
	Branched []core.NodeID

	// Adjacent is set when src and dst share an edge in the input graph.
	Adjacent bool
	// Connected is false when no src→dst path exists at all.
	Connected bool
}
