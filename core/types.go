// Package core defines the undirected Graph and the copy-on-write View used by
// every enumerator and evaluator in lvrbd.
//
// This file declares NodeID, Edge, Reader, Graph, GraphOption, the sentinel
// errors and the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph            - graph pointer is nil.
//	ErrNodeNotFound        - requested node does not exist (or was removed from a View).
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - negative or NaN edge weight.
//	ErrLoopNotAllowed      - self-loop u == v.
//	ErrMultiEdgeNotAllowed - attempt to add a parallel edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultWeight is the weight builders and loaders use when none is given.
const DefaultWeight float64 = 1

// NodeID identifies a node. Evaluators that encode failure as a negative
// literal require ids to be dense and positive (see package relabel).
type NodeID int

// Edge is an undirected connection between two nodes.
// Edges() always reports From < To.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight float64
}

// Reader is the read-only surface shared by Graph and View.
// Every traversal in lvrbd (bfs, pathset, cutset) is written against it.
type Reader interface {
	// HasNode reports whether id is present.
	HasNode(id NodeID) bool

	// HasEdge reports whether u and v are directly adjacent.
	HasEdge(u, v NodeID) bool

	// Neighbors returns the neighbours of id in ascending id order.
	Neighbors(id NodeID) ([]NodeID, error)

	// Nodes returns every node in insertion order.
	Nodes() []NodeID
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal storage for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.ids = make([]NodeID, 0, n)
			g.slots = make(map[NodeID]int, n)
			g.adj = make([][]int, 0, n)
		}
	}
}

// Graph is a simple undirected graph stored as an arena of slots.
//
// Every node occupies a stable slot index; adjacency lists hold slot
// indices ordered by NodeID. Inner adjacency slices are never written in
// place, so a frozen arena handed to a View stays valid while the Graph
// keeps growing. mu guards every field.
type Graph struct {
	mu sync.RWMutex

	ids     []NodeID          // slot → id, insertion order
	slots   map[NodeID]int    // id → slot
	adj     [][]int           // slot → neighbour slots, ascending by id
	weights map[edgeKey]float64
	edges   int

	// frozen caches the immutable arena served to views; reset on mutation.
	frozen *arena
}

// edgeKey is the unordered slot pair of an edge with lo < hi.
type edgeKey struct{ lo, hi int }

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		slots:   make(map[NodeID]int),
		weights: make(map[edgeKey]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
