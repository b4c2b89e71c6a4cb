// Package lvrbd computes the availability of networks whose nodes fail
// independently: the probability that a source and a destination stay
// connected.
//
// The module is organised as small packages, each usable on its own:
//
//	core/         undirected Graph plus copy-on-write View (Delete, Absorb)
//	bfs/          breadth-first traversal and reachability (HasPath)
//	pathset/      minimal (chordless) and simple path enumeration
//	cutset/       minimal node cuts: reference and pruned enumerators
//	term/         signed literals, product terms, probability lookup
//	disjoint/     disjoint sums of products from paths or cuts
//	sdp/          Singh ordering and Xing-style sum of disjoint products
//	conditioning/ recursive conditioning on cut nodes
//	relabel/      dense 1..n relabelling of arbitrary node ids
//	availability/ algorithm dispatch, all-pairs runs, Boolean expressions
//	topology/     YAML network descriptions
//	metrics/      Prometheus instrumentation of evaluations
//	builder/      deterministic graph shapes for tests and generation
//	cmd/lvrbd     command line front end
//
// Quick ASCII example:
//
//	      2
//	    ╱   ╲
//	  1       4      availability(1→4) = p1·p4·(1 − (1−p2)(1−p3))
//	    ╲   ╱
//	      3
//
// Every algorithm returns the same number for the same input; they differ
// in how the problem set is built and in how fast it grows.
package lvrbd
