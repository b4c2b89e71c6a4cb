// Package cutset enumerates minimal node cuts between two nodes.
//
// A cut is a set of nodes other than src and dst whose removal leaves no
// src→dst path; it is minimal when no strict subset is also a cut. Results
// are returned as a CutSet: {src} and {dst} first (the endpoints are
// themselves failure-prone), then every minimal cut of size ≤ order sorted
// by (size, lex). The collection is always an antichain.
//
// Two enumerators share one contract:
//
//   - MinimalCuts: coverage over every simple path, candidates rescanned
//     row by row. Simple and slow; serves as the correctness oracle.
//   - MinimalCutsOptimized: coverage over chordless minimal paths with one
//     fixed bit-vector column per node, OR-combined per candidate, and
//     upper-set pruning of supersets of already found cuts.
//
// Order:
//
// Worst-case cost grows combinatorially with both graph size and order,
// and nothing inside the enumerators can cancel a run. order is therefore a
// required argument. DefaultOrder(n) = ⌈n/2⌉ is the customary choice but can
// miss wider cuts; ExhaustiveOrder(n) = n-2 never does.
//
// Adjacent endpoints and disconnected endpoints both yield only {src}, {dst}.
// Callers that need to tell them apart check connectivity first (bfs.HasPath).
package cutset
