// Package availability is the dispatch layer: it validates inputs, relabels
// the graph to dense ids, runs one of four exact algorithms per node pair
// and maps results back to the caller's labels.
//
// Algorithms:
//   - MinimalCut: disjointed negated minimal cuts.
//   - MinimalPath: disjointed minimal paths.
//   - SumOfDisjointProducts: Singh-ordered paths with Xing decomposition.
//   - RecursiveConditioning: branching on cut nodes over graph views.
//
// All four return the same value for the same inputs. Parallel mode fans
// all-pairs runs out over goroutines for every algorithm; a single pair
// can only be split for SumOfDisjointProducts.
//
// Errors carry one kind (ErrConfiguration, ErrValidation, ErrLookup) plus a
// specific sentinel; test with errors.Is.
package availability
