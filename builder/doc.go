// Package builder provides deterministic topology constructors for tests,
// examples and the CLI generate command.
//
// Constructors compose through BuildGraph:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomSparse(10, 0.3),
//	)
//
// Nodes are numbered 1..n by default (WithFirstID, WithIDScheme change
// that), so built graphs already satisfy the dense positive id precondition
// of the evaluators. Every edge gets weight core.DefaultWeight unless
// WithWeightFn says otherwise.
//
// Constructors: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
// Ladder, RandomSparse.
package builder
