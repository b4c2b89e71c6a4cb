// Package conditioning computes exact two-terminal availability by
// recursive conditioning on nodes drawn from a minimal cut set.
//
// Every branch either keeps a node (it is absorbed: its neighbours are
// connected pairwise) or loses it (it is deleted). A branch resolves to
// Success once src and dst are adjacent and to Failure once no path
// remains. The resulting Success and Failure terms are pairwise disjoint,
// so their probabilities add directly.
//
// Branches work on core.View copies; the caller's graph is never mutated.
package conditioning
