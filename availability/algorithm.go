package availability

import (
	"fmt"
	"strings"
)

// Algorithm selects the evaluation method.
type Algorithm int

const (
	// MinimalCut disjoints the negated minimal cuts (unavailability form).
	MinimalCut Algorithm = iota + 1
	// MinimalPath disjoints the minimal paths directly.
	MinimalPath
	// SumOfDisjointProducts applies Singh ordering and Xing decomposition
	// to the minimal paths.
	SumOfDisjointProducts
	// RecursiveConditioning branches on cut nodes over graph working copies.
	RecursiveConditioning
)

// Algorithms lists every algorithm in declaration order.
var Algorithms = []Algorithm{MinimalCut, MinimalPath, SumOfDisjointProducts, RecursiveConditioning}

// String returns the canonical name.
func (a Algorithm) String() string {
	switch a {
	case MinimalCut:
		return "minimal-cut"
	case MinimalPath:
		return "minimal-path"
	case SumOfDisjointProducts:
		return "sum-of-disjoint-products"
	case RecursiveConditioning:
		return "recursive-conditioning"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Short returns the compact name used in metrics labels.
func (a Algorithm) Short() string {
	switch a {
	case MinimalCut:
		return "mcs"
	case MinimalPath:
		return "pathset"
	case SumOfDisjointProducts:
		return "sdp"
	case RecursiveConditioning:
		return "pyrbd"
	default:
		return "unknown"
	}
}

// supportsParallelPair reports whether a single pair can be split across
// goroutines.
func (a Algorithm) supportsParallelPair() bool { return a == SumOfDisjointProducts }

// ParseAlgorithm accepts the canonical or short name, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Algorithms {
		if name == a.String() || name == a.Short() {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %w: %q", ErrConfiguration, ErrUnknownAlgorithm, s)
}

// Mode selects sequential or parallel execution.
type Mode int

const (
	// Sequential runs everything on the calling goroutine.
	Sequential Mode = iota
	// Parallel fans work out over goroutines.
	Parallel
)

// String returns "sequential" or "parallel".
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "sequential" or "parallel".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential":
		return Sequential, nil
	case "parallel":
		return Parallel, nil
	default:
		return 0, fmt.Errorf("%w: %w: %q", ErrConfiguration, ErrUnknownMode, s)
	}
}
