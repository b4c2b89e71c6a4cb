package availability

import (
	"errors"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/relabel"
)

// Error kinds. Every error returned by this package wraps exactly one kind
// and, where applicable, a specific sentinel below.
var (
	ErrConfiguration = errors.New("availability: configuration error")
	ErrValidation    = errors.New("availability: validation error")
	ErrLookup        = errors.New("availability: lookup error")
)

// Configuration sentinels.
var (
	ErrUnknownAlgorithm      = errors.New("unknown algorithm")
	ErrUnknownMode           = errors.New("unknown mode")
	ErrParallelUnsupported   = errors.New("parallel mode not supported for a single pair")
	ErrPartialEndpoints      = errors.New("src and dst must both be given or both omitted")
	ErrSameEndpoints         = errors.New("src and dst are the same node")
	ErrInvalidConfig         = errors.New("invalid config value")
	ErrExpressionUnsupported = errors.New("no Boolean expression for this algorithm")
)

// Validation sentinels, shared with the packages that detect them.
var (
	ErrDomainMismatch = relabel.ErrDomainMismatch
	ErrNodeNotFound   = core.ErrNodeNotFound
	ErrGraphNil       = relabel.ErrGraphNil
)
