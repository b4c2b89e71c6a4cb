// SPDX-License-Identifier: MIT
// Package: lvrbd/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = index+1      (1, 2, 3, ... dense positive ids)
//   • rng      = nil          (pure/deterministic unless seeded)
//   • weightFn = core.DefaultWeight

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvrbd/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> id (deterministic).
	idFn func(int) core.NodeID
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn func(*rand.Rand) float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     denseID(1),
		weightFn: func(*rand.Rand) float64 { return core.DefaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// denseID maps index i to first+i.
func denseID(first int) func(int) core.NodeID {
	return func(i int) core.NodeID { return core.NodeID(first + i) }
}
