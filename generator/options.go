// SPDX-License-Identifier: MIT
// Package: tartan/generator
//
// options.go - functional options.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Defaults are deterministic: seed 1, built-in palette, silent logger.

package generator

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/tartan/palette"
)

// Retry ceilings (documented, fixed).
const (
	defaultMaxBatchAttempts = 32 // draws per batch slot before accepting a duplicate
	maxColorRetries         = 16 // redraws of a colour equal to its neighbour
	maxRepairRetries        = 16 // redraws when Breed repairs an adjacent repeat
)

// Option customises a generator call.
type Option func(*config)

type config struct {
	seed             int64
	palette          palette.Palette
	logger           *zap.Logger
	maxBatchAttempts int
}

func newConfig(opts ...Option) config {
	cfg := config{
		seed:             defaultRNGSeed,
		logger:           zap.NewNop(),
		maxBatchAttempts: defaultMaxBatchAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed sets the base seed of GenerateBatch (and Breed). 0 maps to the
// package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithPalette sets the palette used for the empty-AllowedColors fallback
// and for validating allowed colour codes.
func WithPalette(p palette.Palette) Option {
	return func(c *config) { c.palette = p }
}

// WithLogger attaches a logger for degradation diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMaxBatchAttempts overrides the per-slot attempt ceiling of
// GenerateBatch. Panics if n < 1.
func WithMaxBatchAttempts(n int) Option {
	if n < 1 {
		panic("generator: WithMaxBatchAttempts(n<1)")
	}
	return func(c *config) { c.maxBatchAttempts = n }
}
