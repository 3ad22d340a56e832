// SPDX-License-Identifier: MIT
// Package: tartan/yarn
//
// options.go - functional options.
//
// Contract:
//   • Option constructors panic on meaningless input (negative gauge or
//     cost). The waste multiplier is user data and is checked by Calculate.
//   • Defaults: fingering profile, waste 1.15, gauge derived, twill 2/2.

package yarn

import (
	"github.com/katalvlaran/tartan/weave"
)

// DefaultWaste covers loom waste and take-up.
const DefaultWaste = 1.15

// Option customises a calculation.
type Option func(*config)

type config struct {
	gauge        float64
	profile      string
	waste        float64
	costPerSkein float64
	pattern      weave.Pattern
	profiles     []Profile
	products     []Product
}

func newConfig(opts ...Option) config {
	cfg := config{
		profile:  DefaultProfile,
		waste:    DefaultWaste,
		pattern:  weave.Get(weave.Twill22),
		profiles: builtinProfiles,
		products: builtinProducts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithGauge sets threads per inch. 0, the default, is not rejected: it
// derives the gauge from the profile WPI and the weave. ErrZeroGauge comes
// only from a derivation that yields no positive gauge.
// Panics on a negative gauge.
func WithGauge(g float64) Option {
	if g < 0 {
		panic("yarn: WithGauge(g<0)")
	}
	return func(c *config) { c.gauge = g }
}

// WithProfile selects a yarn profile by key.
func WithProfile(key string) Option {
	return func(c *config) { c.profile = key }
}

// WithWaste sets the waste multiplier; Calculate rejects values below 1.
func WithWaste(w float64) Option {
	return func(c *config) { c.waste = w }
}

// WithCostPerSkein sets the price of one skein. Panics if negative.
func WithCostPerSkein(cost float64) Option {
	if cost < 0 {
		panic("yarn: WithCostPerSkein(cost<0)")
	}
	return func(c *config) { c.costPerSkein = cost }
}

// WithWeave sets the weave used to derive a zero gauge.
func WithWeave(p weave.Pattern) Option {
	return func(c *config) { c.pattern = p }
}

// WithProfiles registers extra profiles; they shadow built-ins with the
// same key.
func WithProfiles(ps ...Profile) Option {
	return func(c *config) { c.profiles = append(append([]Profile(nil), c.profiles...), ps...) }
}

// WithProducts registers extra product templates; they shadow built-ins
// with the same key.
func WithProducts(ps ...Product) Option {
	return func(c *config) { c.products = append(append([]Product(nil), c.products...), ps...) }
}
