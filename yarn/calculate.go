// SPDX-License-Identifier: MIT
// Package: tartan/yarn
//
// calculate.go - Calculate and CalculateForProduct.

package yarn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tartan/sett"
)

const inchesPerYard = 36

// Calculate estimates the yarn for weaving product in s.
// Complexity: O(L + C), L = expanded length, C = distinct colours.
func Calculate(s sett.Sett, product Product, opts ...Option) (Calculation, error) {
	return calculate(s, product, newConfig(opts...))
}

// CalculateForProduct is Calculate with product looked up by key among the
// built-in templates and those registered with WithProducts.
func CalculateForProduct(s sett.Sett, key string, opts ...Option) (Calculation, error) {
	cfg := newConfig(opts...)
	product, ok := find(cfg.products, key, productKey)
	if !ok {
		return Calculation{}, fmt.Errorf("yarn: CalculateForProduct %q: %w", key, ErrUnknownProduct)
	}
	return calculate(s, product, cfg)
}

func calculate(s sett.Sett, product Product, cfg config) (Calculation, error) {
	if s.IsEmpty() || s.TotalThreads() == 0 {
		return Calculation{}, fmt.Errorf("yarn: Calculate: %w", ErrEmptySett)
	}
	if !(product.Width > 0) || !(product.Length > 0) {
		return Calculation{}, fmt.Errorf("yarn: Calculate %q %gx%g: %w",
			product.Key, product.Width, product.Length, ErrBadDimension)
	}
	if cfg.waste < 1 || math.IsNaN(cfg.waste) {
		return Calculation{}, fmt.Errorf("yarn: Calculate waste=%g: %w", cfg.waste, ErrBadWaste)
	}
	profile, ok := find(cfg.profiles, cfg.profile, profileKey)
	if !ok {
		return Calculation{}, fmt.Errorf("yarn: Calculate %q: %w", cfg.profile, ErrUnknownProfile)
	}

	gauge := cfg.gauge
	if gauge == 0 {
		gauge = deriveGauge(profile, cfg.pattern.Twill())
	}
	if !(gauge > 0) {
		return Calculation{}, fmt.Errorf("yarn: Calculate profile %q: %w", profile.Key, ErrZeroGauge)
	}
	if !(profile.YardsPer100g > 0) {
		return Calculation{}, fmt.Errorf("yarn: Calculate profile %q has no yardage: %w", profile.Key, ErrArithmetic)
	}

	exp := sett.MustExpand(s)
	counts := exp.ColorCounts()
	ends := int(math.Ceil(product.Width * gauge))
	picks := int(math.Ceil(product.Length * gauge))
	perSkein := profile.YardsPerSkein()

	calc := Calculation{
		Profile:         profile,
		Product:         product,
		Weave:           cfg.pattern.ID,
		WasteMultiplier: cfg.waste,
		Gauge:           gauge,
		WarpEnds:        ends,
		WeftPicks:       picks,
	}

	for _, code := range exp.Colors() {
		f := float64(counts[code]) / float64(exp.Length)
		r := Requirement{
			Color:       code,
			WarpThreads: float64(ends) * f,
			WeftThreads: float64(picks) * f,
		}
		r.WarpYards = r.WarpThreads * product.Length / inchesPerYard * cfg.waste
		r.WeftYards = r.WeftThreads * product.Width / inchesPerYard * cfg.waste
		r.TotalYards = r.WarpYards + r.WeftYards
		r.Skeins = int(math.Ceil(r.TotalYards / perSkein))
		r.WeightGrams = r.TotalYards / profile.YardsPer100g * 100
		r.Cost = float64(r.Skeins) * cfg.costPerSkein
		calc.Requirements = append(calc.Requirements, r)

		calc.Totals.Skeins += r.Skeins
		calc.Totals.Cost += r.Cost
	}

	// Yardage totals are computed from the whole cloth, not summed, so the
	// per-colour rows can be checked against them.
	t := &calc.Totals
	t.WarpThreads = float64(ends)
	t.WeftThreads = float64(picks)
	t.WarpYards = t.WarpThreads * product.Length / inchesPerYard * cfg.waste
	t.WeftYards = t.WeftThreads * product.Width / inchesPerYard * cfg.waste
	t.TotalYards = t.WarpYards + t.WeftYards
	t.WeightGrams = t.TotalYards / profile.YardsPer100g * 100

	return calc, nil
}

// deriveGauge sets threads per inch from wraps per inch: ⅔ for twills,
// ½ for plain and basket weaves.
func deriveGauge(p Profile, twill bool) float64 {
	if twill {
		return p.WPI * 2 / 3
	}
	return p.WPI / 2
}
