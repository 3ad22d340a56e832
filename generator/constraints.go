package generator

import (
	"fmt"
	"strings"
)

// resolved is a validated Constraints with the colour fallback applied and
// the feasible stripe counts precomputed per symmetry.
type resolved struct {
	src       Constraints
	colors    []string // deduplicated allowed colours, input order
	symCounts []int    // feasible stripe counts for symmetric setts (n ≥ 2)
	asyCounts []int    // feasible stripe counts for asymmetric setts
}

// Validate runs the checks every generator entry point performs before
// drawing anything. Colours are checked against the built-in palette unless
// WithPalette is given.
func (c Constraints) Validate(opts ...Option) error {
	_, err := resolve(c, newConfig(opts...))
	return err
}

// resolve validates c. Checks, in order:
//   - every range has 1 ≤ Min ≤ Max                        (ErrBadRange)
//   - allowed colours exist (palette fallback when empty)   (ErrNoColors)
//   - allowed colours are known to the palette             (ErrUnknownColor)
//   - ColorCount.Min ≤ #colours and ≤ StripeCount.Max      (ErrInfeasible)
//   - some stripe count meets ThreadPerStripe×TotalThreads (ErrInfeasible)
func resolve(c Constraints, cfg config) (resolved, error) {
	ranges := []struct {
		name string
		r    Range
	}{
		{"ColorCount", c.ColorCount},
		{"StripeCount", c.StripeCount},
		{"ThreadPerStripe", c.ThreadPerStripe},
		{"TotalThreads", c.TotalThreads},
	}
	for _, f := range ranges {
		if f.r.Min < 1 || f.r.Min > f.r.Max {
			return resolved{}, fmt.Errorf("%s %s: %w", f.name, f.r, ErrBadRange)
		}
	}
	if c.Symmetry < Symmetric || c.Symmetry > Either {
		return resolved{}, fmt.Errorf("symmetry %d: %w", int(c.Symmetry), ErrConstraint)
	}

	colors := c.AllowedColors
	if len(colors) == 0 {
		colors = cfg.palette.Codes()
	}
	seen := make(map[string]struct{}, len(colors))
	dedup := make([]string, 0, len(colors))
	for _, code := range colors {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := cfg.palette.Lookup(code); !ok {
			return resolved{}, fmt.Errorf("allowed colour %q: %w", code, ErrUnknownColor)
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		dedup = append(dedup, code)
	}
	if len(dedup) == 0 {
		return resolved{}, ErrNoColors
	}
	if c.ColorCount.Min > len(dedup) {
		return resolved{}, fmt.Errorf("ColorCount.Min=%d > %d allowed colours: %w",
			c.ColorCount.Min, len(dedup), ErrInfeasible)
	}
	if c.ColorCount.Min > c.StripeCount.Max {
		return resolved{}, fmt.Errorf("ColorCount.Min=%d > StripeCount.Max=%d: %w",
			c.ColorCount.Min, c.StripeCount.Max, ErrInfeasible)
	}

	rc := resolved{src: c, colors: dedup}
	for n := c.StripeCount.Min; n <= c.StripeCount.Max; n++ {
		if n < c.ColorCount.Min {
			continue
		}
		if n*c.ThreadPerStripe.Min > c.TotalThreads.Max || n*c.ThreadPerStripe.Max < c.TotalThreads.Min {
			continue
		}
		rc.asyCounts = append(rc.asyCounts, n)
		if n >= 2 {
			rc.symCounts = append(rc.symCounts, n)
		}
	}

	switch {
	case c.Symmetry == Symmetric && len(rc.symCounts) == 0,
		c.Symmetry == Asymmetric && len(rc.asyCounts) == 0,
		c.Symmetry == Either && len(rc.asyCounts) == 0:
		return resolved{}, fmt.Errorf("stripes %s × widths %s cannot reach total %s (%s): %w",
			c.StripeCount, c.ThreadPerStripe, c.TotalThreads, c.Symmetry, ErrInfeasible)
	}

	return rc, nil
}

// counts returns the feasible stripe counts for sym. Either falls back to
// the asymmetric list when no symmetric count exists.
func (rc resolved) counts(sym Symmetry) []int {
	if sym == Symmetric && len(rc.symCounts) > 0 {
		return rc.symCounts
	}
	return rc.asyCounts
}
