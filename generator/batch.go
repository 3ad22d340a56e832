package generator

import (
	"fmt"

	"go.uber.org/zap"
)

// GenerateBatch returns exactly n results whose Signature.Structure values
// are pairwise distinct, barring an exhausted search space.
//
// Seeds start at the WithSeed value (default 1) and advance by one per
// draw. A draw whose structure repeats an accepted result is rejected; after
// maxBatchAttempts draws for one slot the best rejected candidate is taken
// anyway (preferring one whose colouring, Signature.Full, is still unseen)
// and marked Degraded. The batch never shrinks.
//
// Complexity: O(n · attempts · synthesis).
func GenerateBatch(n int, c Constraints, opts ...Option) ([]Result, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBatch, n, ErrBadCount)
	}
	cfg := newConfig(opts...)
	rc, err := resolve(c, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBatch, err)
	}

	out := make([]Result, 0, n)
	structures := make(map[string]struct{}, n)
	fulls := make(map[string]struct{}, n)
	seed := cfg.seed

	for slot := 0; slot < n; slot++ {
		var rejected []Result
		accepted := false
		for attempt := 1; attempt <= cfg.maxBatchAttempts; attempt++ {
			r := generate(rc, seed, cfg)
			seed++
			r.Attempts = attempt
			if _, dup := structures[r.Signature.Structure]; dup {
				rejected = append(rejected, r)
				continue
			}
			out = append(out, r)
			accepted = true
			break
		}
		if !accepted {
			best := bestCandidate(rejected, fulls)
			best.Degraded = true
			cfg.logger.Debug("batch slot exhausted; accepting duplicate structure",
				zap.Int("slot", slot), zap.Int("attempts", cfg.maxBatchAttempts),
				zap.String("structure", best.Signature.Structure))
			out = append(out, best)
		}
		last := out[len(out)-1]
		structures[last.Signature.Structure] = struct{}{}
		fulls[last.Signature.Full] = struct{}{}
	}

	return out, nil
}

// bestCandidate prefers the first candidate whose full threadcount is
// unseen, then one that is not already degraded, then the first one.
// Every candidate repeats an accepted structure, and equal structures imply
// equal proportions, so only the colour assignment can still differ.
func bestCandidate(cands []Result, fulls map[string]struct{}) Result {
	for _, r := range cands {
		if _, seen := fulls[r.Signature.Full]; !seen {
			return r
		}
	}
	for _, r := range cands {
		if !r.Degraded {
			return r
		}
	}
	best := cands[0]
	best.Attempts = len(cands)
	return best
}
