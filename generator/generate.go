// SPDX-License-Identifier: MIT
// Package: tartan/generator
//
// generate.go - GenerateOne: seeded synthesis of a single sett.
//
// Determinism:
//   • One *rand.Rand per call, seeded from the seed argument only.
//   • Fixed draw order: symmetry → stripe count → colour budget → colour
//     subset → widths → total repair → colours.
//
// Complexity: O(n + k) per sett, n = stripes, k = allowed colours.

package generator

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/tartan/sett"
)

// GenerateOne synthesises one sett for (c, seed). The seed argument wins
// over WithSeed. Returns a wrapped ErrConstraint before drawing anything
// when c is invalid.
func GenerateOne(c Constraints, seed int64, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	rc, err := resolve(c, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	return generate(rc, seed, cfg), nil
}

// GenerateTartan is GenerateOne with default options.
func GenerateTartan(c Constraints, seed int64) (Result, error) {
	return GenerateOne(c, seed)
}

// generate runs the synthesis on validated constraints. It cannot fail.
func generate(rc resolved, seed int64, cfg config) Result {
	r := rngFromSeed(seed)
	c := rc.src

	sym := c.Symmetry
	if sym == Either {
		if r.Intn(2) == 0 {
			sym = Symmetric
		} else {
			sym = Asymmetric
		}
	}
	counts := rc.counts(sym)
	if sym == Symmetric && len(rc.symCounts) == 0 {
		sym = Asymmetric
	}
	n := counts[r.Intn(len(counts))]

	k := between(r, c.ColorCount.Min, minInt(c.ColorCount.Max, n, len(rc.colors)))
	perm := r.Perm(len(rc.colors))
	subset := make([]string, k)
	for i := range subset {
		subset[i] = rc.colors[perm[i]]
	}

	widths := make([]int, n)
	for i := range widths {
		widths[i] = between(r, c.ThreadPerStripe.Min, c.ThreadPerStripe.Max)
	}
	fitTotal(r, widths, c.ThreadPerStripe, c.TotalThreads)

	colors, degraded := drawColors(r, subset, n, sym == Asymmetric)
	if degraded {
		cfg.logger.Debug("colour redraw budget exhausted",
			zap.Int64("seed", seed), zap.Int("stripes", n), zap.Int("colours", k))
	}

	stripes := make([]sett.ThreadStripe, n)
	for i := range stripes {
		stripes[i] = sett.ThreadStripe{Color: colors[i], Count: widths[i]}
	}
	if sym == Symmetric {
		stripes[0].Pivot = true
		stripes[n-1].Pivot = true
	}

	return newResult(stripes, seed, c, "generate", degraded)
}

// newResult builds the Sett and signature. Stripe lists built here always
// satisfy sett.New (letters-only codes from the palette, counts ≥ 1).
func newResult(stripes []sett.ThreadStripe, seed int64, c Constraints, strategy string, degraded bool) Result {
	s := sett.MustNew(stripes).WithName(fmt.Sprintf("%s-%d", strategy, seed))
	return Result{
		Sett:        s,
		Seed:        seed,
		Constraints: c,
		Signature:   Sign(s),
		Degraded:    degraded,
		Attempts:    1,
		Strategy:    strategy,
	}
}

// fitTotal nudges widths (each kept inside per) until their sum lies in
// total. Each pass either meets the bound or saturates one stripe, so it
// ends after at most len(widths) passes when the stripe count is feasible.
func fitTotal(r *rand.Rand, widths []int, per, total Range) {
	sum := 0
	for _, w := range widths {
		sum += w
	}
	for pass := 0; pass < len(widths) && sum < total.Min; pass++ {
		i := pickIndex(r, widths, func(w int) bool { return w < per.Max })
		if i < 0 {
			break
		}
		add := minInt(total.Min-sum, per.Max-widths[i])
		widths[i] += add
		sum += add
	}
	for pass := 0; pass < len(widths) && sum > total.Max; pass++ {
		i := pickIndex(r, widths, func(w int) bool { return w > per.Min })
		if i < 0 {
			break
		}
		sub := minInt(sum-total.Max, widths[i]-per.Min)
		widths[i] -= sub
		sum -= sub
	}
}

// pickIndex returns a uniformly chosen index whose width satisfies ok, or -1.
func pickIndex(r *rand.Rand, widths []int, ok func(int) bool) int {
	var idx []int
	for i, w := range widths {
		if ok(w) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return -1
	}
	return idx[r.Intn(len(idx))]
}

// drawColors assigns one colour per stripe from subset. Every colour of
// subset is used at least once: an unused colour is taken when the
// remaining stripes just cover the unused ones, or on a coin flip. Other
// draws redraw a colour equal to the previous stripe up to maxColorRetries
// times; seam additionally asks the last stripe to differ from the first
// (asymmetric tiling) while retries allow it. degraded reports an accepted
// adjacent repeat.
func drawColors(r *rand.Rand, subset []string, n int, seam bool) (colors []string, degraded bool) {
	colors = make([]string, n)
	unused := append([]string(nil), subset...)
	take := func(j int) string {
		c := unused[j]
		unused = append(unused[:j], unused[j+1:]...)
		return c
	}
	markUsed := func(c string) {
		for j, u := range unused {
			if u == c {
				take(j)
				return
			}
		}
	}

	for i := 0; i < n; i++ {
		remaining := n - i
		if len(unused) > 0 && (len(unused) >= remaining || r.Intn(2) == 0) {
			colors[i] = take(r.Intn(len(unused)))
			continue
		}

		wantSeam := seam && i == n-1 && n > 2
		var c string
		ok := false
		for try := 0; try < maxColorRetries; try++ {
			c = subset[r.Intn(len(subset))]
			if i > 0 && c == colors[i-1] {
				continue
			}
			if wantSeam && c == colors[0] && try < maxColorRetries/2 {
				continue
			}
			ok = true
			break
		}
		if !ok && i > 0 && c == colors[i-1] {
			degraded = true
		}
		colors[i] = c
		markUsed(c)
	}
	return colors, degraded
}

func minInt(v int, rest ...int) int {
	for _, x := range rest {
		if x < v {
			v = x
		}
	}
	return v
}
