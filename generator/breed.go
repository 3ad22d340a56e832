// SPDX-License-Identifier: MIT
// Package: tartan/generator
//
// breed.go - two-parent recombination.
//
// Strategies (fixed order, one child each):
//   1. interleave          stripe i from A when i is even, from B when odd
//   2. structure-a/colors-b A's counts, B's distinct colours cycled
//   3. structure-b/colors-a the mirror of 2
//   4. random-donor        per-stripe coin picks the donor, then a 30% chance
//                          to swap in a colour from both parents' union
//
// Every child gets pivots on its first and last stripe only; adjacent
// repeats are repaired from the colour union with bounded redraws.

package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tartan/sett"
)

// Strategy names, in output order.
const (
	StrategyInterleave     = "interleave"
	StrategyStructureAColB = "structure-a/colors-b"
	StrategyStructureBColA = "structure-b/colors-a"
	StrategyRandomDonor    = "random-donor"
)

// substituteProbability is the random-donor colour swap chance.
const substituteProbability = 0.3

// Breed returns exactly four children of a and b, one per strategy.
// Randomness is derived from both parent seeds (and WithSeed when given),
// so the same parents always breed the same children. Children carry
// a's Constraints.
func Breed(a, b Result, opts ...Option) ([]Result, error) {
	if a.Sett.IsEmpty() || b.Sett.IsEmpty() {
		return nil, fmt.Errorf("%s: parent: %w", methodBreed, sett.ErrEmptySett)
	}
	cfg := newConfig(opts...)

	seed := deriveSeed(deriveSeed(a.Seed, uint64(b.Seed)), streamBreed) ^ cfg.seed
	r := rngFromSeed(seed)

	as, bs := a.Sett.Stripes(), b.Sett.Stripes()
	union := unionColors(a.Sett, b.Sett)

	children := [4][]sett.ThreadStripe{
		interleave(as, bs),
		recolor(as, b.Sett.Colors()),
		recolor(bs, a.Sett.Colors()),
		randomDonor(r, as, bs, union),
	}
	names := [4]string{StrategyInterleave, StrategyStructureAColB, StrategyStructureBColA, StrategyRandomDonor}

	out := make([]Result, 0, len(children))
	for i, stripes := range children {
		markPivots(stripes)
		degraded := repairAdjacent(r, stripes, union)
		res := newResult(stripes, seed+int64(i), a.Constraints, names[i], degraded)
		out = append(out, res)
	}
	return out, nil
}

// interleave alternates donors per index; the longer parent fills the tail.
func interleave(as, bs []sett.ThreadStripe) []sett.ThreadStripe {
	n := max(len(as), len(bs))
	out := make([]sett.ThreadStripe, n)
	for i := range out {
		src, other := as, bs
		if i%2 == 1 {
			src, other = bs, as
		}
		if i >= len(src) {
			src = other
		}
		out[i] = src[i]
	}
	return out
}

// recolor keeps the counts of structure and cycles colors across them.
func recolor(structure []sett.ThreadStripe, colors []string) []sett.ThreadStripe {
	out := make([]sett.ThreadStripe, len(structure))
	for i, st := range structure {
		out[i] = sett.ThreadStripe{Color: colors[i%len(colors)], Count: st.Count}
	}
	return out
}

func randomDonor(r *rand.Rand, as, bs []sett.ThreadStripe, union []string) []sett.ThreadStripe {
	n := max(len(as), len(bs))
	out := make([]sett.ThreadStripe, n)
	for i := range out {
		src, other := as, bs
		if r.Intn(2) == 1 {
			src, other = bs, as
		}
		if i >= len(src) {
			src = other
		}
		out[i] = src[i]
		if r.Float64() < substituteProbability {
			out[i].Color = union[r.Intn(len(union))]
		}
	}
	return out
}

// markPivots clears interior pivots and marks the two ends.
func markPivots(stripes []sett.ThreadStripe) {
	for i := range stripes {
		stripes[i].Pivot = i == 0 || i == len(stripes)-1
	}
}

// repairAdjacent redraws a stripe colour equal to its predecessor from
// union, avoiding both neighbours, up to maxRepairRetries times per stripe.
// Reports whether any repeat survived.
func repairAdjacent(r *rand.Rand, stripes []sett.ThreadStripe, union []string) bool {
	degraded := false
	for i := 1; i < len(stripes); i++ {
		if stripes[i].Color != stripes[i-1].Color {
			continue
		}
		fixed := false
		for try := 0; try < maxRepairRetries; try++ {
			c := union[r.Intn(len(union))]
			if c == stripes[i-1].Color {
				continue
			}
			if i+1 < len(stripes) && c == stripes[i+1].Color {
				continue
			}
			stripes[i].Color = c
			fixed = true
			break
		}
		if !fixed {
			degraded = true
		}
	}
	return degraded
}

func unionColors(a, b sett.Sett) []string {
	out := a.Colors()
	seen := make(map[string]struct{}, len(out))
	for _, c := range out {
		seen[c] = struct{}{}
	}
	for _, c := range b.Colors() {
		if _, ok := seen[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}
