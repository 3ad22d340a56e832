// Package generator synthesises tartan setts under numeric and structural
// constraints, deterministically from an explicit seed.
//
// What:
//
//   - GenerateOne / GenerateTartan: one Sett per (Constraints, seed).
//   - GenerateBatch: n results with pairwise distinct structure signatures.
//   - Mutate: variants of a base result that keep some of its colours.
//   - Breed: four children of two parents via fixed recombination strategies.
//
// Guarantees:
//
//   - Determinism: the same Constraints, seed and options always give the
//     same Sett; every random draw goes through a seeded *rand.Rand.
//   - Range compliance: stripe count and total threads of GenerateOne results
//     lie inside the requested ranges.
//   - No adjacent repeat: consecutive stripes differ in colour unless the
//     bounded redraw budget ran out, which sets Result.Degraded.
//   - Termination: every retry loop has a fixed ceiling.
//
// Synthesis (GenerateOne):
//
//  1. Either-symmetry is resolved by one coin flip from the seed.
//  2. A stripe count is drawn among the counts that can meet the total range.
//  3. A colour budget k is drawn from ColorCount and k colours are chosen
//     from AllowedColors (the whole palette when empty).
//  4. Widths are drawn from ThreadPerStripe, then nudged stripe by stripe
//     until the total lies inside TotalThreads.
//  5. Colours are drawn per stripe, unused colours first, redrawing a colour
//     equal to the previous stripe up to maxColorRetries times.
//  6. Symmetric setts get pivots on the first and last stripe.
//
// Signatures:
//
//	Full        canonical threadcount            "B/24 W4 B24 R2 K24 G24 W/2"
//	Structure   colours relabelled by appearance "a/24 b4 a24 c2 d24 e24 b/2"
//	Proportion  relabelled, counts in per-mille  "a/231 b38 a231 c19 d231 e231 b/19"
//
// Errors:
//
//   - ErrConstraint (and the narrower ErrBadRange, ErrNoColors,
//     ErrUnknownColor, ErrInfeasible, ErrBadCount) for invalid input; they
//     are returned before any synthesis starts.
//
// Logging:
//
//	Silent by default. WithLogger attaches a *zap.Logger that reports
//	degraded draws and exhausted batch slots at debug level.
package generator
