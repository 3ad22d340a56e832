// Package yarn estimates the yarn a woven tartan consumes.
//
// What:
//
//   - Calculate: Sett + Product + options → Calculation with per-colour
//     warp/weft yardage, whole skeins, weight and cost.
//   - CalculateForProduct: the same, with the product looked up by key.
//   - Profiles / Products: built-in yarn weight classes and product sizes.
//
// Model (all lengths in inches, yardage in yards):
//
//	ends   = ceil(width  × gauge)          picks = ceil(length × gauge)
//	f(c)   = count(c in ExpandedSett) / Length
//	warp   = ends  · f(c) · length / 36 · waste
//	weft   = picks · f(c) · width  / 36 · waste
//	skeins = ceil((warp + weft) / yardsPerSkein)
//	grams  = (warp + weft) / yardsPer100g · 100
//	cost   = skeins · costPerSkein
//
// A tartan weaves the same sett in warp and weft, so one set of colour
// fractions serves both axes. A zero gauge is derived from the profile's
// wraps per inch: ½ WPI for plain and basket weaves, ⅔ WPI for twills.
//
// Conservation:
//
//	Σ Requirements[i].TotalYards == Totals.TotalYards (float rounding only).
//
// Errors:
//
//   - ErrZeroGauge, ErrEmptySett, ErrBadDimension: both match ErrArithmetic.
//   - ErrUnknownProduct, ErrUnknownProfile: key not in the tables.
//   - ErrBadWaste: waste multiplier below 1.
package yarn
