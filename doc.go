// Package tartan is a procedural design engine for woven tartans: from a
// compact threadcount to a loom-ready draft and a yarn shopping list.
//
// What is inside?
//
//	A deterministic, pure-Go toolkit that brings together:
//		• Notation: parse and print threadcounts ("B/24 W4 B24 R2 K24 G24 W/2")
//		• Setts: immutable stripe sequences + expansion into one full repeat
//		• Weaves: a fixed catalog (plain, twills, herringbone, houndstooth, basket)
//		• Generator: seeded synthesis under constraints, dedup, mutation, breeding
//		• Drafts: WIF export and import for loom software
//		• Yarn: per-colour yardage, skeins, weight and cost for a product
//
// Why this shape?
//
//   - Value objects only: every stage returns fresh, immutable results
//   - Reproducible: all randomness flows from an explicit seed
//   - Typed failures: sentinel errors checked with errors.Is
//
// Packages:
//
//	sett/       ThreadStripe, Sett, threadcount notation, expansion
//	palette/    colour codes → RGB, built-in 48 colours, custom colours
//	weave/      weave catalog, tie-up/threading/treadling, intersections
//	generator/  constraint-driven synthesis, batches, mutate, breed
//	wif/        loom draft (WIF) writer and reader
//	yarn/       yarn profiles, product templates, production calculator
//	render/     row streaming, SVG and PNG swatches
//
// A tartan sett, read left to right:
//
//	B/24 W4 B24 R2 K24 G24 W/2
//	└pivot                 └pivot  → mirrored into one 182-thread repeat
//
//	go install github.com/katalvlaran/tartan/cmd/tartan@latest
package tartan
