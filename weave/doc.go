// Package weave holds the fixed catalog of weave structures and the single
// intersection rule every renderer and exporter relies on.
//
// What:
//
//   - Type: closed enumeration (Plain, Twill22, Twill31, Herringbone,
//     Houndstooth, Basket). Adding a weave is a data addition to the catalog.
//   - Pattern: tie-up matrix + threading (warp → shaft) + treadling
//     (weft → treadle).
//   - IntersectionColor / Grid: resolve the visible colour at (x, y).
//
// Intersection rule:
//
//	shaft   = Threading[x mod len(Threading)]
//	treadle = Treadling[y mod len(Treadling)]
//	warp    = TieUp[treadle][shaft]
//	colour  = warp ? warpThreads[x mod W] : weftThreads[y mod H]
//
// TieUp is indexed [treadle][shaft]; a true cell means the shaft rises on
// that treadle and the warp thread shows.
//
// Complexity:
//
//   - IntersectionColor, Grid.At: O(1).
//   - Grid.Row: O(width) into a caller buffer, so a full image can be
//     streamed one row at a time.
//
// Errors:
//
//   - ErrStructural (wrapped in *StructuralError): out-of-range shaft or
//     treadle index, empty axis, ragged tie-up, empty thread sequence.
//   - ErrUnknownWeave: Lookup of an id outside the catalog.
//
// Calling IntersectionColor with empty thread sequences is a programmer
// error and panics with a *StructuralError; use NewGrid to validate once.
package weave
