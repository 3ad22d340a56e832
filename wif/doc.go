// Package wif writes and reads loom drafts in the Weaving Information File
// (WIF 1.1) format: sectioned KEY=VALUE text that loom and drafting
// software import directly.
//
// What:
//
//   - GenerateDraft: Sett + weave.Pattern + Metadata → Draft{Content, Filename}.
//   - ParseDraft: the reverse, for drafts written by this package or any
//     WIF producer that fills the standard sections.
//
// Encoded sections:
//
//	[WIF] [CONTENTS] [TEXT] [COLOR PALETTE] [WEAVING] [WARP] [WEFT]
//	[COLOR TABLE] [THREADING] [TIEUP] [TREADLING] [WARP COLORS] [WEFT COLORS]
//	[PRIVATE TARTAN]         threadcount, weave id, warp/weft repeat multipliers
//	[PRIVATE TARTAN COLORS]  colour-table index → colour code
//
// One warp and one weft repeat are written: the expanded sett, with shaft i
// = Threading[i mod len] and treadle j = Treadling[j mod len]. WIF indices
// are 1-based. The repeat multipliers tell the loom software how many times
// to repeat that unit.
//
// Round trip:
//
//	ParseDraft(GenerateDraft(s, p, m)) yields the same Sett and Pattern,
//	hence an identical weave.IntersectionColor rendering. This relies on
//	[PRIVATE TARTAN]; a draft without it is rebuilt from the raw sections
//	and renders the same only when Expand(s).Length is a multiple of the
//	pattern's threading and treadling lengths.
//
// Errors:
//
//   - ErrExportPrecondition: empty sett, invalid pattern, colour missing
//     from the palette, negative repeat multiplier. Nothing is written.
//   - ErrFormat: ParseDraft met a missing section or a malformed entry.
package wif
