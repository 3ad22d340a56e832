// SPDX-License-Identifier: MIT
// Package: tartan/weave
//
// intersection.go - validation and the per-crossing colour rule.

package weave

// Validate checks the pattern invariants:
//   - non-empty rectangular tie-up,
//   - non-empty threading and treadling,
//   - every threading value indexes a shaft, every treadling value a treadle.
//
// Returns a *StructuralError (matches ErrStructural).
// Complexity: O(shafts·treadles + len(threading) + len(treadling)).
func (p Pattern) Validate() error {
	if len(p.TieUp) == 0 || len(p.TieUp[0]) == 0 {
		return &StructuralError{Weave: p.ID, Reason: "empty tie-up", Index: -1}
	}
	shafts := len(p.TieUp[0])
	for t, row := range p.TieUp {
		if len(row) != shafts {
			return &StructuralError{Weave: p.ID, Reason: "ragged tie-up row", Index: t}
		}
	}
	if len(p.Threading) == 0 {
		return &StructuralError{Weave: p.ID, Reason: "empty threading", Index: -1}
	}
	if len(p.Treadling) == 0 {
		return &StructuralError{Weave: p.ID, Reason: "empty treadling", Index: -1}
	}
	for i, s := range p.Threading {
		if s < 0 || s >= shafts {
			return &StructuralError{Weave: p.ID, Reason: "threading shaft out of range", Index: i}
		}
	}
	for i, t := range p.Treadling {
		if t < 0 || t >= len(p.TieUp) {
			return &StructuralError{Weave: p.ID, Reason: "treadling treadle out of range", Index: i}
		}
	}
	return nil
}

// IsWarpOnTop reports whether the warp thread shows at crossing (x, y).
// x and y must be ≥ 0; p must be valid.
func (p Pattern) IsWarpOnTop(x, y int) bool {
	shaft := p.Threading[x%len(p.Threading)]
	treadle := p.Treadling[y%len(p.Treadling)]
	return p.TieUp[treadle][shaft]
}

// IntersectionColor returns the visible colour code at crossing (x, y).
//
//	warp on top → warpThreads[x mod len(warpThreads)]
//	otherwise   → weftThreads[y mod len(weftThreads)]
//
// Empty warpThreads or weftThreads panic with a *StructuralError: the
// caller must reject empty setts before rendering. p must be valid
// (catalog patterns always are; see Validate).
func IntersectionColor(warpThreads, weftThreads []string, p Pattern, x, y int) string {
	if len(warpThreads) == 0 || len(weftThreads) == 0 {
		panic(&StructuralError{Weave: p.ID, Reason: "empty thread sequence", Index: -1})
	}
	if p.IsWarpOnTop(x, y) {
		return warpThreads[x%len(warpThreads)]
	}
	return weftThreads[y%len(weftThreads)]
}
