package weave

// Grid binds warp and weft sequences to a validated pattern so the
// intersection rule can run in tight loops without re-checking inputs.
// Warp and weft are usually the same expanded sett; independent sequences
// are allowed.
type Grid struct {
	warp    []string
	weft    []string
	pattern Pattern
}

// NewGrid validates p and the thread sequences once.
// Returns a *StructuralError for an invalid pattern or empty sequence.
func NewGrid(warp, weft []string, p Pattern) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(warp) == 0 {
		return nil, &StructuralError{Weave: p.ID, Reason: "empty warp", Index: -1}
	}
	if len(weft) == 0 {
		return nil, &StructuralError{Weave: p.ID, Reason: "empty weft", Index: -1}
	}
	return &Grid{
		warp:    append([]string(nil), warp...),
		weft:    append([]string(nil), weft...),
		pattern: p.clone(),
	}, nil
}

// Pattern returns a copy of the bound pattern.
func (g *Grid) Pattern() Pattern { return g.pattern.clone() }

// WarpLen is the length of the warp repeat.
func (g *Grid) WarpLen() int { return len(g.warp) }

// WeftLen is the length of the weft repeat.
func (g *Grid) WeftLen() int { return len(g.weft) }

// RepeatWidth is the smallest width after which both the colour sequence
// and the threading repeat: lcm(len(warp), len(threading)).
func (g *Grid) RepeatWidth() int { return lcm(len(g.warp), len(g.pattern.Threading)) }

// RepeatHeight is lcm(len(weft), len(treadling)).
func (g *Grid) RepeatHeight() int { return lcm(len(g.weft), len(g.pattern.Treadling)) }

// At is IntersectionColor for the bound sequences. x, y ≥ 0.
func (g *Grid) At(x, y int) string {
	if g.pattern.IsWarpOnTop(x, y) {
		return g.warp[x%len(g.warp)]
	}
	return g.weft[y%len(g.weft)]
}

// Row fills dst with the colours of row y, columns 0..len(dst)-1, and
// returns dst. The buffer is reused by streaming renderers.
// Complexity: O(len(dst)).
func (g *Grid) Row(y int, dst []string) []string {
	for x := range dst {
		dst[x] = g.At(x, y)
	}
	return dst
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
