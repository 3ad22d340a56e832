package weave

// Type identifies one entry of the fixed weave catalog.
type Type int

const (
	// Plain is 1/1 tabby.
	Plain Type = iota
	// Twill22 is the classic 2/2 tartan twill.
	Twill22
	// Twill31 is a warp-faced 3/1 twill.
	Twill31
	// Herringbone is 2/2 twill with a point-reversed draft.
	Herringbone
	// Houndstooth is 2/2 twill running on the opposite diagonal.
	Houndstooth
	// Basket is 2/2 basket (doubled tabby).
	Basket

	typeCount
)

// ids are the stable string identifiers, indexed by Type.
var ids = [typeCount]string{
	Plain:       "plain",
	Twill22:     "twill-2-2",
	Twill31:     "twill-3-1",
	Herringbone: "herringbone",
	Houndstooth: "houndstooth",
	Basket:      "basket",
}

// String returns the stable id of t.
func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "unknown"
	}
	return ids[t]
}

// Types lists the catalog in declaration order.
func Types() []Type {
	out := make([]Type, typeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Pattern is one weave structure. Values from the catalog are copies; a
// caller may build its own Pattern (e.g. when reading a draft) and check it
// with Validate.
type Pattern struct {
	ID        string
	Name      string
	TieUp     [][]bool // [treadle][shaft]
	Threading []int    // warp index → shaft
	Treadling []int    // weft index → treadle
}

// Shafts returns the number of shafts (tie-up columns).
func (p Pattern) Shafts() int {
	if len(p.TieUp) == 0 {
		return 0
	}
	return len(p.TieUp[0])
}

// Treadles returns the number of treadles (tie-up rows).
func (p Pattern) Treadles() int { return len(p.TieUp) }

// Twill reports whether the pattern belongs to the twill family
// (anything on four or more shafts in this catalog).
func (p Pattern) Twill() bool { return p.Shafts() >= 4 }
