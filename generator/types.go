package generator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tartan/sett"
)

// Range is an inclusive integer interval. Valid when 1 ≤ Min ≤ Max.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports Min ≤ v ≤ Max.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

func (r Range) String() string { return fmt.Sprintf("[%d,%d]", r.Min, r.Max) }

// Symmetry selects mirrored (pivoted) or flat setts.
type Symmetry int

const (
	// Symmetric setts carry pivots on the first and last stripe.
	Symmetric Symmetry = iota
	// Asymmetric setts repeat as written.
	Asymmetric
	// Either flips a seeded coin once per sett.
	Either
)

func (s Symmetry) String() string {
	switch s {
	case Symmetric:
		return "symmetric"
	case Asymmetric:
		return "asymmetric"
	case Either:
		return "either"
	default:
		return fmt.Sprintf("symmetry(%d)", int(s))
	}
}

// ParseSymmetry maps "symmetric", "asymmetric" or "either".
func ParseSymmetry(s string) (Symmetry, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "symmetric", "sym":
		return Symmetric, nil
	case "asymmetric", "asym":
		return Asymmetric, nil
	case "either", "any", "":
		return Either, nil
	}
	return 0, fmt.Errorf("generator: symmetry %q: %w", s, ErrConstraint)
}

// Constraints bound what GenerateOne may produce.
// An empty AllowedColors means "every colour of the palette".
type Constraints struct {
	ColorCount      Range
	StripeCount     Range
	ThreadPerStripe Range
	TotalThreads    Range
	Symmetry        Symmetry
	AllowedColors   []string
}

// DefaultConstraints returns a balanced, symmetric starting point.
func DefaultConstraints() Constraints {
	return Constraints{
		ColorCount:      Range{Min: 3, Max: 6},
		StripeCount:     Range{Min: 4, Max: 10},
		ThreadPerStripe: Range{Min: 2, Max: 48},
		TotalThreads:    Range{Min: 60, Max: 240},
		Symmetry:        Symmetric,
	}
}

// Signature fingerprints a sett for deduplication only.
type Signature struct {
	Full       string
	Structure  string
	Proportion string
}

// Result is one generated sett with its provenance.
//
// Degraded is true when a bounded retry loop ran out and a best-effort
// value was accepted (a colour redraw in GenerateOne, a duplicate-structure
// slot in GenerateBatch, an adjacency repair in Breed).
type Result struct {
	Sett        sett.Sett
	Seed        int64
	Constraints Constraints
	Signature   Signature
	Degraded    bool
	Attempts    int    // draws spent on this slot (batch), 1 otherwise
	Strategy    string // "generate", "mutate", or a Breed strategy name
}
