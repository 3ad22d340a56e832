package sett

import (
	"strconv"
	"strings"
)

// New builds a Sett from a copy of stripes.
// Returns a *NotationError when the list is empty (KindEmpty), a count is
// ≤ 0 (KindBadCount) or a colour code is empty / not purely alphabetic
// (KindMissingColor). The first failing stripe wins.
// Complexity: O(n).
func New(stripes []ThreadStripe) (Sett, error) {
	if len(stripes) == 0 {
		return Sett{}, &NotationError{Kind: KindEmpty, Index: -1}
	}
	cp := make([]ThreadStripe, len(stripes))
	total := 0
	for i, st := range stripes {
		if !isColorCode(st.Color) {
			return Sett{}, &NotationError{Kind: KindMissingColor, Token: formatStripe(st), Index: i}
		}
		if st.Count <= 0 {
			return Sett{}, &NotationError{Kind: KindBadCount, Token: formatStripe(st), Index: i}
		}
		cp[i] = st
		total += st.Count
	}

	return Sett{stripes: cp, total: total}, nil
}

// MustNew is New for literals in tests and fixtures; it panics on error.
func MustNew(stripes []ThreadStripe) Sett {
	s, err := New(stripes)
	if err != nil {
		panic(err)
	}
	return s
}

// WithName returns a copy of s carrying the given display name.
func (s Sett) WithName(name string) Sett {
	s.name = name
	return s
}

// Name returns the optional display name.
func (s Sett) Name() string { return s.name }

// Len returns the number of stripes.
func (s Sett) Len() int { return len(s.stripes) }

// IsEmpty reports whether s is the zero Sett.
func (s Sett) IsEmpty() bool { return len(s.stripes) == 0 }

// Stripe returns the i-th stripe. Panics if i is out of range, like a slice.
func (s Sett) Stripe(i int) ThreadStripe { return s.stripes[i] }

// Stripes returns a copy of the stripe list.
func (s Sett) Stripes() []ThreadStripe {
	out := make([]ThreadStripe, len(s.stripes))
	copy(out, s.stripes)
	return out
}

// TotalThreads is the sum of all stripe counts.
func (s Sett) TotalThreads() int { return s.total }

// Colors returns the distinct colour codes in order of first appearance.
func (s Sett) Colors() []string {
	seen := make(map[string]struct{}, len(s.stripes))
	out := make([]string, 0, len(s.stripes))
	for _, st := range s.stripes {
		if _, ok := seen[st.Color]; ok {
			continue
		}
		seen[st.Color] = struct{}{}
		out = append(out, st.Color)
	}
	return out
}

// Threadcount returns the canonical notation of s (see Serialize).
func (s Sett) Threadcount() string { return Serialize(s) }

// String implements fmt.Stringer with the canonical threadcount.
func (s Sett) String() string { return Serialize(s) }

// IsSymmetric reports whether s mirrors: at least two stripes with pivots
// on the first and the last one.
func (s Sett) IsSymmetric() bool {
	n := len(s.stripes)
	return n >= 2 && s.stripes[0].Pivot && s.stripes[n-1].Pivot
}

// Equal reports structural equality of the stripe lists. Names are ignored.
func (s Sett) Equal(o Sett) bool {
	if len(s.stripes) != len(o.stripes) {
		return false
	}
	for i := range s.stripes {
		if s.stripes[i] != o.stripes[i] {
			return false
		}
	}
	return true
}

// AdjacentRepeats returns the indices i (≥1) where stripe i has the same
// colour as stripe i-1. The notation accepts such setts; generators reject them.
func AdjacentRepeats(s Sett) []int {
	var out []int
	for i := 1; i < len(s.stripes); i++ {
		if s.stripes[i].Color == s.stripes[i-1].Color {
			out = append(out, i)
		}
	}
	return out
}

// isColorCode reports whether code is a non-empty run of ASCII letters.
func isColorCode(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !isLetter(code[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// formatStripe renders one stripe in canonical token form.
func formatStripe(st ThreadStripe) string {
	var b strings.Builder
	writeStripe(&b, st)
	return b.String()
}

func writeStripe(b *strings.Builder, st ThreadStripe) {
	b.WriteString(st.Color)
	if st.Pivot {
		b.WriteByte('/')
	}
	b.WriteString(strconv.Itoa(st.Count))
}
