package generator

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/tartan/sett"
)

// Sign computes the deduplication fingerprint of s.
func Sign(s sett.Sett) Signature {
	return Signature{
		Full:       s.Threadcount(),
		Structure:  relabel(s, func(st sett.ThreadStripe) int { return st.Count }),
		Proportion: relabel(s, func(st sett.ThreadStripe) int { return perMille(st.Count, s.TotalThreads()) }),
	}
}

// relabel renders s with colours renamed a, b, c… by first appearance.
func relabel(s sett.Sett, count func(sett.ThreadStripe) int) string {
	labels := make(map[string]string)
	var b strings.Builder
	for i := 0; i < s.Len(); i++ {
		st := s.Stripe(i)
		l, ok := labels[st.Color]
		if !ok {
			l = label(len(labels))
			labels[st.Color] = l
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l)
		if st.Pivot {
			b.WriteByte('/')
		}
		b.WriteString(strconv.Itoa(count(st)))
	}
	return b.String()
}

// label maps 0→"a" … 25→"z", 26→"ba" (base 26, letters only).
func label(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return label(i/26) + string(rune('a'+i%26))
}

func perMille(count, total int) int {
	if total == 0 {
		return 0
	}
	return (count*1000 + total/2) / total
}
