package sett

// Expand flattens s into one full repeat.
//
// Asymmetric setts emit each stripe's colour Count times in order.
// Symmetric setts (IsSymmetric) emit P0, the interior forwards, P(n-1) and
// the interior backwards; each pivot is counted once at its axis, so
//
//	Length = TotalThreads + Σ interior counts.
//
// Returns ErrEmptySett for the zero Sett.
// Complexity: O(Length) time and memory.
func Expand(s Sett) (ExpandedSett, error) {
	if s.IsEmpty() {
		return ExpandedSett{}, ErrEmptySett
	}

	n := len(s.stripes)
	size := s.total
	if s.IsSymmetric() {
		size += s.total - s.stripes[0].Count - s.stripes[n-1].Count
	}

	threads := make([]string, 0, size)
	emit := func(st ThreadStripe) {
		for k := 0; k < st.Count; k++ {
			threads = append(threads, st.Color)
		}
	}

	for _, st := range s.stripes {
		emit(st)
	}
	if s.IsSymmetric() {
		for i := n - 2; i >= 1; i-- {
			emit(s.stripes[i])
		}
	}

	return ExpandedSett{Threads: threads, Length: len(threads)}, nil
}

// MustExpand is Expand for callers that already hold a non-empty Sett.
func MustExpand(s Sett) ExpandedSett {
	e, err := Expand(s)
	if err != nil {
		panic(err)
	}
	return e
}

// At returns the colour of thread i, wrapping modulo Length.
// Panics on an empty expansion.
func (e ExpandedSett) At(i int) string {
	i %= e.Length
	if i < 0 {
		i += e.Length
	}
	return e.Threads[i]
}

// ColorCounts returns the number of threads of each colour in the repeat.
func (e ExpandedSett) ColorCounts() map[string]int {
	out := make(map[string]int)
	for _, c := range e.Threads {
		out[c]++
	}
	return out
}

// Colors returns the distinct colours in order of first appearance.
func (e ExpandedSett) Colors() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range e.Threads {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
