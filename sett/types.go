package sett

// ThreadStripe is one band of identically coloured threads.
// Color is a short alphabetic code resolved to RGB by the palette package.
type ThreadStripe struct {
	Color string // colour code, e.g. "B", "DG"
	Count int    // number of threads, > 0
	Pivot bool   // mirror axis of a symmetric sett
}

// Sett is an immutable, ordered stripe sequence. The zero value is an
// empty sett that most operations reject with ErrEmptySett.
// Edits go through constructors that return a new Sett.
type Sett struct {
	stripes []ThreadStripe
	name    string
	total   int
}

// ExpandedSett is one full physical repeat: the colour of every thread in
// order. It is derived from a Sett and never stored on its own.
type ExpandedSett struct {
	Threads []string
	Length  int
}
