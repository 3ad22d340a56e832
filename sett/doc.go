// Package sett models a tartan sett: the ordered list of coloured thread
// stripes that repeats across the cloth, its textual threadcount notation
// and its expansion into one full physical repeat.
//
// What:
//
//   - ThreadStripe: one colour code + thread count (+ pivot mark).
//   - Sett: immutable stripe sequence with derived colours, total and
//     canonical threadcount.
//   - Parse / Serialize: the threadcount notation ("B/24 W4 B24 R2 K24 G24 W/2").
//   - Expand: flattens a Sett into an ExpandedSett (one colour per thread).
//
// Notation:
//
//	token   = code ["/"] count ["/"]
//	code    = letter { letter }
//	count   = digit { digit }        (> 0)
//
// A slash on either side of the count marks a pivot. Tokens are separated
// by whitespace; commas are tolerated. The parser is permissive about
// adjacent stripes of the same colour: AdjacentRepeats reports them and
// the generator treats them as a constraint violation.
//
// Expansion rule (pivots):
//
//	A sett with pivots on its first and last stripe is symmetric. One full
//	repeat is P0, s1..s(n-2), P(n-1), s(n-2)..s1: each pivot contributes its
//	count exactly once at its axis, interior stripes appear twice. Any other
//	sett (including a single stripe) is flattened as written.
//
// Complexity:
//
//   - Parse, Serialize, New: O(T) where T is the notation length / stripe count.
//   - Expand: O(L) time and memory, L = length of the repeat.
//
// Errors:
//
//   - *NotationError with Kind KindEmpty, KindBadCount or KindMissingColor;
//     matches ErrNotation and the per-kind sentinel via errors.Is.
//   - ErrEmptySett: a zero-value Sett was passed to Expand.
package sett
