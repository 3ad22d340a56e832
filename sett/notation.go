// SPDX-License-Identifier: MIT
// Package: tartan/sett
//
// notation.go - threadcount parser and canonical serializer.
//
// Contract:
//   • Parse is permissive: adjacent same-colour stripes and interior pivots
//     are accepted as written.
//   • Serialize emits CODE/COUNT for pivots and CODECOUNT otherwise,
//     separated by single spaces; Parse(Serialize(s)) equals s.

package sett

import (
	"strconv"
	"strings"
)

// Parse reads a threadcount into a Sett.
// Errors (all *NotationError):
//   - KindEmpty:        no tokens after splitting.
//   - KindMissingColor: a token does not start with a letter.
//   - KindBadCount:     missing, non-integer or non-positive count.
//   - KindMalformed:    a valid count followed by other characters.
//
// Complexity: O(len(text)).
func Parse(text string) (Sett, error) {
	tokens := strings.FieldsFunc(text, isSeparator)
	if len(tokens) == 0 {
		return Sett{}, &NotationError{Kind: KindEmpty, Index: -1}
	}

	stripes := make([]ThreadStripe, 0, len(tokens))
	for i, tok := range tokens {
		st, kind := parseToken(tok)
		if kind != 0 {
			return Sett{}, &NotationError{Kind: kind, Token: tok, Index: i}
		}
		stripes = append(stripes, st)
	}

	return New(stripes)
}

// ParseThreadcount is the lenient form of Parse: ok is false on any error.
func ParseThreadcount(text string) (Sett, bool) {
	s, err := Parse(text)
	return s, err == nil
}

// MustParse is Parse for literals; it panics on error.
func MustParse(text string) Sett {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Serialize returns the canonical threadcount of s; "" for the zero Sett.
func Serialize(s Sett) string {
	var b strings.Builder
	for i, st := range s.stripes {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeStripe(&b, st)
	}
	return b.String()
}

// parseToken splits CODE[/]COUNT[/]. A zero kind means success.
func parseToken(tok string) (ThreadStripe, NotationKind) {
	i := 0
	for i < len(tok) && isLetter(tok[i]) {
		i++
	}
	if i == 0 {
		return ThreadStripe{}, KindMissingColor
	}

	code, rest := tok[:i], tok[i:]
	pivot := false
	if strings.HasPrefix(rest, "/") {
		pivot, rest = true, rest[1:]
	}
	if strings.HasSuffix(rest, "/") {
		pivot, rest = true, rest[:len(rest)-1]
	}
	if rest == "" {
		return ThreadStripe{}, KindBadCount
	}
	// Digits only: Atoi alone would accept a leading sign.
	j := 0
	for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
		j++
	}
	switch {
	case j == 0 || (j < len(rest) && rest[j] == '.'):
		return ThreadStripe{}, KindBadCount
	case j < len(rest):
		return ThreadStripe{}, KindMalformed
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return ThreadStripe{}, KindBadCount
	}

	return ThreadStripe{Color: code, Count: n, Pivot: pivot}, 0
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
