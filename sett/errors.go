// SPDX-License-Identifier: MIT
// Package: tartan/sett
//
// errors.go - sentinel errors and the typed NotationError.
//
// Error policy:
//   • Callers branch with errors.Is; never on message text.
//   • Parse/New failures are *NotationError so the kind and the offending
//     token survive; the error also matches ErrNotation and its kind sentinel.

package sett

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotation matches every *NotationError regardless of kind.
var ErrNotation = errors.New("sett: invalid threadcount notation")

// ErrEmptyNotation indicates that the input held no stripe tokens at all.
var ErrEmptyNotation = errors.New("sett: empty threadcount")

// ErrBadCount indicates a thread count that is missing, not an integer, or ≤ 0.
var ErrBadCount = errors.New("sett: thread count must be a positive integer")

// ErrMissingColor indicates a token without an alphabetic colour-code prefix.
var ErrMissingColor = errors.New("sett: token has no colour code")

// ErrMalformed indicates a well-formed count followed by trailing junk.
var ErrMalformed = errors.New("sett: trailing characters after thread count")

// ErrEmptySett indicates a zero-value Sett reached an operation that needs stripes.
var ErrEmptySett = errors.New("sett: sett has no stripes")

// NotationKind classifies a NotationError.
type NotationKind int

const (
	// KindEmpty: no tokens.
	KindEmpty NotationKind = iota + 1
	// KindBadCount: non-integer or non-positive count.
	KindBadCount
	// KindMissingColor: no alphabetic prefix.
	KindMissingColor
	// KindMalformed: trailing characters after the count ("B12x").
	KindMalformed
)

// String returns a short lowercase label for the kind.
func (k NotationKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBadCount:
		return "bad-count"
	case KindMissingColor:
		return "missing-color"
	case KindMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k NotationKind) sentinel() error {
	switch k {
	case KindEmpty:
		return ErrEmptyNotation
	case KindBadCount:
		return ErrBadCount
	case KindMissingColor:
		return ErrMissingColor
	case KindMalformed:
		return ErrMalformed
	default:
		return nil
	}
}

// NotationError reports a malformed threadcount or stripe list.
// Index is the zero-based token (or stripe) position, -1 when not applicable.
type NotationError struct {
	Kind  NotationKind
	Token string
	Index int
}

func (e *NotationError) Error() string {
	msg := "invalid threadcount notation"
	if base := e.Kind.sentinel(); base != nil {
		msg = strings.TrimPrefix(base.Error(), "sett: ")
	}
	if e.Index < 0 {
		return "sett: " + msg
	}
	return fmt.Sprintf("sett: token %d %q: %s", e.Index, e.Token, msg)
}

// Unwrap exposes the per-kind sentinel.
func (e *NotationError) Unwrap() error { return e.Kind.sentinel() }

// Is lets errors.Is(err, ErrNotation) match any kind.
func (e *NotationError) Is(target error) bool { return target == ErrNotation }
