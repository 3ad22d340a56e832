// SPDX-License-Identifier: MIT
// Package: tartan/generator
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   • Every validation failure matches ErrConstraint via errors.Is, plus one
//     narrower sentinel naming the failed check.
//   • Context (method, field, values) is attached with %w at the call site.
//   • Generators never panic at runtime; option constructors panic on
//     meaningless values (WithLogger(nil), WithMaxBatchAttempts(0)).

package generator

import (
	"errors"
	"fmt"
)

// ErrConstraint is the parent of every constraint validation failure.
var ErrConstraint = errors.New("generator: invalid constraints")

var (
	// ErrBadRange: a range has Min < 1 or Min > Max.
	ErrBadRange = fmt.Errorf("%w: bad range", ErrConstraint)
	// ErrNoColors: no allowed colours even after the palette fallback.
	ErrNoColors = fmt.Errorf("%w: no colours available", ErrConstraint)
	// ErrUnknownColor: an allowed colour is not in the palette.
	ErrUnknownColor = fmt.Errorf("%w: unknown colour", ErrConstraint)
	// ErrInfeasible: no stripe count can satisfy the ranges together.
	ErrInfeasible = fmt.Errorf("%w: ranges cannot be satisfied together", ErrConstraint)
	// ErrBadCount: a requested batch/variant size is negative.
	ErrBadCount = fmt.Errorf("%w: negative result count", ErrConstraint)
)

// Method tags used as error prefixes.
const (
	methodGenerate = "GenerateOne"
	methodBatch    = "GenerateBatch"
	methodMutate   = "Mutate"
	methodBreed    = "Breed"
)
