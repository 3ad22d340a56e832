// SPDX-License-Identifier: MIT
// Package: tartan/weave
//
// errors.go - sentinel errors and StructuralError.

package weave

import (
	"errors"
	"fmt"
)

// ErrStructural marks an inconsistency between a pattern and its indices,
// or an empty thread sequence. It indicates a bug, not bad user input.
var ErrStructural = errors.New("weave: structural error")

// ErrUnknownWeave indicates a weave id outside the fixed catalog.
var ErrUnknownWeave = errors.New("weave: unknown weave")

// StructuralError carries the failing check and offending position.
type StructuralError struct {
	Weave  string // pattern id, may be empty
	Reason string
	Index  int // position in the offending vector, -1 if n/a
}

func (e *StructuralError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("weave: %s: %s at %d", e.Weave, e.Reason, e.Index)
	}
	return fmt.Sprintf("weave: %s: %s", e.Weave, e.Reason)
}

// Unwrap exposes ErrStructural.
func (e *StructuralError) Unwrap() error { return ErrStructural }
