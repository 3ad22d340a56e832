package palette

import "errors"

var (
	// ErrUnknownColor indicates a code that is neither built-in nor custom.
	ErrUnknownColor = errors.New("palette: unknown colour code")
	// ErrBadCode indicates a custom colour code that is empty or not alphabetic.
	ErrBadCode = errors.New("palette: colour code must be letters only")
	// ErrBadHex indicates a hex string that is not #RRGGBB / #RGB.
	ErrBadHex = errors.New("palette: invalid hex colour")
	// ErrDuplicateCode indicates a custom colour that shadows another entry.
	ErrDuplicateCode = errors.New("palette: duplicate colour code")
)
