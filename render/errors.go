package render

import "errors"

// ErrBadSize indicates a negative or oversized render request.
var ErrBadSize = errors.New("render: bad size")
