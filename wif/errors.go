package wif

import "errors"

var (
	// ErrExportPrecondition marks an empty or inconsistent sett/weave pair.
	ErrExportPrecondition = errors.New("wif: export precondition failed")
	// ErrFormat marks a draft that cannot be read back.
	ErrFormat = errors.New("wif: malformed draft")
)
