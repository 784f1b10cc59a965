package collections

import "errors"

// Sentinel errors reported by the toolkit.
var (
	// ErrInvalidArgument is returned by [FromValue] for values that are
	// neither a sequence nor a string-keyed mapping, and is the panic value
	// (wrapped) when an operation receives a nil Collection.
	ErrInvalidArgument = errors.New("collections: invalid argument")
)
