package tree

import "errors"

// Sentinel errors returned by Store operations. They indicate contract
// violations by the caller rather than expected runtime conditions: the
// controller only ever issues well-formed requests, so callers should
// treat these as bugs and log them instead of recovering silently.
var (
	// ErrNodeNotFound is returned when an operation references a node id
	// that is absent from the store.
	ErrNodeNotFound = errors.New("node not found")

	// ErrInvalidOperation is returned for structurally disallowed
	// actions, such as deleting or reordering the root node.
	ErrInvalidOperation = errors.New("invalid operation")
)
