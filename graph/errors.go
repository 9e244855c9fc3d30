package graph

import "errors"

var (
	// ErrUnsetVariable is returned when a variable's value is read before
	// any call to Set.
	ErrUnsetVariable = errors.New("variable value not set")
)
