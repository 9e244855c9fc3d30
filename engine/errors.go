package engine

import "errors"

var (
	// ErrUnknownExpression is returned by Calc when the requested name is
	// absent from the expression registry.
	ErrUnknownExpression = errors.New("expression not registered")
)
