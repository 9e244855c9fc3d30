package graph

import (
	"fmt"
	"log/slog"
)

// Expression is a named wrapper around the root node of a formula. Value and
// Dirty delegate to the inner node; the name exists only as a registry key
// for the evaluation context.
type Expression struct {
	name   string
	inner  Node
	memo   memoCell
	logger *slog.Logger
}

// NewExpression wraps root under name.
func NewExpression(name string, root Node, opts ...Option) *Expression {
	logger := newSettings(opts).logger("Expression")
	logger.Debug("expression created", "name", name)

	return &Expression{
		name:   name,
		inner:  root,
		logger: logger,
	}
}

func (e *Expression) String() string {
	return fmt.Sprintf("graph.Expression(%s)", e.name)
}

// Name returns the expression's registry name.
func (e *Expression) Name() string {
	return e.name
}

// Value returns the inner node's value, memoized while the inner node stays
// clean.
func (e *Expression) Value() (float64, error) {
	return e.memo.resolve(e.Dirty(), e.inner.Value, e.logger)
}

// Dirty reports whether the inner node is dirty.
func (e *Expression) Dirty() bool {
	return e.inner.Dirty()
}
