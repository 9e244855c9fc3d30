// Package engine provides the evaluation context that owns named expression
// and variable registries and orchestrates full-graph evaluation passes over
// a memoized node DAG.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/robbyt/go-evalgraph/graph"
	"github.com/robbyt/go-evalgraph/internal/helpers"
)

// Context owns two registries (expression name to node, variable name to
// node) and the ordered sequence of registered expressions.
//
// Expressions are evaluated in registration order, once per pass. That
// single ordered sequence is what guarantees a node shared across several
// expressions resolves consistently within a pass; it is an invariant of
// Calc, not an accident of recursion.
//
// A Context is not safe for concurrent use. Callers needing concurrency
// must serialize all mutation and all Calc calls externally, since the
// per-node memo slots are not safe for concurrent mutation.
type Context struct {
	expressions map[string]*graph.Expression
	variables   map[string]*graph.Variable

	// order holds the registered expressions in registration order;
	// orderIdx maps a name to its slot so re-registering a name replaces
	// the slot in place instead of appending a duplicate.
	order    []*graph.Expression
	orderIdx map[string]int

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewContext creates an empty evaluation context with the provided options.
func NewContext(opts ...Option) (*Context, error) {
	c := &Context{
		expressions: make(map[string]*graph.Expression),
		variables:   make(map[string]*graph.Variable),
		orderIdx:    make(map[string]int),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying context option: %w", err)
		}
	}

	// Set up logging based on provided options
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "engine")
	}

	return c, nil
}

func (c *Context) String() string {
	return "engine.Context"
}

// IsKnownExpression reports whether an expression is registered under name.
func (c *Context) IsKnownExpression(name string) bool {
	_, ok := c.expressions[name]
	return ok
}

// IsKnownVariable reports whether a variable is registered under name.
func (c *Context) IsKnownVariable(name string) bool {
	_, ok := c.variables[name]
	return ok
}

// GetExpression returns the expression registered under name. The boolean is
// false when the name is unknown; no error is raised for unknown names.
func (c *Context) GetExpression(name string) (*graph.Expression, bool) {
	expr, ok := c.expressions[name]
	return expr, ok
}

// GetVariable returns the variable registered under name. The boolean is
// false when the name is unknown.
func (c *Context) GetVariable(name string) (*graph.Variable, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// AddExpression registers expr under name and appends it to the evaluation
// order. Re-registering an existing name overwrites the registry entry and
// replaces the original ordering slot in place, so any given name is
// evaluated at most once per pass.
func (c *Context) AddExpression(name string, expr *graph.Expression) {
	c.expressions[name] = expr

	if idx, ok := c.orderIdx[name]; ok {
		c.order[idx] = expr
		return
	}
	c.orderIdx[name] = len(c.order)
	c.order = append(c.order, expr)
}

// AddVariable registers v under name, overwriting any previous entry.
// Variables are always leaves, so no ordering slot is needed.
func (c *Context) AddVariable(name string, v *graph.Variable) {
	c.variables[name] = v
}

// SetVariable forwards value to the named variable's Set. Unknown names are
// silently ignored; the permissiveness is part of the contract, not an
// oversight.
func (c *Context) SetVariable(name string, value float64) {
	if v, ok := c.variables[name]; ok {
		v.Set(value)
	}
}

// ExpressionNames returns the registered expression names in evaluation
// order.
func (c *Context) ExpressionNames() []string {
	names := make([]string, len(c.order))
	for i, expr := range c.order {
		names[i] = expr.Name()
	}
	return names
}

// Calc runs one full evaluation pass and returns the named expression's
// value.
//
// The pass is strictly two-phase. First every registered expression is
// evaluated in registration order, forcing the entire graph to resolve and
// memoize. Then every registered variable is marked clean, so later passes
// reuse memoized values until the next Set. Only after the pass does Calc
// look up the requested name, returning ErrUnknownExpression when it is
// absent; the final read of the named expression is a cache hit.
//
// Evaluating everything to answer for one name trades extra work for a
// uniform recompute/clear cycle and for consistent resolution of shared
// subexpressions within a pass.
func (c *Context) Calc(name string) (float64, error) {
	logger := c.logger.WithGroup("Calc").With("passID", uuid.NewString())

	for _, expr := range c.order {
		v, err := expr.Value()
		if err != nil {
			return 0, fmt.Errorf("evaluating expression %q: %w", expr.Name(), err)
		}
		logger.Debug("expression evaluated", "name", expr.Name(), "value", v)
	}

	for _, v := range c.variables {
		v.MarkClean()
	}
	logger.Debug("variables marked clean", "count", len(c.variables))

	expr, ok := c.expressions[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownExpression, name)
	}
	return expr.Value()
}
