// Package evalgraph computes scalar values for named formulas built from
// constants, mutable variables, and unary/binary operators composed into a
// directed acyclic dependency graph. Per-node memoization avoids redundant
// recomputation across evaluation passes.
//
// Build leaf and operator nodes with the helpers below (or directly with the
// graph package), name the roots as expressions, and register everything
// with an engine.Context:
//
//	ctx, _ := evalgraph.NewContext()
//	x := evalgraph.Var("x")
//	ctx.AddVariable("x", x)
//	ctx.AddExpression("double", evalgraph.Expr("double",
//		evalgraph.Binary(x, evalgraph.Const(2), graph.Mul)))
//	ctx.SetVariable("x", 5)
//	result, err := ctx.Calc("double") // 10
package evalgraph

import (
	"github.com/robbyt/go-evalgraph/engine"
	"github.com/robbyt/go-evalgraph/graph"
)

// NewContext creates an evaluation context. See engine.NewContext for the
// available options.
func NewContext(opts ...engine.Option) (*engine.Context, error) {
	return engine.NewContext(opts...)
}

// Const builds an immutable leaf node from any numeric value.
func Const[T graph.Number](value T) *graph.Constant {
	return graph.NewConstant(value)
}

// Var builds an unset variable leaf. Reading it before Set (or the context's
// SetVariable) fails with graph.ErrUnsetVariable.
func Var(name string) *graph.Variable {
	return graph.NewVariable(name)
}

// Unary builds an operator node applying fn to child's value.
func Unary(child graph.Node, fn graph.UnaryFunc) *graph.UnaryOp {
	return graph.NewUnaryOp(child, fn)
}

// Binary builds an operator node applying fn to (left, right) values.
func Binary(left, right graph.Node, fn graph.BinaryFunc) *graph.BinaryOp {
	return graph.NewBinaryOp(left, right, fn)
}

// Expr names a root node for registration with a context.
func Expr(name string, root graph.Node) *graph.Expression {
	return graph.NewExpression(name, root)
}
