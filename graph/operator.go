package graph

import "log/slog"

// UnaryFunc is a pure one-argument scalar function applied by a UnaryOp.
type UnaryFunc func(float64) float64

// BinaryFunc is a pure two-argument scalar function applied by a BinaryOp.
type BinaryFunc func(float64, float64) float64

// UnaryOp applies a UnaryFunc to the value of its child node. It carries no
// dirty state of its own; it is dirty exactly when its child is.
type UnaryOp struct {
	child  Node
	fn     UnaryFunc
	memo   memoCell
	logger *slog.Logger
}

// NewUnaryOp creates an operator node over child. The child may be shared
// with other parents.
func NewUnaryOp(child Node, fn UnaryFunc, opts ...Option) *UnaryOp {
	logger := newSettings(opts).logger("UnaryOp")
	logger.Debug("unary operator created")

	return &UnaryOp{
		child:  child,
		fn:     fn,
		logger: logger,
	}
}

func (u *UnaryOp) String() string {
	return "graph.UnaryOp"
}

// Value returns fn(child), memoized while the child stays clean.
func (u *UnaryOp) Value() (float64, error) {
	return u.memo.resolve(u.Dirty(), u.eval, u.logger)
}

// Dirty reports whether the child is dirty.
func (u *UnaryOp) Dirty() bool {
	return u.child.Dirty()
}

func (u *UnaryOp) eval() (float64, error) {
	v, err := u.child.Value()
	if err != nil {
		return 0, err
	}
	return u.fn(v), nil
}

// BinaryOp applies a BinaryFunc to the values of its left and right child
// nodes. It is dirty when either child is.
type BinaryOp struct {
	left   Node
	right  Node
	fn     BinaryFunc
	memo   memoCell
	logger *slog.Logger
}

// NewBinaryOp creates an operator node over (left, right). Children may be
// shared with other parents.
func NewBinaryOp(left, right Node, fn BinaryFunc, opts ...Option) *BinaryOp {
	logger := newSettings(opts).logger("BinaryOp")
	logger.Debug("binary operator created")

	return &BinaryOp{
		left:   left,
		right:  right,
		fn:     fn,
		logger: logger,
	}
}

func (b *BinaryOp) String() string {
	return "graph.BinaryOp"
}

// Value returns fn(left, right), memoized while both children stay clean.
func (b *BinaryOp) Value() (float64, error) {
	return b.memo.resolve(b.Dirty(), b.eval, b.logger)
}

// Dirty reports whether either child is dirty.
func (b *BinaryOp) Dirty() bool {
	return b.left.Dirty() || b.right.Dirty()
}

func (b *BinaryOp) eval() (float64, error) {
	l, err := b.left.Value()
	if err != nil {
		return 0, err
	}
	r, err := b.right.Value()
	if err != nil {
		return 0, err
	}
	return b.fn(l, r), nil
}
