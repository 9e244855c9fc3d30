package graph

import (
	"fmt"
	"log/slog"
)

// Number covers the numeric types a Constant can be built from. Values are
// normalized to float64 at construction.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Constant is an immutable leaf node. Its memo slot is fixed at construction
// and it is never dirty, so every Value call after the first is a cache hit.
type Constant struct {
	memo   memoCell
	logger *slog.Logger
}

// NewConstant creates a Constant from any numeric value.
func NewConstant[T Number](value T, opts ...Option) *Constant {
	logger := newSettings(opts).logger("Constant")
	logger.Debug("constant created", "value", float64(value))

	return &Constant{
		memo:   memoCell{ok: true, value: float64(value)},
		logger: logger,
	}
}

func (c *Constant) String() string {
	return fmt.Sprintf("graph.Constant(%v)", c.memo.value)
}

// Value returns the fixed value.
func (c *Constant) Value() (float64, error) {
	return c.memo.resolve(c.Dirty(), c.eval, c.logger)
}

// Dirty always reports false.
func (c *Constant) Dirty() bool {
	return false
}

func (c *Constant) eval() (float64, error) {
	return c.memo.value, nil
}
