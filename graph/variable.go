package graph

import (
	"fmt"
	"log/slog"
)

// Variable is a named mutable leaf node whose value is supplied externally
// through Set. Reading a variable before any Set fails with
// ErrUnsetVariable rather than yielding a default value.
type Variable struct {
	name   string
	memo   memoCell
	dirty  bool
	logger *slog.Logger
}

// NewVariable creates an unset Variable. A fresh variable is dirty until the
// owning evaluation context clears it after a full pass.
func NewVariable(name string, opts ...Option) *Variable {
	logger := newSettings(opts).logger("Variable")
	logger.Debug("variable created", "name", name)

	return &Variable{
		name:   name,
		dirty:  true,
		logger: logger,
	}
}

func (v *Variable) String() string {
	return fmt.Sprintf("graph.Variable(%s)", v.name)
}

// Name returns the variable's registry name.
func (v *Variable) Name() string {
	return v.name
}

// Set stores a new value and marks the variable dirty, so every dependent
// node recomputes on the next evaluation pass.
func (v *Variable) Set(value float64) {
	v.memo.ok = true
	v.memo.value = value
	v.dirty = true
}

// MarkClean clears the dirty flag without altering the stored value. It is
// intended to be called by the evaluation context after a full pass, not by
// clients; calling it early makes dependents trust a value the pass never
// resolved.
func (v *Variable) MarkClean() {
	v.dirty = false
}

// Value returns the stored value, or ErrUnsetVariable before any Set.
func (v *Variable) Value() (float64, error) {
	return v.memo.resolve(v.Dirty(), v.eval, v.logger)
}

// Dirty reports whether Set has been called since the last MarkClean.
func (v *Variable) Dirty() bool {
	return v.dirty
}

func (v *Variable) eval() (float64, error) {
	if !v.memo.ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsetVariable, v.name)
	}
	return v.memo.value, nil
}
