// Package graph provides the node hierarchy for memoized scalar formula
// graphs: constant and variable leaves, unary and binary operator nodes, and
// named expressions wrapping a root node.
//
// Nodes may be shared between parents, so a formula forms a directed acyclic
// graph rather than a strict tree. Memoization is per node: once a node has
// resolved within an evaluation pass, parents that reach it later in the
// pass reuse the cached value instead of recomputing.
package graph

import "log/slog"

// Node is a single memoizable scalar computation in an expression graph.
type Node interface {
	// Value returns the node's current scalar result. When the memo slot
	// holds a value and the node is not dirty, the memoized value is
	// returned without recomputation; otherwise the node recomputes,
	// stores the result, and returns it.
	Value() (float64, error)

	// Dirty reports whether the memoized value is stale and must be
	// recomputed before being trusted.
	Dirty() bool
}

// memoCell is the cache slot shared by every node kind. The ok flag tracks
// "holds a value" separately from the value itself, so a legitimately
// NaN-valued result is cached like any other.
type memoCell struct {
	ok    bool
	value float64
}

// resolve implements the caching contract common to all nodes: return the
// memoized value when present and clean, otherwise recompute via eval and
// store the result. Recompute errors leave the memo slot untouched.
func (m *memoCell) resolve(dirty bool, eval func() (float64, error), logger *slog.Logger) (float64, error) {
	if m.ok && !dirty {
		logger.Debug("using cached value", "value", m.value)
		return m.value, nil
	}

	v, err := eval()
	if err != nil {
		return 0, err
	}
	m.ok = true
	m.value = v
	return v, nil
}
