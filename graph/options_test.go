package graph

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithLogHandler_TraceOutput tests that construction and cache-hit
// notices reach an injected handler
func TestWithLogHandler_TraceOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	c := NewConstant(3, WithLogHandler(handler))
	assert.Contains(t, buf.String(), "constant created")

	_, err := c.Value()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "using cached value")
}

// TestWithLogHandler_NilKeepsTracingOff tests that a nil handler is ignored
func TestWithLogHandler_NilKeepsTracingOff(t *testing.T) {
	t.Parallel()

	v := NewVariable("x", WithLogHandler(nil))
	v.Set(1)

	val, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, 1.0, val)
}

// TestTracing_NotRequiredForCorrectness tests the default (discard) path
func TestTracing_NotRequiredForCorrectness(t *testing.T) {
	t.Parallel()

	b := NewBinaryOp(NewConstant(2), NewConstant(3), Mul)

	v, err := b.Value()
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}
