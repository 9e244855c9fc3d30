package helpers

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetupLogger tests handler defaulting and component grouping
func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("nil handler discards", func(t *testing.T) {
		handler, logger := SetupLogger(nil, "engine")
		require.NotNil(t, handler)
		require.NotNil(t, logger)
		assert.Equal(t, slog.NewTextHandler(io.Discard, nil), handler)
	})

	t.Run("component group applied", func(t *testing.T) {
		var buf bytes.Buffer
		in := slog.NewTextHandler(&buf, nil)

		handler, logger := SetupLogger(in, "engine")
		assert.Equal(t, in, handler)

		logger.Info("hello", "k", "v")
		assert.Contains(t, buf.String(), "engine.k=v")
	})

	t.Run("empty component ungrouped", func(t *testing.T) {
		var buf bytes.Buffer
		_, logger := SetupLogger(slog.NewTextHandler(&buf, nil), "")

		logger.Info("hello", "k", "v")
		assert.Contains(t, buf.String(), "k=v")
		assert.NotContains(t, buf.String(), "engine.k")
	})
}
