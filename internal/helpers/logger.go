package helpers

import (
	"io"
	"log/slog"
)

// SetupLogger wires a handler and logger for a library component. Trace
// output is opt-in: a nil handler yields a discard logger rather than
// writing anywhere by default.
//
// Returns the effective handler and a logger grouped under component.
func SetupLogger(handler slog.Handler, component string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(io.Discard, nil)
	}

	logger := slog.New(handler)
	if component != "" {
		logger = slog.New(handler.WithGroup(component))
	}

	return handler, logger
}
