package engine

import (
	"fmt"
	"log/slog"
)

// Option is a function that configures a Context during NewContext.
type Option func(*Context) error

// WithLogHandler sets the slog.Handler receiving the context's pass-level
// trace output. This is the preferred option for logging configuration as it
// provides more flexibility through the slog.Handler interface.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Context) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		// Clear logger if handler is explicitly set
		c.logger = nil
		return nil
	}
}

// WithLogger sets a specific logger for the context. This is less flexible
// than WithLogHandler but allows callers to manage their own group
// configuration.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		// Clear handler if logger is explicitly set
		c.logHandler = nil
		return nil
	}
}
