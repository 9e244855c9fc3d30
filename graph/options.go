package graph

import (
	"io"
	"log/slog"
)

// Option configures optional trace output on a node constructor. Tracing is
// observability only; nodes behave identically with the default discard
// logger.
type Option func(*settings)

type settings struct {
	handler slog.Handler
}

// WithLogHandler routes a node's construction and cache-hit notices to the
// given slog.Handler. A nil handler leaves tracing disabled.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *settings) {
		if handler != nil {
			s.handler = handler
		}
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// logger returns a logger grouped under the node kind, or a discard logger
// when no handler was configured.
func (s *settings) logger(kind string) *slog.Logger {
	if s.handler == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(s.handler.WithGroup(kind))
}
