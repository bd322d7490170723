package propkit

import (
	"log/slog"

	"github.com/propkit/propkit/pkg/propkit/observability"
	"github.com/propkit/propkit/pkg/propkit/secrets"
)

// Option configures a Configuration at construction time.
type Option func(*Configuration)

// WithCodec sets the secret codec run over every resolved value.
// Default: secrets.Nop{} (nothing is treated as encrypted).
func WithCodec(codec secrets.Codec) Option {
	return func(c *Configuration) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// WithLogger sets the logger receiving mismatch warnings and failure logs.
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(c *Configuration) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
// Default: observability.NoopMetrics{}
//
// Example:
//
//	cfg := propkit.New(defs, props,
//	    propkit.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(recorder observability.MetricsRecorder) Option {
	return func(c *Configuration) {
		if recorder != nil {
			c.metrics = recorder
		}
	}
}

// WithMode sets the analysis mode the resolver is built for.
// Default: ModePublish
func WithMode(mode Mode) Option {
	return func(c *Configuration) {
		if mode != "" {
			c.mode = mode
		}
	}
}

// WithSessionID overrides the generated session identifier attached to the
// resolver's log records.
func WithSessionID(id string) Option {
	return func(c *Configuration) {
		if id != "" {
			c.sessionID = id
		}
	}
}
