// File: options.go
// Role: functional options for the three public finder entry points
// (Validate takes none), following the teacher's builder.BuilderOption /
// matrix.Option idiom.
package mbqcflow

import "github.com/rs/zerolog"

// Option customizes a FindCausal/FindG/FindP call.
type Option func(*config)

type config struct {
	tracer zerolog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{tracer: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger attaches a zerolog.Logger that receives one debug event per
// layer-peeling round and per rejected candidate (spec.md §6). The
// default is a disabled logger, so callers pay nothing for logging they
// never configured.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.tracer = log
	}
}
