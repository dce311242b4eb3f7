// File: trace.go
// Role: debug-level structured events emitted by the layer-peeling loop.
package trace

import "github.com/rs/zerolog"

// Tracer emits structured debug events for one finder call. The zero
// value is silent.
type Tracer struct {
	log zerolog.Logger
}

// New wraps a caller-supplied zerolog.Logger. Passing zerolog.Nop()
// (what the root facade passes when no WithLogger option is given)
// disables all output.
func New(log zerolog.Logger) Tracer {
	return Tracer{log: log}
}

// RoundStart logs entry into a new layer-peeling round.
func (t Tracer) RoundStart(round, frontierSize int) {
	t.log.Debug().
		Int("round", round).
		Int("frontier_size", frontierSize).
		Msg("round start")
}

// VertexSolved logs a vertex accepted into the current round, with the
// size of its correction set.
func (t Tracer) VertexSolved(round, vertex, correctorSize int) {
	t.log.Debug().
		Int("round", round).
		Int("vertex", vertex).
		Int("corrector_size", correctorSize).
		Msg("vertex solved")
}

// VertexRejected logs a frontier vertex whose system was inconsistent
// this round (it may still solve in a later round).
func (t Tracer) VertexRejected(round, vertex int) {
	t.log.Debug().
		Int("round", round).
		Int("vertex", vertex).
		Msg("vertex rejected this round")
}

// StuckFrontier logs a round that solved nothing: the caller is about to
// return ErrNoFlowExists.
func (t Tracer) StuckFrontier(round, frontierSize int) {
	t.log.Debug().
		Int("round", round).
		Int("frontier_size", frontierSize).
		Msg("frontier stuck, no flow")
}
