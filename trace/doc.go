// Package trace wraps a zerolog.Logger into the small set of structured
// debug events the core emits while peeling layers, per spec.md §6's
// "host-side logging: the core emits structured trace events at level
// debug with no ordering guarantees" external collaborator.
//
// The zero value of Tracer is silent (a disabled zerolog.Logger), so
// finders can unconditionally call it without callers paying for logging
// they never configured.
package trace
