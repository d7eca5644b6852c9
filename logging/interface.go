package logging

import "github.com/s4mli/farol/filtering"

// Fields carries structured context attached to a single log call.
type Fields map[string]interface{}

// LogFunc is one cell of the namespace/level matrix. Arguments follow
// the render contract: an optional leading Fields, then either a
// printf format string with its operands, a lone message, or arbitrary
// values.
type LogFunc func(args ...interface{})

// Engine is the underlying structured logging backend. The matrix only
// needs it to hand out children scoped to a namespace/level pair and
// to accept, once at construction, the threshold for its own gate.
type Engine interface {
	Scoped(namespace, level string) Scoped
	SetThreshold(filtering.Severity)
}

// Scoped is an engine child tagged with one namespace/level pair.
// Enabled reflects the engine's own severity gate; Emit and EmitWith
// write unconditionally.
type Scoped interface {
	Enabled(filtering.Severity) bool
	Emit(filtering.Severity, string)
	EmitWith(filtering.Severity, Fields, string)
}
