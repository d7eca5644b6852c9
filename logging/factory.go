package logging

import (
	"github.com/s4mli/farol/config"
	"github.com/s4mli/farol/filtering"
)

// Matrix is the namespace/level grid of log functions produced from a
// configuration snapshot. Immutable after construction and safe for
// concurrent use.
type Matrix struct {
	table filtering.Table
	min   filtering.Severity
	grid  map[string]map[string]LogFunc
}

type options struct {
	engine   Engine
	severity map[string]filtering.Severity
	fallback filtering.Severity
}

type Option func(*options)

func WithEngine(e Engine) Option { return func(o *options) { o.engine = e } }

// WithSeverityMap translates caller levels to engine severities;
// unmapped levels default to INFO.
func WithSeverityMap(m map[string]filtering.Severity) Option {
	return func(o *options) { o.severity = m }
}

// WithDefaultSeverity sets the threshold used when the pattern spec
// enables nothing at all.
func WithDefaultSeverity(s filtering.Severity) Option {
	return func(o *options) { o.fallback = s }
}

func noop(...interface{}) {}

// New builds the logger matrix for the declared namespaces and levels.
// The snapshot is consumed here, once; the environment is never read
// again afterwards. The engine defaults to logrus.
func New(namespaces, levels []string, snap config.Snapshot, opts ...Option) *Matrix {
	o := options{fallback: filtering.INFO}
	for _, opt := range opts {
		opt(&o)
	}
	if o.engine == nil {
		o.engine = NewLogrusEngine(nil)
	}

	table := filtering.Build(namespaces, levels, snap.Spec)
	min := table.MinSeverity(o.severity, o.fallback)
	if s, ok := filtering.SeverityFromString(snap.Level); ok {
		// an explicit override wins outright, no merge
		min = s
	}
	o.engine.SetThreshold(min)

	m := &Matrix{table: table, min: min, grid: make(map[string]map[string]LogFunc, len(namespaces))}
	for _, ns := range namespaces {
		row := make(map[string]LogFunc, len(levels))
		for _, lvl := range levels {
			row[lvl] = m.logFunc(o.engine, ns, lvl, o.severity)
		}
		m.grid[ns] = row
	}
	return m
}

func (m *Matrix) logFunc(engine Engine, namespace, level string,
	severity map[string]filtering.Severity) LogFunc {
	scoped := engine.Scoped(namespace, level)
	sev := filtering.INFO
	if s, ok := severity[level]; ok {
		sev = s
	}
	patterned := m.table.Enabled(namespace, level)
	return func(args ...interface{}) {
		// either gate may admit the call on its own
		if !patterned && !scoped.Enabled(sev) {
			return
		}
		if fields, msg := render(args...); fields == nil {
			scoped.Emit(sev, msg)
		} else {
			scoped.EmitWith(sev, fields, msg)
		}
	}
}

// Log returns the function for one namespace/level pair; an undeclared
// pair gets a no-op so a caller can never crash the host application.
func (m *Matrix) Log(namespace, level string) LogFunc {
	if row, ok := m.grid[namespace]; ok {
		if fn, ok := row[level]; ok {
			return fn
		}
	}
	return noop
}

// Enabled reports whether the pattern spec enables the pair.
func (m *Matrix) Enabled(namespace, level string) bool {
	return m.table.Enabled(namespace, level)
}

// MinSeverity is the threshold handed to the engine at construction.
func (m *Matrix) MinSeverity() filtering.Severity { return m.min }
