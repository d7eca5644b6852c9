package logging

import (
	"github.com/rs/zerolog"

	"github.com/s4mli/farol/filtering"
)

var zerologLevels = map[filtering.Severity]zerolog.Level{
	filtering.FATAL: zerolog.FatalLevel,
	filtering.ERROR: zerolog.ErrorLevel,
	filtering.WARN:  zerolog.WarnLevel,
	filtering.INFO:  zerolog.InfoLevel,
	filtering.DEBUG: zerolog.DebugLevel,
	filtering.TRACE: zerolog.TraceLevel,
}

type zerologEngine struct {
	log       zerolog.Logger
	threshold filtering.Severity
}

// NewZerologEngine wraps a zerolog logger, mirroring NewLogrusEngine:
// the gate lives in the adapter and the wrapped logger runs at trace.
func NewZerologEngine(log zerolog.Logger) Engine {
	return &zerologEngine{
		log:       log.Level(zerolog.TraceLevel),
		threshold: severityOfZerolog(log.GetLevel()),
	}
}

func severityOfZerolog(lvl zerolog.Level) filtering.Severity {
	for s, l := range zerologLevels {
		if l == lvl {
			return s
		}
	}
	return filtering.INFO
}

func (e *zerologEngine) SetThreshold(s filtering.Severity) { e.threshold = s }

func (e *zerologEngine) Scoped(namespace, level string) Scoped {
	return &zerologScoped{
		engine: e,
		log:    e.log.With().Str("namespace", namespace).Str("lvl", level).Logger(),
	}
}

type zerologScoped struct {
	engine *zerologEngine
	log    zerolog.Logger
}

func (s *zerologScoped) Enabled(sev filtering.Severity) bool {
	return sev <= s.engine.threshold
}

func (s *zerologScoped) Emit(sev filtering.Severity, msg string) {
	s.log.WithLevel(zerologLevels[sev]).Msg(msg)
}

func (s *zerologScoped) EmitWith(sev filtering.Severity, fields Fields, msg string) {
	s.log.WithLevel(zerologLevels[sev]).Fields(map[string]interface{}(fields)).Msg(msg)
}
