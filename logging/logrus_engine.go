package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/s4mli/farol/filtering"
)

var logrusLevels = map[filtering.Severity]logrus.Level{
	filtering.FATAL: logrus.FatalLevel,
	filtering.ERROR: logrus.ErrorLevel,
	filtering.WARN:  logrus.WarnLevel,
	filtering.INFO:  logrus.InfoLevel,
	filtering.DEBUG: logrus.DebugLevel,
	filtering.TRACE: logrus.TraceLevel,
}

type logrusEngine struct {
	log       *logrus.Logger
	threshold filtering.Severity
}

// NewLogrusEngine wraps a logrus logger. The severity gate lives in
// the adapter and the wrapped logger is pinned to trace, so an emit
// decided by the matrix is never dropped by logrus itself. A
// caller-configured level becomes the initial threshold; nil gets a
// fresh default logger.
func NewLogrusEngine(log *logrus.Logger) Engine {
	if log == nil {
		log = logrus.New()
	}
	e := &logrusEngine{log: log, threshold: severityOfLogrus(log.GetLevel())}
	log.SetLevel(logrus.TraceLevel)
	return e
}

func severityOfLogrus(lvl logrus.Level) filtering.Severity {
	for s, l := range logrusLevels {
		if l == lvl {
			return s
		}
	}
	return filtering.INFO
}

func (e *logrusEngine) SetThreshold(s filtering.Severity) { e.threshold = s }

func (e *logrusEngine) Scoped(namespace, level string) Scoped {
	return &logrusScoped{
		engine: e,
		// "level" is reserved by the formatter for the severity, the
		// caller level rides along as "lvl"
		entry: e.log.WithFields(logrus.Fields{"namespace": namespace, "lvl": level}),
	}
}

type logrusScoped struct {
	engine *logrusEngine
	entry  *logrus.Entry
}

func (s *logrusScoped) Enabled(sev filtering.Severity) bool {
	return sev <= s.engine.threshold
}

func (s *logrusScoped) Emit(sev filtering.Severity, msg string) {
	s.entry.Log(logrusLevels[sev], msg)
}

func (s *logrusScoped) EmitWith(sev filtering.Severity, fields Fields, msg string) {
	s.entry.WithFields(logrus.Fields(fields)).Log(logrusLevels[sev], msg)
}
