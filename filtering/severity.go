package filtering

import "strings"

// Severity is the underlying engine's ordered urgency scale, most
// urgent first; TRACE is the most verbose value. Caller-defined level
// strings are a separate vocabulary and are mapped onto this scale.
type Severity int

const (
	FATAL Severity = iota
	ERROR
	WARN
	INFO
	DEBUG
	TRACE
)

// SeverityFromString parses a severity name case-insensitively and
// reports whether it was recognized; unrecognized input yields INFO.
func SeverityFromString(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fatal":
		return FATAL, true
	case "error":
		return ERROR, true
	case "warn", "warning":
		return WARN, true
	case "info":
		return INFO, true
	case "debug":
		return DEBUG, true
	case "trace":
		return TRACE, true
	default:
		return INFO, false
	}
}

func (s Severity) String() string {
	switch s {
	case FATAL:
		return "FATAL"
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	default:
		return "INFO"
	}
}
