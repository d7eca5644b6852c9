package filtering

// Enabled reports whether the pattern spec wants this namespace/level
// combination visible, independent of any severity threshold.
func (t Table) Enabled(namespace, level string) bool {
	if e, ok := t.entries[namespace]; !ok {
		return false
	} else if e.all {
		return true
	} else {
		_, ok := e.levels[level]
		return ok
	}
}

// MinSeverity computes the engine threshold implied by the table: the
// most verbose severity any enabled level maps to (unmapped levels
// count as INFO), so the engine's own gate cannot mask something the
// pattern spec wants emitted. A wildcard anywhere forces TRACE; an
// entirely empty table yields fallback.
func (t Table) MinSeverity(severityByLevel map[string]Severity, fallback Severity) Severity {
	min := fallback
	found := false
	for _, e := range t.entries {
		if e.all {
			return TRACE
		}
		for lvl := range e.levels {
			sev := INFO
			if s, ok := severityByLevel[lvl]; ok {
				sev = s
			}
			if !found || sev > min {
				min = sev
				found = true
			}
		}
	}
	return min
}
