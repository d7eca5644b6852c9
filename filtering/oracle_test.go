package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSeverities = map[string]Severity{
	"info":  INFO,
	"error": ERROR,
	"debug": DEBUG,
}

func testWildcardForcesTrace(t *testing.T) {
	for _, spec := range []string{"*", "db", "app:error,db:*"} {
		table := Build(testNamespaces, testLevels, spec)
		assert.Equal(t, TRACE, table.MinSeverity(testSeverities, INFO), spec)
	}
}

func testMostVerboseEnabledWins(t *testing.T) {
	table := Build(testNamespaces, testLevels, "app:error")
	assert.Equal(t, ERROR, table.MinSeverity(testSeverities, INFO))

	table = Build(testNamespaces, testLevels, "app:error,api:debug")
	assert.Equal(t, DEBUG, table.MinSeverity(testSeverities, INFO))
}

func testEnabledBeatsFallbackEvenWhenStricter(t *testing.T) {
	// the threshold tracks what is enabled, it is not merged with the
	// fallback
	table := Build(testNamespaces, testLevels, "app:error")
	assert.Equal(t, ERROR, table.MinSeverity(testSeverities, DEBUG))
}

func testUnmappedLevelCountsAsInfo(t *testing.T) {
	table := Build(testNamespaces, testLevels, "app:debug")
	assert.Equal(t, INFO, table.MinSeverity(map[string]Severity{}, ERROR))
}

func testNothingEnabledFallsBack(t *testing.T) {
	table := Build(testNamespaces, testLevels, "")
	assert.Equal(t, WARN, table.MinSeverity(testSeverities, WARN))

	table = Build(testNamespaces, testLevels, "ghost:info,-app")
	assert.Equal(t, INFO, table.MinSeverity(testSeverities, INFO))
}

func TestMinSeverity(t *testing.T) {
	testWildcardForcesTrace(t)
	testMostVerboseEnabledWins(t)
	testEnabledBeatsFallbackEvenWhenStricter(t)
	testUnmappedLevelCountsAsInfo(t)
	testNothingEnabledFallsBack(t)
}

func TestSeverityFromString(t *testing.T) {
	for name, expected := range map[string]Severity{
		"fatal": FATAL, "error": ERROR, "warn": WARN,
		"info": INFO, "debug": DEBUG, "trace": TRACE,
		"ERROR": ERROR, " Warn ": WARN, "warning": WARN,
	} {
		s, ok := SeverityFromString(name)
		assert.True(t, ok, name)
		assert.Equal(t, expected, s, name)
	}
	for _, name := range []string{"", "verbose", "panic"} {
		s, ok := SeverityFromString(name)
		assert.False(t, ok, name)
		assert.Equal(t, INFO, s, name)
	}
}

func TestSeverityString(t *testing.T) {
	for _, s := range []Severity{FATAL, ERROR, WARN, INFO, DEBUG, TRACE} {
		parsed, ok := SeverityFromString(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}
}
