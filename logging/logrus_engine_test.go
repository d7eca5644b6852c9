package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/s4mli/farol/filtering"
)

func TestLogrusEngine(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.ErrorLevel)

	engine := NewLogrusEngine(log)
	scoped := engine.Scoped("app", "debug")

	// configured level becomes the initial threshold
	assert.True(t, scoped.Enabled(filtering.ERROR))
	assert.False(t, scoped.Enabled(filtering.DEBUG))

	// the gate never masks an emit the matrix already decided on
	scoped.Emit(filtering.DEBUG, "pattern enabled")
	assert.Contains(t, buf.String(), `"namespace":"app"`)
	assert.Contains(t, buf.String(), `"lvl":"debug"`)
	assert.Contains(t, buf.String(), "pattern enabled")

	engine.SetThreshold(filtering.TRACE)
	assert.True(t, scoped.Enabled(filtering.DEBUG))

	buf.Reset()
	scoped.EmitWith(filtering.INFO, Fields{"user": "sam"}, "with fields")
	assert.Contains(t, buf.String(), `"user":"sam"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestLogrusEngineDefaults(t *testing.T) {
	engine := NewLogrusEngine(nil)
	scoped := engine.Scoped("app", "info")
	// a fresh logrus logger sits at info
	assert.True(t, scoped.Enabled(filtering.INFO))
	assert.False(t, scoped.Enabled(filtering.DEBUG))
}
