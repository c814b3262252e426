package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Level: "warn", Format: "json"}
	log := l.New(&buf)

	log.Info().Msg("hidden")
	log.Warn().Str("zone", "alpha").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "alpha", entry["zone"])
	assert.Equal(t, "shown", entry["message"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Format: "console", NoColor: true}
	log := l.New(&buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("zones loaded")

	assert.Contains(t, buf.String(), "INF zones loaded")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestFallback(t *testing.T) {
	l := Logger{}
	l.Fallback("debug")
	assert.Equal(t, "debug", l.Level)

	l.Fallback("error")
	assert.Equal(t, "debug", l.Level)
}
