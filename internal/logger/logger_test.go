//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "info", level: "info", expected: zerolog.InfoLevel},
		{name: "warn upper case", level: "WARN", expected: zerolog.WarnLevel},
		{name: "error", level: "error", expected: zerolog.ErrorLevel},
		{name: "off", level: "off", expected: zerolog.Disabled},
		{name: "invalid defaults to info", level: "verbose", expected: zerolog.InfoLevel},
		{name: "empty defaults to info", level: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.level))
		})
	}
}

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("debug", false, &buf)
	t.Cleanup(func() { Init("info", false) })

	l := Logger()
	l.Info().Str("request_id", "req-1").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Contains(t, entry, "time")
}

func TestInitWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("error", false, &buf)
	t.Cleanup(func() { Init("info", false) })

	l := Logger()
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())
}

func TestWithContextAndComponent(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", false, &buf)
	t.Cleanup(func() { Init("info", false) })

	l := WithContext(map[string]interface{}{"carrier": "AUSPOST"})
	l.Info().Msg("quoted")
	assert.Contains(t, buf.String(), `"carrier":"AUSPOST"`)

	buf.Reset()
	c := Component("quote")
	c.Info().Msg("done")
	assert.Contains(t, buf.String(), `"component":"quote"`)
}
