package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_WritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(io.Discard)

	Warn().Str("store", "readings").Msg("write failed")

	assert.Contains(t, buf.String(), "write failed")
	assert.Contains(t, buf.String(), "readings")
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(io.Discard)

	SetLevel("info")
	Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	SetLevel("debug")
	Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")

	SetLevel("info")
}

func TestLogger_UnknownLevelKeepsInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(io.Discard)

	SetLevel("chatty")
	Info().Msg("still logged")
	assert.Contains(t, buf.String(), "still logged")
}
