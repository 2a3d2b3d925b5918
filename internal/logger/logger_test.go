package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug().Str("url", "https://example.org").Msg("Fetching page")

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "Fetching page")
	assert.Contains(t, buf.String(), "url=https://example.org")
}

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
