package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_EtiquetaYNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Output: &buf})

	l.Component("trading").Info().Msg("descartado por nivel")
	assert.Zero(t, buf.Len(), "info no se escribe con nivel warn")

	l.Component("trading").Warn().Str("number", "SO-2026-00001").Msg("orden rechazada")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trading", entry["component"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "SO-2026-00001", entry["number"])
}

func TestParseLevel_PorDefectoInfo(t *testing.T) {
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "debug", parseLevel("debug").String())
}
