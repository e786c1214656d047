package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelWarn, Output: &buf})
	defer Init(DefaultConfig())

	Logger().Debug("hidden")
	Logger().Info("hidden too")
	Logger().Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})
	defer Init(DefaultConfig())

	Logger().Debug("loaded employees", "count", 3)

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "loaded employees", entry["msg"])
	assert.Equal(t, float64(3), entry["count"])
	assert.True(t, Debug)
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.AddSource)
}
