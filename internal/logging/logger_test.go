package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_ConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Out: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("answer skipped", zap.String("key", "operador/4/0"))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "answer skipped")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "operador/4/0")
}

func TestNew_FileSinkWritesJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "plantcheck.log")
	var console bytes.Buffer

	log, err := New(Options{Level: "debug", File: p, Out: &console})
	require.NoError(t, err)
	log.Debug("submission saved", zap.String("id", "abc"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(p)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "submission saved", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "abc", entry["id"])
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}
