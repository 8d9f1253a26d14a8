package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerFrom(zap.New(core))

	log.Info("PromptStore", "Prompts loaded", map[string]interface{}{"count": 2})
	log.Error("PromptStore", "Failed to save prompts", map[string]interface{}{"error": errors.New("disk full")})

	entries := logs.All()
	require.Len(t, entries, 2)

	info := entries[0].ContextMap()
	assert.Equal(t, "PromptStore", info["module"])
	assert.Equal(t, map[string]interface{}{"count": 2}, info["details"])

	failed := entries[1].ContextMap()
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, map[string]interface{}{"error": "disk full"}, failed["details"])
	assert.Equal(t, "disk full", failed["error"])
}

func TestIsolatedLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isolated.log")
	log := NewIsolatedLogger(path)

	log.Debug("Hub", "below file level", nil)
	log.Info("Hub", "Client registered", map[string]interface{}{"clients": 1})
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Client registered"`)
	assert.NotContains(t, string(data), "below file level")
}

func TestNopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNopLogger().Warn("Test", "ignored", nil)
	})
}
