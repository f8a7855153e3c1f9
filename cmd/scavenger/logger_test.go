package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plus3/scavenger/internal/config"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.log")
			log, err := newLogger(config.LoggingConfig{Level: "warn", Format: format, Output: path})
			require.NoError(t, err)

			log.Info("hidden")
			log.Warn("shown", zap.String("run_id", "abc"))
			require.NoError(t, log.Sync())

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(raw), "shown")
			assert.Contains(t, string(raw), "abc")
			assert.NotContains(t, string(raw), "hidden")
		})
	}

	t.Run("unknown level falls back to info", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.log")
		log, err := newLogger(config.LoggingConfig{Level: "loud", Format: "json", Output: path})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zap.InfoLevel))
		assert.False(t, log.Core().Enabled(zap.DebugLevel))
	})
}
