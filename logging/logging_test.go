package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"teg/meta"
)

func TestNew(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	t.Run("json console", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(meta.LogConfig{Level: "info", JSON: true}, &buf)
		require.NoError(t, err)

		logger.Debug().Msg("hidden")
		logger.Info().Int("countries", 26).Msg("board ready")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "board ready", entry["message"])
		require.Equal(t, float64(26), entry["countries"])
		require.Equal(t, "info", entry["level"])
	})

	t.Run("human readable console", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(meta.LogConfig{Level: "DEBUG"}, &buf)
		require.NoError(t, err)

		logger.Debug().Msg("dice rolled")
		require.Contains(t, buf.String(), "dice rolled")
		require.NotContains(t, buf.String(), "{")
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "teg.log")
		var buf bytes.Buffer
		logger, err := New(meta.LogConfig{Level: "warn", File: path}, &buf)
		require.NoError(t, err)

		logger.Info().Msg("skipped")
		logger.Warn().Msg("kept")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `"message":"kept"`)
		require.NotContains(t, string(data), "skipped")
		require.Contains(t, buf.String(), "kept")
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := New(meta.LogConfig{Level: "loud"}, &bytes.Buffer{})
		require.Error(t, err)
	})
}
