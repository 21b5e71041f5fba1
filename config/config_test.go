package config

import (
	"kalah/game"
	"kalah/meta"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Setup("")

		require.NoError(t, err)
		require.Equal(t, meta.SEARCH_DEPTH, cfg.SearchDepth)
		require.Equal(t, game.ByDifference, cfg.Method())
		require.True(t, cfg.PreferWin)
		require.Equal(t, zerolog.InfoLevel, cfg.Level())
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns)
		require.Equal(t, "", cfg.DataDir)
	})

	t.Run("file", func(t *testing.T) {
		path := writeConfig(t, "kalah.yaml", "SEARCH_DEPTH: 3\nEVAL_METHOD: material\nLOG_LEVEL: debug\nGAMES: 4\n")

		cfg, err := Setup(path)

		require.NoError(t, err)
		require.Equal(t, 3, cfg.SearchDepth)
		require.Equal(t, game.ByMaterial, cfg.Method())
		require.Equal(t, zerolog.DebugLevel, cfg.Level())
		require.Equal(t, 4, cfg.Games)
		require.Equal(t, ":8080", cfg.ListenAddr, "Unset keys keep their defaults")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "kalah.env", "SEARCH_DEPTH=3\nLISTEN_ADDR=:9000\n")
		t.Setenv("KALAH_SEARCH_DEPTH", "1")
		t.Setenv("KALAH_PREFER_WIN", "false")

		cfg, err := Setup(path)

		require.NoError(t, err)
		require.Equal(t, 1, cfg.SearchDepth)
		require.False(t, cfg.PreferWin)
		require.Equal(t, ":9000", cfg.ListenAddr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, content := range []string{
			"SEARCH_DEPTH: 0\n",
			"EVAL_METHOD: vibes\n",
			"LOG_LEVEL: loud\n",
			"GAMES: 0\n",
			"MAX_TURNS: -1\n",
		} {
			_, err := Setup(writeConfig(t, "kalah.yaml", content))
			require.Error(t, err, content)
		}
	})
}
