package experiments

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummaryAdd(t *testing.T) {
	s := Summary{}

	s.add(game.PlayerWon, false)
	s.add(game.PlayerWon, true)
	s.add(game.OpponentWon, true)
	s.add(game.Tie, false)
	s.add(game.NoOutcome, false)

	require.Equal(t, Summary{Games: 5, Wins: 2, Losses: 1, Ties: 1, Unfinished: 1}, s)
}

func TestRunExperiment(t *testing.T) {
	t.Run("greedy first mover beats random", func(t *testing.T) {
		greedy := metrics.AgentConfig{ID: 1, Kind: "greedy", PreferWin: true}
		random := metrics.AgentConfig{ID: 2, Kind: "random", Seed: 5}

		summaries, err := runExperiment("test", []metrics.AgentConfig{greedy, random}, [][2]metrics.AgentConfig{{greedy, random}}, Settings{Games: 1})

		require.NoError(t, err)
		require.Equal(t, Summary{Games: 1, Wins: 1}, summaries[0])
	})

	t.Run("results are written when an output folder is set", func(t *testing.T) {
		dir := t.TempDir()
		random1 := metrics.AgentConfig{ID: 1, Kind: "random", Seed: 1}
		random2 := metrics.AgentConfig{ID: 2, Kind: "random", Seed: 2}

		summaries, err := runExperiment("random", []metrics.AgentConfig{random1, random2}, [][2]metrics.AgentConfig{{random1, random2}}, Settings{Games: 2, OutDir: dir})

		require.NoError(t, err)
		require.Equal(t, 2, summaries[0].Games)
		runs, err := os.ReadDir(filepath.Join(dir, "random"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(dir, "random", runs[0].Name(), name))
		}
	})

	t.Run("unknown agent kind", func(t *testing.T) {
		bad := metrics.AgentConfig{ID: 1, Kind: "oracle"}

		_, err := runExperiment("bad", []metrics.AgentConfig{bad}, [][2]metrics.AgentConfig{{bad, bad}}, Settings{Games: 1})

		require.Error(t, err)
	})
}

func TestRunThroughputExperiment(t *testing.T) {
	summaries, err := RunThroughputExperiment(Settings{MaxTurns: 4}, 1)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, 1, summaries[0].Games)
}
