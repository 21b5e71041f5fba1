package agent

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchAgent(t *testing.T) {
	g := game.DefaultGame()
	a := NewSearchAgent(searcher.NewSearcher(searcher.WithMetrics()))

	sequence, metric := a.FindSequence(g)

	require.Equal(t, []int{5, 2, 1, 4, 0, 0, 4, 4, 5, 0, 4, 5, 3}, sequence)
	require.Equal(t, 1, metric.Trees)
	require.Equal(t, 9513, metric.Nodes)
}

func TestGreedyAgent(t *testing.T) {
	t.Run("agrees with a depth one search", func(t *testing.T) {
		g := game.DefaultGame()
		want, _, _ := searcher.NewSearcher().FindSequence(g)

		sequence, metric := NewGreedyAgent(game.ByDifference, false).FindSequence(g)

		require.Equal(t, want, sequence)
		require.Equal(t, 7161, metric.Leaves)
		require.Equal(t, 1473, metric.GameOverLeaves)
	})

	t.Run("opponent minimizes", func(t *testing.T) {
		board := game.DefaultBoard()
		board.Turn = game.Opponent
		g := game.NewGame(board)

		sequence, _ := NewGreedyAgent(game.ByDifference, false).FindSequence(g)
		next, err := g.PlaySequence(sequence)

		require.NoError(t, err)
		require.Less(t, game.EvaluateDifference(next), 0.0, "Opponent should gain more than Player")
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays a full legal turn", func(t *testing.T) {
		g := game.DefaultGame()
		a := NewRandomAgent(7)

		for i := 0; i < 20; i++ {
			sequence, _ := a.FindSequence(g)
			require.NotEmpty(t, sequence)

			next, err := g.PlaySequence(sequence)
			require.NoError(t, err)
			require.True(t, next.Turn() != g.Turn() || !next.Status().InProgress(), "The turn should be used up")
		}
	})

	t.Run("same seed replays the same choices", func(t *testing.T) {
		first, _ := NewRandomAgent(42).FindSequence(game.DefaultGame())
		second, _ := NewRandomAgent(42).FindSequence(game.DefaultGame())

		require.Equal(t, first, second)
	})
}

func TestFromConfig(t *testing.T) {
	t.Run("known kinds", func(t *testing.T) {
		for _, kind := range []Kind{Search, Greedy, Random} {
			a, err := FromConfig(metrics.AgentConfig{Kind: string(kind), Depth: 1})
			require.NoError(t, err, "kind %s", kind)
			require.NotNil(t, a)
		}
	})

	t.Run("search is the default", func(t *testing.T) {
		a, err := FromConfig(metrics.AgentConfig{Depth: 2, EvalMethod: game.ByMaterial})

		require.NoError(t, err)
		require.IsType(t, searchAgent{}, a)
		require.Equal(t, 2, a.(searchAgent).searcher.Depth())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := FromConfig(metrics.AgentConfig{Kind: "oracle"})

		require.Error(t, err)
	})

	t.Run("unknown evaluation method", func(t *testing.T) {
		for _, kind := range []Kind{Search, Greedy, Random} {
			var a Agent
			var err error
			require.NotPanics(t, func() {
				a, err = FromConfig(metrics.AgentConfig{Kind: string(kind), EvalMethod: game.EvalMethod(9)})
			})
			require.Error(t, err, kind)
			require.Nil(t, a)
		}
	})
}
