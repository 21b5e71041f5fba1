package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	g := NewGame(NewBoard(pockets(1, 0, 0, 2, 0, 0, 20), pockets(0, 3, 0, 0, 0, 0, 22), Player))

	t.Run("difference", func(t *testing.T) {
		require.Equal(t, -2.0, EvaluateDifference(g))
		require.Equal(t, 0.0, EvaluateDifference(DefaultGame()))
	})

	t.Run("normalized difference", func(t *testing.T) {
		require.InDelta(t, -2.0/42.0, EvaluateNormalizedDifference(g), 1e-9)
		require.Equal(t, 0.0, EvaluateNormalizedDifference(DefaultGame()), "Empty stores should not divide by zero")
	})

	t.Run("material", func(t *testing.T) {
		require.Equal(t, -2.0, EvaluateMaterial(g), "Player 23 against Opponent 25")
	})

	t.Run("method dispatch", func(t *testing.T) {
		require.Equal(t, EvaluateMaterial(g), ByMaterial.Evaluate(g))
		require.Equal(t, EvaluateDifference(g), ByDifference.Func()(g))
		require.Panics(t, func() { EvalMethod(9).Func() })
	})
}

func TestParseEvalMethod(t *testing.T) {
	for _, method := range []EvalMethod{ByDifference, ByNormalizedDifference, ByMaterial} {
		parsed, err := ParseEvalMethod(method.String())
		require.NoError(t, err)
		require.Equal(t, method, parsed)
	}

	parsed, err := ParseEvalMethod("Material")
	require.NoError(t, err)
	require.Equal(t, ByMaterial, parsed)

	_, err = ParseEvalMethod("vibes")
	require.Error(t, err)
}
