package searcher

import (
	"kalah/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func pockets(values ...int) [game.NumPockets]int {
	var p [game.NumPockets]int
	copy(p[:], values)
	return p
}

// endgame: Player to move with three short chains available.
func endgame() game.Game {
	return game.NewGame(game.NewBoard(pockets(0, 0, 1, 0, 2, 1, 20), pockets(1, 2, 0, 0, 1, 0, 20), game.Player))
}

func TestNewSequenceTree(t *testing.T) {
	g := game.DefaultGame()

	tree := NewSequenceTree(g)

	require.Equal(t, 1, tree.Len(), "New tree should only hold the root")
	require.True(t, tree.Node(RootIndex).IsRoot())
	require.Equal(t, g, tree.Root())
	require.Empty(t, tree.Leaves())
	require.Empty(t, tree.GameOverNodes())
}

func TestSequenceTreeGenerate(t *testing.T) {
	t.Run("default layout", func(t *testing.T) {
		tree := NewSequenceTree(game.DefaultGame())

		tree.Generate(game.Player)

		require.Equal(t, 9513, tree.Len())
		require.Len(t, tree.Leaves(), 7161)
		require.Len(t, tree.GameOverNodes(), 1473, "Some first-turn chains already decide the game")
		require.Equal(t, []int{1, 2, 3, 4, 5, 6}, tree.Node(RootIndex).Children, "Root children should come first, in pit order")
		for i, child := range tree.Node(RootIndex).Children {
			require.Equal(t, i, tree.Node(child).MoveNode().Move.Pocket())
			require.Equal(t, RootIndex, tree.Node(child).MoveNode().Parent)
		}
		// Pit 0 passes the turn and pit 1 grants a free turn, so node 2's
		// children follow the root's.
		require.Empty(t, tree.Node(1).Children)
		require.Equal(t, []int{7, 8, 9, 10, 11, 12}, tree.Node(2).Children)
	})

	t.Run("endgame chains", func(t *testing.T) {
		tree := NewSequenceTree(endgame())

		tree.Generate(game.Player)

		require.Equal(t, 11, tree.Len())
		sequences := [][]int{}
		for _, leaf := range tree.Leaves() {
			sequences = append(sequences, tree.MoveSequence(leaf))
		}
		require.Equal(t, [][]int{{2}, {4, 2}, {4, 5}, {5, 2}, {5, 4, 2}, {5, 4, 5, 2}}, sequences)
		require.Empty(t, tree.GameOverNodes())
	})

	t.Run("side not on move produces no nodes", func(t *testing.T) {
		tree := NewSequenceTree(game.DefaultGame())

		tree.Generate(game.Opponent)

		require.Equal(t, 1, tree.Len())
		require.Empty(t, tree.Leaves())
	})

	t.Run("finished game produces no nodes", func(t *testing.T) {
		over := game.NewGame(game.NewBoard(pockets(0, 0, 0, 0, 0, 0, 20), pockets(0, 0, 0, 0, 0, 0, 28), game.Player))
		tree := NewSequenceTree(over)

		tree.Generate(game.Player)

		require.Equal(t, 1, tree.Len())
	})

	t.Run("generating twice does not duplicate nodes", func(t *testing.T) {
		tree := NewSequenceTree(endgame())

		tree.Generate(game.Player)
		tree.Generate(game.Player)

		require.Equal(t, 11, tree.Len())
		require.Len(t, tree.Leaves(), 6)
	})
}

func TestSequenceTreeInvariants(t *testing.T) {
	root := game.DefaultGame()
	tree := NewSequenceTree(root)
	tree.Generate(game.Player)

	t.Run("depth and path bookkeeping", func(t *testing.T) {
		for i := 1; i < tree.Len(); i++ {
			node := tree.Node(i)
			require.Equal(t, len(node.Path), node.Depth, "Depth of node %d should equal its path length", i)
			require.Equal(t, RootIndex, node.Path[0], "Every path should start at the root")
			parent := node.MoveNode().Parent
			require.Equal(t, parent, node.Path[len(node.Path)-1], "Path should end at the parent")
			require.Less(t, parent, i, "Parents are always created before their children")
		}
	})

	t.Run("leaf classification", func(t *testing.T) {
		leaves := map[int]bool{}
		for _, leaf := range tree.Leaves() {
			leaves[leaf] = true
			move := tree.Node(leaf).MoveNode().Move
			require.True(t, !move.FreeTurn() || !move.Game().Status().InProgress(), "Leaf %d should end its chain", leaf)
		}
		for _, leaf := range tree.GameOverNodes() {
			require.True(t, leaves[leaf], "Game-over node %d should also be a leaf", leaf)
			require.False(t, tree.Node(leaf).Game().Status().InProgress())
		}
	})

	t.Run("path reconstruction", func(t *testing.T) {
		for _, leaf := range tree.Leaves() {
			replayed, err := root.PlaySequence(tree.MoveSequence(leaf))
			require.NoError(t, err)
			require.Equal(t, tree.Node(leaf).Game(), replayed, "Replaying leaf %d should reproduce its game", leaf)
		}
	})
}

func TestMoveSequence(t *testing.T) {
	tree := NewSequenceTree(endgame())
	tree.Generate(game.Player)

	require.Equal(t, []int{5}, tree.MoveSequence(3))
	require.Panics(t, func() {
		tree.MoveSequence(RootIndex)
	}, "The root has no move and signals a corrupted request")
}

func TestBestSequence(t *testing.T) {
	t.Run("maximizing on the default layout", func(t *testing.T) {
		tree := NewSequenceTree(game.DefaultGame())
		tree.Generate(game.Player)

		want := []int{5, 2, 1, 4, 0, 0, 4, 4, 5, 0, 4, 5, 3}
		require.Equal(t, want, tree.BestSequence(game.ByDifference, false, true))
		require.Equal(t, want, tree.BestSequence(game.ByDifference, true, true), "The best line already ends the game")
	})

	t.Run("minimizing with preferWin only considers finished games", func(t *testing.T) {
		tree := NewSequenceTree(game.DefaultGame())
		tree.Generate(game.Player)

		got := tree.BestSequence(game.ByDifference, true, false)

		require.Equal(t, []int{2, 4, 4, 5, 3, 5, 5, 3, 4, 5, 0, 1, 3, 4, 5}, got)
		index, value, ok := tree.BestLeaf(game.EvaluateDifference, true, false)
		require.True(t, ok)
		require.Equal(t, 21.0, value)
		require.False(t, tree.Node(index).Game().Status().InProgress())
	})

	t.Run("minimizing over all leaves", func(t *testing.T) {
		tree := NewSequenceTree(game.DefaultGame())
		tree.Generate(game.Player)

		require.Equal(t, []int{2, 0}, tree.BestSequence(game.ByDifference, false, false))
	})

	t.Run("preferWin falls back to all leaves", func(t *testing.T) {
		tree := NewSequenceTree(endgame())
		tree.Generate(game.Player)

		require.Equal(t, []int{5, 4, 5, 2}, tree.BestSequence(game.ByDifference, true, true))
	})

	t.Run("ties keep the earliest leaf", func(t *testing.T) {
		tree := NewSequenceTree(endgame())
		tree.Generate(game.Player)

		constant := func(game.Game) float64 { return 7 }
		index, value, ok := tree.BestLeaf(constant, false, true)

		require.True(t, ok)
		require.Equal(t, 7.0, value)
		require.Equal(t, tree.Leaves()[0], index)
	})

	t.Run("no leaves gives no recommendation", func(t *testing.T) {
		tree := NewSequenceTree(game.DefaultGame())
		tree.Generate(game.Opponent)

		got := tree.BestSequence(game.ByDifference, true, true)

		require.NotNil(t, got)
		require.Empty(t, got)
	})
}
