package agent

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/searcher"
	"time"
)

type greedyAgent struct {
	method    game.EvalMethod
	preferWin bool
}

// NewGreedyAgent returns an agent that only considers the current turn: it
// builds one sequence tree and takes its best chain.
func NewGreedyAgent(method game.EvalMethod, preferWin bool) Agent {
	return greedyAgent{method: method, preferWin: preferWin}
}

func (a greedyAgent) FindSequence(g game.Game) ([]int, metrics.SearchMetric) {
	start := time.Now()
	tree := searcher.NewSequenceTree(g)
	tree.Generate(g.Turn())
	sequence := tree.BestSequence(a.method, a.preferWin, g.Turn() == game.Player)

	return sequence, metrics.SearchMetric{
		Depth:          1,
		EvalMethod:     a.method,
		Duration:       time.Since(start),
		Trees:          1,
		Nodes:          tree.Len(),
		Leaves:         len(tree.Leaves()),
		GameOverLeaves: len(tree.GameOverNodes()),
	}
}
