package agent

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that looks several turns ahead.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindSequence(g game.Game) ([]int, metrics.SearchMetric) {
	sequence, _, metric := a.searcher.FindSequence(g)
	return sequence, metric
}
