package agent

import (
	"fmt"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/searcher"
)

type Agent interface {
	// FindSequence returns the pockets to play for the side to move and performance metrics (if collected)
	FindSequence(g game.Game) ([]int, metrics.SearchMetric)
}

type Kind string

const (
	Search Kind = "search"
	Greedy Kind = "greedy"
	Random Kind = "random"
)

// FromConfig builds the agent an experiment match-up describes.
func FromConfig(config metrics.AgentConfig) (Agent, error) {
	if !config.EvalMethod.Valid() {
		return nil, fmt.Errorf("agent %d: unknown evaluation method %d", config.ID, int(config.EvalMethod))
	}
	switch Kind(config.Kind) {
	case Search, "":
		options := []searcher.Option{
			searcher.WithDepth(config.Depth),
			searcher.WithEvalMethod(config.EvalMethod),
			searcher.WithPreferWin(config.PreferWin),
			searcher.WithMetrics(),
		}
		return NewSearchAgent(searcher.NewSearcher(options...)), nil
	case Greedy:
		return NewGreedyAgent(config.EvalMethod, config.PreferWin), nil
	case Random:
		return NewRandomAgent(config.Seed), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}
