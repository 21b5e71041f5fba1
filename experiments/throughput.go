package experiments

import (
	"kalah/experiments/metrics"
	"kalah/game"
)

// RunThroughputExperiment plays one self-play game per search depth so the
// move records show how nodes and time per turn grow with depth.
func RunThroughputExperiment(settings Settings, maxDepth int) (map[int]Summary, error) {
	settings.Games = 1
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= maxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: "search", Depth: depth, EvalMethod: game.ByDifference}
		configs = append(configs, config)
		// Same config for both players for the same playing strength
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return runExperiment("throughput", configs, matchUps, settings)
}
