package engine

import (
	"kalah/experiments/metrics"
	"kalah/game"
)

type Engine interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
