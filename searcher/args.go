package searcher

import (
	"kalah/experiments/metrics"
	"kalah/game"
)

type Option func(s *Searcher)

// WithDepth sets how many turns to look ahead. One searches the current turn.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvalMethod(method game.EvalMethod) Option {
	return func(s *Searcher) {
		s.evalMethod = method
	}
}

// WithPreferWin restricts the root choice to game-ending chains when any
// exist.
func WithPreferWin(preferWin bool) Option {
	return func(s *Searcher) {
		s.preferWin = preferWin
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}
