package searcher

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"sync"
)

// Searcher looks several turns ahead. Each turn is one SequenceTree; its
// leaves are the positions handed to the next turn. Player turns maximize the
// evaluation and Opponent turns minimize it. There is no pruning.
// FindSequence calls are serialized since they share one metrics collector.
type Searcher struct {
	mu         sync.Mutex
	depth      int
	evalMethod game.EvalMethod
	preferWin  bool
	metrics    metrics.Collector
}

type memoKey struct {
	game  game.Game
	depth int
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:      DefaultDepth,
		evalMethod: game.ByDifference,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// FindSequence returns the best chain for the side to move, its minimax value
// and search metrics. The sequence is empty when no chain qualifies.
func (s *Searcher) FindSequence(g game.Game) ([]int, float64, metrics.SearchMetric) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.Start(s.depth, s.evalMethod)
	evaluate := s.evalMethod.Func()

	if !g.Status().InProgress() {
		return []int{}, evaluate(g), s.metrics.Complete()
	}

	memo := make(map[memoKey]float64)
	tree := s.buildTree(g)
	index, value, ok := tree.bestBy(func(leaf int) float64 {
		return s.value(tree.Node(leaf).Game(), s.depth-1, evaluate, memo)
	}, s.preferWin, g.Turn() == game.Player)

	if !ok {
		return []int{}, evaluate(g), s.metrics.Complete()
	}
	return tree.MoveSequence(index), value, s.metrics.Complete()
}

// value is the minimax value of a position with depth turns left to search.
func (s *Searcher) value(g game.Game, depth int, evaluate game.Evaluate, memo map[memoKey]float64) float64 {
	if depth <= 0 || !g.Status().InProgress() {
		return evaluate(g)
	}
	key := memoKey{game: g, depth: depth}
	if v, ok := memo[key]; ok {
		s.metrics.AddMemoHit()
		return v
	}

	tree := s.buildTree(g)
	_, v, ok := tree.bestBy(func(leaf int) float64 {
		return s.value(tree.Node(leaf).Game(), depth-1, evaluate, memo)
	}, false, g.Turn() == game.Player)
	if !ok {
		v = evaluate(g)
	}
	memo[key] = v
	return v
}

func (s *Searcher) buildTree(g game.Game) *SequenceTree {
	tree := NewSequenceTree(g)
	tree.Generate(g.Turn())
	s.metrics.AddTree(tree.Len(), len(tree.leaves), len(tree.gameOver))
	return tree
}
