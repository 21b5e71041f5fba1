package metrics

import (
	"kalah/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth          int
	EvalMethod     game.EvalMethod
	Duration       time.Duration
	Trees          int
	Nodes          int
	Leaves         int
	GameOverLeaves int
	MemoHits       int
}

type MoveMetric struct {
	Step     int
	Player   game.Side
	Sequence []int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Side
	Outcome        game.Outcome
	Method         game.Method
	PlayerStore    int
	OpponentStore  int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
}

type Collector interface {
	Start(depth int, method game.EvalMethod)
	AddTree(nodes, leaves, gameOverLeaves int)
	AddMemoHit()
	Complete() SearchMetric
}

type collector struct {
	depth          int
	method         game.EvalMethod
	startTime      time.Time
	trees          atomic.Int32
	nodes          atomic.Int64
	leaves         atomic.Int64
	gameOverLeaves atomic.Int64
	memoHits       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, method game.EvalMethod) {
	m.startTime = time.Now()
	m.depth = depth
	m.method = method
	m.trees.Store(0)
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.gameOverLeaves.Store(0)
	m.memoHits.Store(0)
}

func (m *collector) AddTree(nodes, leaves, gameOverLeaves int) {
	m.trees.Add(1)
	m.nodes.Add(int64(nodes))
	m.leaves.Add(int64(leaves))
	m.gameOverLeaves.Add(int64(gameOverLeaves))
}

func (m *collector) AddMemoHit() {
	m.memoHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:          m.depth,
		EvalMethod:     m.method,
		Duration:       time.Since(m.startTime),
		Trees:          int(m.trees.Load()),
		Nodes:          int(m.nodes.Load()),
		Leaves:         int(m.leaves.Load()),
		GameOverLeaves: int(m.gameOverLeaves.Load()),
		MemoHits:       int(m.memoHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, method game.EvalMethod)   {}
func (m *dummyCollector) AddTree(nodes, leaves, gameOverLeaves int) {}
func (m *dummyCollector) AddMemoHit()                               {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
