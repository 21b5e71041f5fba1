package agent

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal
// pockets for as long as the turn lasts. The same seed gives the same games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindSequence(g game.Game) ([]int, metrics.SearchMetric) {
	start := time.Now()
	mover := g.Turn()
	sequence := []int{}
	for g.Status().InProgress() && g.Turn() == mover {
		pockets := g.LegalPockets()
		pocket := pockets[a.rng.Intn(len(pockets))]
		next, err := g.PlayPocket(pocket)
		if err != nil {
			panic("legal pocket rejected: " + err.Error())
		}
		sequence = append(sequence, pocket)
		g = next
	}
	return sequence, metrics.SearchMetric{Duration: time.Since(start)}
}
