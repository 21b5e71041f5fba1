package engine

import (
	"kalah/agent"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/meta"
	"kalah/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	game     game.Game
	agents   map[game.Side]agent.Agent
	maxTurns int
}

// NewLocalEngine pits player against opponent from the given position. A
// non-positive maxTurns falls back to meta.MAX_TURNS.
func NewLocalEngine(start game.Game, player, opponent agent.Agent, maxTurns int) *LocalEngine {
	if player == nil || opponent == nil {
		panic("need an agent for each side")
	}
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	return &LocalEngine{
		game: start,
		agents: map[game.Side]agent.Agent{
			game.Player:   player,
			game.Opponent: opponent,
		},
		maxTurns: maxTurns,
	}
}

func (e *LocalEngine) Game() game.Game {
	return e.game
}

// Run executes the game loop until the game is over or the turn limit is hit.
// An unfinished game reports game.NoOutcome.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.game.Turn(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Msgf("%s is starting", e.game.Turn())

	turn := 1
	for e.game.Status().InProgress() && turn <= e.maxTurns {
		mover := e.game.Turn()
		sequence, searchMetric := e.agents[mover].FindSequence(e.game)

		played := e.playTurn(sequence)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       mover,
			Sequence:     played,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s played %v", turn, mover, played)
		turn++
	}

	if e.game.Status().InProgress() {
		log.Warn().Msgf("stopped after %d turns without a result", e.maxTurns)
	} else {
		log.Debug().Msgf("game over after %d turns: %s", turn-1, e.game.Status())
	}

	status := e.game.Status()
	board := e.game.Board()
	gameMetric.Outcome = status.Outcome
	gameMetric.Method = status.Method
	gameMetric.PlayerStore = board.Store(game.Player)
	gameMetric.OpponentStore = board.Store(game.Opponent)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalTurns = turn - 1
	return status.Outcome, gameMetric, moveMetrics
}

// playTurn replays a recommended sequence until the turn passes. A pocket that
// is not legal, or a sequence that runs out while the turn lasts, is replaced
// by the first legal pocket. It returns the pockets actually played.
func (e *LocalEngine) playTurn(sequence []int) []int {
	mover := e.game.Turn()
	played := []int{}
	for step := 0; e.game.Status().InProgress() && e.game.Turn() == mover; step++ {
		legal := e.game.LegalPockets()
		pocket := legal[0]
		if step < len(sequence) {
			if utils.FindIndex(legal, sequence[step]) >= 0 {
				pocket = sequence[step]
			} else {
				log.Warn().Msgf("%s recommended illegal pocket %d, playing %d", mover, sequence[step], pocket)
			}
		} else if len(sequence) > 0 {
			log.Warn().Msgf("%s sequence %v ended mid-turn, playing %d", mover, sequence, pocket)
		}

		next, err := e.game.PlayPocket(pocket)
		if err != nil {
			panic("legal pocket rejected: " + err.Error())
		}
		e.game = next
		played = append(played, pocket)
	}
	if len(played) < len(sequence) {
		log.Warn().Msgf("%s sequence %v outlasted the turn, ignored %v", mover, sequence, sequence[len(played):])
	}
	return played
}
