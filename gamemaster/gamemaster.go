package gamemaster

import (
	"errors"
	"fmt"
	"kalah/game"
	"kalah/searcher"
	"kalah/storage"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrGameOver = errors.New("game is over")

// TreeStats summarizes a generated sequence tree.
type TreeStats struct {
	Nodes    int `json:"nodes"`
	Leaves   int `json:"leaves"`
	GameOver int `json:"game_over"`
}

// Recommendation is the best chain for the side to move.
type Recommendation struct {
	Sequence []int     `json:"sequence"`
	Value    float64   `json:"value"`
	Result   game.Game `json:"result"`
}

// GameMaster owns the current game. The shell and the HTTP server both go
// through it, so every method is safe for concurrent use.
type GameMaster struct {
	mu       sync.Mutex
	game     game.Game
	stash    storage.Stash
	searcher *searcher.Searcher
}

func NewGameMaster(stash storage.Stash, s *searcher.Searcher) *GameMaster {
	if stash == nil {
		stash = storage.NewMemoryStash()
	}
	if s == nil {
		s = searcher.NewSearcher()
	}
	return &GameMaster{
		game:     game.DefaultGame(),
		stash:    stash,
		searcher: s,
	}
}

func (gm *GameMaster) Game() game.Game {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.game
}

// Reset starts over from the standard layout with Player to move.
func (gm *GameMaster) Reset() game.Game {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.game = game.DefaultGame()
	log.Info().Msg("game reset")
	return gm.game
}

// SetBoard replaces the current game with a manually entered board. Its status
// is derived from the board, so a finished position reports as over.
func (gm *GameMaster) SetBoard(board game.Board) (game.Game, error) {
	if err := board.Validate(); err != nil {
		return game.Game{}, err
	}
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.game = game.NewGame(board)
	if total := board.Total(); total != game.TotalStones {
		log.Warn().Msgf("entered board holds %d stones instead of %d", total, game.TotalStones)
	}
	log.Info().Msgf("board set, status %s", gm.game.Status())
	return gm.game, nil
}

// TestMove shows the result of playing pocket without applying it.
func (gm *GameMaster) TestMove(pocket int) (game.Game, error) {
	current := gm.Game()
	if !current.Status().InProgress() {
		return current, ErrGameOver
	}
	return current.PlayPocket(pocket)
}

// Play applies pocket for the side to move. The current game is unchanged on
// error.
func (gm *GameMaster) Play(pocket int) (game.Game, error) {
	return gm.PlaySequence([]int{pocket})
}

// PlaySequence applies all pockets or none of them.
func (gm *GameMaster) PlaySequence(pockets []int) (game.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if !gm.game.Status().InProgress() {
		return gm.game, ErrGameOver
	}
	next, err := gm.game.PlaySequence(pockets)
	if err != nil {
		return gm.game, err
	}
	log.Info().Msgf("played %v, %s to move, status %s", pockets, next.Turn(), next.Status())
	gm.game = next
	return gm.game, nil
}

// Stash saves the current game, replacing any earlier snapshot.
func (gm *GameMaster) Stash() error {
	current := gm.Game()
	if err := gm.stash.Save(current); err != nil {
		return fmt.Errorf("failed to stash game: %w", err)
	}
	log.Info().Msgf("stashed game %x", uint64(current.Hash()))
	return nil
}

// Load makes the stashed snapshot the current game.
func (gm *GameMaster) Load() (game.Game, error) {
	loaded, err := gm.stash.Load()
	if err != nil {
		return gm.Game(), err
	}
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.game = loaded
	log.Info().Msgf("loaded game %x", uint64(loaded.Hash()))
	return gm.game, nil
}

// GenerateTree builds the sequence tree of the side to move.
func (gm *GameMaster) GenerateTree() TreeStats {
	current := gm.Game()
	tree := searcher.NewSequenceTree(current)
	tree.Generate(current.Turn())
	stats := TreeStats{
		Nodes:    tree.Len(),
		Leaves:   len(tree.Leaves()),
		GameOver: len(tree.GameOverNodes()),
	}
	log.Info().Msgf("generated tree: %+v", stats)
	return stats
}

// BestSequence asks the searcher for the side to move. The sequence is empty
// when the game is over.
func (gm *GameMaster) BestSequence() (Recommendation, error) {
	current := gm.Game()
	sequence, value, metric := gm.searcher.FindSequence(current)
	result, err := current.PlaySequence(sequence)
	if err != nil {
		return Recommendation{}, fmt.Errorf("searcher recommended %v: %w", sequence, err)
	}
	log.Info().Msgf("best sequence %v with value %.2f (%d trees, %d nodes)", sequence, value, metric.Trees, metric.Nodes)
	return Recommendation{Sequence: sequence, Value: value, Result: result}, nil
}

func (gm *GameMaster) Close() error {
	return gm.stash.Close()
}
