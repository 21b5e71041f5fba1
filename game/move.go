package game

// Move is one legal choice from a position. Moves only come from
// PossibleMoves.
type Move struct {
	pocket   int
	score    int
	freeTurn bool
	game     Game
}

// Pocket is the pit the move sows from.
func (m Move) Pocket() int { return m.pocket }

// Score is the mover's store after the move.
func (m Move) Score() int { return m.score }

// FreeTurn reports whether the mover is still on move afterwards.
func (m Move) FreeTurn() bool { return m.freeTurn }

// Game is the resulting position.
func (m Move) Game() Game { return m.game }

// PossibleMoves plays every non-empty pit of the side to move on a copy of
// the game, in pit order.
func (g Game) PossibleMoves() []Move {
	mover := g.board.Turn
	moves := make([]Move, 0, NumPits)
	for _, pocket := range g.LegalPockets() {
		next, err := g.Play(PocketLocation{Index: pocket, Side: mover})
		if err != nil {
			panic("legal pocket rejected: " + err.Error())
		}
		moves = append(moves, Move{
			pocket:   pocket,
			score:    next.board.Store(mover),
			freeTurn: next.board.Turn == mover,
			game:     next,
		})
	}
	return moves
}
