package game

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
)

var (
	ErrEmptyPocket       = errors.New("pocket is empty")
	ErrWrongPlayer       = errors.New("pocket belongs to the side not on move")
	ErrStorePocket       = errors.New("pocket is a store")
	ErrOutOfBoundsPocket = errors.New("pocket is out of bounds")
)

// Outcome is the result of a finished game.
type Outcome string

const (
	NoOutcome   Outcome = "*"
	PlayerWon   Outcome = "player"
	OpponentWon Outcome = "opponent"
	Tie         Outcome = "tie"
)

func (o Outcome) String() string {
	return string(o)
}

// Method is how a game ended.
type Method uint8

const (
	NoMethod Method = iota
	// StonesExhausted: one side has no stones left in its pits.
	StonesExhausted
	// TechnicalWin: the trailing side can no longer catch up.
	TechnicalWin
)

func (m Method) String() string {
	switch m {
	case NoMethod:
		return "none"
	case StonesExhausted:
		return "win"
	case TechnicalWin:
		return "technical win"
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

// Status is derived from the board, never tracked incrementally.
type Status struct {
	Outcome Outcome `json:"outcome"`
	Method  Method  `json:"method"`
}

var StatusInProgress = Status{Outcome: NoOutcome, Method: NoMethod}

func (s Status) InProgress() bool {
	return s.Method == NoMethod
}

func (s Status) String() string {
	switch {
	case s.InProgress():
		return "In progress"
	case s.Outcome == Tie:
		return "Over: tie"
	default:
		return fmt.Sprintf("Over: %s (%s)", s.winnerName(), s.Method)
	}
}

func (s Status) winnerName() string {
	if s.Outcome == PlayerWon {
		return "Player wins"
	}
	return "Opponent wins"
}

func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	for _, candidate := range []Method{NoMethod, StonesExhausted, TechnicalWin} {
		if candidate.String() == string(text) {
			*m = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown method %q", text)
}

func wins(side Side) Outcome {
	if side == Player {
		return PlayerWon
	}
	return OpponentWon
}

// Game is an immutable snapshot: a board plus its derived status. Play returns
// a new Game and leaves the receiver untouched.
type Game struct {
	board  Board
	status Status
}

// NewGame wraps a board and derives its status.
func NewGame(board Board) Game {
	return Game{board: board, status: board.status()}
}

// DefaultGame is a game on the standard starting layout.
func DefaultGame() Game {
	return NewGame(DefaultBoard())
}

func (g Game) Board() Board {
	return g.board
}

func (g Game) Status() Status {
	return g.status
}

func (g Game) Turn() Side {
	return g.board.Turn
}

// Play resolves a full move from a pocket, including every continuation sow,
// and recomputes the status.
func (g Game) Play(pocket PocketLocation) (Game, error) {
	if err := g.checkPocket(pocket); err != nil {
		return g, err
	}
	next := g
	next.board.sow(pocket)
	next.status = next.board.status()
	return next, nil
}

// PlayPocket plays pocket index on the side to move.
func (g Game) PlayPocket(index int) (Game, error) {
	return g.Play(PocketLocation{Index: index, Side: g.board.Turn})
}

// PlaySequence replays pocket indices in order, each on the side then to move.
func (g Game) PlaySequence(pockets []int) (Game, error) {
	current := g
	for i, pocket := range pockets {
		next, err := current.PlayPocket(pocket)
		if err != nil {
			return current, fmt.Errorf("step %d: %w", i, err)
		}
		current = next
	}
	return current, nil
}

// checkPocket applies the precondition order: wrong player, empty pocket,
// store, out of bounds. An index outside the board has no stone count, so
// it skips the emptiness check.
func (g Game) checkPocket(pocket PocketLocation) error {
	if pocket.Side != g.board.Turn {
		return fmt.Errorf("%w: %s", ErrWrongPlayer, pocket)
	}
	inBounds := pocket.Index >= 0 && pocket.Index < NumPockets
	if inBounds && g.board.Stones(pocket) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyPocket, pocket)
	}
	if pocket.Index == StoreIndex {
		return fmt.Errorf("%w: %s", ErrStorePocket, pocket)
	}
	if !inBounds {
		return fmt.Errorf("%w: %s", ErrOutOfBoundsPocket, pocket)
	}
	return nil
}

// LegalPockets lists the non-empty pits of the side to move.
func (g Game) LegalPockets() []int {
	pockets := make([]int, 0, NumPits)
	for i := 0; i < NumPits; i++ {
		if g.board.Stones(PocketLocation{Index: i, Side: g.board.Turn}) > 0 {
			pockets = append(pockets, i)
		}
	}
	return pockets
}

func (b Board) status() Status {
	if outcome, over := b.exhaustedOutcome(); over {
		return Status{Outcome: outcome, Method: StonesExhausted}
	}
	if side, over := b.technicalWinner(); over {
		return Status{Outcome: wins(side), Method: TechnicalWin}
	}
	return StatusInProgress
}

// exhaustedOutcome ends the game once either side's pits are all empty and
// scores it by the stores.
func (b Board) exhaustedOutcome() (Outcome, bool) {
	if b.PitStones(Player) != 0 && b.PitStones(Opponent) != 0 {
		return NoOutcome, false
	}
	player, opponent := b.Store(Player), b.Store(Opponent)
	switch {
	case player > opponent:
		return PlayerWon, true
	case player < opponent:
		return OpponentWon, true
	default:
		return Tie, true
	}
}

// technicalWinner reports a side whose store can no longer be reached by the
// other side even if every remaining pit stone ends up in that side's store.
func (b Board) technicalWinner() (Side, bool) {
	remaining := b.PitStones(Player) + b.PitStones(Opponent)
	player, opponent := b.Store(Player), b.Store(Opponent)
	if remaining+player < opponent {
		return Opponent, true
	}
	if remaining+opponent < player {
		return Player, true
	}
	return Player, false
}

// Hash identifies a position (both pocket arrays and the side to move).
func (g Game) Hash() StateHash {
	h := fnv.New64a()
	buf := make([]byte, 0, 2*NumPockets*binary.MaxVarintLen64+1)
	for _, side := range []Side{Player, Opponent} {
		for _, stones := range g.board.Pockets(side) {
			buf = binary.AppendUvarint(buf, uint64(stones))
		}
	}
	buf = append(buf, byte(g.board.Turn))
	h.Write(buf)
	return StateHash(h.Sum64())
}

type gameJSON struct {
	Board  Board  `json:"board"`
	Status Status `json:"status"`
}

func (g Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(gameJSON{Board: g.board, Status: g.status})
}

// UnmarshalJSON reads the board only; the status is derived again.
func (g *Game) UnmarshalJSON(data []byte) error {
	var decoded gameJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if err := decoded.Board.Validate(); err != nil {
		return err
	}
	*g = NewGame(decoded.Board)
	return nil
}
