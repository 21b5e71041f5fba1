package game

import (
	"errors"
	"fmt"
)

var ErrTooManyStones = errors.New("board holds too many stones")

// PocketLocation addresses one pocket: indices 0..5 are pits, 6 is the store.
type PocketLocation struct {
	Index int  `json:"index"`
	Side  Side `json:"side"`
}

func (l PocketLocation) String() string {
	return fmt.Sprintf("(%d, %s)", l.Index, l.Side)
}

// Board holds both sides' pockets (slot 6 is the store) and the side to move.
type Board struct {
	PlayerPockets   [NumPockets]int `json:"player_pockets"`
	OpponentPockets [NumPockets]int `json:"opponent_pockets"`
	Turn            Side            `json:"turn"`
}

// NewBoard builds a board from an explicit layout.
func NewBoard(playerPockets, opponentPockets [NumPockets]int, turn Side) Board {
	return Board{
		PlayerPockets:   playerPockets,
		OpponentPockets: opponentPockets,
		Turn:            turn,
	}
}

// DefaultBoard is the starting layout: four stones per pit, empty stores,
// Player to move.
func DefaultBoard() Board {
	var pockets [NumPockets]int
	for i := 0; i < NumPits; i++ {
		pockets[i] = StartStones
	}
	return NewBoard(pockets, pockets, Player)
}

// Pockets returns the pocket array of one side.
func (b Board) Pockets(side Side) [NumPockets]int {
	if side == Player {
		return b.PlayerPockets
	}
	return b.OpponentPockets
}

// Stones returns the stone count of a pocket. The index must be in 0..6.
func (b Board) Stones(pocket PocketLocation) int {
	if pocket.Side == Player {
		return b.PlayerPockets[pocket.Index]
	}
	return b.OpponentPockets[pocket.Index]
}

// Store returns the store count of a side.
func (b Board) Store(side Side) int {
	return b.Stones(PocketLocation{Index: StoreIndex, Side: side})
}

// PitStones sums the six pits of a side, excluding its store.
func (b Board) PitStones(side Side) int {
	pockets := b.Pockets(side)
	sum := 0
	for _, stones := range pockets[:NumPits] {
		sum += stones
	}
	return sum
}

// Total counts every stone on the board, stores included.
func (b Board) Total() int {
	return b.PitStones(Player) + b.Store(Player) + b.PitStones(Opponent) + b.Store(Opponent)
}

// Validate reports negative pocket counts and boards above MaxStones.
func (b Board) Validate() error {
	total := 0
	for _, side := range []Side{Player, Opponent} {
		for i, stones := range b.Pockets(side) {
			if stones < 0 {
				return fmt.Errorf("pocket %s holds %d stones", PocketLocation{Index: i, Side: side}, stones)
			}
			if stones > MaxStones {
				return fmt.Errorf("%w: pocket %s holds %d", ErrTooManyStones, PocketLocation{Index: i, Side: side}, stones)
			}
			total += stones
		}
	}
	if total > MaxStones {
		return fmt.Errorf("%w: %d, at most %d", ErrTooManyStones, total, MaxStones)
	}
	if b.Turn != Player && b.Turn != Opponent {
		return fmt.Errorf("invalid turn %d", int(b.Turn))
	}
	return nil
}

func (b *Board) switchTurn() {
	b.Turn = b.Turn.Opposite()
}

// popStones empties a pocket and returns what it held.
func (b *Board) popStones(pocket PocketLocation) int {
	stones := b.Stones(pocket)
	if pocket.Side == Player {
		b.PlayerPockets[pocket.Index] = 0
	} else {
		b.OpponentPockets[pocket.Index] = 0
	}
	return stones
}

func (b *Board) incrementStones(pocket PocketLocation) {
	if pocket.Side == Player {
		b.PlayerPockets[pocket.Index]++
	} else {
		b.OpponentPockets[pocket.Index]++
	}
}

// pickupStones sows the contents of a pocket counter-clockwise, one stone per
// pocket. The mover's store receives a stone, the other store is skipped.
// It returns where the last stone was dropped.
func (b *Board) pickupStones(pocket PocketLocation) PocketLocation {
	stones := b.popStones(pocket)
	current, side := pocket.Index, pocket.Side
	for stones > 0 {
		current++
		if current == StoreIndex && side == b.Turn {
			b.incrementStones(PocketLocation{Index: StoreIndex, Side: side})
			stones--
			if stones == 0 {
				break
			}
			current, side = 0, side.Opposite()
		} else if current >= StoreIndex {
			current, side = 0, side.Opposite()
		}
		b.incrementStones(PocketLocation{Index: current, Side: side})
		stones--
	}
	return PocketLocation{Index: current, Side: side}
}

// sow plays the full chain from a pocket: land in the own store and the turn
// is kept, land in an empty pocket and the turn passes, otherwise pick the
// landing pocket up and keep sowing.
func (b *Board) sow(pocket PocketLocation) {
	last := b.pickupStones(pocket)
	for {
		if last.Index == StoreIndex && last.Side == b.Turn {
			return
		}
		if b.Stones(last) == 1 {
			b.switchTurn()
			return
		}
		last = b.pickupStones(last)
	}
}
