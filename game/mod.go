// Package game models a two-player stone-sowing board game: the board, the
// sowing chain that resolves a single move, and the end-of-game conditions.
package game

import (
	"fmt"
	"strings"
)

const (
	NumPits     = 6
	StoreIndex  = 6
	NumPockets  = 7
	StartStones = 4
	TotalStones = 2 * NumPits * StartStones
	// MaxStones caps a manually entered board. Sowing is linear in the stone
	// count, so unbounded boards would stall a move.
	MaxStones = 2 * TotalStones
)

// Side is one of the two symmetric roles.
type Side int

const (
	Player Side = iota
	Opponent
)

// Opposite flips to the other side.
func (s Side) Opposite() Side {
	if s == Player {
		return Opponent
	}
	return Player
}

func (s Side) String() string {
	switch s {
	case Player:
		return "Player"
	case Opponent:
		return "Opponent"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts "player"/"p" and "opponent"/"o" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "player", "p":
		return Player, nil
	case "opponent", "o":
		return Opponent, nil
	}
	return Player, fmt.Errorf("unknown side %q", s)
}

type StateHash uint64

// Evaluate scores a game from the Player's perspective (positive favors Player).
type Evaluate func(Game) float64

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}
