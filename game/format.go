package game

import (
	"fmt"
	"strings"
)

func (g Game) String() string {
	return g.Render(nil)
}

// Render draws the board with the Opponent's store on top, Player pit i beside
// Opponent pit 5-i, and the Player's store at the bottom. A non-nil selected
// pocket is marked with an arrow.
func (g Game) Render(selected *PocketLocation) string {
	mark := func(pocket PocketLocation) string {
		if selected != nil && *selected == pocket {
			return "->"
		}
		return "  "
	}
	cell := func(pocket PocketLocation) string {
		return fmt.Sprintf("%4s %2d", mark(pocket), g.board.Stones(pocket))
	}

	var sb strings.Builder
	opponentStore := PocketLocation{Index: StoreIndex, Side: Opponent}
	playerStore := PocketLocation{Index: StoreIndex, Side: Player}

	fmt.Fprintf(&sb, "    %s\n", cell(opponentStore))
	for i := 0; i < NumPits; i++ {
		player := PocketLocation{Index: i, Side: Player}
		opponent := PocketLocation{Index: NumPits - 1 - i, Side: Opponent}
		fmt.Fprintf(&sb, "%s  %s\n", cell(player), cell(opponent))
	}
	fmt.Fprintf(&sb, "    %s\n\n", cell(playerStore))
	fmt.Fprintf(&sb, "%s's turn\n", g.board.Turn)
	fmt.Fprintf(&sb, "Game state: %s\n", g.status)
	return sb.String()
}
