// Package shell is a line-oriented menu over the game master: each line is a
// command followed by its arguments.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"kalah/game"
	"kalah/gamemaster"
	"kalah/utils"
	"strconv"
	"strings"
)

var errQuit = errors.New("quit")

const help = `commands:
  (r)eset                          start a new game
  (m)anual <player> <opponent> <side>
                                   enter a board, pockets as 7 comma separated counts
                                   e.g. m 4,4,4,4,4,4,0 4,4,4,4,4,4,0 player
  (s)tash                          save the current game
  (l)oad                           restore the stashed game
  (t)est <pit>                     show a move without playing it
  (p)lay <pit> [pit...]            play pits in order
  (g)enerate                       build the sequence tree of the side to move
  (f)ind                           find the best sequence for the side to move
  (d)isplay                        show the board
  (h)elp                           show this help
  (q)uit
`

type Shell struct {
	gm  *gamemaster.GameMaster
	out io.Writer
}

func New(gm *gamemaster.GameMaster, out io.Writer) *Shell {
	return &Shell{gm: gm, out: out}
}

// Run reads commands from in until it is exhausted or a quit command.
func (s *Shell) Run(in io.Reader) error {
	fmt.Fprint(s.out, s.gm.Game())
	fmt.Fprint(s.out, "> ")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(s.out, "> ")
			continue
		}

		parts := strings.Fields(line)
		err := s.Execute(parts[0], parts[1:])
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		fmt.Fprint(s.out, "> ")
	}
	return scanner.Err()
}

// Execute runs one command.
func (s *Shell) Execute(cmd string, args []string) error {
	switch strings.ToLower(cmd) {
	case "r", "reset":
		fmt.Fprint(s.out, s.gm.Reset())
	case "m", "manual":
		return s.handleManual(args)
	case "s", "stash":
		if err := s.gm.Stash(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "stashed")
	case "l", "load":
		g, err := s.gm.Load()
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, g)
	case "t", "test":
		return s.handleTest(args)
	case "p", "play":
		return s.handlePlay(args)
	case "g", "generate":
		stats := s.gm.GenerateTree()
		fmt.Fprintf(s.out, "%d nodes, %d leaves, %d game over\n", stats.Nodes, stats.Leaves, stats.GameOver)
	case "f", "find":
		recommendation, err := s.gm.BestSequence()
		if err != nil {
			return err
		}
		if len(recommendation.Sequence) == 0 {
			fmt.Fprintln(s.out, "no move to recommend")
			return nil
		}
		fmt.Fprintf(s.out, "best sequence %s (value %g)\n", utils.JoinInts(recommendation.Sequence, " "), recommendation.Value)
		fmt.Fprint(s.out, recommendation.Result)
	case "d", "display":
		fmt.Fprint(s.out, s.gm.Game())
	case "h", "help":
		fmt.Fprint(s.out, help)
	case "q", "quit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func (s *Shell) handleManual(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("manual needs player pockets, opponent pockets and side to move")
	}
	player, err := parsePockets(args[0])
	if err != nil {
		return fmt.Errorf("player pockets: %w", err)
	}
	opponent, err := parsePockets(args[1])
	if err != nil {
		return fmt.Errorf("opponent pockets: %w", err)
	}
	turn, err := game.ParseSide(args[2])
	if err != nil {
		return err
	}

	g, err := s.gm.SetBoard(game.NewBoard(player, opponent, turn))
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, g)
	return nil
}

func (s *Shell) handleTest(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("test needs one pit")
	}
	pit, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid pit %q", args[0])
	}
	current := s.gm.Game()
	result, err := s.gm.TestMove(pit)
	if err != nil {
		return err
	}
	selected := game.PocketLocation{Index: pit, Side: current.Turn()}
	fmt.Fprint(s.out, current.Render(&selected))
	fmt.Fprintln(s.out, "would become")
	fmt.Fprint(s.out, result)
	return nil
}

func (s *Shell) handlePlay(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("play needs at least one pit")
	}
	pits := make([]int, 0, len(args))
	for _, arg := range args {
		pit, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid pit %q", arg)
		}
		pits = append(pits, pit)
	}
	g, err := s.gm.PlaySequence(pits)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, g)
	return nil
}

func parsePockets(arg string) ([game.NumPockets]int, error) {
	var pockets [game.NumPockets]int
	fields := strings.Split(arg, ",")
	if len(fields) != game.NumPockets {
		return pockets, fmt.Errorf("want %d counts, got %d", game.NumPockets, len(fields))
	}
	for i, field := range fields {
		stones, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return pockets, fmt.Errorf("invalid count %q", field)
		}
		pockets[i] = stones
	}
	return pockets, nil
}
