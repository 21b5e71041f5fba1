package searcher

import (
	"kalah/game"
	"math"
)

/*
The sequence tree is an arena: nodes live in one slice and refer to each other
by index. Nodes are only ever appended, so an index stays valid for the life of
the tree and can be stored in paths and in the leaf and game-over lists.

	nodes[0]          Root(game)
	nodes[1..k]       MoveNode{move, parent: 0}, one per legal pit of the root
	nodes[k+1..]      children of nodes[1], then its subtree, then nodes[2]...
*/

// SequenceTree holds every chain of moves one side can make within a turn.
type SequenceTree struct {
	nodes []SequenceNode
	// leaves end a chain: the turn passed or the game ended.
	leaves []int
	// gameOver is the subset of leaves whose move ended the game.
	gameOver []int
}

func NewSequenceTree(g game.Game) *SequenceTree {
	root := SequenceNode{
		Kind:  Root{Game: g},
		Depth: 0,
		Path:  []int{},
	}
	return &SequenceTree{
		nodes:    []SequenceNode{root},
		leaves:   []int{},
		gameOver: []int{},
	}
}

func (t *SequenceTree) Len() int {
	return len(t.nodes)
}

func (t *SequenceTree) Node(index int) SequenceNode {
	return t.nodes[index]
}

// Root returns the position the tree was built from.
func (t *SequenceTree) Root() game.Game {
	return t.nodes[RootIndex].Game()
}

func (t *SequenceTree) Leaves() []int {
	return append([]int(nil), t.leaves...)
}

func (t *SequenceTree) GameOverNodes() []int {
	return append([]int(nil), t.gameOver...)
}

// Generate expands the whole tree from the root for the given side.
func (t *SequenceTree) Generate(turn game.Side) {
	t.GenerateFrom(turn, RootIndex)
}

// GenerateFrom expands the subtree below parent depth first. A node is not
// expanded once its game is over or the turn has passed from the given side.
// Pending nodes are kept on an explicit stack, children pushed in reverse so
// they are expanded in pit order.
func (t *SequenceTree) GenerateFrom(turn game.Side, parent int) {
	pending := []int{parent}
	for len(pending) > 0 {
		index := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		children := t.expand(turn, index)
		for i := len(children) - 1; i >= 0; i-- {
			pending = append(pending, children[i])
		}
	}
}

// expand appends one child per possible move and returns their indices. A node
// that was already expanded returns its existing children.
func (t *SequenceTree) expand(turn game.Side, index int) []int {
	node := t.nodes[index]
	if len(node.Children) > 0 {
		return node.Children
	}
	g := node.Game()
	if !g.Status().InProgress() || g.Turn() != turn {
		return nil
	}

	moves := g.PossibleMoves()
	children := make([]int, 0, len(moves))
	for _, move := range moves {
		children = append(children, t.addChild(move, index))
	}
	t.nodes[index].Children = children
	return children
}

func (t *SequenceTree) addChild(move game.Move, parent int) int {
	parentNode := t.nodes[parent]
	path := make([]int, len(parentNode.Path), len(parentNode.Path)+1)
	copy(path, parentNode.Path)
	path = append(path, parent)

	t.nodes = append(t.nodes, SequenceNode{
		Kind:  MoveNode{Move: move, Parent: parent},
		Depth: parentNode.Depth + 1,
		Path:  path,
	})
	index := len(t.nodes) - 1

	over := !move.Game().Status().InProgress()
	if !move.FreeTurn() || over {
		t.leaves = append(t.leaves, index)
	}
	if over {
		t.gameOver = append(t.gameOver, index)
	}
	return index
}

// MoveSequence lists the pits that replay the chain from the root to a node.
func (t *SequenceTree) MoveSequence(index int) []int {
	node := t.nodes[index]
	sequence := make([]int, 0, len(node.Path)+1)
	for _, ancestor := range node.Path {
		if t.nodes[ancestor].IsRoot() {
			continue
		}
		sequence = append(sequence, t.nodes[ancestor].MoveNode().Move.Pocket())
	}
	return append(sequence, node.MoveNode().Move.Pocket())
}

// candidates are the game-over nodes when preferWin is set and there are any,
// otherwise all leaves.
func (t *SequenceTree) candidates(preferWin bool) []int {
	if preferWin && len(t.gameOver) > 0 {
		return t.gameOver
	}
	return t.leaves
}

// BestLeaf scans the candidates in generation order and keeps a leaf only if
// it strictly improves on the best so far, so ties keep the earliest leaf.
// ok is false when no candidate beats the starting infinity.
func (t *SequenceTree) BestLeaf(evaluate game.Evaluate, preferWin, maximize bool) (index int, value float64, ok bool) {
	return t.bestBy(func(leaf int) float64 {
		return evaluate(t.nodes[leaf].MoveNode().Move.Game())
	}, preferWin, maximize)
}

func (t *SequenceTree) bestBy(score func(leaf int) float64, preferWin, maximize bool) (int, float64, bool) {
	best := math.Inf(-1)
	better := func(a, b float64) bool { return a > b }
	if !maximize {
		best = math.Inf(1)
		better = func(a, b float64) bool { return a < b }
	}

	bestIndex := -1
	for _, leaf := range t.candidates(preferWin) {
		if value := score(leaf); better(value, best) {
			best = value
			bestIndex = leaf
		}
	}
	return bestIndex, best, bestIndex >= 0
}

// BestSequence returns the chain whose resulting game scores best under the
// evaluation method, or an empty sequence when there is no recommendation.
func (t *SequenceTree) BestSequence(method game.EvalMethod, preferWin, maximize bool) []int {
	index, _, ok := t.BestLeaf(method.Func(), preferWin, maximize)
	if !ok {
		return []int{}
	}
	return t.MoveSequence(index)
}
