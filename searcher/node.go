package searcher

import "kalah/game"

// NodeKind is either Root or MoveNode.
type NodeKind interface {
	isNodeKind()
}

// Root holds the position the tree was built from.
type Root struct {
	Game game.Game
}

// MoveNode is one move of a chain and the arena index of the node it follows.
type MoveNode struct {
	Move   game.Move
	Parent int
}

func (Root) isNodeKind()     {}
func (MoveNode) isNodeKind() {}

// SequenceNode is an arena entry. Children, parent and path are arena indices.
type SequenceNode struct {
	Kind     NodeKind
	Children []int
	// Depth counts moves from the root.
	Depth int
	// Path lists ancestor indices from the root, excluding the node itself.
	Path []int
}

// Game is the position at this node.
func (n SequenceNode) Game() game.Game {
	switch kind := n.Kind.(type) {
	case Root:
		return kind.Game
	case MoveNode:
		return kind.Move.Game()
	}
	panic("unexpected node kind")
}

// MoveNode returns the move variant and panics on the root, which marks a
// corrupted arena.
func (n SequenceNode) MoveNode() MoveNode {
	moveNode, ok := n.Kind.(MoveNode)
	if !ok {
		panic("node is not a move node")
	}
	return moveNode
}

func (n SequenceNode) IsRoot() bool {
	_, ok := n.Kind.(Root)
	return ok
}
