// Package searcher enumerates every move chain a side can play in one turn
// and picks the best one, optionally looking several turns ahead.
package searcher

// RootIndex is the arena position of a tree's root node.
const RootIndex = 0

// DefaultDepth searches the current turn only.
const DefaultDepth = 1
