package sgtree

import "github.com/arenasg/scapegoat/arena"

// Index is the arena handle used throughout this package to link nodes
// together in place of pointers.
type Index = arena.Index

// noIndex is the local spelling of arena.NoIndex, used to make comparisons
// in this package read naturally.
const noIndex = arena.NoIndex

// node is the record stored in a Tree's arena. size is only maintained when
// the Tree was built WithFastRebalance; it is left at zero otherwise.
type node[K, V any] struct {
	key         K
	val         V
	left, right Index
	size        int
}
