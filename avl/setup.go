// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// deepest tree that insert, delete and walk will follow
//
// a 64 bit address space cannot hold more than 2^64 nodes and the
// worst case AVL height is 1.44·log2(N), just under 93 levels, so
// only a corrupted tree can ever reach this bound
const maxHeight = 96

// size of the node stacks used by the non-recursive walk
const walkStackSize = 2 * maxHeight

// Node - the tree node header
//
// Embed this in a caller defined record; the caller owns the memory
// and must keep the record alive from a successful Insert until the
// node is handed back by Delete.  All fields are managed by this
// package.
type Node struct {
	key    uint64
	left   *Node
	right  *Node
	height int // leaf = 1, empty sub-tree = 0
}

// Key - read the sorting key of a node
func (p *Node) Key() uint64 {
	return p.key
}

// Left - root of the left sub-tree, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - root of the right sub-tree, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// Tree - type to hold the root node of a tree
//
// Note: rebalancing may change which node is the root, so always go
// through the tree and never cache a former root node.
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - the cached height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// height of a possibly absent sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}
