// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Successor - find the node with the smallest key strictly greater
// than the given key
//
// The given key need not itself be present.  Returns nil if every
// key is less than or equal to the given key.
func (tree *Tree) Successor(key uint64) *Node {
	var successor *Node
	p := tree.root
	for nil != p {
		if key >= p.key {
			p = p.right
		} else {
			successor = p
			p = p.left
		}
	}
	return successor
}

// Predecessor - find the node with the largest key strictly less
// than the given key
//
// The given key need not itself be present.  Returns nil if every
// key is greater than or equal to the given key.
func (tree *Tree) Predecessor(key uint64) *Node {
	var predecessor *Node
	p := tree.root
	for nil != p {
		if key <= p.key {
			p = p.left
		} else {
			predecessor = p
			p = p.right
		}
	}
	return predecessor
}

// First - return the node with the lowest key value, nil when empty
func (tree *Tree) First() *Node {
	p := tree.root
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value, nil when empty
func (tree *Tree) Last() *Node {
	p := tree.root
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
