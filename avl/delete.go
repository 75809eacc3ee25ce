// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Delete - remove the node with a specific key from the tree
//
// Returns the removed node, with its link fields cleared, so that
// the caller regains ownership of the memory.  Fails with
// fault.KeyNotFound if no node carries the key; the tree is never
// modified on any failure.  Rebalancing may change the tree's root.
func (tree *Tree) Delete(key uint64) (*Node, error) {

	var ancestors [maxHeight]**Node
	ancestorCount := 0

	// find the node to be removed, recording link addresses as in
	// Insert
	pp := &tree.root
	var p *Node
	for ancestorCount < maxHeight {
		p = *pp
		if nil == p {
			return nil, fault.KeyNotFound
		}

		ancestors[ancestorCount] = pp
		ancestorCount += 1

		if key == p.key {
			break
		} else if key < p.key {
			pp = &p.left
		} else {
			pp = &p.right
		}
	}
	if maxHeight == ancestorCount {
		return nil, fault.TreeTooDeep
	}

	removed := p

	if nil == p.left {

		// no left sub-tree: the balancing rules allow at most a
		// single node on the right, it takes over this slot
		// directly and was already balanced, so the last
		// recorded slot needs no second look
		*pp = p.right
		ancestorCount -= 1

	} else {

		// promote the in-order predecessor, the rightmost node
		// of the left sub-tree, into the removed node's place
		removedSlot := pp
		spliceIndex := ancestorCount

		pp = &p.left
		for ancestorCount < maxHeight {
			p = *pp
			if nil == p.right {
				break
			}
			ancestors[ancestorCount] = pp
			ancestorCount += 1
			pp = &p.right
		}
		if maxHeight == ancestorCount {
			return nil, fault.TreeTooDeep
		}

		// splice out the predecessor: its only possible child
		// is on the left
		*pp = p.left

		// the predecessor inherits the removed node's links,
		// height and position
		p.left = removed.left
		p.right = removed.right
		p.height = removed.height
		*removedSlot = p

		// the removed node's left link now lives inside the
		// promoted node, repoint the recorded slot so the
		// rebalance walks live references
		ancestors[spliceIndex] = &p.left
	}

	removed.left = nil
	removed.right = nil
	removed.height = 0
	tree.count -= 1

	rebalance(ancestors[:ancestorCount])

	return removed, nil
}
