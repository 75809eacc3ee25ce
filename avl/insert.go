// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Insert - add a node to the tree
//
// The node memory is supplied by the caller, usually embedded in a
// larger record, and must not currently be linked into any tree; its
// link fields are overwritten.  The key is stamped into the node
// here and cannot be changed while the node stays in the tree.  If
// the key is already present the insert fails with
// fault.DuplicateKey and the tree is unchanged.  Rebalancing may
// change the tree's root.
func (tree *Tree) Insert(key uint64, node *Node) error {
	if nil == node {
		return fault.InvalidNode
	}

	var ancestors [maxHeight]**Node
	ancestorCount := 0

	// find the empty slot where the new leaf belongs, recording
	// the address of every link followed so that rebalancing can
	// re-root each sub-tree in place
	pp := &tree.root
	for ancestorCount < maxHeight {
		p := *pp
		if nil == p {
			break // this slot takes the new leaf
		}

		ancestors[ancestorCount] = pp
		ancestorCount += 1

		if key == p.key {
			return fault.DuplicateKey
		} else if key < p.key {
			pp = &p.left
		} else {
			pp = &p.right
		}
	}
	if maxHeight == ancestorCount {
		// a balanced tree can never be this deep
		return fault.TreeTooDeep
	}

	node.key = key
	node.left = nil
	node.right = nil
	node.height = 1

	*pp = node
	tree.count += 1

	rebalance(ancestors[:ancestorCount])

	return nil
}
