// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node with a specific key
//
// Returns nil if the key is not present.
func (tree *Tree) Search(key uint64) *Node {
	p := tree.root
	for nil != p {
		if key == p.key {
			return p
		} else if key < p.key {
			p = p.left
		} else {
			p = p.right
		}
	}
	return nil
}
