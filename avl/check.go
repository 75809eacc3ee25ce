// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Check - verify the structural invariants of the whole tree
//
// Checks key ordering, every cached height and the balancing rules
// at every node.  Prints the first inconsistency found and returns
// false.  This is a debugging aid for tests and the probe command,
// it recurses and is not part of the bounded-stack production paths.
func (tree *Tree) Check() bool {
	ok, _ := check(tree.root, nil, nil)
	return ok
}

// internal: consistency checker, returns the true recursive height
func check(p *Node, min *uint64, max *uint64) (bool, int) {
	if nil == p {
		return true, 0
	}
	if nil != min && p.key <= *min {
		fmt.Printf("check: node %d out of order: not above: %d\n", p.key, *min)
		return false, 0
	}
	if nil != max && p.key >= *max {
		fmt.Printf("check: node %d out of order: not below: %d\n", p.key, *max)
		return false, 0
	}

	ok, leftHeight := check(p.left, min, &p.key)
	if !ok {
		return false, 0
	}
	ok, rightHeight := check(p.right, &p.key, max)
	if !ok {
		return false, 0
	}

	h := leftHeight
	if rightHeight > h {
		h = rightHeight
	}
	h += 1
	if p.height != h {
		fmt.Printf("check: node %d cached height: %d  actual: %d\n", p.key, p.height, h)
		return false, 0
	}

	d := rightHeight - leftHeight
	if d < -1 || d > 1 {
		fmt.Printf("check: node %d unbalanced: left: %d  right: %d\n", p.key, leftHeight, rightHeight)
		return false, 0
	}

	return true, h
}
