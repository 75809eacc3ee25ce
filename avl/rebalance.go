// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rebalance - restore the balancing rules along a mutation path
//
// ancestors holds the addresses of the links followed from the root
// to the mutation point, deepest last.  Each slot is examined in
// turn: a sub-tree violating the balancing rules is fixed with a
// single or double rotation, overwriting the slot when the rotation
// re-roots the sub-tree.  All heights are recomputed directly from
// the known sub-tree heights, no descent is ever needed.  The pass
// stops as soon as a sub-tree keeps its previous height because
// nothing above can then have been affected.
func rebalance(ancestors []**Node) {

loop:
	for i := len(ancestors) - 1; i >= 0; i -= 1 {

		pp := ancestors[i]
		p := *pp
		leftHeight := height(p.left)
		rightHeight := height(p.right)

		switch {
		case rightHeight-leftHeight < -1:
			// left branch is too high; p.left cannot be nil here
			p1 := p.left
			p1RightHeight := height(p1.right)

			if nil != p1.left && p1.left.height >= p1RightHeight {
				// single LL rotation
				p.left = p1.right
				p.height = p1RightHeight + 1
				p1.right = p
				p1.height = p1RightHeight + 2
				*pp = p1
			} else {
				// double LR rotation
				//
				// the balancing rules guarantee p1.right is
				// present in this configuration
				p2 := p1.right
				p1.right = p2.left
				p1.height = p1RightHeight
				p.left = p2.right
				p.height = p1RightHeight
				p2.left = p1
				p2.right = p
				p2.height = p1RightHeight + 1
				*pp = p2
			}

		case rightHeight-leftHeight > 1:
			// right branch is too high; p.right cannot be nil here
			p1 := p.right
			p1LeftHeight := height(p1.left)

			if nil != p1.right && p1.right.height >= p1LeftHeight {
				// single RR rotation
				p.right = p1.left
				p.height = p1LeftHeight + 1
				p1.left = p
				p1.height = p1LeftHeight + 2
				*pp = p1
			} else {
				// double RL rotation
				p2 := p1.left
				p1.left = p2.right
				p1.height = p1LeftHeight
				p.right = p2.left
				p.height = p1LeftHeight
				p2.right = p1
				p2.left = p
				p2.height = p1LeftHeight + 1
				*pp = p2
			}

		default:
			// no rotation, just refresh the cached height
			h := leftHeight
			if rightHeight > leftHeight {
				h = rightHeight
			}
			h += 1
			if p.height == h {
				break loop
			}
			p.height = h
		}
	}
}
