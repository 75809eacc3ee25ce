// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// WalkFunc - the type of a tree walk callback
//
// Called with the current node and the argument given to Walk; a
// non-nil error stops the walk immediately and is handed back to the
// Walk caller.  The callback must not modify the tree being walked.
type WalkFunc func(node *Node, arg interface{}) error

// one post-order stack entry, visited marks the second encounter
type walkEntry struct {
	node    *Node
	visited bool
}

// Walk - visit every node, invoking up to three callbacks
//
// preFn, inFn and postFn are invoked in pre-order, in-order and
// post-order respectively, each with its own argument.  Any of them
// may be nil to disable that order.  The first callback error aborts
// the entire walk: no further callbacks of any order run and the
// error is returned unchanged.  An empty tree succeeds without
// invoking anything.
//
// The walk never recurses, it runs on fixed size node stacks:
// pre-order and in-order share a single pass, post-order needs its
// own second pass.  Exhausting a stack means the tree is deeper than
// the balancing rules allow, so the walk stops with
// fault.WalkStackOverflow.
func (tree *Tree) Walk(
	preFn WalkFunc, preArg interface{},
	inFn WalkFunc, inArg interface{},
	postFn WalkFunc, postArg interface{},
) error {

	if nil == tree.root {
		return nil
	}

	// pre-order and in-order pass: stack nodes while descending
	// left, calling pre-order on the way down and in-order as each
	// node is popped before moving right
	if nil != preFn || nil != inFn {

		var nodeStack [walkStackSize]*Node
		ix := 0

		p := tree.root
		for {
			for nil != p {
				if nil != preFn {
					err := preFn(p, preArg)
					if nil != err {
						return err
					}
				}

				if ix >= walkStackSize {
					return fault.WalkStackOverflow
				}
				nodeStack[ix] = p
				ix += 1

				p = p.left
			}

			if 0 == ix {
				break
			}
			ix -= 1
			p = nodeStack[ix]

			// do not touch p after its in-order callback,
			// the application may be recycling the record
			right := p.right
			if nil != inFn {
				err := inFn(p, inArg)
				if nil != err {
					return err
				}
			}
			p = right
		}
	}

	// post-order pass: each node is pushed back once with the
	// visited flag set, after its children, so both sub-trees
	// complete before the node itself is visited
	if nil != postFn {

		var nodeStack [walkStackSize]walkEntry
		nodeStack[0] = walkEntry{node: tree.root}
		ix := 1

		for ix > 0 {
			ix -= 1
			entry := nodeStack[ix]
			p := entry.node

			if entry.visited {
				err := postFn(p, postArg)
				if nil != err {
					return err
				}
				continue
			}

			// first pass, push it back then its children
			nodeStack[ix] = walkEntry{node: p, visited: true}
			ix += 1

			if ix+2 >= walkStackSize {
				return fault.WalkStackOverflow
			}
			if nil != p.right {
				nodeStack[ix] = walkEntry{node: p.right}
				ix += 1
			}
			if nil != p.left {
				nodeStack[ix] = walkEntry{node: p.left}
				ix += 1
			}
		}
	}

	return nil
}
