// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/bitmark-inc/avlindex/avl"
)

// reference traversal: plain recursion, kept only as a test oracle
// for the bounded-stack production walk
func referenceWalk(p *avl.Node, pre *[]uint64, in *[]uint64, post *[]uint64) {
	if nil == p {
		return
	}
	*pre = append(*pre, p.Key())
	referenceWalk(p.Left(), pre, in, post)
	*in = append(*in, p.Key())
	referenceWalk(p.Right(), pre, in, post)
	*post = append(*post, p.Key())
}

func buildRandomTree(t *testing.T, seed int64, size int) *avl.Tree {
	rng := rand.New(rand.NewSource(seed))
	tree := avl.New()
	for _, k := range rng.Perm(size) {
		key := uint64(k)
		err := tree.Insert(key, &newRecord(key).Node)
		if nil != err {
			t.Fatalf("insert: %d failed with error: %v", key, err)
		}
	}
	return tree
}

func sameKeys(t *testing.T, order string, actual []uint64, expected []uint64) {
	if len(expected) != len(actual) {
		t.Fatalf("%s count: actual: %d  expected: %d", order, len(actual), len(expected))
	}
	for i, key := range actual {
		if expected[i] != key {
			t.Fatalf("%s[%d]: actual: %d  expected: %d", order, i, key, expected[i])
		}
	}
}

// all three orders at once must agree with the recursive reference
func TestWalkOrders(t *testing.T) {
	for _, size := range []int{1, 2, 3, 10, 500} {
		tree := buildRandomTree(t, int64(size), size)

		var expectedPre, expectedIn, expectedPost []uint64
		referenceWalk(tree.Root(), &expectedPre, &expectedIn, &expectedPost)

		var pre, in, post []uint64
		err := tree.Walk(collectKeys, &pre, collectKeys, &in, collectKeys, &post)
		if nil != err {
			t.Fatalf("walk failed with error: %v", err)
		}

		sameKeys(t, "pre-order", pre, expectedPre)
		sameKeys(t, "in-order", in, expectedIn)
		sameKeys(t, "post-order", post, expectedPost)
	}
}

// disabled orders must simply not fire
func TestWalkSubsets(t *testing.T) {
	tree := buildRandomTree(t, 99, 50)

	var expectedPre, expectedIn, expectedPost []uint64
	referenceWalk(tree.Root(), &expectedPre, &expectedIn, &expectedPost)

	var pre []uint64
	err := tree.Walk(collectKeys, &pre, nil, nil, nil, nil)
	if nil != err {
		t.Fatalf("pre-only walk failed with error: %v", err)
	}
	sameKeys(t, "pre-order", pre, expectedPre)

	var post []uint64
	err = tree.Walk(nil, nil, nil, nil, collectKeys, &post)
	if nil != err {
		t.Fatalf("post-only walk failed with error: %v", err)
	}
	sameKeys(t, "post-order", post, expectedPost)

	// nothing enabled is a successful no-op
	err = tree.Walk(nil, nil, nil, nil, nil, nil)
	if nil != err {
		t.Fatalf("empty walk failed with error: %v", err)
	}
}

func TestWalkEmptyTree(t *testing.T) {
	tree := avl.New()
	calls := 0
	counter := func(node *avl.Node, arg interface{}) error {
		calls += 1
		return nil
	}
	err := tree.Walk(counter, nil, counter, nil, counter, nil)
	if nil != err {
		t.Fatalf("walk failed with error: %v", err)
	}
	if 0 != calls {
		t.Fatalf("callbacks on empty tree: %d", calls)
	}
}

// the first callback error must stop every further callback and come
// back unchanged
func TestWalkAbort(t *testing.T) {
	errStop := errors.New("stop here")

	tree := buildRandomTree(t, 7, 100)

	// total number of callback events in a full walk: three per node
	full := 3 * tree.Count()

	for _, stopAt := range []int{1, 2, 50, 150, 299} {
		calls := 0
		failer := func(node *avl.Node, arg interface{}) error {
			calls += 1
			if calls == stopAt {
				return errStop
			}
			return nil
		}

		err := tree.Walk(failer, nil, failer, nil, failer, nil)
		if errStop != err {
			t.Fatalf("walk returned: %v  expected: %v", err, errStop)
		}
		if stopAt != calls {
			t.Fatalf("callbacks after abort: actual: %d  expected: %d", calls, stopAt)
		}
	}

	// sanity: without an error all events fire
	calls := 0
	counter := func(node *avl.Node, arg interface{}) error {
		calls += 1
		return nil
	}
	err := tree.Walk(counter, nil, counter, nil, counter, nil)
	if nil != err {
		t.Fatalf("walk failed with error: %v", err)
	}
	if full != calls {
		t.Fatalf("callback count: actual: %d  expected: %d", calls, full)
	}
}
