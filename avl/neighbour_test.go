// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlindex/avl"
)

func TestNeighboursEmpty(t *testing.T) {
	tree := avl.New()

	assert.Nil(t, tree.First(), "first of empty tree")
	assert.Nil(t, tree.Last(), "last of empty tree")
	assert.Nil(t, tree.Successor(0), "successor in empty tree")
	assert.Nil(t, tree.Predecessor(100), "predecessor in empty tree")
	assert.Nil(t, tree.Search(1), "search in empty tree")
}

func TestNeighbours(t *testing.T) {
	tree := avl.New()
	for _, key := range []uint64{30, 10, 50, 20, 40} {
		err := tree.Insert(key, &newRecord(key).Node)
		assert.NoError(t, err, "insert")
	}

	assert.Equal(t, uint64(10), tree.First().Key(), "first")
	assert.Equal(t, uint64(50), tree.Last().Key(), "last")

	// successor: smallest key strictly greater than the argument,
	// present or not
	assert.Equal(t, uint64(10), tree.Successor(0).Key(), "successor of 0")
	assert.Equal(t, uint64(20), tree.Successor(10).Key(), "successor of 10")
	assert.Equal(t, uint64(20), tree.Successor(15).Key(), "successor of 15")
	assert.Equal(t, uint64(50), tree.Successor(41).Key(), "successor of 41")
	assert.Nil(t, tree.Successor(50), "successor of 50")
	assert.Nil(t, tree.Successor(99), "successor of 99")

	// predecessor: largest key strictly less than the argument
	assert.Nil(t, tree.Predecessor(10), "predecessor of 10")
	assert.Nil(t, tree.Predecessor(5), "predecessor of 5")
	assert.Equal(t, uint64(10), tree.Predecessor(20).Key(), "predecessor of 20")
	assert.Equal(t, uint64(20), tree.Predecessor(25).Key(), "predecessor of 25")
	assert.Equal(t, uint64(50), tree.Predecessor(99).Key(), "predecessor of 99")
}

func TestSearch(t *testing.T) {
	tree := avl.New()
	for _, key := range []uint64{30, 10, 50} {
		err := tree.Insert(key, &newRecord(key).Node)
		assert.NoError(t, err, "insert")
	}

	assert.NotNil(t, tree.Search(30), "search present key")
	assert.Equal(t, uint64(30), tree.Search(30).Key(), "search key")
	assert.Nil(t, tree.Search(31), "search absent key")
}
