// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree ordered by an unsigned
// integer key
//
// The tree is intrusive: it never allocates or frees node memory.
// The caller embeds a Node inside its own record, hands the node to
// Insert and gets it back from Delete, so the same memory can be
// reused or released by the application afterwards.  The caller also
// keeps the key to record association; the tree only links the
// embedded headers together.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every mutation records the path of traversed links and replays it
// bottom-up to restore the balancing rules, which can change the
// node acting as root.  Searching, insertion and deletion all run in
// time proportional to log(N).
package avl
