// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"iter"

	"github.com/00000o1/cs.js/container/tree"
)

// treeStore keeps the heap in an explicit node tree. Slots are node
// pointers and all of the structural bookkeeping lives in
// container/tree; this adapter only maps the storage contract onto it.
type treeStore[T any] struct {
	t *tree.Tree[T]
}

func newTreeStore[T any](arity int) *treeStore[T] {
	return &treeStore[T]{t: tree.New[T](arity)}
}

func (ts *treeStore[T]) root() *tree.Node[T] {
	return ts.t.Root()
}

func (ts *treeStore[T]) parent(n *tree.Node[T]) (*tree.Node[T], bool) {
	p := n.Parent()
	return p, p != nil
}

// child may return nil for a slot that has not been grown yet; thing
// reports a nil node as vacant.
func (ts *treeStore[T]) child(n *tree.Node[T], k int) *tree.Node[T] {
	return n.Child(k)
}

func (ts *treeStore[T]) arity() int {
	return ts.t.Arity()
}

func (ts *treeStore[T]) thing(n *tree.Node[T]) (T, bool) {
	return n.Thing()
}

func (ts *treeStore[T]) setThing(n *tree.Node[T], v T) {
	n.Set(v)
}

func (ts *treeStore[T]) clear(n *tree.Node[T]) {
	n.Clear()
}

func (ts *treeStore[T]) swap(a, b *tree.Node[T]) {
	a.Swap(b)
}

func (ts *treeStore[T]) firstEmpty() *tree.Node[T] {
	return ts.t.FirstEmpty()
}

func (ts *treeStore[T]) slots() iter.Seq2[*tree.Node[T], int] {
	return ts.t.BFS()
}
