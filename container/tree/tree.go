// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package tree provides a d-ary tree that grows breadth-first, left to
// right, one node at a time. Every node carries a payload slot that is
// either occupied or vacant; clearing a slot leaves the node in place so
// that the shape of the tree never shrinks.
package tree

import (
	"iter"

	"cloudeng.io/algo/container/circular"
)

// Tree is a d-ary tree of payload slots. The zero value is not usable,
// use New.
type Tree[T any] struct {
	arity int
	root  *Node[T]
	nodes int
}

// Node is a single slot in the tree. Its parent and child links are fixed
// at the time the node is created; only the payload ever changes.
type Node[T any] struct {
	parent   *Node[T]
	children []*Node[T]
	depth    int
	value    T
	occupied bool
}

// New creates a tree whose nodes have arity children each. The root node
// exists, vacant, from the moment the tree is created. New panics if
// arity is less than 1.
func New[T any](arity int) *Tree[T] {
	if arity < 1 {
		panic("tree: arity must be at least 1")
	}
	t := &Tree[T]{arity: arity}
	t.root = &Node[T]{children: make([]*Node[T], arity)}
	t.nodes = 1
	return t
}

// Arity returns the number of children per node.
func (t *Tree[T]) Arity() int {
	return t.arity
}

// Len returns the number of nodes in the tree, occupied or not.
func (t *Tree[T]) Len() int {
	return t.nodes
}

// Root returns the root node.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Parent returns the node's parent, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Child returns the k'th child of the node, or nil if that child has not
// been created yet. k must be in [0, arity).
func (n *Node[T]) Child(k int) *Node[T] {
	return n.children[k]
}

// Depth returns the node's distance from the root.
func (n *Node[T]) Depth() int {
	return n.depth
}

// Thing returns the node's payload and whether the slot is occupied.
// A nil node reports vacant.
func (n *Node[T]) Thing() (T, bool) {
	if n == nil || !n.occupied {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Set stores a payload in the node, marking the slot occupied.
func (n *Node[T]) Set(v T) {
	n.value = v
	n.occupied = true
}

// Clear vacates the slot, returning the payload it held, if any. The node
// itself remains part of the tree.
func (n *Node[T]) Clear() (T, bool) {
	v, ok := n.value, n.occupied
	var zero T
	n.value, n.occupied = zero, false
	return v, ok
}

// Swap exchanges the payloads, and their occupancy, of the two nodes.
// The position of each node in the tree is unchanged.
func (n *Node[T]) Swap(m *Node[T]) {
	n.value, m.value = m.value, n.value
	n.occupied, m.occupied = m.occupied, n.occupied
}

// FirstEmpty returns the first unoccupied slot in breadth-first, left to
// right order. If every existing node is occupied a new leaf is created
// in the first free child position and returned. Nodes are only ever
// created through FirstEmpty, so the set of nodes always forms a
// complete-tree prefix.
func (t *Tree[T]) FirstEmpty() *Node[T] {
	var at *Node[T]
	slot := -1
	q := circular.NewBuffer[*Node[T]](t.nodes)
	q.Append([]*Node[T]{t.root})
	scratch := make([]*Node[T], 0, t.arity)
	for q.Len() > 0 {
		n := q.Head(1)[0]
		if !n.occupied {
			return n
		}
		scratch = scratch[:0]
		for k, c := range n.children {
			if c == nil {
				if slot < 0 {
					at, slot = n, k
				}
				continue
			}
			scratch = append(scratch, c)
		}
		q.Append(scratch)
	}
	return t.grow(at, slot)
}

func (t *Tree[T]) grow(parent *Node[T], k int) *Node[T] {
	n := &Node[T]{
		parent:   parent,
		children: make([]*Node[T], t.arity),
		depth:    parent.depth + 1,
	}
	parent.children[k] = n
	t.nodes++
	return n
}

// BFS returns a breadth-first traversal of the tree's nodes paired with
// their depth. The traversal is lazy and visits every node, occupied or
// not, left to right within each level.
func (t *Tree[T]) BFS() iter.Seq2[*Node[T], int] {
	return func(yield func(*Node[T], int) bool) {
		q := circular.NewBuffer[*Node[T]](t.nodes)
		q.Append([]*Node[T]{t.root})
		scratch := make([]*Node[T], 0, t.arity)
		for q.Len() > 0 {
			n := q.Head(1)[0]
			if !yield(n, n.depth) {
				return
			}
			scratch = scratch[:0]
			for _, c := range n.children {
				if c != nil {
					scratch = append(scratch, c)
				}
			}
			q.Append(scratch)
		}
	}
}
