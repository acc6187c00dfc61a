// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"iter"

	"github.com/00000o1/cs.js/container/tree"
)

// storage is the contract between the heap algorithms and a slot storage
// backend. S identifies a slot, either an index into a slice or a pointer
// to a tree node. A slot is occupied when it holds a thing and vacant
// otherwise; vacant slots are reported by thing returning false and are
// never handed to the comparator.
type storage[S, T any] interface {
	// root returns the slot that holds the highest priority thing.
	root() S
	// parent returns the slot above s, false if s is the root.
	parent(s S) (S, bool)
	// child returns the k'th slot below s, for k in [0, arity). The
	// returned slot need not exist; thing reports it as vacant.
	child(s S, k int) S
	// arity returns the maximum number of children per slot.
	arity() int
	// thing returns the contents of s and whether s is occupied.
	thing(s S) (T, bool)
	// setThing stores v in s, marking it occupied.
	setThing(s S, v T)
	// clear removes the contents of s, marking it vacant. The slot
	// itself remains in place and is reused by a later firstEmpty.
	clear(s S)
	// swap exchanges the contents and occupancy of a and b.
	swap(a, b S)
	// firstEmpty returns the first vacant slot in breadth-first order,
	// extending the storage by one slot when none is vacant.
	firstEmpty() S
	// slots yields every slot in breadth-first order together with its
	// depth, the root first at depth zero.
	slots() iter.Seq2[S, int]
}

// engine implements the heap algorithms in terms of the storage contract
// alone and never inspects which backend is behind it. The comparator
// returns a positive value when a outranks b, so the same code serves
// max and min heaps.
type engine[S, T any] struct {
	store   storage[S, T]
	compare func(a, b T) int
	size    int
}

// newCore selects a backend for cfg and returns the engine wrapped in
// the backend independent core interface. The slot type is fixed here,
// once, at construction.
func newCore[T any](cfg Config, compare func(a, b T) int, sliceCap int) core[T] {
	if cfg.AsTree {
		return &engine[*tree.Node[T], T]{
			store:   newTreeStore[T](cfg.Arity),
			compare: compare,
		}
	}
	return &engine[int, T]{
		store:   newArrayStore[T](cfg.Arity, sliceCap),
		compare: compare,
	}
}

func (e *engine[S, T]) length() int {
	return e.size
}

func (e *engine[S, T]) push(v T) {
	s := e.store.firstEmpty()
	e.store.setThing(s, v)
	e.size++
	e.siftUp(s)
}

func (e *engine[S, T]) pop() (T, bool) {
	if e.size == 0 {
		var zero T
		return zero, false
	}
	r := e.store.root()
	v, _ := e.store.thing(r)
	e.store.clear(r)
	e.siftDown(r)
	e.size--
	return v, true
}

func (e *engine[S, T]) peek() (T, bool) {
	if e.size == 0 {
		var zero T
		return zero, false
	}
	return e.store.thing(e.store.root())
}

func (e *engine[S, T]) replace(v T) (T, bool) {
	if e.size == 0 {
		var zero T
		return zero, false
	}
	return e.update(e.store.root(), v), true
}

// update overwrites the thing at s with v and restores heap order,
// sifting up when v outranks the previous thing and down when it ranks
// below it. The previous thing is returned.
func (e *engine[S, T]) update(s S, v T) T {
	old, _ := e.store.thing(s)
	e.store.setThing(s, v)
	switch c := e.compare(v, old); {
	case c > 0:
		e.siftUp(s)
	case c < 0:
		e.siftDown(s)
	}
	return old
}

// siftUp moves the thing at s towards the root until its parent outranks
// it or ranks equal.
func (e *engine[S, T]) siftUp(s S) {
	v, _ := e.store.thing(s)
	for {
		p, ok := e.store.parent(s)
		if !ok {
			return
		}
		pv, ok := e.store.thing(p)
		if !ok || e.compare(pv, v) >= 0 {
			return
		}
		e.store.swap(s, p)
		s = p
	}
}

// siftDown moves the contents of s towards the leaves until no occupied
// child outranks it. A vacant s, such as the hole left by pop, loses to
// every occupied child and so sinks all the way to a leaf.
func (e *engine[S, T]) siftDown(s S) {
	for {
		c, cv, ok := e.topChild(s)
		if !ok {
			return
		}
		if v, occupied := e.store.thing(s); occupied && e.compare(cv, v) <= 0 {
			return
		}
		e.store.swap(s, c)
		s = c
	}
}

// topChild returns the highest ranking occupied child of s. A child must
// strictly outrank the incumbent to displace it, so equal priorities
// resolve to the leftmost child and duplicates drain deterministically.
func (e *engine[S, T]) topChild(s S) (S, T, bool) {
	var (
		best  S
		bestv T
		found bool
	)
	for k := 0; k < e.store.arity(); k++ {
		c := e.store.child(s, k)
		v, ok := e.store.thing(c)
		if !ok {
			continue
		}
		if !found || e.compare(v, bestv) > 0 {
			best, bestv, found = c, v, true
		}
	}
	return best, bestv, found
}

// load bulk fills the storage with things in breadth-first order and then
// establishes heap order with Floyd's algorithm, sifting every slot down
// in reverse breadth-first order. This is O(n) rather than the O(n log n)
// of repeated push.
func (e *engine[S, T]) load(things []T) {
	for _, v := range things {
		s := e.store.firstEmpty()
		e.store.setThing(s, v)
		e.size++
	}
	order := make([]S, 0, e.size)
	for s := range e.store.slots() {
		order = append(order, s)
	}
	for i := len(order) - 1; i >= 0; i-- {
		e.siftDown(order[i])
	}
}

// walk yields the occupied things in breadth-first order together with
// their depth.
func (e *engine[S, T]) walk() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for s, depth := range e.store.slots() {
			v, ok := e.store.thing(s)
			if !ok {
				continue
			}
			if !yield(v, depth) {
				return
			}
		}
	}
}
