// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides a d-ary priority queue that keeps its things
// either in a flat slice or in an explicit node tree. The two backends
// implement identical semantics and are selected by configuration, as
// are the branching factor and whether the largest or smallest thing
// pops first. Heaps are not safe for concurrent use.
package heap

import (
	"cmp"
	"fmt"
	"iter"

	"cloudeng.io/errors"
)

// core is the backend independent face of the heap engine. The concrete
// engine is generic over the slot type, which is chosen once, at
// construction, so none of the per operation paths branch on the
// backend.
type core[T any] interface {
	length() int
	push(v T)
	pop() (T, bool)
	peek() (T, bool)
	replace(v T) (T, bool)
	load(things []T)
	walk() iter.Seq2[T, int]
}

// ErrEmptyHeap is returned by Pop, Peek and Replace when the heap has
// nothing in it.
var ErrEmptyHeap = errors.New("empty heap")

// Heap is a priority queue over things of type T. Its branching factor,
// ordering and storage backend are fixed at construction; see Config
// and the Options. A Heap is not safe for concurrent use.
type Heap[T any] struct {
	cfg     Config
	compare func(a, b T) int
	c       core[T]
}

// New returns a heap of naturally ordered things configured by the
// supplied options. With no options it is a binary max heap backed by
// tree storage; use WithMin for a min heap.
func New[T cmp.Ordered](opts ...Option) (*Heap[T], error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return newHeap(orderedCompare[T](o.cfg.Max), o), nil
}

// NewFunc returns a heap ordered by compare, which must return a value
// greater than zero when a should pop before b, zero when they rank
// equally and a value less than zero otherwise. The Max configuration
// is ignored; flip the comparator to invert the order.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) (*Heap[T], error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	errs := errors.M{}
	if compare == nil {
		errs.Append(errors.New("compare: must not be nil"))
	}
	errs.Append(o.validate())
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return newHeap(compare, o), nil
}

// Heapify returns a heap seeded with things, establishing heap order in
// O(len(things)) rather than pushing one thing at a time.
func Heapify[T cmp.Ordered](things []T, opts ...Option) (*Heap[T], error) {
	h, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	h.c.load(things)
	return h, nil
}

// HeapifyFunc is Heapify for things ordered by compare.
func HeapifyFunc[T any](compare func(a, b T) int, things []T, opts ...Option) (*Heap[T], error) {
	h, err := NewFunc(compare, opts...)
	if err != nil {
		return nil, err
	}
	h.c.load(things)
	return h, nil
}

func newHeap[T any](compare func(a, b T) int, o options) *Heap[T] {
	return &Heap[T]{
		cfg:     o.cfg,
		compare: compare,
		c:       newCore(o.cfg, compare, o.sliceCap),
	}
}

func orderedCompare[T cmp.Ordered](max bool) func(a, b T) int {
	if max {
		return cmp.Compare[T]
	}
	return func(a, b T) int {
		return cmp.Compare(b, a)
	}
}

func (o options) validate() error {
	errs := errors.M{}
	errs.Append(o.cfg.Validate())
	if o.sliceCap < 0 {
		errs.Append(fmt.Errorf("sliceCap: must not be negative, got %v", o.sliceCap))
	}
	return errs.Err()
}

// Len returns the number of things in the heap.
func (h *Heap[T]) Len() int {
	return h.c.length()
}

// Push adds thing to the heap.
func (h *Heap[T]) Push(thing T) {
	h.c.push(thing)
}

// Pop removes and returns the highest priority thing. The slot it
// occupied is cleared but retained for reuse by a later Push.
func (h *Heap[T]) Pop() (T, error) {
	v, ok := h.c.pop()
	if !ok {
		return v, ErrEmptyHeap
	}
	return v, nil
}

// Peek returns the highest priority thing without removing it.
func (h *Heap[T]) Peek() (T, error) {
	v, ok := h.c.peek()
	if !ok {
		return v, ErrEmptyHeap
	}
	return v, nil
}

// Replace pops the highest priority thing and pushes thing in its
// place with a single sift, which is cheaper than a Pop followed by a
// Push.
func (h *Heap[T]) Replace(thing T) (T, error) {
	v, ok := h.c.replace(thing)
	if !ok {
		return v, ErrEmptyHeap
	}
	return v, nil
}

// PopN removes and returns the n highest priority things, highest
// first. It returns fewer than n when the heap runs out.
func (h *Heap[T]) PopN(n int) []T {
	if n > h.Len() {
		n = h.Len()
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i], _ = h.c.pop()
	}
	return out
}

// Merge drains other into h, leaving other empty. Things are ranked by
// h's own comparator as they arrive, so the two heaps need not share an
// ordering, arity or backend. Merging a nil or unconstructed heap is a
// no-op.
func (h *Heap[T]) Merge(other *Heap[T]) {
	if other == nil || other == h || other.c == nil {
		return
	}
	for {
		v, ok := other.c.pop()
		if !ok {
			return
		}
		h.c.push(v)
	}
}

// Config returns the configuration the heap was built with.
func (h *Heap[T]) Config() Config {
	return h.cfg
}
