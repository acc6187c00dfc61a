// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap //nolint:revive // intentional shadowing

import (
	"testing"

	"github.com/00000o1/cs.js/container/tree"
)

// Verify checks that every occupied slot outranks its occupied children,
// that no occupied slot hangs below a vacant one and that the number of
// occupied slots matches Len.
func (h *Heap[T]) Verify(t *testing.T) {
	t.Helper()
	switch e := h.c.(type) {
	case *engine[int, T]:
		verify(t, e)
	case *engine[*tree.Node[T], T]:
		verify(t, e)
	default:
		t.Errorf("unknown engine %T", h.c)
	}
}

func verify[S, T any](t *testing.T, e *engine[S, T]) {
	t.Helper()
	occupied := 0
	for s := range e.store.slots() {
		v, ok := e.store.thing(s)
		if !ok {
			continue
		}
		occupied++
		if p, ok := e.store.parent(s); ok {
			if _, occ := e.store.thing(p); !occ {
				t.Errorf("heap inconsistent: %v hangs below a vacant slot", v)
			}
		}
		for k := 0; k < e.store.arity(); k++ {
			cv, ok := e.store.thing(e.store.child(s, k))
			if !ok {
				continue
			}
			if e.compare(cv, v) > 0 {
				t.Errorf("heap inconsistent: child %v outranks parent %v", cv, v)
			}
		}
	}
	if got, want := occupied, e.size; got != want {
		t.Errorf("heap inconsistent: got %v occupied slots, want %v", got, want)
	}
}

func testStorage[S any](t *testing.T, store storage[S, int]) {
	t.Helper()
	for i := 0; i < 5; i++ {
		s := store.firstEmpty()
		if _, ok := store.thing(s); ok {
			t.Errorf("firstEmpty returned an occupied slot")
		}
		store.setThing(s, i)
	}
	r := store.root()
	if v, ok := store.thing(r); !ok || v != 0 {
		t.Errorf("got %v, %v, want 0, true", v, ok)
	}
	// Slots fill breadth-first, so the root's first child holds the
	// second thing stored.
	c := store.child(r, 0)
	if v, ok := store.thing(c); !ok || v != 1 {
		t.Errorf("got %v, %v, want 1, true", v, ok)
	}
	p, ok := store.parent(c)
	if !ok {
		t.Fatalf("expected a parent")
	}
	if v, _ := store.thing(p); v != 0 {
		t.Errorf("got %v, want 0", v)
	}
	if _, ok := store.parent(r); ok {
		t.Errorf("the root should have no parent")
	}
	store.swap(r, c)
	if v, _ := store.thing(r); v != 1 {
		t.Errorf("got %v, want 1", v)
	}
	if v, _ := store.thing(c); v != 0 {
		t.Errorf("got %v, want 0", v)
	}
	// A cleared slot is vacant and is the first to be reused.
	store.clear(r)
	if _, ok := store.thing(r); ok {
		t.Errorf("expected a vacant root")
	}
	store.setThing(store.firstEmpty(), 9)
	if v, ok := store.thing(r); !ok || v != 9 {
		t.Errorf("got %v, %v, want 9, true", v, ok)
	}
	occupied := 0
	for s := range store.slots() {
		if _, ok := store.thing(s); ok {
			occupied++
		}
	}
	if got, want := occupied, 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStorageContract(t *testing.T) {
	testStorage[int](t, newArrayStore[int](2, 1))
	testStorage[*tree.Node[int]](t, newTreeStore[int](2))
	testStorage[int](t, newArrayStore[int](4, 1))
	testStorage[*tree.Node[int]](t, newTreeStore[int](4))
}

func TestArrayFreeTracking(t *testing.T) {
	a := newArrayStore[int](2, 4)
	for i, v := range []int{10, 20, 30} {
		s := a.firstEmpty()
		if got, want := s, i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		a.setThing(s, v)
	}
	if got, want := a.free, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	a.clear(0)
	if got, want := a.free, 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The cleared slot is reused without extending the slice.
	if got, want := a.firstEmpty(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(a.values), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	a.setThing(0, 40)
	if got, want := a.free, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// A swap that moves occupancy moves the free index with it.
	a.clear(0)
	a.swap(0, 2)
	if got, want := a.free, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if v, ok := a.thing(0); !ok || v != 30 {
		t.Errorf("got %v, %v, want 30, true", v, ok)
	}
	if _, ok := a.thing(2); ok {
		t.Errorf("expected a vacant slot")
	}
}

func TestArrayFreeAcrossWords(t *testing.T) {
	a := newArrayStore[int](2, 1)
	for i := 0; i < 130; i++ {
		a.setThing(a.firstEmpty(), i)
	}
	// Vacancies on both sides of a word boundary and in the middle of
	// a word must each be found in turn, never an occupied index.
	for _, i := range []int{63, 64, 100} {
		a.clear(i)
	}
	for _, want := range []int{63, 64, 100} {
		got := a.firstEmpty()
		if got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		a.setThing(got, 200+want)
	}
	if got, want := a.free, 130; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(a.values), 130; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, i := range []int{63, 64, 100} {
		if v, ok := a.thing(i); !ok || v != 200+i {
			t.Errorf("got %v, %v, want %v, true", v, ok, 200+i)
		}
	}
}

func TestArrayBitmapGrowth(t *testing.T) {
	a := newArrayStore[int](2, 1)
	for i := 0; i < 70; i++ {
		s := a.firstEmpty()
		if got, want := s, i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		a.setThing(s, i)
	}
	if got, want := len(a.values), 70; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.free, 70; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 0; i < 70; i++ {
		if v, ok := a.thing(i); !ok || v != i {
			t.Errorf("got %v, %v, want %v, true", v, ok, i)
		}
	}
}

func TestArrayIndexing(t *testing.T) {
	a := newArrayStore[int](3, 1)
	if _, ok := a.parent(0); ok {
		t.Errorf("the root should have no parent")
	}
	if p, _ := a.parent(4); p != 1 {
		t.Errorf("got %v, want 1", p)
	}
	if got, want := a.child(1, 0), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.child(0, 2), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := a.thing(-1); ok {
		t.Errorf("expected a vacant slot")
	}
	if _, ok := a.thing(99); ok {
		t.Errorf("expected a vacant slot")
	}
}

func TestArrayDepths(t *testing.T) {
	a := newArrayStore[int](3, 1)
	for i := 0; i < 13; i++ {
		a.setThing(a.firstEmpty(), i)
	}
	want := []int{0, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	i := 0
	for s, d := range a.slots() {
		if got := s; got != i {
			t.Errorf("got %v, want %v", got, i)
		}
		if got := d; got != want[i] {
			t.Errorf("slot %v: got %v, want %v", i, got, want[i])
		}
		i++
	}
	if got, want := i, 13; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
