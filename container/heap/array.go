// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"iter"

	"cloudeng.io/algo/container/bitmap"
)

// arrayStore keeps the heap in a flat slice using the standard d-ary
// index arithmetic, with parent (i-1)/d and children d*i+1 through
// d*i+d. Occupancy is a bitmap alongside the values and free tracks the
// lowest vacant index, or len(values) when the occupied region is a
// complete prefix. Slots are appended one at a time and never removed.
type arrayStore[T any] struct {
	values   []T
	occupied bitmap.T
	degree   int
	free     int
}

func newArrayStore[T any](arity, sliceCap int) *arrayStore[T] {
	if sliceCap < 1 {
		sliceCap = 1
	}
	return &arrayStore[T]{
		values:   make([]T, 0, sliceCap),
		occupied: bitmap.New(sliceCap),
		degree:   arity,
	}
}

func (a *arrayStore[T]) root() int {
	return 0
}

func (a *arrayStore[T]) parent(i int) (int, bool) {
	if i == 0 {
		return 0, false
	}
	return (i - 1) / a.degree, true
}

// child can overflow to a negative index for enormous heaps; thing
// reports any out of range slot as vacant.
func (a *arrayStore[T]) child(i, k int) int {
	return a.degree*i + k + 1
}

func (a *arrayStore[T]) arity() int {
	return a.degree
}

func (a *arrayStore[T]) thing(i int) (T, bool) {
	if i < 0 || i >= len(a.values) || !a.occupied.IsSet(i) {
		var zero T
		return zero, false
	}
	return a.values[i], true
}

func (a *arrayStore[T]) setThing(i int, v T) {
	a.values[i] = v
	a.occupied.Set(i)
	if i == a.free {
		a.advance()
	}
}

func (a *arrayStore[T]) clear(i int) {
	var zero T
	a.values[i] = zero // allow the GC to reclaim the thing
	a.occupied.Clear(i)
	if i < a.free {
		a.free = i
	}
}

func (a *arrayStore[T]) swap(i, j int) {
	a.values[i], a.values[j] = a.values[j], a.values[i]
	si, sj := a.occupied.IsSet(i), a.occupied.IsSet(j)
	if si == sj {
		return
	}
	if si {
		a.occupied.Clear(i)
		a.occupied.Set(j)
	} else {
		a.occupied.Set(i)
		a.occupied.Clear(j)
	}
	if a.free == i || a.free == j {
		a.advance()
	}
	if k := min(i, j); k < a.free && !a.occupied.IsSet(k) {
		a.free = k
	}
}

// advance moves free to the next vacant index at or after its current
// position. Every index below free is occupied, so scanning forward from
// free is sufficient. NextClear returns -1 when no vacant index remains,
// in which case free parks at the end of the slice.
func (a *arrayStore[T]) advance() {
	if i := a.occupied.NextClear(a.free, len(a.values)); i >= 0 {
		a.free = i
		return
	}
	a.free = len(a.values)
}

func (a *arrayStore[T]) firstEmpty() int {
	if a.free == len(a.values) {
		var zero T
		a.values = append(a.values, zero)
		if len(a.values) > len(a.occupied)*64 {
			a.occupied = append(a.occupied, 0)
		}
	}
	return a.free
}

func (a *arrayStore[T]) slots() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		depth, last := 0, 0
		for i := range a.values {
			if i > last {
				depth++
				last = last*a.degree + a.degree
			}
			if !yield(i, depth) {
				return
			}
		}
	}
}
