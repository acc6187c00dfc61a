// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a breadth-first rendering of the heap to w, one line per
// level with the root on the first line. Vacant slots are omitted. The
// format is intended for debugging and is not stable.
func (h *Heap[T]) Dump(w io.Writer) {
	cur := -1
	for v, depth := range h.c.walk() {
		if depth != cur {
			if cur >= 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%v:", depth)
			cur = depth
		}
		fmt.Fprintf(w, " %v", v)
	}
	if cur >= 0 {
		fmt.Fprintln(w)
	}
}

// String implements fmt.Stringer using the same format as Dump.
func (h *Heap[T]) String() string {
	var sb strings.Builder
	h.Dump(&sb)
	return sb.String()
}
