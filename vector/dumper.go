// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"io"
	"strings"
)

// String returns the Dump output.
func (s *Small[T, B]) String() string {
	w := new(strings.Builder)
	s.Dump(w)

	return w.String()
}

// Dump writes the size, the capacities and both regions to w.
// Unused slots are shown as '_'.
func (s *Small[T, B]) Dump(w io.Writer) {
	if s == nil {
		return
	}

	fmt.Fprintf(w, "size: %d, capacity: %d (inline: %d, heap: %d)\n",
		s.size, s.Cap(), s.inlineCap(), s.HeapCap())

	fmt.Fprint(w, "inline: [")
	for i := range s.inlineCap() {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		if i < s.size {
			fmt.Fprint(w, s.inline[i])
		} else {
			fmt.Fprint(w, "_")
		}
	}
	fmt.Fprintln(w, "]")

	if s.heap == nil {
		fmt.Fprintln(w, "heap:   <nil>")
		return
	}

	heapLen := s.HeapLen()
	fmt.Fprint(w, "heap:   [")
	for i := range s.heap {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		if i < heapLen {
			fmt.Fprint(w, s.heap[i])
		} else {
			fmt.Fprint(w, "_")
		}
	}
	fmt.Fprintln(w, "]")
}
