// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package chunklist

import (
	"fmt"
	"io"
	"strings"
)

// String returns a diagram of the chain as string, just a wrapper for
// [List.Fprint]. If Fprint returns an error, String panics.
func (l *List[T]) String() string {
	w := new(strings.Builder)
	if err := l.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a diagram of the chain to w, one line per node in
// ascending range order. An empty list writes nothing.
//
// The output is a diagnostic aid for humans, not a stable or
// round-trippable format.
//
//	▼
//	├─ [-200]
//	├─ [-102 -101 100 101 102]
//	└─ [103 200]
func (l *List[T]) Fprint(w io.Writer) error {
	if l == nil || l.root == nil {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	for cur := l.root; cur != nil; cur = cur.next {
		glyphe := "├─ "
		if cur.next == nil {
			glyphe = "└─ "
		}

		if _, err := fmt.Fprintf(w, "%s%v\n", glyphe, cur.items.Items()); err != nil {
			return err
		}
	}

	return nil
}
