// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Demo program, fills a chunklist with overlapping integer ranges and
// a burst of duplicates, then prints the resulting chain.
package main

import (
	"fmt"
	"os"

	"github.com/gaissmai/chunklist"
)

func main() {
	list := chunklist.New[int](15)

	for i := -50; i < 50; i++ {
		list.Insert(i)
	}

	for i := -5; i < 15; i++ {
		list.Insert(i)
	}

	for range 50 {
		list.Insert(2)
	}

	fmt.Printf("inserted %d items, per-node capacity %d:\n\n", list.Len(), list.Cap())

	if err := list.Fprint(os.Stdout); err != nil {
		panic(err)
	}

	fmt.Println()

	for _, probe := range []int{2, -50, 49, 50, -51} {
		fmt.Printf("contains(%4d): %v\n", probe, list.Contains(probe))
	}
}
