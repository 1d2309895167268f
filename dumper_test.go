// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package chunklist

import (
	"strings"
	"testing"
)

func TestDumpEmpty(t *testing.T) {
	t.Parallel()

	l := New[int](5)
	if s := l.dumpString(); s != "" {
		t.Errorf("dump of empty list, expected empty, got %q", s)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	l := New[int](15)
	for i := -50; i < 50; i++ {
		l.Insert(i)
	}
	for i := -5; i < 15; i++ {
		l.Insert(i)
	}
	for range 50 {
		l.Insert(2)
	}

	s := l.stats()
	if s.items != 170 {
		t.Errorf("stats items, expected 170, got %d", s.items)
	}
	if f := s.fill(); f <= 0 || f > 1 {
		t.Errorf("stats fill, expected in (0, 1], got %f", f)
	}

	dump := l.dumpString()
	if !strings.HasPrefix(dump, "### size(170), nodes(") {
		t.Errorf("dump header, got %q", dump[:min(len(dump), 40)])
	}

	// one header line plus one line per node
	gotLines := strings.Count(dump, "\n")
	if gotLines != s.nodes+1 {
		t.Errorf("dump lines, expected %d, got %d", s.nodes+1, gotLines)
	}
}

func TestStatsEmpty(t *testing.T) {
	t.Parallel()

	l := New[int](5)

	s := l.stats()
	if s.nodes != 0 || s.items != 0 {
		t.Errorf("stats of empty list, expected zero, got %+v", s)
	}
	if f := s.fill(); f != 0 {
		t.Errorf("fill of empty list, expected 0, got %f", f)
	}
}
