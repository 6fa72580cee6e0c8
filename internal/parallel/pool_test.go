// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_WorkerBounds(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		check   func(got int) bool
	}{
		{"explicit", 3, func(got int) bool { return got == 3 }},
		{"zero picks cpu count", 0, func(got int) bool { return got >= 1 && got <= 8 }},
		{"negative picks cpu count", -1, func(got int) bool { return got >= 1 && got <= 8 }},
		{"capped at 8", 64, func(got int) bool { return got == 8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.workers).Workers(); !tt.check(got) {
				t.Errorf("Workers() = %d", got)
			}
		})
	}
}

func TestEach_ResultsInInputOrder(t *testing.T) {
	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("file_%02d.txt", i)
	}

	results, stats := New(4).Each(paths, func(i int, path string) error {
		if paths[i] != path {
			t.Errorf("index %d delivered with path %q, want %q", i, path, paths[i])
		}
		return nil
	})

	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result[%d] = %q, want %q", i, r.Path, paths[i])
		}
	}
	if stats.Succeeded != len(paths) || stats.Failed != 0 {
		t.Errorf("stats = %+v, want all succeeded", stats)
	}
}

func TestEach_FailuresDoNotStopBatch(t *testing.T) {
	paths := []string{"ok1", "bad", "ok2"}
	boom := errors.New("boom")

	var calls atomic.Int32
	results, stats := New(2).Each(paths, func(_ int, path string) error {
		calls.Add(1)
		if path == "bad" {
			return boom
		}
		return nil
	})

	if calls.Load() != 3 {
		t.Errorf("expected every path attempted, got %d calls", calls.Load())
	}
	if results[1].Err == nil || !errors.Is(results[1].Err, boom) {
		t.Errorf("expected the failing path's error recorded, got %v", results[1].Err)
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("expected successful paths to carry no error")
	}
	if stats.Succeeded != 2 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want 2 succeeded / 1 failed", stats)
	}
}

func TestEach_BoundsConcurrency(t *testing.T) {
	const workers = 3
	paths := make([]string, 30)
	for i := range paths {
		paths[i] = fmt.Sprintf("f%d", i)
	}

	var inFlight, peak atomic.Int32
	New(workers).Each(paths, func(int, string) error {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return nil
	})

	if p := peak.Load(); p > workers {
		t.Errorf("observed %d concurrent workers, bound is %d", p, workers)
	}
}

func TestEach_EmptyInput(t *testing.T) {
	results, stats := New(2).Each(nil, func(int, string) error {
		t.Error("fn must not be called for empty input")
		return nil
	})
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
	if stats.TotalFiles != 0 {
		t.Errorf("expected 0 total files, got %d", stats.TotalFiles)
	}
}
