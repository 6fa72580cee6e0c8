// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel bounds concurrent per-file work for batch runs. The
// detection engine is read-only and shared across workers; anything mutable
// (an output writer, a shared replacement mapping) is the closure's job to
// guard.
package parallel

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of processing one path.
type Result struct {
	Path     string
	Err      error
	Duration time.Duration
}

// Stats summarizes a batch run.
type Stats struct {
	TotalFiles int
	Succeeded  int
	Failed     int
	Workers    int
	WallTime   time.Duration
}

// Pool runs per-file work with a fixed worker bound.
type Pool struct {
	workers int
}

// New creates a pool with the given worker count. Zero or negative selects
// one worker per CPU, capped at 8 to avoid starving the host on wide
// machines.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > 8 {
		workers = 8
	}
	return &Pool{workers: workers}
}

// Workers returns the worker bound.
func (p *Pool) Workers() int {
	return p.workers
}

// Each runs fn once per path with at most Workers goroutines in flight.
// fn receives the path's index in the input slice, so callers can write
// per-path payloads into their own slots without locking. A failing path
// never stops the batch: every path is attempted, and the outcomes come
// back in input order with per-path errors attached.
func (p *Pool) Each(paths []string, fn func(i int, path string) error) ([]Result, Stats) {
	start := time.Now()
	results := make([]Result, len(paths))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			began := time.Now()
			err := fn(i, path)
			results[i] = Result{Path: path, Err: err, Duration: time.Since(began)}
			return nil
		})
	}
	// Worker closures always return nil; failures live in results.
	_ = g.Wait()

	stats := Stats{
		TotalFiles: len(paths),
		Workers:    p.workers,
		WallTime:   time.Since(start),
	}
	for _, r := range results {
		if r.Err != nil {
			stats.Failed++
		} else {
			stats.Succeeded++
		}
	}
	return results, stats
}
