// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver collapses the matcher's overlapping, cross-type candidate
// set into the canonical non-overlapping match list that anonymization
// consumes.
package resolver

import (
	"fmt"
	"sort"

	"textscrub/internal/detector"
)

// Resolve filters candidates by threshold and resolves span conflicts.
//
// Candidates scoring strictly below threshold are dropped. The survivors are
// ordered by start ascending, then score descending, then longer span, then
// input order, and swept left to right: a candidate starting before the end
// of the previously accepted match is discarded. Among mutually overlapping
// candidates this keeps the highest-scoring one, preferring the more
// complete span on equal score, so a labeled "MRN: 123456" beats the bare
// digit run inside it.
//
// A zero-width or inverted span fails with ErrInvalidSpan: recognizers must
// never produce one, and a threshold cannot excuse it. Zero candidates in,
// zero matches out, no error. The returned list is sorted ascending by start
// and non-overlapping, the invariant everything downstream relies on.
func Resolve(candidates []detector.Candidate, threshold float64) ([]detector.Match, error) {
	for _, c := range candidates {
		if c.Start >= c.End {
			return nil, fmt.Errorf("%w: %s [%d,%d)", detector.ErrInvalidSpan, c.EntityType, c.Start, c.End)
		}
	}

	kept := make([]detector.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score >= threshold {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.End > b.End
	})

	var matches []detector.Match
	nextFree := 0
	for _, c := range kept {
		if c.Start < nextFree {
			continue
		}
		matches = append(matches, detector.Match{Candidate: c})
		nextFree = c.End
	}
	return matches, nil
}
