// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textscrub/internal/detector"
)

func candidate(et detector.EntityType, start, end int, score float64) detector.Candidate {
	return detector.Candidate{EntityType: et, Start: start, End: end, Score: score}
}

func asMatches(candidates ...detector.Candidate) []detector.Match {
	matches := make([]detector.Match, len(candidates))
	for i, c := range candidates {
		matches[i] = detector.Match{Candidate: c}
	}
	return matches
}

func TestResolve_NoCandidates(t *testing.T) {
	got, err := Resolve(nil, 0.5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolve_ThresholdFilter(t *testing.T) {
	candidates := []detector.Candidate{
		candidate("EMAIL_ADDRESS", 0, 5, 0.9),
		candidate("PHONE_NUMBER", 10, 15, 0.49),
		candidate("US_SSN", 20, 25, 0.5),
	}

	got, err := Resolve(candidates, 0.5)
	require.NoError(t, err)

	// Strictly-below dropped, exactly-at kept.
	want := asMatches(
		candidate("EMAIL_ADDRESS", 0, 5, 0.9),
		candidate("US_SSN", 20, 25, 0.5),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_AllBelowThreshold(t *testing.T) {
	got, err := Resolve([]detector.Candidate{
		candidate("EMAIL_ADDRESS", 0, 5, 0.3),
	}, 0.5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolve_NonOverlappingPassThrough(t *testing.T) {
	candidates := []detector.Candidate{
		candidate("US_SSN", 20, 31, 0.85),
		candidate("EMAIL_ADDRESS", 0, 15, 0.9),
		candidate("PHONE_NUMBER", 40, 52, 0.7),
	}

	got, err := Resolve(candidates, 0.5)
	require.NoError(t, err)

	want := asMatches(
		candidate("EMAIL_ADDRESS", 0, 15, 0.9),
		candidate("US_SSN", 20, 31, 0.85),
		candidate("PHONE_NUMBER", 40, 52, 0.7),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_SameSpanHigherScoreWins(t *testing.T) {
	// Passport and state ID both claim the same nine characters; the
	// passport pattern scored higher and must own the span.
	candidates := []detector.Candidate{
		candidate("STATE_ID", 10, 19, 0.6),
		candidate("US_PASSPORT", 10, 19, 0.85),
	}

	got, err := Resolve(candidates, 0.5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, detector.EntityType("US_PASSPORT"), got[0].EntityType)
}

func TestResolve_SameStartEqualScoreLongerSpanWins(t *testing.T) {
	candidates := []detector.Candidate{
		candidate("US_SSN", 0, 9, 0.8),
		candidate("FINANCIAL_ACCOUNT", 0, 14, 0.8),
	}

	got, err := Resolve(candidates, 0.5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, detector.EntityType("FINANCIAL_ACCOUNT"), got[0].EntityType)
	assert.Equal(t, 14, got[0].End)
}

func TestResolve_LabeledSpanAbsorbsInnerRun(t *testing.T) {
	// "MRN: 123456": the labeled span starts earlier and swallows the bare
	// digit run even though both cleared the threshold.
	candidates := []detector.Candidate{
		candidate("FINANCIAL_ACCOUNT", 5, 11, 0.65),
		candidate("MEDICAL_RECORD", 0, 11, 0.9),
	}

	got, err := Resolve(candidates, 0.5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, detector.EntityType("MEDICAL_RECORD"), got[0].EntityType)
}

func TestResolve_SweepIsPositional(t *testing.T) {
	// The sweep accepts by start order, not global score: once [0,10) is
	// accepted, the higher-scoring [5,15) is gone, and [12,20) fits again.
	candidates := []detector.Candidate{
		candidate("A", 0, 10, 0.9),
		candidate("B", 5, 15, 0.95),
		candidate("C", 12, 20, 0.9),
	}

	got, err := Resolve(candidates, 0.5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, detector.EntityType("A"), got[0].EntityType)
	assert.Equal(t, detector.EntityType("C"), got[1].EntityType)
}

func TestResolve_OutputSortedAndNonOverlapping(t *testing.T) {
	candidates := []detector.Candidate{
		candidate("C", 30, 40, 0.7),
		candidate("A", 0, 12, 0.6),
		candidate("B", 8, 20, 0.9),
		candidate("D", 35, 45, 0.95),
		candidate("E", 2, 6, 0.99),
	}

	got, err := Resolve(candidates, 0.5)
	require.NoError(t, err)

	prevEnd := 0
	for i, m := range got {
		if m.Start < prevEnd {
			t.Errorf("match %d [%d,%d) overlaps previous end %d", i, m.Start, m.End, prevEnd)
		}
		prevEnd = m.End
	}
}

func TestResolve_ThresholdTable(t *testing.T) {
	candidates := []detector.Candidate{
		candidate("A", 0, 10, 0.9),
		candidate("B", 5, 15, 0.6),
		candidate("C", 20, 30, 0.55),
		candidate("D", 40, 50, 0.8),
	}

	tests := []struct {
		name      string
		threshold float64
		want      []detector.EntityType
	}{
		{"zero keeps every sweep winner", 0.0, []detector.EntityType{"A", "C", "D"}},
		{"mid drops the weak spans", 0.6, []detector.EntityType{"A", "D"}},
		{"high keeps only the strongest", 0.85, []detector.EntityType{"A"}},
		{"above all yields nothing", 0.95, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(candidates, tt.threshold)
			require.NoError(t, err)

			var types []detector.EntityType
			for _, m := range got {
				types = append(types, m.EntityType)
			}
			assert.Equal(t, tt.want, types)
		})
	}
}

func TestResolve_RaisingThresholdFreesSpans(t *testing.T) {
	// At a low threshold [0,10) wins the sweep on position even though
	// [5,15) scores higher; once the threshold removes the earlier span
	// the later one takes over.
	candidates := []detector.Candidate{
		candidate("A", 0, 10, 0.7),
		candidate("B", 5, 15, 0.9),
	}

	got, err := Resolve(candidates, 0.5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, detector.EntityType("A"), got[0].EntityType)

	got, err = Resolve(candidates, 0.8)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, detector.EntityType("B"), got[0].EntityType)
}

func TestResolve_InvalidSpan(t *testing.T) {
	tests := []struct {
		name      string
		candidate detector.Candidate
	}{
		{"zero width", candidate("EMAIL_ADDRESS", 5, 5, 0.9)},
		{"inverted", candidate("EMAIL_ADDRESS", 10, 5, 0.9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve([]detector.Candidate{tt.candidate}, 0.5)
			require.Error(t, err)
			assert.True(t, errors.Is(err, detector.ErrInvalidSpan))
		})
	}
}

func TestResolve_InvalidSpanBelowThresholdStillFails(t *testing.T) {
	// A broken recognizer is a bug regardless of its confidence; the
	// threshold filter must not paper over it.
	_, err := Resolve([]detector.Candidate{
		candidate("EMAIL_ADDRESS", 5, 5, 0.01),
	}, 0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, detector.ErrInvalidSpan))
}

func TestResolve_HigherScoreWinsAcrossOverlap(t *testing.T) {
	// Overlapping spans of different lengths: score decides, not length.
	candidates := []detector.Candidate{
		candidate("US_PASSPORT", 10, 19, 0.3),
		candidate("STATE_ID", 10, 18, 0.2),
	}

	got, err := Resolve(candidates, 0.2)
	require.NoError(t, err)

	want := asMatches(candidate("US_PASSPORT", 10, 19, 0.3))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_TypicalDocumentSpans(t *testing.T) {
	// The span set a sentence of prose typically produces: three disjoint
	// entities, all above threshold, already in document order.
	candidates := []detector.Candidate{
		candidate("PERSON", 0, 8, 0.85),
		candidate("US_SSN", 18, 29, 0.95),
		candidate("EMAIL_ADDRESS", 43, 59, 0.99),
	}

	got, err := Resolve(candidates, 0.5)
	require.NoError(t, err)

	want := asMatches(candidates...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Start, got[i-1].End)
	}
}
