// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"regexp"
	"strings"
	"testing"
)

func TestFindSpans_MultipleOccurrences(t *testing.T) {
	rec := NewPatternRecognizer("EMAIL_ADDRESS",
		[]Pattern{{
			Name:   "basic email",
			Regexp: regexp.MustCompile(`[a-z]+@[a-z]+\.[a-z]{2,}`),
			Score:  0.85,
		}},
		nil)

	text := "write a@x.io or b@y.org today"
	got := rec.FindSpans(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(got))
	}

	for i, c := range got {
		if c.EntityType != "EMAIL_ADDRESS" {
			t.Errorf("span %d entity type = %q", i, c.EntityType)
		}
		if c.Score != 0.85 {
			t.Errorf("span %d score = %v, want the pattern's base", i, c.Score)
		}
		if text[c.Start:c.End] != c.Text {
			t.Errorf("span %d text %q does not match offsets [%d,%d)", i, c.Text, c.Start, c.End)
		}
	}
	if got[0].Text != "a@x.io" || got[1].Text != "b@y.org" {
		t.Errorf("unexpected span texts: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestFindSpans_NoOccurrences(t *testing.T) {
	rec := NewPatternRecognizer("US_SSN",
		[]Pattern{{Name: "dashed", Regexp: regexp.MustCompile(`\d{3}-\d{2}-\d{4}`), Score: 0.9}},
		nil)
	if got := rec.FindSpans("nothing numeric here"); len(got) != 0 {
		t.Errorf("expected no spans, got %d", len(got))
	}
}

func TestFindSpans_ZeroWidthMatchesSkipped(t *testing.T) {
	// x* matches the empty string at every position; only real runs count.
	rec := NewPatternRecognizer("X",
		[]Pattern{{Name: "star", Regexp: regexp.MustCompile(`x*`), Score: 0.5}},
		nil)

	got := rec.FindSpans("ax bxx c")
	if len(got) != 2 {
		t.Fatalf("expected 2 non-empty spans, got %d: %+v", len(got), got)
	}
	if got[0].Text != "x" || got[1].Text != "xx" {
		t.Errorf("unexpected span texts: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestFindSpans_ValidateGateRejects(t *testing.T) {
	evenOnly := func(match string) bool {
		last := match[len(match)-1]
		return (last-'0')%2 == 0
	}
	rec := NewPatternRecognizer("ACCOUNT",
		[]Pattern{{
			Name:     "digits",
			Regexp:   regexp.MustCompile(`\d{4}`),
			Score:    0.7,
			Validate: evenOnly,
		}},
		nil)

	got := rec.FindSpans("ids 1234 and 1235 and 1236")
	if len(got) != 2 {
		t.Fatalf("expected validator to drop the odd id, got %d spans", len(got))
	}
	if got[0].Text != "1234" || got[1].Text != "1236" {
		t.Errorf("unexpected survivors: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestFindSpans_PatternsMayOverlap(t *testing.T) {
	rec := NewPatternRecognizer("ID",
		[]Pattern{
			{Name: "labeled", Regexp: regexp.MustCompile(`id: \d+`), Score: 0.9},
			{Name: "bare", Regexp: regexp.MustCompile(`\d+`), Score: 0.4},
		},
		nil)

	got := rec.FindSpans("id: 777")
	if len(got) != 2 {
		t.Fatalf("expected both patterns to emit, got %d spans", len(got))
	}
	// Declaration order: labeled pattern first.
	if got[0].Text != "id: 777" || got[0].Score != 0.9 {
		t.Errorf("first span = %q (%v)", got[0].Text, got[0].Score)
	}
	if got[1].Text != "777" || got[1].Score != 0.4 {
		t.Errorf("second span = %q (%v)", got[1].Text, got[1].Score)
	}
}

func TestContextExtractor_Extract(t *testing.T) {
	text := "The patient John Smith was admitted yesterday."
	start := strings.Index(text, "John")
	end := start + len("John Smith")

	info := NewContextExtractor().WithContextChars(12).Extract(text, start, end)
	if info.BeforeText != "The patient " {
		t.Errorf("BeforeText = %q", info.BeforeText)
	}
	if info.AfterText != " was admitte" {
		t.Errorf("AfterText = %q", info.AfterText)
	}
}

func TestContextExtractor_ClampsAtBoundaries(t *testing.T) {
	text := "short"
	info := NewContextExtractor().Extract(text, 0, len(text))
	if info.BeforeText != "" || info.AfterText != "" {
		t.Errorf("expected empty context at text boundaries, got %q / %q",
			info.BeforeText, info.AfterText)
	}
}

func TestContextExtractor_InvalidOffsets(t *testing.T) {
	ce := NewContextExtractor()
	for _, span := range [][2]int{{-1, 3}, {0, 100}, {4, 2}} {
		info := ce.Extract("tiny text", span[0], span[1])
		if info.BeforeText != "" || info.AfterText != "" {
			t.Errorf("span [%d,%d): expected zero ContextInfo", span[0], span[1])
		}
	}
}

func TestContextExtractor_WindowIncludesSpanLowercased(t *testing.T) {
	text := "Account NO 12345 HERE"
	start := strings.Index(text, "12345")
	window := NewContextExtractor().WithContextChars(6).Window(text, start, start+5)
	if window != "nt no 12345 here" {
		t.Errorf("Window = %q", window)
	}
}
