// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// ContextInfo stores the text surrounding a detected span and the outcome of
// context scoring against it.
type ContextInfo struct {
	// Text before and after the span, clipped to the configured window.
	BeforeText string
	AfterText  string

	// Keywords from the recognizer found inside the window (lowercase).
	MatchedKeywords []string

	// Boost applied to the candidate's base score, 0 when no keyword hit.
	Boost float64
}

// ContextExtractor extracts the character window around a span. The default
// window of 50 characters on each side is the one detection uses for keyword
// scoring; reporting paths may widen it.
type ContextExtractor struct {
	ContextChars int
}

// NewContextExtractor creates a context extractor with the default window.
func NewContextExtractor() *ContextExtractor {
	return &ContextExtractor{ContextChars: 50}
}

// WithContextChars sets the number of context characters per side.
func (ce *ContextExtractor) WithContextChars(chars int) *ContextExtractor {
	ce.ContextChars = chars
	return ce
}

// Extract returns the context around text[start:end], clamped to the text
// bounds. Offsets outside the text yield empty context rather than panicking;
// span validity is enforced elsewhere.
func (ce *ContextExtractor) Extract(text string, start, end int) ContextInfo {
	if start < 0 || end > len(text) || start > end {
		return ContextInfo{}
	}
	winStart := max(0, start-ce.ContextChars)
	winEnd := min(len(text), end+ce.ContextChars)
	return ContextInfo{
		BeforeText: text[winStart:start],
		AfterText:  text[end:winEnd],
	}
}

// Window returns the lowercased window around text[start:end] including the
// span itself, the form consumed by keyword scoring.
func (ce *ContextExtractor) Window(text string, start, end int) string {
	if start < 0 || end > len(text) || start > end {
		return ""
	}
	winStart := max(0, start-ce.ContextChars)
	winEnd := min(len(text), end+ce.ContextChars)
	return strings.ToLower(text[winStart:winEnd])
}
