// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package detector defines the core data model shared by the detection and
// anonymization pipeline: entity types, recognizers, candidate and match
// spans, and the replacement ledger.
package detector

import (
	"regexp"
)

// EntityType identifies a category of sensitive data (e.g. "US_SSN").
type EntityType string

// Pattern is one regex rule of a recognizer: a compiled expression with the
// base confidence assigned to every occurrence it produces. Validate, when
// non-nil, is a post-match gate applied to the matched text; occurrences it
// rejects are discarded before scoring. Constraints that lookahead-style
// regexes would normally express (SSN area/group/serial rules, checksums)
// live in Validate because RE2 has no lookaheads.
type Pattern struct {
	Name     string
	Regexp   *regexp.Regexp
	Score    float64
	Validate func(match string) bool
}

// Recognizer detects raw spans of a single entity type. Implementations must
// be safe for concurrent use; the standard implementation is
// PatternRecognizer, but model-backed recognizers satisfying the same
// contract can be registered alongside it.
type Recognizer interface {
	// EntityType returns the one entity type this recognizer owns.
	EntityType() EntityType

	// ContextKeywords returns the lowercase keywords whose presence near a
	// span corroborates it during context scoring.
	ContextKeywords() []string

	// FindSpans returns every raw occurrence in text as a Candidate carrying
	// the producing pattern's base score. Context scoring is applied later by
	// the matcher; implementations must not boost here.
	FindSpans(text string) []Candidate
}

// Candidate is an unresolved detected span. Start and End are half-open byte
// offsets into the original text. Candidates are ephemeral: produced by the
// matcher, filtered and promoted by the resolver, never mutated in place.
type Candidate struct {
	EntityType EntityType `json:"entity_type"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Text       string     `json:"text"`
	Score      float64    `json:"score"`
}

// Match is a Candidate promoted to final by the resolver. The match list of
// one detection run is non-overlapping and sorted ascending by Start.
type Match struct {
	Candidate
}

// ReplacementRecord describes one substitution performed by the anonymizer.
type ReplacementRecord struct {
	EntityType  EntityType `json:"entity_type"`
	Original    string     `json:"original_value"`
	Replacement string     `json:"replacement_value"`
	Start       int        `json:"start"`
	End         int        `json:"end"`
	Score       float64    `json:"confidence_score"`
}

// ReplacementMapping maps an original value to its chosen replacement. It is
// owned by the caller; the anonymizer reads and writes it in place so that
// identical original values receive identical replacements within a run, and
// across runs if the caller persists the mapping.
type ReplacementMapping map[string]string

// PatternRecognizer is the standard Recognizer: an ordered list of patterns
// plus a context keyword set, immutable after construction.
type PatternRecognizer struct {
	entityType EntityType
	patterns   []Pattern
	keywords   []string
}

// NewPatternRecognizer builds a recognizer for entityType. Patterns are
// evaluated in the order given; keywords must already be lowercase.
func NewPatternRecognizer(entityType EntityType, patterns []Pattern, keywords []string) *PatternRecognizer {
	return &PatternRecognizer{
		entityType: entityType,
		patterns:   patterns,
		keywords:   keywords,
	}
}

// EntityType returns the entity type this recognizer owns.
func (r *PatternRecognizer) EntityType() EntityType {
	return r.entityType
}

// ContextKeywords returns the recognizer's context keyword set.
func (r *PatternRecognizer) ContextKeywords() []string {
	return r.keywords
}

// Patterns returns the recognizer's pattern list in declaration order.
func (r *PatternRecognizer) Patterns() []Pattern {
	return r.patterns
}

// FindSpans runs every pattern over text in declaration order. Occurrences of
// one pattern are non-overlapping (leftmost-longest regex semantics); spans
// from different patterns may overlap and all are emitted, since overlap
// resolution belongs to the resolver.
func (r *PatternRecognizer) FindSpans(text string) []Candidate {
	var candidates []Candidate
	for _, p := range r.patterns {
		for _, loc := range p.Regexp.FindAllStringIndex(text, -1) {
			if loc[0] == loc[1] {
				// Zero-width matches carry no text to act on.
				continue
			}
			matched := text[loc[0]:loc[1]]
			if p.Validate != nil && !p.Validate(matched) {
				continue
			}
			candidates = append(candidates, Candidate{
				EntityType: r.entityType,
				Start:      loc[0],
				End:        loc[1],
				Text:       matched,
				Score:      p.Score,
			})
		}
	}
	return candidates
}
