// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matcher turns free text into scored candidate spans by running
// every requested recognizer and adjusting each pattern's base confidence
// with a context-keyword scan of the surrounding window.
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"textscrub/internal/detector"
	"textscrub/internal/registry"
)

const (
	// DefaultWindowChars is the context window applied on each side of a span.
	DefaultWindowChars = 50

	// DefaultContextBoost is the score increment applied when any of a
	// recognizer's keywords appears in the window. Large enough to carry a
	// weak structural shape (0.1-0.3 base) past a 0.5 threshold.
	DefaultContextBoost = 0.35
)

// Matcher produces candidates for one registry. Safe for concurrent use once
// constructed.
type Matcher struct {
	registry *registry.Registry
	window   int
	boost    float64
}

// New creates a Matcher over reg with the default window and boost.
func New(reg *registry.Registry) *Matcher {
	return &Matcher{
		registry: reg,
		window:   DefaultWindowChars,
		boost:    DefaultContextBoost,
	}
}

// WithWindow sets the context window in characters per side.
func (m *Matcher) WithWindow(chars int) *Matcher {
	m.window = chars
	return m
}

// WithBoost sets the keyword boost increment.
func (m *Matcher) WithBoost(boost float64) *Matcher {
	m.boost = boost
	return m
}

// Match runs the recognizers for the requested entity types over text and
// returns every raw occurrence as a context-scored candidate. A nil or empty
// entityTypes slice means every registered type. Requesting an unregistered
// type fails with ErrUnknownEntityType; empty or whitespace-only text yields
// no candidates and no error.
//
// Output order is deterministic: entity types ascending, then each
// recognizer's own pattern/occurrence order. Overlapping candidates across
// types are all emitted; resolution happens downstream.
func (m *Matcher) Match(text string, entityTypes []detector.EntityType) ([]detector.Candidate, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	types, err := m.resolveTypes(entityTypes)
	if err != nil {
		return nil, err
	}

	var out []detector.Candidate
	for _, et := range types {
		rec, _ := m.registry.Get(et)
		keywords := rec.ContextKeywords()
		for _, c := range rec.FindSpans(text) {
			c.Score = scoreWithContext(text, c.Start, c.End, c.Score, keywords, m.window, m.boost)
			out = append(out, c)
		}
	}
	return out, nil
}

// ExtractContext returns the window around a candidate for reporting: the
// text on each side, the recognizer keywords found in the window, and the
// boost those keywords contributed.
func (m *Matcher) ExtractContext(text string, c detector.Candidate) detector.ContextInfo {
	ext := detector.NewContextExtractor().WithContextChars(m.window)
	info := ext.Extract(text, c.Start, c.End)

	rec, ok := m.registry.Get(c.EntityType)
	if !ok {
		return info
	}
	window := ext.Window(text, c.Start, c.End)
	for _, kw := range rec.ContextKeywords() {
		if strings.Contains(window, kw) {
			info.MatchedKeywords = append(info.MatchedKeywords, kw)
		}
	}
	if len(info.MatchedKeywords) > 0 {
		info.Boost = m.boost
	}
	return info
}

// resolveTypes canonicalizes the requested set: nil means all registered
// types; explicit requests are deduplicated, checked against the registry,
// and sorted so output order never depends on caller order.
func (m *Matcher) resolveTypes(entityTypes []detector.EntityType) ([]detector.EntityType, error) {
	if len(entityTypes) == 0 {
		return m.registry.EntityTypes(), nil
	}
	seen := make(map[detector.EntityType]bool, len(entityTypes))
	types := make([]detector.EntityType, 0, len(entityTypes))
	for _, et := range entityTypes {
		if seen[et] {
			continue
		}
		seen[et] = true
		if _, ok := m.registry.Get(et); !ok {
			return nil, fmt.Errorf("%w: %s", detector.ErrUnknownEntityType, et)
		}
		types = append(types, et)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types, nil
}

// scoreWithContext applies the context heuristic as a pure function: take
// the lowercased window of windowChars on each side of text[start:end]
// (span included), and if any keyword occurs as a substring add boost once.
// The result is clamped to [0,1].
func scoreWithContext(text string, start, end int, base float64, keywords []string, windowChars int, boost float64) float64 {
	winStart := max(0, start-windowChars)
	winEnd := min(len(text), end+windowChars)
	window := strings.ToLower(text[winStart:winEnd])

	score := base
	for _, kw := range keywords {
		if strings.Contains(window, kw) {
			score += boost
			break
		}
	}
	return min(1, max(0, score))
}
