// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core composes the detection pipeline (registry, matcher,
// resolver, anonymizer) behind the two entry points collaborators call:
// Detect and Anonymize.
package core

import (
	"textscrub/internal/anonymizer"
	"textscrub/internal/detector"
	"textscrub/internal/generator"
	"textscrub/internal/matcher"
	"textscrub/internal/registry"
	"textscrub/internal/resolver"
)

// DefaultThreshold is the score cutoff applied when a caller passes a
// negative threshold.
const DefaultThreshold = 0.5

// Engine is the assembled pipeline. Read-only after construction and safe to
// share across goroutines; per-call state stays on the stack of each call.
type Engine struct {
	registry  *registry.Registry
	matcher   *matcher.Matcher
	threshold float64
}

// NewEngine assembles an engine over reg with default threshold, window and
// boost.
func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{
		registry:  reg,
		matcher:   matcher.New(reg),
		threshold: DefaultThreshold,
	}
}

// WithThreshold sets the default score cutoff used when Detect is called
// with a negative threshold.
func (e *Engine) WithThreshold(t float64) *Engine {
	e.threshold = t
	return e
}

// WithWindow sets the context window in characters per side.
func (e *Engine) WithWindow(chars int) *Engine {
	e.matcher.WithWindow(chars)
	return e
}

// WithBoost sets the context keyword boost.
func (e *Engine) WithBoost(boost float64) *Engine {
	e.matcher.WithBoost(boost)
	return e
}

// EntityTypes returns the registered entity types, sorted.
func (e *Engine) EntityTypes() []detector.EntityType {
	return e.registry.EntityTypes()
}

// Detect runs matching and resolution over text for every registered entity
// type. A negative threshold selects the engine default. The result is
// non-overlapping and sorted ascending by start.
func (e *Engine) Detect(text string, threshold float64) ([]detector.Match, error) {
	return e.DetectTypes(text, threshold, nil)
}

// DetectTypes is Detect restricted to the given entity types; nil means all.
func (e *Engine) DetectTypes(text string, threshold float64, entityTypes []detector.EntityType) ([]detector.Match, error) {
	candidates, err := e.matcher.Match(text, entityTypes)
	if err != nil {
		return nil, err
	}
	if threshold < 0 {
		threshold = e.threshold
	}
	return resolver.Resolve(candidates, threshold)
}

// MatchContext pairs a resolved match with the window text around it, for
// review output.
type MatchContext struct {
	Match   detector.Match       `json:"match"`
	Context detector.ContextInfo `json:"context"`
}

// DetectWithContext is Detect plus the surrounding context of each match.
func (e *Engine) DetectWithContext(text string, threshold float64) ([]MatchContext, error) {
	return e.DetectTypesWithContext(text, threshold, nil)
}

// DetectTypesWithContext is DetectTypes plus the surrounding context of each
// match.
func (e *Engine) DetectTypesWithContext(text string, threshold float64, entityTypes []detector.EntityType) ([]MatchContext, error) {
	matches, err := e.DetectTypes(text, threshold, entityTypes)
	if err != nil {
		return nil, err
	}
	out := make([]MatchContext, len(matches))
	for i, m := range matches {
		out[i] = MatchContext{
			Match:   m,
			Context: e.matcher.ExtractContext(text, m.Candidate),
		}
	}
	return out, nil
}

// Summary counts resolved matches per entity type.
func (e *Engine) Summary(matches []detector.Match) map[detector.EntityType]int {
	counts := make(map[detector.EntityType]int)
	for _, m := range matches {
		counts[m.EntityType]++
	}
	return counts
}

// Anonymize rewrites text according to matches using a synthetic generator
// seeded with seed (0 means time-seeded, any other value reproduces the same
// replacement sequence). mapping may be nil; when supplied it is read for
// reuse and updated in place.
func (e *Engine) Anonymize(text string, matches []detector.Match, seed int64, mapping detector.ReplacementMapping) (string, []detector.ReplacementRecord, error) {
	return anonymizer.Anonymize(text, matches, generator.New(seed), mapping)
}
