// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"textscrub/internal/detector"

	"gopkg.in/yaml.v3"
)

// RecognizerSpec describes one custom recognizer in a recognizer file.
// The schema follows the common YAML layout used by pattern-based PII
// engines:
//
//	recognizers:
//	  - name: "Rocket serial"
//	    supported_entity: "ROCKET_SERIAL"
//	    patterns:
//	      - name: "serial"
//	        regex: "\\bRKT-\\d{6}\\b"
//	        score: 0.8
//	    context: ["rocket", "launch"]
//	  - name: "Project codenames"
//	    supported_entity: "PROJECT_CODENAME"
//	    deny_list: ["Blue Falcon", "Iron Kite"]
//
// A deny list compiles to a word-bounded alternation of the literal terms,
// longest first, with score 1.0 unless deny_list_score says otherwise.
type RecognizerSpec struct {
	Name            string        `yaml:"name"`
	SupportedEntity string        `yaml:"supported_entity"`
	Patterns        []PatternSpec `yaml:"patterns"`
	DenyList        []string      `yaml:"deny_list"`
	DenyListScore   *float64      `yaml:"deny_list_score,omitempty"`
	Context         []string      `yaml:"context"`
}

// PatternSpec is one regex pattern within a RecognizerSpec.
type PatternSpec struct {
	Name  string  `yaml:"name"`
	Regex string  `yaml:"regex"`
	Score float64 `yaml:"score"`
}

type recognizerFile struct {
	Recognizers []RecognizerSpec `yaml:"recognizers"`
}

// LoadRecognizers reads a recognizer file and builds one pattern recognizer
// per entry. Two entries claiming the same entity type, or an entry
// claiming a built-in one, surface the registry's duplicate error when the
// result is registered.
func LoadRecognizers(path string) ([]detector.Recognizer, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading recognizers file: %w", err)
	}

	var file recognizerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing recognizers file: %w", err)
	}

	recognizers := make([]detector.Recognizer, 0, len(file.Recognizers))
	for i, spec := range file.Recognizers {
		rec, err := buildRecognizer(spec)
		if err != nil {
			name := spec.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("recognizer %s: %w", name, err)
		}
		recognizers = append(recognizers, rec)
	}
	return recognizers, nil
}

func buildRecognizer(spec RecognizerSpec) (detector.Recognizer, error) {
	entity := detector.EntityType(strings.ToUpper(strings.TrimSpace(spec.SupportedEntity)))
	if entity == "" {
		return nil, fmt.Errorf("missing supported_entity")
	}
	if len(spec.Patterns) == 0 && len(spec.DenyList) == 0 {
		return nil, fmt.Errorf("needs at least one pattern or a deny_list")
	}

	var patterns []detector.Pattern
	for i, p := range spec.Patterns {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("pattern_%d", i+1)
		}
		if p.Regex == "" {
			return nil, fmt.Errorf("pattern %s: missing regex", name)
		}
		if p.Score < 0 || p.Score > 1 {
			return nil, fmt.Errorf("pattern %s: score %v outside [0, 1]", name, p.Score)
		}
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", name, err)
		}
		patterns = append(patterns, detector.Pattern{
			Name:   name,
			Regexp: re,
			Score:  p.Score,
		})
	}

	if len(spec.DenyList) > 0 {
		score := 1.0
		if spec.DenyListScore != nil {
			score = *spec.DenyListScore
		}
		if score < 0 || score > 1 {
			return nil, fmt.Errorf("deny_list_score %v outside [0, 1]", score)
		}
		re, err := denyListRegexp(spec.DenyList)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, detector.Pattern{
			Name:   "deny_list",
			Regexp: re,
			Score:  score,
		})
	}

	return detector.NewPatternRecognizer(entity, patterns, spec.Context), nil
}

// denyListRegexp compiles the literal terms into a word-bounded
// alternation. Longer terms come first so "New York City" wins over
// "New York" at the same offset.
func denyListRegexp(terms []string) (*regexp.Regexp, error) {
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(term))
	}
	if len(quoted) == 0 {
		return nil, fmt.Errorf("deny_list has no usable terms")
	}
	sort.SliceStable(quoted, func(i, j int) bool {
		return len(quoted[i]) > len(quoted[j])
	})
	return regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
