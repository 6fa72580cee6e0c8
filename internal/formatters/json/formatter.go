// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"textscrub/internal/detector"
	"textscrub/internal/formatters"
)

// Formatter implements JSON output formatting.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

type jsonContext struct {
	Before   string   `json:"before,omitempty"`
	After    string   `json:"after,omitempty"`
	Keywords []string `json:"matched_keywords,omitempty"`
	Boost    float64  `json:"boost,omitempty"`
}

type jsonFinding struct {
	File       string       `json:"file,omitempty"`
	EntityType string       `json:"entity_type"`
	Start      int          `json:"start"`
	End        int          `json:"end"`
	Text       string       `json:"text,omitempty"`
	Score      float64      `json:"score"`
	Level      string       `json:"level"`
	Context    *jsonContext `json:"context,omitempty"`
}

type jsonReport struct {
	Findings []jsonFinding               `json:"findings"`
	Summary  map[detector.EntityType]int `json:"summary,omitempty"`
	Total    int                         `json:"total"`
}

// Format renders findings in document order. The matched text is included
// only when ShowMatch is set, so machine-readable reports do not leak the
// values they flag by default.
func (f *Formatter) Format(findings []formatters.Finding, options formatters.Options) (string, error) {
	filtered := formatters.FilterByLevel(findings, options.Levels)

	report := jsonReport{
		Findings: make([]jsonFinding, 0, len(filtered)),
		Total:    len(filtered),
	}
	for _, finding := range filtered {
		m := finding.Match
		out := jsonFinding{
			File:       finding.File,
			EntityType: string(m.EntityType),
			Start:      m.Start,
			End:        m.End,
			Score:      m.Score,
			Level:      formatters.Band(m.Score),
		}
		if options.ShowMatch {
			out.Text = m.Text
		}
		if ctx := finding.Context; ctx != nil {
			out.Context = &jsonContext{
				Before:   ctx.BeforeText,
				After:    ctx.AfterText,
				Keywords: ctx.MatchedKeywords,
				Boost:    ctx.Boost,
			}
		}
		report.Findings = append(report.Findings, out)
	}
	if options.Summary {
		report.Summary = formatters.Summarize(filtered)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization.
func init() {
	formatters.Register(NewFormatter())
}
