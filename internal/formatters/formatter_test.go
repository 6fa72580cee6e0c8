// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"textscrub/internal/detector"
)

func finding(et detector.EntityType, score float64) Finding {
	return Finding{
		File: "doc.txt",
		Match: detector.Match{Candidate: detector.Candidate{
			EntityType: et,
			Start:      0,
			End:        5,
			Text:       "xxxxx",
			Score:      score,
		}},
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "HIGH"},
		{0.8, "HIGH"},
		{0.79, "MEDIUM"},
		{0.5, "MEDIUM"},
		{0.49, "LOW"},
		{0, "LOW"},
	}
	for _, tt := range tests {
		if got := Band(tt.score); got != tt.want {
			t.Errorf("Band(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestFilterByLevel(t *testing.T) {
	findings := []Finding{
		finding("US_SSN", 0.95),
		finding("EMAIL_ADDRESS", 0.6),
		finding("US_PASSPORT", 0.3),
	}

	tests := []struct {
		name   string
		levels map[string]bool
		want   int
	}{
		{"nil passes all", nil, 3},
		{"empty passes all", map[string]bool{}, 3},
		{"high only", map[string]bool{"high": true}, 1},
		{"high and medium", map[string]bool{"high": true, "medium": true}, 2},
		{"low only", map[string]bool{"low": true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterByLevel(findings, tt.levels); len(got) != tt.want {
				t.Errorf("expected %d findings, got %d", tt.want, len(got))
			}
		})
	}
}

func TestParseLevels(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]bool
		wantErr bool
	}{
		{"empty means all", "", nil, false},
		{"all keyword", "all", nil, false},
		{"single", "high", map[string]bool{"high": true}, false},
		{"pair with spaces", " high , medium ", map[string]bool{"high": true, "medium": true}, false},
		{"case folded", "HIGH", map[string]bool{"high": true}, false},
		{"unknown level", "extreme", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevels(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for level := range tt.want {
				if !got[level] {
					t.Errorf("expected level %q selected", level)
				}
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Get("text"); ok {
		t.Error("expected empty registry to have no formatters")
	}

	reg.Register(stubFormatter{name: "beta"})
	reg.Register(stubFormatter{name: "alpha"})

	if _, ok := reg.Get("beta"); !ok {
		t.Error("expected beta to be registered")
	}
	names := reg.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("expected sorted [alpha beta], got %v", names)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	if _, err := Export("carrier-pigeon", nil, Options{}); err == nil {
		t.Error("expected error for unknown format")
	}
}

type stubFormatter struct{ name string }

func (s stubFormatter) Format([]Finding, Options) (string, error) { return "", nil }
func (s stubFormatter) Name() string                              { return s.name }
func (s stubFormatter) Description() string                       { return "stub" }
func (s stubFormatter) FileExtension() string                     { return ".stub" }
