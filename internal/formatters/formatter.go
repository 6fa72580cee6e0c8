// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders scan results for the CLI and any other
// consumer. Formatters self-register into a package-level registry from
// their init functions; importing a formatter package is what makes its
// format available.
package formatters

import (
	"fmt"
	"sort"
	"strings"

	"textscrub/internal/detector"
)

// Finding is one resolved match tied to the file it came from. Context is
// nil unless the scan captured surrounding-text information.
type Finding struct {
	File    string
	Match   detector.Match
	Context *detector.ContextInfo
}

// Options defines configuration options shared by all formatters.
type Options struct {
	// Levels filters output to the named confidence bands ("high",
	// "medium", "low"). Nil or empty means all bands.
	Levels map[string]bool

	// Verbose switches to the detailed per-finding layout.
	Verbose bool

	// NoColor disables colored output.
	NoColor bool

	// ShowMatch includes the matched text itself. Off by default so scan
	// reports do not replicate the data they flag.
	ShowMatch bool

	// Summary appends per-entity-type counts.
	Summary bool
}

// Formatter is implemented by every output format.
type Formatter interface {
	// Format renders the findings according to the formatter's output format.
	Format(findings []Finding, options Options) (string, error)

	// Name returns the format name used for lookup (e.g. "text", "json").
	Name() string

	// Description returns a brief description of the output.
	Description() string

	// FileExtension returns the recommended file extension (e.g. ".txt").
	FileExtension() string
}

// Band returns the confidence band for a score on the [0,1] scale:
// HIGH at 0.8 and above, MEDIUM at 0.5 and above, LOW below that.
func Band(score float64) string {
	switch {
	case score >= 0.8:
		return "HIGH"
	case score >= 0.5:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// FilterByLevel drops findings whose confidence band is not selected.
func FilterByLevel(findings []Finding, levels map[string]bool) []Finding {
	if len(levels) == 0 {
		return findings
	}
	var out []Finding
	for _, f := range findings {
		if levels[strings.ToLower(Band(f.Match.Score))] {
			out = append(out, f)
		}
	}
	return out
}

// ParseLevels converts a comma-separated band list ("high,medium") into the
// Options.Levels filter. "all" or an empty string selects every band; an
// unknown band name is an error.
func ParseLevels(levels string) (map[string]bool, error) {
	levels = strings.TrimSpace(strings.ToLower(levels))
	if levels == "" || levels == "all" {
		return nil, nil
	}
	out := make(map[string]bool)
	for _, level := range strings.Split(levels, ",") {
		level = strings.TrimSpace(level)
		switch level {
		case "high", "medium", "low":
			out[level] = true
		case "":
		default:
			return nil, fmt.Errorf("unknown confidence level %q (want high, medium or low)", level)
		}
	}
	return out, nil
}

// Summarize counts findings per entity type.
func Summarize(findings []Finding) map[detector.EntityType]int {
	counts := make(map[detector.EntityType]int)
	for _, f := range findings {
		counts[f.Match.EntityType]++
	}
	return counts
}

// Registry holds all registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns the registered format names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry formatters self-register
// into.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get retrieves a formatter from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List returns the format names registered in the default registry.
func List() []string {
	return DefaultRegistry.List()
}

// Export formats findings with the named formatter from the default
// registry.
func Export(format string, findings []Finding, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format %q. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(findings, options)
}
