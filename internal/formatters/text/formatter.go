// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"textscrub/internal/detector"
	"textscrub/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements colored columnar text output.
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
			"blue":    color.New(color.FgBlue),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(findings []formatters.Finding, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	filtered := formatters.FilterByLevel(findings, options.Levels)
	if len(filtered) == 0 {
		if len(findings) > 0 {
			return "No findings at the selected confidence levels.", nil
		}
		return "No findings.", nil
	}

	// Highest confidence first; document order breaks ties within a band.
	sorted := make([]formatters.Finding, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Match.Score != b.Match.Score {
			return a.Match.Score > b.Match.Score
		}
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Match.Start < b.Match.Start
	})

	var builder strings.Builder
	if options.Verbose {
		for _, finding := range sorted {
			f.appendDetailed(&builder, finding, options)
		}
	} else {
		f.appendHeaders(&builder, sorted, options)
		for _, finding := range sorted {
			f.appendLine(&builder, finding, sorted, options)
		}
	}

	if options.Summary {
		f.appendSummary(&builder, filtered, options)
	}
	return builder.String(), nil
}

func (f *Formatter) levelColor(band string) *color.Color {
	switch band {
	case "HIGH":
		return f.colors["red"]
	case "MEDIUM":
		return f.colors["yellow"]
	default:
		return f.colors["green"]
	}
}

// appendHeaders adds column headers to the string builder.
func (f *Formatter) appendHeaders(builder *strings.Builder, findings []formatters.Finding, options formatters.Options) {
	matchWidth := f.matchColumnWidth(findings, options)
	header := fmt.Sprintf("%-8s %-20s %-6s %-13s %-*s %s\n",
		"LEVEL", "TYPE", "SCORE", "SPAN", matchWidth, "MATCH", "FILE")
	if !options.NoColor {
		header = f.colors["white"].Sprint(header)
	}
	builder.WriteString(header)

	totalWidth := 8 + 1 + 20 + 1 + 6 + 1 + 13 + 1 + matchWidth + 1 + 10
	separator := strings.Repeat("-", totalWidth) + "\n"
	if !options.NoColor {
		separator = f.colors["white"].Sprint(separator)
	}
	builder.WriteString(separator)
}

// matchColumnWidth sizes the match column to the longest text it will show,
// capped at 30 characters for readability.
func (f *Formatter) matchColumnWidth(findings []formatters.Finding, options formatters.Options) int {
	maxWidth := 10 // fits "[REDACTED]"
	if options.ShowMatch {
		for _, finding := range findings {
			if n := len([]rune(flatten(finding.Match.Text))); n > maxWidth {
				maxWidth = n
			}
		}
	}
	if maxWidth > 30 {
		maxWidth = 30
	}
	return maxWidth
}

// appendLine adds the single-line summary of one finding.
func (f *Formatter) appendLine(builder *strings.Builder, finding formatters.Finding, all []formatters.Finding, options formatters.Options) {
	m := finding.Match
	band := formatters.Band(m.Score)

	levelStr := fmt.Sprintf("[%-6s]", band)
	if !options.NoColor {
		levelStr = f.levelColor(band).Sprintf("[%-6s]", band)
	}

	typeDisplay := string(m.EntityType)
	if len(typeDisplay) > 20 {
		typeDisplay = typeDisplay[:17] + "..."
	}
	typeStr := fmt.Sprintf("%-20s", typeDisplay)
	if !options.NoColor {
		typeStr = f.colors["cyan"].Sprintf("%-20s", typeDisplay)
	}

	scoreStr := fmt.Sprintf("%6.2f", m.Score)
	if !options.NoColor {
		scoreStr = f.colors["blue"].Sprintf("%6.2f", m.Score)
	}

	spanStr := fmt.Sprintf("%-13s", fmt.Sprintf("[%d,%d)", m.Start, m.End))
	if !options.NoColor {
		spanStr = f.colors["magenta"].Sprintf("%-13s", fmt.Sprintf("[%d,%d)", m.Start, m.End))
	}

	targetWidth := f.matchColumnWidth(all, options)
	matchText := "[REDACTED]"
	if options.ShowMatch {
		matchText = flatten(m.Text)
		if runes := []rune(matchText); len(runes) > targetWidth {
			matchText = string(runes[:targetWidth-3]) + "..."
		}
	}
	if padding := targetWidth - len([]rune(matchText)); padding > 0 {
		matchText += strings.Repeat(" ", padding)
	}

	fileStr := finding.File
	if !options.NoColor {
		fileStr = f.colors["white"].Sprint(finding.File)
	}

	fmt.Fprintf(builder, "%s %s %s %s %s %s\n",
		levelStr, typeStr, scoreStr, spanStr, matchText, fileStr)
}

// appendDetailed adds the verbose block for one finding.
func (f *Formatter) appendDetailed(builder *strings.Builder, finding formatters.Finding, options formatters.Options) {
	m := finding.Match
	band := formatters.Band(m.Score)

	title := "=== Finding ===\n"
	if !options.NoColor {
		title = f.colors["white"].Sprint(title)
	}
	builder.WriteString(title)

	writeField := func(label, value string, c *color.Color) {
		if !options.NoColor && c != nil {
			fmt.Fprintf(builder, "%-12s %s\n", label+":", c.Sprint(value))
			return
		}
		fmt.Fprintf(builder, "%-12s %s\n", label+":", value)
	}

	writeField("Type", string(m.EntityType), f.colors["cyan"])
	writeField("Level", band, f.levelColor(band))
	writeField("Score", fmt.Sprintf("%.2f", m.Score), f.colors["blue"])
	writeField("Span", fmt.Sprintf("[%d,%d)", m.Start, m.End), f.colors["magenta"])
	if finding.File != "" {
		writeField("File", finding.File, nil)
	}
	if options.ShowMatch {
		writeField("Match", flatten(m.Text), nil)
	}
	if ctx := finding.Context; ctx != nil {
		if ctx.BeforeText != "" || ctx.AfterText != "" {
			writeField("Context", flatten(ctx.BeforeText)+" >>> "+flatten(ctx.AfterText), nil)
		}
		if len(ctx.MatchedKeywords) > 0 {
			writeField("Keywords", strings.Join(ctx.MatchedKeywords, ", "), f.colors["green"])
			writeField("Boost", fmt.Sprintf("+%.2f", ctx.Boost), f.colors["green"])
		}
	}
	builder.WriteString("\n")
}

// appendSummary adds per-entity-type counts, largest first.
func (f *Formatter) appendSummary(builder *strings.Builder, findings []formatters.Finding, options formatters.Options) {
	counts := formatters.Summarize(findings)
	types := make([]detector.EntityType, 0, len(counts))
	for et := range counts {
		types = append(types, et)
	}
	sort.Slice(types, func(i, j int) bool {
		if counts[types[i]] != counts[types[j]] {
			return counts[types[i]] > counts[types[j]]
		}
		return types[i] < types[j]
	})

	title := fmt.Sprintf("\nSummary: %d findings\n", len(findings))
	if !options.NoColor {
		title = f.colors["white"].Sprint(title)
	}
	builder.WriteString(title)
	for _, et := range types {
		line := fmt.Sprintf("  %-22s %d\n", et, counts[et])
		if !options.NoColor {
			line = f.colors["cyan"].Sprint(line)
		}
		builder.WriteString(line)
	}
}

// flatten folds a matched span onto one line for columnar display.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\t", " ")
}

// Register the formatter during package initialization.
func init() {
	formatters.Register(NewFormatter())
}
