// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help renders CLI usage and entity-type reference text.
package help

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// EntityInfo is one row of the list-types report.
type EntityInfo struct {
	Name     string // entity type name (e.g. "CREDIT_CARD")
	Keywords int    // number of context keywords backing the type
	Sample   string // example synthetic replacement
}

// System manages help content for the application
type System struct {
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Textscrub - Sensitive Data Detection and Anonymization")
	fmt.Println("======================================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  textscrub <command> [options] <file>...")
	fmt.Println()

	h.colors["header"].Println("COMMANDS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  scan\tDetect sensitive data in files and report findings")
	fmt.Fprintln(w, "  anonymize\tReplace detected sensitive data with synthetic values")
	fmt.Fprintln(w, "  extract\tExtract plain text from supported files (txt, pdf, images)")
	fmt.Fprintln(w, "  list-types\tList the entity types the scanner recognizes")
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("COMMON OPTIONS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --recursive\t\tRecursively process directories")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (default: stdout)")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --debug\t\tPrint step-by-step timing to stderr")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help <command>\t\tShow detailed help for a command")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  textscrub scan notes.txt")
	h.colors["example"].Println("  textscrub scan --threshold 0.8 --format json report.pdf")
	h.colors["example"].Println("  textscrub anonymize --seed 42 --ledger audit.json notes.txt")
	h.colors["example"].Println("  textscrub extract scan.jpg")
	fmt.Println()

	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Project config: textscrub.yaml or .textscrub.yaml (in current directory)")
	fmt.Println("  User config: $XDG_CONFIG_HOME/textscrub/config.yaml")
}

// ShowCommandHelp displays detailed help for a command. It returns false
// when the command is unknown.
func (h *System) ShowCommandHelp(command string) bool {
	switch command {
	case "scan":
		h.showScanHelp()
	case "anonymize":
		h.showAnonymizeHelp()
	case "extract":
		h.showExtractHelp()
	case "list-types":
		h.showListTypesHelp()
	default:
		h.colors["negative"].Printf("Error: Command '%s' not found.\n", command)
		fmt.Println("Use 'textscrub --help' to see the available commands.")
		return false
	}
	return true
}

func (h *System) showScanHelp() {
	h.colors["title"].Println("scan - Detect Sensitive Data")
	fmt.Println("============================")
	fmt.Println()
	fmt.Println("Extracts text from each input file, runs every enabled recognizer over it,")
	fmt.Println("and reports the resolved findings. Findings carry a confidence score in")
	fmt.Println("[0, 1]; scores at or above 0.8 rank HIGH, at or above 0.5 MEDIUM, else LOW.")
	fmt.Println()

	h.colors["header"].Println("USAGE:")
	fmt.Println("  textscrub scan [options] <file>...")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --threshold\t<score>\tMinimum confidence score to keep a finding (default: 0.5)")
	fmt.Fprintln(w, "  --entities\t<types>\tComma-separated entity types to detect (default: all)")
	fmt.Fprintln(w, "  --allowlist\t<path>\tYAML allowlist of known-safe values to exclude from findings")
	fmt.Fprintln(w, "  --confidence\t<levels>\tConfidence levels to display: high,medium,low,all (default: all)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json (default: text)")
	fmt.Fprintln(w, "  --show-match\t\tDisplay the matched text in findings (otherwise shows [REDACTED])")
	fmt.Fprintln(w, "  --context\t\tDisplay surrounding context and matched keywords per finding")
	fmt.Fprintln(w, "  --verbose\t\tDisplay detailed information for each finding")
	fmt.Fprintln(w, "  --summary\t\tAppend per-entity-type finding counts")
	fmt.Fprintln(w, "  --workers\t<n>\tConcurrent files in a batch (default: CPU count, max 8)")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  textscrub scan notes.txt")
	h.colors["example"].Println("  textscrub scan --entities US_SSN,CREDIT_CARD --show-match notes.txt")
	h.colors["example"].Println("  textscrub scan --recursive --format json --output findings.json ./docs")
}

func (h *System) showAnonymizeHelp() {
	h.colors["title"].Println("anonymize - Replace Sensitive Data")
	fmt.Println("==================================")
	fmt.Println()
	fmt.Println("Detects sensitive data like scan does, then rewrites each input with")
	fmt.Println("synthetic replacements. Identical values receive identical replacements")
	fmt.Println("within a run; pass --mapping-db to keep that consistency across runs.")
	fmt.Println("Each input file produces <name>_anonymized.txt next to it unless --output")
	fmt.Println("is given (single input only).")
	fmt.Println()

	h.colors["header"].Println("USAGE:")
	fmt.Println("  textscrub anonymize [options] <file>...")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --threshold\t<score>\tMinimum confidence score to anonymize a finding (default: 0.5)")
	fmt.Fprintln(w, "  --entities\t<types>\tComma-separated entity types to anonymize (default: all)")
	fmt.Fprintln(w, "  --allowlist\t<path>\tYAML allowlist of values to leave untouched")
	fmt.Fprintln(w, "  --seed\t<n>\tSeed for synthetic value generation; 0 seeds from the clock")
	fmt.Fprintln(w, "  --mapping-db\t<path>\tPersistent replacement-mapping database (bbolt file)")
	fmt.Fprintln(w, "  --ledger\t<path>\tWrite the replacement ledger as JSON to this file")
	fmt.Fprintln(w, "  --workers\t<n>\tConcurrent files in a batch (default: CPU count, max 8)")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  textscrub anonymize notes.txt")
	h.colors["example"].Println("  textscrub anonymize --seed 42 --ledger audit.json notes.txt")
	h.colors["example"].Println("  textscrub anonymize --mapping-db mappings.db --recursive ./export")
}

func (h *System) showExtractHelp() {
	h.colors["title"].Println("extract - Extract Plain Text")
	fmt.Println("============================")
	fmt.Println()
	fmt.Println("Prints the text the scanner would operate on: file content for text files,")
	fmt.Println("per-page text for PDFs (including form fields), and metadata tag lines for")
	fmt.Println("images carrying EXIF data.")
	fmt.Println()

	h.colors["header"].Println("USAGE:")
	fmt.Println("  textscrub extract [options] <file>...")
	fmt.Println()

	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  textscrub extract report.pdf")
	h.colors["example"].Println("  textscrub extract --output metadata.txt photo.jpg")
}

func (h *System) showListTypesHelp() {
	h.colors["title"].Println("list-types - Registered Entity Types")
	fmt.Println("====================================")
	fmt.Println()
	fmt.Println("Lists every entity type the scanner recognizes, with the number of")
	fmt.Println("context keywords backing it and an example synthetic replacement.")
	fmt.Println()

	h.colors["header"].Println("USAGE:")
	fmt.Println("  textscrub list-types [--no-color]")
}

// ShowEntityTypes displays the entity-type reference table.
func (h *System) ShowEntityTypes(infos []EntityInfo) {
	h.colors["title"].Println("Registered Entity Types")
	fmt.Println("=======================")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  TYPE\tKEYWORDS\tEXAMPLE REPLACEMENT")
	h.colors["header"].Fprintln(w, "  ----\t--------\t-------------------")
	for _, info := range infos {
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%d\t", info.Keywords)
		h.colors["item"].Fprintf(w, "%s", info.Sample)
		fmt.Fprintln(w)
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("%d types registered. Pass --entities with a comma-separated subset to\n", len(infos))
	fmt.Println("restrict detection, e.g.:")
	h.colors["example"].Println("  textscrub scan --entities US_SSN,CREDIT_CARD notes.txt")
}
