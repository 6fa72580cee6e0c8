// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"textscrub/internal/allowlist"
	"textscrub/internal/config"
	"textscrub/internal/core"
	"textscrub/internal/detector"
	"textscrub/internal/extract"
	"textscrub/internal/generator"
	"textscrub/internal/help"
	"textscrub/internal/mappingstore"
	"textscrub/internal/observability"
	"textscrub/internal/parallel"
	"textscrub/internal/registry"
	"textscrub/internal/version"

	"textscrub/internal/formatters"
	_ "textscrub/internal/formatters/json"
	_ "textscrub/internal/formatters/text"

	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		help.NewSystem(!isTerminal(os.Stdout)).ShowGeneralHelp()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "scan":
		runScan(args)
	case "anonymize":
		runAnonymize(args)
	case "extract":
		runExtract(args)
	case "list-types":
		runListTypes(args)
	case "version", "--version", "-version":
		fmt.Println(version.Info())
	case "help", "--help", "-help", "-h":
		runHelp(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		fmt.Fprintln(os.Stderr, "Use 'textscrub --help' to see the available commands.")
		os.Exit(1)
	}
}

func runHelp(args []string) {
	helpSystem := help.NewSystem(!isTerminal(os.Stdout))
	if len(args) == 0 {
		helpSystem.ShowGeneralHelp()
		return
	}
	if !helpSystem.ShowCommandHelp(args[0]) {
		os.Exit(1)
	}
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	// Load configuration (will use defaults if file not found)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// cliFlags holds command line flag values. Each command registers only the
// subset it supports; unregistered fields keep their zero value and are
// never reported as explicitly set.
type cliFlags struct {
	configFile   string
	profileName  string
	listProfiles bool

	threshold     float64
	contextWindow int
	contextBoost  float64
	entities      string
	allowlistFile string
	confidence    string
	format        string
	showMatch     bool
	showContext   bool
	summary       bool
	verbose       bool
	recursive     bool
	noColor       bool
	debug         bool
	workers       int
	outputFile    string

	seed      int64
	mappingDB string
	ledgerOut string
}

// registerCommonFlags defines the flags every command shares.
func registerCommonFlags(fs *flag.FlagSet, flags *cliFlags) {
	fs.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	fs.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	fs.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles in config file")
	fs.StringVar(&flags.outputFile, "output", "", "Path to output file (if not specified, output to stdout)")
	fs.BoolVar(&flags.recursive, "recursive", false, "Recursively process directories")
	fs.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&flags.debug, "debug", false, "Print step-by-step timing to stderr")
	fs.IntVar(&flags.workers, "workers", 0, "Concurrent files in a batch (default: CPU count, max 8)")
}

// registerDetectionFlags defines the flags shared by scan and anonymize.
func registerDetectionFlags(fs *flag.FlagSet, flags *cliFlags) {
	fs.Float64Var(&flags.threshold, "threshold", core.DefaultThreshold, "Minimum confidence score in [0,1] to keep a finding")
	fs.IntVar(&flags.contextWindow, "context-window", 0, "Characters of context per side used for keyword scoring")
	fs.Float64Var(&flags.contextBoost, "context-boost", 0, "Score boost applied when a context keyword is found")
	fs.StringVar(&flags.entities, "entities", "", "Comma-separated entity types to detect (default: all)")
	fs.StringVar(&flags.allowlistFile, "allowlist", "", "YAML allowlist of known-safe values to exclude from findings")
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	threshold     float64
	contextWindow int
	contextBoost  float64
	entities      []detector.EntityType
	allowlistFile string
	confidence    string
	format        string
	showMatch     bool
	showContext   bool
	summary       bool
	verbose       bool
	recursive     bool
	noColor       bool
	debug         bool
	workers       int
	outputFile    string

	seed            int64
	mappingDB       string
	ledgerOut       string
	recognizersFile string
}

// resolveConfiguration resolves final configuration values from config file,
// profile, and command line flags. Precedence is config defaults, then
// profile, then explicitly set flags.
func resolveConfiguration(fs *flag.FlagSet, cfg *config.Config, activeProfile *config.Profile, flags *cliFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Threshold
	final.threshold = core.DefaultThreshold
	if cfg != nil {
		final.threshold = cfg.Defaults.Threshold
	}
	if activeProfile != nil && activeProfile.Threshold != nil {
		final.threshold = *activeProfile.Threshold
	}
	if isFlagSet(fs, "threshold") {
		final.threshold = flags.threshold
	}

	// Context window
	final.contextWindow = 0
	if cfg != nil {
		final.contextWindow = cfg.Defaults.ContextWindow
	}
	if activeProfile != nil && activeProfile.ContextWindow != nil {
		final.contextWindow = *activeProfile.ContextWindow
	}
	if isFlagSet(fs, "context-window") {
		final.contextWindow = flags.contextWindow
	}

	// Context boost
	final.contextBoost = 0
	if cfg != nil {
		final.contextBoost = cfg.Defaults.ContextBoost
	}
	if activeProfile != nil && activeProfile.ContextBoost != nil {
		final.contextBoost = *activeProfile.ContextBoost
	}
	if isFlagSet(fs, "context-boost") {
		final.contextBoost = flags.contextBoost
	}

	// Entities
	var entityNames []string
	if cfg != nil {
		entityNames = cfg.Defaults.Entities
	}
	if activeProfile != nil && len(activeProfile.Entities) > 0 {
		entityNames = activeProfile.Entities
	}
	if isFlagSet(fs, "entities") && flags.entities != "" {
		entityNames = strings.Split(flags.entities, ",")
	}
	final.entities = config.NormalizeEntities(entityNames)

	// Confidence levels
	final.confidence = "all"
	if isFlagSet(fs, "confidence") && flags.confidence != "" {
		final.confidence = flags.confidence
	}

	// Format
	final.format = "text"
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet(fs, "format") && flags.format != "" {
		final.format = flags.format
	}

	// Summary
	final.summary = false
	if cfg != nil {
		final.summary = cfg.Defaults.Summary
	}
	if activeProfile != nil {
		final.summary = activeProfile.Summary
	}
	if isFlagSet(fs, "summary") {
		final.summary = flags.summary
	}

	// No color
	final.noColor = false
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet(fs, "no-color") {
		final.noColor = flags.noColor
	}

	// Recursive
	final.recursive = false
	if cfg != nil {
		final.recursive = cfg.Defaults.Recursive
	}
	if activeProfile != nil {
		final.recursive = activeProfile.Recursive
	}
	if isFlagSet(fs, "recursive") {
		final.recursive = flags.recursive
	}

	// Debug
	final.debug = false
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet(fs, "debug") {
		final.debug = flags.debug
	}
	if os.Getenv("TEXTSCRUB_DEBUG") != "" {
		final.debug = true
	}

	// Seed
	final.seed = 0
	if cfg != nil {
		final.seed = cfg.Seed
	}
	if activeProfile != nil && activeProfile.Seed != nil {
		final.seed = *activeProfile.Seed
	}
	if isFlagSet(fs, "seed") {
		final.seed = flags.seed
	}

	// Allowlist file
	final.allowlistFile = ""
	if cfg != nil {
		final.allowlistFile = cfg.AllowlistFile
	}
	if isFlagSet(fs, "allowlist") {
		final.allowlistFile = flags.allowlistFile
	}

	// Mapping database
	final.mappingDB = ""
	if cfg != nil {
		final.mappingDB = cfg.MappingDB
	}
	if activeProfile != nil && activeProfile.MappingDB != "" {
		final.mappingDB = activeProfile.MappingDB
	}
	if isFlagSet(fs, "mapping-db") {
		final.mappingDB = flags.mappingDB
	}

	// Flag-only values
	final.showMatch = flags.showMatch
	final.showContext = flags.showContext
	final.verbose = flags.verbose
	final.workers = flags.workers
	final.outputFile = flags.outputFile
	final.ledgerOut = flags.ledgerOut
	if cfg != nil {
		final.recognizersFile = cfg.RecognizersFile
	}

	// Auto-disable color when stdout is not a terminal, unless the flag was
	// given explicitly.
	if !isFlagSet(fs, "no-color") && (!isTerminal(os.Stdout) || os.Getenv("CI") != "") {
		final.noColor = true
	}

	return final
}

// handleProfiles lists profiles or resolves the requested one.
func handleProfiles(cfg *config.Config, listProfiles bool, profileName string) *config.Profile {
	if listProfiles {
		profiles := cfg.ListProfiles()
		if len(profiles) == 0 {
			fmt.Println("No profiles defined in configuration file.")
		} else {
			fmt.Println("Available profiles:")
			for _, name := range profiles {
				profile := cfg.GetProfile(name)
				if profile != nil && profile.Description != "" {
					fmt.Printf("  - %s: %s\n", name, profile.Description)
				} else {
					fmt.Printf("  - %s\n", name)
				}
			}
		}
		os.Exit(0)
	}

	var activeProfile *config.Profile
	if profileName != "" {
		activeProfile = cfg.GetProfile(profileName)
		if activeProfile == nil {
			fmt.Fprintf(os.Stderr, "Error: Profile '%s' not found in config file\n", profileName)
			fmt.Fprintf(os.Stderr, "Check available profiles with --list-profiles\n")
			os.Exit(1)
		}
	}
	return activeProfile
}

// buildEngine assembles the detection engine: built-in recognizers plus any
// custom recognizer file from the configuration.
func buildEngine(final *finalConfiguration, obs *observability.Observer) *core.Engine {
	var extras []detector.Recognizer
	if final.recognizersFile != "" {
		recs, err := config.LoadRecognizers(final.recognizersFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			fmt.Fprintf(os.Stderr, "Continuing with built-in recognizers only\n")
		} else {
			extras = recs
			obs.LogDetail("engine", fmt.Sprintf("Loaded %d custom recognizers from %s", len(recs), final.recognizersFile))
		}
	}

	reg, err := registry.Build(nil, extras...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building recognizer registry: %v\n", err)
		os.Exit(1)
	}

	eng := core.NewEngine(reg).WithThreshold(final.threshold)
	if final.contextWindow > 0 {
		eng.WithWindow(final.contextWindow)
	}
	if final.contextBoost > 0 {
		eng.WithBoost(final.contextBoost)
	}

	obs.LogMetric("engine", "entity_types", reg.Len())
	return eng
}

// loadAllowlist loads the configured allowlist, or an empty one when no
// file is configured.
func loadAllowlist(final *finalConfiguration, obs *observability.Observer) *allowlist.Allowlist {
	allow, err := allowlist.Load(final.allowlistFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if allow.Len() > 0 {
		obs.LogDetail("allowlist", fmt.Sprintf("Loaded %d allowlist entries from %s", allow.Len(), final.allowlistFile))
	}
	return allow
}

func runScan(args []string) {
	flags := &cliFlags{}
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	registerCommonFlags(fs, flags)
	registerDetectionFlags(fs, flags)
	fs.StringVar(&flags.confidence, "confidence", "", "Confidence levels to display: high, medium, low, or combinations like 'high,medium'")
	fs.StringVar(&flags.format, "format", "", "Output format: text, json (default: text)")
	fs.BoolVar(&flags.showMatch, "show-match", false, "Display the actual matched text in findings")
	fs.BoolVar(&flags.showContext, "context", false, "Display surrounding context and matched keywords per finding")
	fs.BoolVar(&flags.summary, "summary", false, "Append per-entity-type finding counts")
	fs.BoolVar(&flags.verbose, "verbose", false, "Display detailed information for each finding")
	fs.Usage = func() { help.NewSystem(!isTerminal(os.Stdout)).ShowCommandHelp("scan") }
	fs.Parse(args)

	cfg := loadConfiguration(flags.configFile)
	activeProfile := handleProfiles(cfg, flags.listProfiles, flags.profileName)
	final := resolveConfiguration(fs, cfg, activeProfile, flags)

	obs := newObserver(final.debug)
	eng := buildEngine(final, obs)
	allow := loadAllowlist(final, obs)

	levels, err := formatters.ParseLevels(final.confidence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, ok := formatters.Get(final.format); !ok {
		fmt.Fprintf(os.Stderr, "Error: Unsupported output format '%s'\n", final.format)
		fmt.Fprintf(os.Stderr, "Use one of: %s\n", strings.Join(formatters.List(), ", "))
		os.Exit(1)
	}

	files := gatherFiles(fs.Args(), final.recursive)
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No files to process")
		os.Exit(0)
	}

	// Per-file finding lists land in per-index slots; the pool reports
	// failures without stopping the batch.
	perFile := make([][]formatters.Finding, len(files))
	var allowlisted atomic.Int64
	pool := parallel.New(final.workers)
	obs.LogDetail("scan", fmt.Sprintf("Scanning %d files with %d workers", len(files), pool.Workers()))

	results, stats := pool.Each(files, func(i int, path string) error {
		content, err := extract.Extract(path)
		if err != nil {
			return err
		}

		if final.showContext {
			found, err := eng.DetectTypesWithContext(content.Text, final.threshold, final.entities)
			if err != nil {
				return err
			}
			findings := make([]formatters.Finding, 0, len(found))
			for _, mc := range found {
				if allow.Allowed(mc.Match) {
					allowlisted.Add(1)
					continue
				}
				ctx := mc.Context
				findings = append(findings, formatters.Finding{File: path, Match: mc.Match, Context: &ctx})
			}
			perFile[i] = findings
			return nil
		}

		matches, err := eng.DetectTypes(content.Text, final.threshold, final.entities)
		if err != nil {
			return err
		}
		matches, dropped := allow.Filter(matches)
		allowlisted.Add(int64(dropped))
		findings := make([]formatters.Finding, len(matches))
		for j, m := range matches {
			findings[j] = formatters.Finding{File: path, Match: m}
		}
		perFile[i] = findings
		return nil
	})
	reportFailures(results)

	var findings []formatters.Finding
	for _, perFileFindings := range perFile {
		findings = append(findings, perFileFindings...)
	}
	obs.LogMetric("scan", "findings", len(findings))
	if n := allowlisted.Load(); n > 0 {
		fmt.Fprintf(os.Stderr, "%d findings excluded by allowlist\n", n)
	}
	if len(files) > 1 || stats.Failed > 0 {
		fmt.Fprintf(os.Stderr, "Scan complete: %d files processed, %d failed in %s\n",
			stats.Succeeded, stats.Failed, stats.WallTime.Round(time.Millisecond))
	}

	output, err := formatters.Export(final.format, findings, formatters.Options{
		Levels:    levels,
		Verbose:   final.verbose || final.showContext,
		NoColor:   final.noColor || final.outputFile != "",
		ShowMatch: final.showMatch,
		Summary:   final.summary,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting results: %v\n", err)
		os.Exit(1)
	}

	if err := emit(final.outputFile, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fileLedger is the per-file section of the JSON ledger dump.
type fileLedger struct {
	File         string                       `json:"file"`
	Output       string                       `json:"output"`
	Replacements []detector.ReplacementRecord `json:"replacements"`
}

func runAnonymize(args []string) {
	flags := &cliFlags{}
	fs := flag.NewFlagSet("anonymize", flag.ExitOnError)
	registerCommonFlags(fs, flags)
	registerDetectionFlags(fs, flags)
	fs.Int64Var(&flags.seed, "seed", 0, "Seed for synthetic value generation; 0 seeds from the clock")
	fs.StringVar(&flags.mappingDB, "mapping-db", "", "Persistent replacement-mapping database (bbolt file)")
	fs.StringVar(&flags.ledgerOut, "ledger", "", "Write the replacement ledger as JSON to this file")
	fs.Usage = func() { help.NewSystem(!isTerminal(os.Stdout)).ShowCommandHelp("anonymize") }
	fs.Parse(args)

	cfg := loadConfiguration(flags.configFile)
	activeProfile := handleProfiles(cfg, flags.listProfiles, flags.profileName)
	final := resolveConfiguration(fs, cfg, activeProfile, flags)

	obs := newObserver(final.debug)
	eng := buildEngine(final, obs)
	allow := loadAllowlist(final, obs)

	files := gatherFiles(fs.Args(), final.recursive)
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No files to process")
		os.Exit(0)
	}
	if final.outputFile != "" && len(files) > 1 {
		fmt.Fprintln(os.Stderr, "Error: --output requires a single input file")
		os.Exit(1)
	}

	store, err := mappingstore.Open(final.mappingDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	mapping, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(mapping) > 0 {
		obs.LogDetail("anonymize", fmt.Sprintf("Loaded %d persisted replacement mappings", len(mapping)))
	}

	// One mapping is shared by the whole batch so identical values anonymize
	// identically across files; the engine itself takes no locks, so the
	// anonymize call is serialized here.
	var mappingMu sync.Mutex
	ledgers := make([]fileLedger, len(files))
	pool := parallel.New(final.workers)
	obs.LogDetail("anonymize", fmt.Sprintf("Anonymizing %d files with %d workers", len(files), pool.Workers()))

	results, stats := pool.Each(files, func(i int, path string) error {
		content, err := extract.Extract(path)
		if err != nil {
			return err
		}

		matches, err := eng.DetectTypes(content.Text, final.threshold, final.entities)
		if err != nil {
			return err
		}
		matches, _ = allow.Filter(matches)

		mappingMu.Lock()
		anonymized, records, err := eng.Anonymize(content.Text, matches, final.seed, mapping)
		mappingMu.Unlock()
		if err != nil {
			return err
		}

		outPath := final.outputFile
		if outPath == "" {
			outPath = anonymizedPath(path)
		}
		if err := os.WriteFile(outPath, []byte(anonymized), 0600); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		ledgers[i] = fileLedger{File: path, Output: outPath, Replacements: records}
		return nil
	})
	reportFailures(results)

	replaced := 0
	for _, l := range ledgers {
		replaced += len(l.Replacements)
	}
	fmt.Fprintf(os.Stderr, "Anonymized %d files (%d replacements, %d failed) in %s\n",
		stats.Succeeded, replaced, stats.Failed, stats.WallTime.Round(time.Millisecond))
	for _, l := range ledgers {
		if l.File != "" {
			fmt.Fprintf(os.Stderr, "  %s -> %s (%d replacements)\n", l.File, l.Output, len(l.Replacements))
		}
	}

	if final.ledgerOut != "" {
		if err := writeLedger(final.ledgerOut, ledgers); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to write ledger: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Replacement ledger written to: %s\n", final.ledgerOut)
		}
	}

	if err := store.Save(mapping); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to persist replacement mapping: %v\n", err)
	}
}

func runExtract(args []string) {
	flags := &cliFlags{}
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	registerCommonFlags(fs, flags)
	fs.Usage = func() { help.NewSystem(!isTerminal(os.Stdout)).ShowCommandHelp("extract") }
	fs.Parse(args)

	cfg := loadConfiguration(flags.configFile)
	activeProfile := handleProfiles(cfg, flags.listProfiles, flags.profileName)
	final := resolveConfiguration(fs, cfg, activeProfile, flags)

	files := gatherFiles(fs.Args(), final.recursive)
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No files to process")
		os.Exit(0)
	}

	var sb strings.Builder
	failed := 0
	for i, path := range files {
		if i > 0 {
			sb.WriteString("\n")
		}
		if len(files) > 1 {
			fmt.Fprintf(&sb, "=== FILE: %s ===\n", path)
		}
		content, err := extract.Extract(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", path, err)
			failed++
			continue
		}
		sb.WriteString(content.Text)
		if !strings.HasSuffix(content.Text, "\n") {
			sb.WriteString("\n")
		}
	}

	if err := emit(final.outputFile, sb.String()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed == len(files) {
		os.Exit(1)
	}
}

func runListTypes(args []string) {
	flags := &cliFlags{}
	fs := flag.NewFlagSet("list-types", flag.ExitOnError)
	fs.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	fs.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	fs.Usage = func() { help.NewSystem(!isTerminal(os.Stdout)).ShowCommandHelp("list-types") }
	fs.Parse(args)

	cfg := loadConfiguration(flags.configFile)

	var extras []detector.Recognizer
	if cfg.RecognizersFile != "" {
		if recs, err := config.LoadRecognizers(cfg.RecognizersFile); err == nil {
			extras = recs
		}
	}
	reg, err := registry.Build(nil, extras...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building recognizer registry: %v\n", err)
		os.Exit(1)
	}

	// A fixed seed keeps the sample column stable between invocations.
	gen := generator.New(1)
	infos := make([]help.EntityInfo, 0, reg.Len())
	for _, et := range reg.EntityTypes() {
		rec, _ := reg.Get(et)
		infos = append(infos, help.EntityInfo{
			Name:     string(et),
			Keywords: len(rec.ContextKeywords()),
			Sample:   gen.Replacement(et),
		})
	}

	noColor := flags.noColor || !isTerminal(os.Stdout)
	help.NewSystem(noColor).ShowEntityTypes(infos)
}

// gatherFiles expands the argument list into the files to process: literal
// files as given, glob patterns expanded, directories walked (one level, or
// fully with recursive) keeping only extensions the extractor supports.
func gatherFiles(args []string, recursive bool) []string {
	var files []string
	skipped := 0

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// Not a literal path; try it as a glob pattern before giving up.
			if strings.ContainsAny(arg, "*?[") {
				matches, globErr := filepath.Glob(arg)
				if globErr == nil && len(matches) > 0 {
					for _, m := range matches {
						if mi, statErr := os.Stat(m); statErr == nil && mi.Mode().IsRegular() {
							files = append(files, m)
						}
					}
					continue
				}
			}
			fmt.Fprintf(os.Stderr, "Warning: Skipping %s: %v\n", arg, err)
			continue
		}

		if info.Mode().IsRegular() {
			files = append(files, arg)
			continue
		}

		if info.IsDir() {
			dirFiles, dirSkipped := walkDir(arg, recursive)
			files = append(files, dirFiles...)
			skipped += dirSkipped
			continue
		}

		fmt.Fprintf(os.Stderr, "Warning: Skipping %s: not a regular file or directory\n", arg)
	}

	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Filtered out %d unsupported files\n", skipped)
	}
	return files
}

// walkDir collects supported files under dir. Without recursive only the
// top level is visited.
func walkDir(dir string, recursive bool) (files []string, skipped int) {
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Skipping %s: %v\n", path, err)
			return nil
		}
		if info.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !extract.Supported(path) {
			skipped++
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error walking %s: %v\n", dir, err)
	}
	return files, skipped
}

// reportFailures prints one warning per failed path.
func reportFailures(results []parallel.Result) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", r.Path, r.Err)
		}
	}
}

// anonymizedPath maps input.txt to input_anonymized.txt alongside the input.
func anonymizedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_anonymized.txt"
}

// writeLedger dumps the batch replacement ledger as indented JSON.
func writeLedger(path string, ledgers []fileLedger) error {
	// Drop slots of files that failed before producing a ledger entry.
	out := make([]fileLedger, 0, len(ledgers))
	for _, l := range ledgers {
		if l.File != "" {
			out = append(out, l)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(path), append(data, '\n'), 0600)
}

// emit writes output to the given file, or stdout when path is empty. File
// output gets owner-only permissions since findings may quote sensitive
// data.
func emit(path, output string) error {
	if path == "" {
		fmt.Println(output)
		return nil
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(cleanPath, []byte(output), 0600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

func newObserver(debug bool) *observability.Observer {
	if debug {
		return observability.NewDebug(os.Stderr)
	}
	return observability.Nop()
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
