// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the YAML configuration shared by the CLI and any
// embedding caller: detection defaults, named profiles, the custom
// recognizer file, and the replacement-mapping database location.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"textscrub/internal/core"
	"textscrub/internal/detector"
	"textscrub/internal/matcher"

	"gopkg.in/yaml.v3"
)

// Defaults mirrors core.Engine's tuning knobs plus the output settings the
// CLI layers flags on top of.
type Defaults struct {
	Threshold     float64  `yaml:"threshold"`
	ContextWindow int      `yaml:"context_window"`
	ContextBoost  float64  `yaml:"context_boost"`
	Format        string   `yaml:"format"`
	Entities      []string `yaml:"entities"`
	Summary       bool     `yaml:"summary"`
	NoColor       bool     `yaml:"no_color"`
	Recursive     bool     `yaml:"recursive"`
	Debug         bool     `yaml:"debug"`
}

// Config represents the application configuration.
type Config struct {
	Defaults Defaults `yaml:"defaults"`

	// Path to a custom recognizer file loaded on top of the built-in
	// recognizers. See LoadRecognizers for the schema.
	RecognizersFile string `yaml:"recognizers_file"`

	// Path to an allowlist file of known-safe values excluded from
	// findings. See the allowlist package for the schema.
	AllowlistFile string `yaml:"allowlist_file"`

	// Path to the persistent replacement-mapping database. Empty keeps
	// replacement mappings in memory for the life of the process.
	MappingDB string `yaml:"mapping_db"`

	// Seed for synthetic replacement generation. Zero seeds from the
	// clock, so repeated runs produce different synthetics unless set.
	Seed int64 `yaml:"seed"`

	// Profiles for different scanning scenarios.
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a scanning profile with specific settings. Numeric
// fields are pointers so a profile can set a zero threshold and still be
// distinguished from one that inherits the default.
type Profile struct {
	Description   string   `yaml:"description"`
	Threshold     *float64 `yaml:"threshold,omitempty"`
	ContextWindow *int     `yaml:"context_window,omitempty"`
	ContextBoost  *float64 `yaml:"context_boost,omitempty"`
	Format        string   `yaml:"format,omitempty"`
	Entities      []string `yaml:"entities,omitempty"`
	Summary       bool     `yaml:"summary"`
	NoColor       bool     `yaml:"no_color"`
	Recursive     bool     `yaml:"recursive"`
	Debug         bool     `yaml:"debug"`
	Seed          *int64   `yaml:"seed,omitempty"`
	MappingDB     string   `yaml:"mapping_db,omitempty"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Built-in defaults. yaml.Unmarshal only touches fields present in
	// the document, so values not set in the file keep these.
	config.Defaults.Threshold = core.DefaultThreshold
	config.Defaults.ContextWindow = matcher.DefaultWindowChars
	config.Defaults.ContextBoost = matcher.DefaultContextBoost
	config.Defaults.Format = "text"

	// Ship a strict profile out of the box; a config file may override it.
	config.Profiles["strict"] = Profile{
		Description: "High-confidence findings only, suitable for CI gates",
		Threshold:   float64Ptr(0.8),
		NoColor:     true,
	}

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile() string {
	// Check current directory first.
	for _, name := range []string{"textscrub.yaml", "textscrub.yml", ".textscrub.yaml", ".textscrub.yml"} {
		if fileExists(name) {
			return name
		}
	}

	// Check the XDG config directory.
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(xdgConfig, "textscrub", name)
		if fileExists(candidate) {
			return candidate
		}
	}

	// Check legacy dotfiles in the home directory.
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{".textscrub.yaml", ".textscrub.yml"} {
		candidate := filepath.Join(home, name)
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns the built-in default configuration. Callers that need to report
// a bad config file should use LoadConfig directly.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// ListProfiles returns the available profile names in sorted order.
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found.
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// ValidateConfig validates tuning values in the configuration.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if err := validateTuning(config.Defaults.Threshold, config.Defaults.ContextWindow, config.Defaults.ContextBoost, config.Defaults.Format); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	for name, profile := range config.Profiles {
		threshold := config.Defaults.Threshold
		if profile.Threshold != nil {
			threshold = *profile.Threshold
		}
		window := config.Defaults.ContextWindow
		if profile.ContextWindow != nil {
			window = *profile.ContextWindow
		}
		boost := config.Defaults.ContextBoost
		if profile.ContextBoost != nil {
			boost = *profile.ContextBoost
		}
		format := profile.Format
		if format == "" {
			format = config.Defaults.Format
		}
		if err := validateTuning(threshold, window, boost, format); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}

	return nil
}

func validateTuning(threshold float64, window int, boost float64, format string) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold %v outside [0, 1]", threshold)
	}
	if window < 0 {
		return fmt.Errorf("context_window %d is negative", window)
	}
	if boost < 0 || boost > 1 {
		return fmt.Errorf("context_boost %v outside [0, 1]", boost)
	}
	switch format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
	return nil
}

// NormalizeEntities converts configured entity names to canonical entity
// types: trimmed, uppercased, deduplicated. An empty list, or one that
// names "all", selects every registered entity type and returns nil.
func NormalizeEntities(names []string) []detector.EntityType {
	seen := make(map[detector.EntityType]bool)
	var out []detector.EntityType
	for _, name := range names {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "ALL" {
			return nil
		}
		et := detector.EntityType(name)
		if seen[et] {
			continue
		}
		seen[et] = true
		out = append(out, et)
	}
	return out
}

// fileExists checks if a file exists and is not a directory.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}

func float64Ptr(v float64) *float64 { return &v }
