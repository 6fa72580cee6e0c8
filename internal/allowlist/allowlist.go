// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package allowlist filters resolved matches against a caller-maintained
// list of known-safe values: test fixtures, public support addresses,
// documented sample numbers. Entries may carry the value itself or only its
// SHA-256 digest, so the allowlist file does not have to contain the
// sensitive text it excludes.
package allowlist

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"textscrub/internal/detector"

	"gopkg.in/yaml.v3"
)

// Rule is one allowlist entry. Exactly one of Value and Hash must be set:
// Value holds the literal text to exclude, Hash its canonical SHA-256 hex
// digest as produced by HashValue. An empty EntityTypes list applies the
// entry to every entity type. Expired entries are ignored at load time.
type Rule struct {
	Value       string     `yaml:"value,omitempty"`
	Hash        string     `yaml:"hash,omitempty"`
	EntityTypes []string   `yaml:"entity_types,omitempty"`
	Reason      string     `yaml:"reason,omitempty"`
	ExpiresAt   *time.Time `yaml:"expires_at,omitempty"`
}

// File is the on-disk allowlist document.
type File struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// Allowlist answers whether a resolved match names a value the caller has
// declared safe. It is immutable after construction and safe for concurrent
// use.
type Allowlist struct {
	// entries maps a canonical value digest to the entity types the entry
	// covers; a nil set covers every type.
	entries map[string]map[detector.EntityType]struct{}
}

// Load reads an allowlist file. An empty path yields an empty allowlist
// that excludes nothing.
func Load(path string) (*Allowlist, error) {
	if path == "" {
		return New(nil)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading allowlist file: %w", err)
	}

	var doc File
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing allowlist file: %w", err)
	}
	return New(doc.Rules)
}

// New compiles rules into an Allowlist. Rules whose expiry has passed are
// skipped; malformed rules are an error.
func New(rules []Rule) (*Allowlist, error) {
	a := &Allowlist{entries: make(map[string]map[detector.EntityType]struct{})}
	now := time.Now()

	for i, rule := range rules {
		if rule.ExpiresAt != nil && now.After(*rule.ExpiresAt) {
			continue
		}

		var key string
		switch {
		case rule.Value != "" && rule.Hash != "":
			return nil, fmt.Errorf("allowlist rule %d sets both value and hash", i+1)
		case rule.Value != "":
			key = HashValue(rule.Value)
		case rule.Hash != "":
			key = strings.ToLower(strings.TrimSpace(rule.Hash))
			if len(key) != sha256.Size*2 {
				return nil, fmt.Errorf("allowlist rule %d: hash must be %d hex characters", i+1, sha256.Size*2)
			}
			if _, err := hex.DecodeString(key); err != nil {
				return nil, fmt.Errorf("allowlist rule %d: invalid hash: %w", i+1, err)
			}
		default:
			return nil, fmt.Errorf("allowlist rule %d sets neither value nor hash", i+1)
		}

		scope, seen := a.entries[key]
		if seen && scope == nil {
			// An earlier rule already covers every entity type.
			continue
		}
		if len(rule.EntityTypes) == 0 {
			a.entries[key] = nil
			continue
		}
		if scope == nil {
			scope = make(map[detector.EntityType]struct{})
			a.entries[key] = scope
		}
		for _, et := range rule.EntityTypes {
			scope[detector.EntityType(strings.ToUpper(strings.TrimSpace(et)))] = struct{}{}
		}
	}
	return a, nil
}

// Len returns the number of distinct values the allowlist covers.
func (a *Allowlist) Len() int {
	return len(a.entries)
}

// Allowed reports whether the match's text is allowlisted for its entity
// type.
func (a *Allowlist) Allowed(m detector.Match) bool {
	if len(a.entries) == 0 {
		return false
	}
	scope, ok := a.entries[HashValue(m.Text)]
	if !ok {
		return false
	}
	if scope == nil {
		return true
	}
	_, ok = scope[m.EntityType]
	return ok
}

// Filter returns the matches that are not allowlisted, preserving order,
// together with the number dropped.
func (a *Allowlist) Filter(matches []detector.Match) ([]detector.Match, int) {
	if len(a.entries) == 0 || len(matches) == 0 {
		return matches, 0
	}

	kept := make([]detector.Match, 0, len(matches))
	for _, m := range matches {
		if a.Allowed(m) {
			continue
		}
		kept = append(kept, m)
	}
	return kept, len(matches) - len(kept)
}

// HashValue returns the canonical SHA-256 hex digest used for allowlist
// lookup. Values are trimmed and lowercased before hashing, so an entry
// written from a report matches future findings regardless of surrounding
// whitespace or case.
func HashValue(value string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(value))))
	return hex.EncodeToString(sum[:])
}
