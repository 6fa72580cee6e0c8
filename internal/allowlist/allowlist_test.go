// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package allowlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"textscrub/internal/detector"
)

func match(et detector.EntityType, text string) detector.Match {
	return detector.Match{Candidate: detector.Candidate{
		EntityType: et,
		Start:      0,
		End:        len(text),
		Text:       text,
		Score:      0.9,
	}}
}

func TestHashValue_Canonicalization(t *testing.T) {
	base := HashValue("john doe")
	if HashValue("  John Doe ") != base {
		t.Error("expected trimmed, lowercased input to hash identically")
	}
	if HashValue("jane doe") == base {
		t.Error("expected distinct values to hash differently")
	}
	if len(base) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(base))
	}
}

func TestNew_ValueAndHashEntriesMatchAlike(t *testing.T) {
	a, err := New([]Rule{
		{Value: "support@example.com"},
		{Hash: HashValue("555-0100")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", a.Len())
	}

	if !a.Allowed(match("EMAIL_ADDRESS", "support@example.com")) {
		t.Error("expected plain value entry to match")
	}
	if !a.Allowed(match("PHONE_NUMBER", "555-0100")) {
		t.Error("expected hashed entry to match")
	}
	if a.Allowed(match("EMAIL_ADDRESS", "other@example.com")) {
		t.Error("expected unlisted value to stay reportable")
	}
}

func TestNew_MatchingIgnoresCaseAndPadding(t *testing.T) {
	a, err := New([]Rule{{Value: "Support@Example.com"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Allowed(match("EMAIL_ADDRESS", "SUPPORT@EXAMPLE.COM")) {
		t.Error("expected case-insensitive match")
	}
}

func TestNew_RejectsMalformedRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want string
	}{
		{"both value and hash", Rule{Value: "x", Hash: HashValue("x")}, "both value and hash"},
		{"neither value nor hash", Rule{Reason: "empty"}, "neither value nor hash"},
		{"hash too short", Rule{Hash: "abc123"}, "64 hex characters"},
		{"hash not hex", Rule{Hash: strings.Repeat("zz", 32)}, "invalid hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Rule{tt.rule})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestAllowed_EntityTypeScope(t *testing.T) {
	a, err := New([]Rule{
		{Value: "jordan rivers", EntityTypes: []string{"PERSON"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !a.Allowed(match("PERSON", "Jordan Rivers")) {
		t.Error("expected scoped entry to match its entity type")
	}
	if a.Allowed(match("US_SSN", "Jordan Rivers")) {
		t.Error("expected scoped entry to leave other entity types reportable")
	}
}

func TestAllowed_ScopeNamesAreNormalized(t *testing.T) {
	a, err := New([]Rule{
		{Value: "acme corp", EntityTypes: []string{" person "}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Allowed(match("PERSON", "Acme Corp")) {
		t.Error("expected entity type names to be trimmed and uppercased")
	}
}

func TestAllowed_UnscopedRuleWidensScopedRule(t *testing.T) {
	a, err := New([]Rule{
		{Value: "shared value", EntityTypes: []string{"PERSON"}},
		{Value: "shared value"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Len() != 1 {
		t.Fatalf("expected duplicate values to collapse to 1 entry, got %d", a.Len())
	}
	if !a.Allowed(match("US_SSN", "shared value")) {
		t.Error("expected the unscoped rule to cover every entity type")
	}
}

func TestNew_ExpiredRulesAreSkipped(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	a, err := New([]Rule{
		{Value: "stale fixture", ExpiresAt: &past},
		{Value: "live fixture", ExpiresAt: &future},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Allowed(match("PERSON", "stale fixture")) {
		t.Error("expected expired entry to be ignored")
	}
	if !a.Allowed(match("PERSON", "live fixture")) {
		t.Error("expected unexpired entry to apply")
	}
}

func TestFilter(t *testing.T) {
	a, err := New([]Rule{
		{Value: "support@example.com", EntityTypes: []string{"EMAIL_ADDRESS"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches := []detector.Match{
		match("EMAIL_ADDRESS", "real@example.org"),
		match("EMAIL_ADDRESS", "support@example.com"),
		match("PERSON", "John Doe"),
	}

	kept, dropped := a.Filter(matches)
	if dropped != 1 {
		t.Errorf("expected 1 dropped match, got %d", dropped)
	}
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept matches, got %d", len(kept))
	}
	if kept[0].Text != "real@example.org" || kept[1].Text != "John Doe" {
		t.Errorf("expected order preserved, got %q then %q", kept[0].Text, kept[1].Text)
	}
}

func TestFilter_EmptyAllowlistPassesThrough(t *testing.T) {
	a, err := New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches := []detector.Match{match("PERSON", "John Doe")}
	kept, dropped := a.Filter(matches)
	if dropped != 0 || len(kept) != 1 {
		t.Errorf("expected passthrough, got %d kept %d dropped", len(kept), dropped)
	}
}

func TestLoad_File(t *testing.T) {
	content := `version: "1.0"
rules:
  - value: "support@example.com"
    entity_types: [EMAIL_ADDRESS]
    reason: "public support address"
  - hash: "` + HashValue("123-45-6789") + `"
    reason: "documentation sample"
`
	path := filepath.Join(t.TempDir(), "allowlist.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing allowlist file: %v", err)
	}

	a, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", a.Len())
	}
	if !a.Allowed(match("EMAIL_ADDRESS", "support@example.com")) {
		t.Error("expected value entry from file to match")
	}
	if !a.Allowed(match("US_SSN", "123-45-6789")) {
		t.Error("expected hashed entry from file to match")
	}
	if a.Allowed(match("PERSON", "support@example.com")) {
		t.Error("expected entity scope from file to be honored")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	a, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Len() != 0 {
		t.Errorf("expected empty allowlist, got %d entries", a.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [broken"), 0600); err != nil {
		t.Fatalf("writing allowlist file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
