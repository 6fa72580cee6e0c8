// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"strings"
	"testing"
)

func TestStartStep_SuccessAndFailure(t *testing.T) {
	var buf bytes.Buffer
	obs := NewDebug(&buf)

	done := obs.StartStep("scanner", "detect", "notes.txt")
	obs.LogDetail("scanner", "3 recognizers active")
	obs.LogMetric("scanner", "matches", 7)
	done(true, "7 findings")

	failed := obs.StartStep("extractor", "read", "broken.pdf")
	failed(false, "not a PDF")

	out := buf.String()
	for _, want := range []string{
		"🔄 scanner: detect (notes.txt)",
		"→ scanner: 3 recognizers active",
		"📊 scanner: matches = 7",
		"✅ scanner: detect completed",
		"7 findings",
		"❌ extractor: read failed",
		"not a PDF",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestStartStep_NestedIndentation(t *testing.T) {
	var buf bytes.Buffer
	obs := NewDebug(&buf)

	outer := obs.StartStep("engine", "scan", "a.txt")
	obs.StartStep("matcher", "run", "a.txt")(true, "")
	outer(true, "")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "  ") {
		t.Errorf("nested step should be indented: %q", lines[1])
	}
	if strings.HasPrefix(lines[3], "  ") {
		t.Errorf("outer completion should be back at column zero: %q", lines[3])
	}
}

func TestDisabledObserverIsSilent(t *testing.T) {
	var buf bytes.Buffer
	obs := Nop()
	obs.writer = &buf

	obs.StartStep("x", "y", "z")(true, "detail")
	obs.LogDetail("x", "detail")
	obs.LogMetric("x", "m", 1)

	if buf.Len() != 0 {
		t.Errorf("disabled observer wrote output: %q", buf.String())
	}
}

func TestNilObserverIsSafe(t *testing.T) {
	var obs *Observer
	if obs.Enabled() {
		t.Error("nil observer must report disabled")
	}
	obs.StartStep("x", "y", "z")(false, "")
	obs.LogDetail("x", "d")
	obs.LogMetric("x", "m", 2)
}
