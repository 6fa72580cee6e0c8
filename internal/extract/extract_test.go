// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestExtractText(t *testing.T) {
	path := writeFile(t, "memo.txt", "SSN: 123-45-6789\ncontact jane@example.com\n")

	content, err := Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Path != path {
		t.Errorf("expected path %q, got %q", path, content.Path)
	}
	if !strings.Contains(content.Text, "123-45-6789") {
		t.Errorf("expected text to contain the SSN line, got %q", content.Text)
	}
	if content.Pages != 1 {
		t.Errorf("expected 1 page for a text file, got %d", content.Pages)
	}
	if content.Words != 4 {
		t.Errorf("expected 4 words, got %d", content.Words)
	}
}

func TestExtractText_NormalizesLineEndings(t *testing.T) {
	path := writeFile(t, "crlf.txt", "line one\r\nline two\rline three\n")

	content, err := Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(content.Text, "\r") {
		t.Errorf("expected no carriage returns, got %q", content.Text)
	}
	if got := strings.Count(content.Text, "\n"); got != 3 {
		t.Errorf("expected 3 newlines, got %d in %q", got, content.Text)
	}
}

func TestExtractText_StripsBOM(t *testing.T) {
	path := writeFile(t, "bom.txt", "\xEF\xBB\xBFhello world")

	content, err := Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Text != "hello world" {
		t.Errorf("expected BOM stripped, got %q", content.Text)
	}
}

func TestExtractText_RejectsBinary(t *testing.T) {
	path := writeFile(t, "fake.txt", "PK\x03\x04\x00\x00\x00binary payload")

	if _, err := Extract(path); err == nil {
		t.Error("expected error for binary content under a text extension")
	}
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "archive.zip", "irrelevant")

	if _, err := Extract(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestExtract_MissingFile(t *testing.T) {
	if _, err := Extract(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"notes.txt", true},
		{"report.PDF", true},
		{"photo.JPG", true},
		{"photo.tiff", true},
		{"data.csv", true},
		{"binary.exe", false},
		{"archive.tar.gz", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Supported(tt.path); got != tt.want {
				t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestTidyPageText(t *testing.T) {
	in := "  Name:   John   Doe  \n\n\n  SSN: 123-45-6789\t\n"
	want := "Name: John Doe\nSSN: 123-45-6789"
	if got := tidyPageText(in); got != want {
		t.Errorf("tidyPageText = %q, want %q", got, want)
	}
}

func TestExtractImage_NoExif(t *testing.T) {
	// A PNG header with no EXIF segment should fail loudly, not return
	// empty text.
	path := writeFile(t, "blank.png", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	if _, err := Extract(path); err == nil {
		t.Error("expected error for image without EXIF data")
	}
}
