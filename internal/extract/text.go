// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// extractText reads a plain text file. Line endings are normalized to \n so
// downstream offsets are stable across platforms; a UTF-8 BOM is dropped.
// Binary content masquerading under a text extension is rejected rather than
// fed to the matchers.
func extractText(path string) (*Content, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading text file: %w", err)
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if !looksLikeText(data) {
		return nil, fmt.Errorf("%s does not look like a text file", path)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return newContent(path, text, 1), nil
}

// looksLikeText applies the classic binary sniff: valid UTF-8, no NUL bytes,
// and a dominant share of printable characters in the leading sample.
func looksLikeText(data []byte) bool {
	if len(data) == 0 {
		return true
	}

	sample := data
	if len(sample) > 8192 {
		sample = sample[:8192]
	}
	if bytes.IndexByte(sample, 0) != -1 {
		return false
	}
	if !utf8.Valid(sample) {
		return false
	}

	printable := 0
	total := 0
	for _, r := range string(sample) {
		total++
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			printable++
		}
	}
	return total == 0 || float64(printable)/float64(total) >= 0.9
}
