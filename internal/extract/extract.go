// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract turns input files into the flat text the detection core
// consumes. It is the upstream collaborator of the pipeline: file handling
// stops here, and everything downstream operates on plain strings.
//
// Three input families are supported:
//   - plain text files, passed through with normalized line endings;
//   - PDF documents, extracted page by page with a blank-line page separator
//     and form field values appended;
//   - images, whose EXIF metadata is flattened into "Tag: value" lines so
//     embedded PII (author names, GPS positions) flows through the same text
//     pipeline. No OCR is performed; pixel data is never interpreted.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Content is the extraction result for one file.
type Content struct {
	// Path is the input file as given by the caller.
	Path string `json:"path"`

	// Text is the flattened document text. Page boundaries are marked by a
	// blank line; line endings are normalized to \n.
	Text string `json:"text"`

	// Pages is the number of pages extracted; 1 for non-paged inputs.
	Pages int `json:"pages"`

	// Words is the number of whitespace-separated tokens in Text.
	Words int `json:"words"`
}

var textExtensions = map[string]bool{
	".txt": true, ".text": true, ".log": true, ".md": true, ".markdown": true,
	".csv": true, ".tsv": true, ".json": true, ".jsonl": true, ".xml": true,
	".yaml": true, ".yml": true, ".toml": true, ".ini": true, ".conf": true,
	".cfg": true, ".env": true, ".rst": true, ".html": true, ".htm": true,
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".tif": true, ".tiff": true,
	".webp": true, ".heic": true,
}

// Supported reports whether Extract knows how to handle path, judged by
// extension alone. Directory walks use it to skip foreign files without
// surfacing an error per file.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return textExtensions[ext] || imageExtensions[ext] || ext == ".pdf"
}

// Extract reads path and returns its flattened text content. Files with an
// unsupported extension fail with an error naming the extension; extraction
// problems inside a supported file (a malformed PDF, an image without EXIF
// data) surface as errors too, never as silently empty text.
func Extract(path string) (*Content, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case textExtensions[ext]:
		return extractText(path)
	case ext == ".pdf":
		return extractPDF(path)
	case imageExtensions[ext]:
		return extractImage(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want text, pdf or image)", ext)
	}
}

func newContent(path, text string, pages int) *Content {
	return &Content{
		Path:  path,
		Text:  text,
		Pages: pages,
		Words: len(strings.Fields(text)),
	}
}
