// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts the text of every page, top to bottom, pages joined by
// a blank line. AcroForm field values are appended as "Name: x Value: y"
// lines, since filled forms are where document PII concentrates.
func extractPDF(path string) (*Content, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pages := r.NumPage()
	var parts []string
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := pageText(p)
		if err != nil {
			continue
		}
		text = tidyPageText(text)
		if text != "" {
			parts = append(parts, text)
		}
	}

	if form := formFields(r); form != "" {
		parts = append(parts, form)
	}

	// Blank line between pages: the page-boundary marker downstream
	// collaborators expect.
	return newContent(path, strings.Join(parts, "\n\n"), pages), nil
}

// pageText extracts one page through row-based positioning, which
// reconstructs the spacing a visual reader sees. Pages whose content stream
// defeats row extraction fall back to the plain text stream.
func pageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	// PDF Y grows bottom-up, so the top of the page is the largest Y.
	sort.Slice(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) > averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		line := rowText(row.Content)
		if strings.TrimSpace(line) != "" {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, e := range elements {
		total += e.Y
	}
	return total / float64(len(elements))
}

// rowText joins the text elements of one row left to right, inserting a
// space wherever the horizontal gap between neighbors exceeds a fifth of the
// font size; below that threshold a gap is kerning, not a word break.
func rowText(elements []pdf.Text) string {
	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var buf bytes.Buffer
	for i, e := range sorted {
		buf.WriteString(e.S)
		if i == len(sorted)-1 {
			break
		}
		gap := sorted[i+1].X - (e.X + e.W)
		fontSize := e.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap > fontSize*0.2 {
			buf.WriteByte(' ')
		}
	}
	return buf.String()
}

// tidyPageText trims each line and collapses runs of spaces within it. Line
// breaks are preserved: "SSN: 123-45-6789" staying on its own line is what
// keeps label and value inside one context window.
func tidyPageText(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// formFields walks the AcroForm field array of the document catalog.
func formFields(r *pdf.Reader) string {
	root := r.Trailer().Key("Root")
	if root.IsNull() {
		return ""
	}
	acroForm := root.Key("AcroForm")
	if acroForm.IsNull() {
		return ""
	}
	fields := acroForm.Key("Fields")
	if fields.IsNull() || fields.Kind() != pdf.Array {
		return ""
	}

	var buf bytes.Buffer
	for i := 0; i < fields.Len(); i++ {
		field := fields.Index(i)
		if field.IsNull() {
			continue
		}
		name, value := fieldNameValue(field)
		if name != "" && value != "" {
			fmt.Fprintf(&buf, "Name: %s Value: %s\n", name, value)
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

func fieldNameValue(field pdf.Value) (string, string) {
	if field.Kind() != pdf.Dict {
		return "", ""
	}

	var name, value string
	if t := field.Key("T"); !t.IsNull() && t.Kind() == pdf.String {
		name = t.Text()
	}
	value = valueText(field.Key("V"))
	if value == "" {
		value = valueText(field.Key("DV"))
	}
	return name, value
}

func valueText(v pdf.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case pdf.String:
		return v.Text()
	case pdf.Name:
		return v.Name()
	}
	return ""
}
