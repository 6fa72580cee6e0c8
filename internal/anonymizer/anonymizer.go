// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package anonymizer rewrites text by substituting every resolved match with
// a synthetic value, producing a replacement ledger alongside the new text.
package anonymizer

import (
	"fmt"
	"sort"
	"strings"

	"textscrub/internal/detector"
)

// Generator supplies one replacement value per entity type. The standard
// implementation is generator.Synthetic; anything answering the same
// question can stand in.
type Generator interface {
	Replacement(et detector.EntityType) string
}

// Anonymize replaces every match in text and returns the rewritten text plus
// one ReplacementRecord per match, sorted ascending by original start.
//
// Replacements resolve in document order: an exact hit in mapping is reused,
// otherwise gen produces a fresh value which is stored back into mapping (when
// one was supplied) so later occurrences of the same original reuse it. The
// rewrite itself runs in descending start order: splicing left to right
// would shift every later offset, since replacement length generally differs
// from span length.
//
// Matches are re-validated before any splice: every span must lie inside
// text, be non-empty, and follow the previous match without overlap.
// A violation fails with ErrOverlappingOrOutOfRangeMatch and returns the
// input text untouched; no partial rewrite ever escapes. Empty matches is a
// no-op: the original text and an empty ledger.
func Anonymize(text string, matches []detector.Match, gen Generator, mapping detector.ReplacementMapping) (string, []detector.ReplacementRecord, error) {
	if len(matches) == 0 {
		return text, nil, nil
	}
	if err := validate(text, matches); err != nil {
		return text, nil, err
	}

	replacements := make([]string, len(matches))
	records := make([]detector.ReplacementRecord, len(matches))
	for i, m := range matches {
		repl, ok := "", false
		if mapping != nil {
			repl, ok = mapping[m.Text]
		}
		if !ok {
			repl = gen.Replacement(m.EntityType)
			if mapping != nil {
				mapping[m.Text] = repl
			}
		}
		replacements[i] = repl
		records[i] = detector.ReplacementRecord{
			EntityType:  m.EntityType,
			Original:    m.Text,
			Replacement: repl,
			Start:       m.Start,
			End:         m.End,
			Score:       m.Score,
		}
	}

	buf := []byte(text)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		next := make([]byte, 0, len(buf)+len(replacements[i])-(m.End-m.Start))
		next = append(next, buf[:m.Start]...)
		next = append(next, replacements[i]...)
		next = append(next, buf[m.End:]...)
		buf = next
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Start < records[j].Start })
	return string(buf), records, nil
}

// AnonymizeWithMapping is the pure value-substitution mode: every occurrence
// of each mapping key is replaced by its value, longest keys first so a
// value containing another key is consumed whole. No ledger is produced;
// use Anonymize for span-accurate rewrites.
func AnonymizeWithMapping(text string, mapping detector.ReplacementMapping) string {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		text = strings.ReplaceAll(text, k, mapping[k])
	}
	return text
}

// MappingFromLedger rebuilds a mapping from a ledger, first record wins per
// original value. Feeding it back into Anonymize keeps later documents
// consistent with an earlier run.
func MappingFromLedger(records []detector.ReplacementRecord) detector.ReplacementMapping {
	mapping := make(detector.ReplacementMapping, len(records))
	for _, rec := range records {
		if _, ok := mapping[rec.Original]; !ok {
			mapping[rec.Original] = rec.Replacement
		}
	}
	return mapping
}

func validate(text string, matches []detector.Match) error {
	prevEnd := 0
	for _, m := range matches {
		switch {
		case m.Start < 0 || m.End > len(text):
			return fmt.Errorf("%w: %s [%d,%d) outside text of length %d",
				detector.ErrOverlappingOrOutOfRangeMatch, m.EntityType, m.Start, m.End, len(text))
		case m.Start >= m.End:
			return fmt.Errorf("%w: %s [%d,%d) is empty",
				detector.ErrOverlappingOrOutOfRangeMatch, m.EntityType, m.Start, m.End)
		case m.Start < prevEnd:
			return fmt.Errorf("%w: %s [%d,%d) overlaps previous match ending at %d",
				detector.ErrOverlappingOrOutOfRangeMatch, m.EntityType, m.Start, m.End, prevEnd)
		}
		prevEnd = m.End
	}
	return nil
}
