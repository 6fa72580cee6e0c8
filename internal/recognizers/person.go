// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewPerson returns the recognizer for personal names. The pattern set covers
// the western name shapes: title-prefixed, middle initial, suffixed,
// apostrophe and hyphenated surnames, plus the bare capitalized pair. The
// bare shapes share one base score so that overlapping candidates fall to the
// longer span.
func NewPerson() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.Person, []detector.Pattern{
		{
			Name:   "name_with_title",
			Regexp: regexp.MustCompile(`\b(?:Mr|Ms|Mrs|Dr|Prof|Sir|Dame|Lord|Lady)\.\s+[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\s+[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\b`),
			Score:  0.9,
		},
		{
			Name:   "name_with_middle_initial",
			Regexp: regexp.MustCompile(`\b[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\s+[A-ZÀ-ÿ]\.\s+[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\b`),
			Score:  0.9,
		},
		{
			Name:   "name_with_suffix",
			Regexp: regexp.MustCompile(`\b[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\s+[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\s+(?:Jr\.?|Sr\.?|III|IV|PhD|MD|Esq\.?)`),
			Score:  0.9,
		},
		{
			Name:   "apostrophe_surname",
			Regexp: regexp.MustCompile(`\b[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\s+[A-ZÀ-ÿ][a-zà-ÿ]*'[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\b`),
			Score:  0.85,
		},
		{
			Name:   "hyphenated_surname",
			Regexp: regexp.MustCompile(`\b[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\s+[A-ZÀ-ÿ][a-zà-ÿ]{1,29}-[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\b`),
			Score:  0.85,
		},
		{
			Name:     "three_part_name",
			Regexp:   regexp.MustCompile(`\b[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\s+[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\s+[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\b`),
			Score:    0.85,
			Validate: notCommonPhrase,
		},
		{
			Name:     "basic_western_name",
			Regexp:   regexp.MustCompile(`\b[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\s+[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\b`),
			Score:    0.85,
			Validate: notCommonPhrase,
		},
		{
			Name:     "last_comma_first",
			Regexp:   regexp.MustCompile(`\b[A-ZÀ-ÿ][a-zà-ÿ]{1,29},\s+[A-ZÀ-ÿ][a-zà-ÿ]{1,29}\b`),
			Score:    0.6,
			Validate: notCommonPhrase,
		},
	}, []string{
		"name", "full name", "first name", "last name", "mr.", "mrs.",
		"dear", "sincerely", "regards", "attention", "signature", "signed",
	})
}

// NewMaidenName returns the recognizer for mother's-maiden-name disclosures,
// which only occur in labeled security-question form.
func NewMaidenName() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.MaidenName, []detector.Pattern{
		{
			Name:   "maiden_name_labeled",
			Regexp: regexp.MustCompile(`\b(?i:mother'?s?\s+maiden\s+name|maiden\s+name)[:\s]*[A-Z][a-z]+\b`),
			Score:  0.9,
		},
	}, []string{
		"maiden name", "mother's maiden", "security question", "verification",
	})
}

// NewNRP returns the recognizer for nationality, religious and political
// affiliations. Detection is a capitalized deny-list; the window keywords
// separate demographic statements from incidental mentions.
func NewNRP() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.NRP, []detector.Pattern{
		{
			Name:   "affiliation_term",
			Regexp: regexp.MustCompile(`\b(?:American|Canadian|Mexican|Brazilian|British|English|Scottish|Irish|French|German|Italian|Spanish|Portuguese|Dutch|Polish|Swedish|Norwegian|Danish|Greek|Russian|Ukrainian|Turkish|Chinese|Japanese|Korean|Vietnamese|Thai|Filipino|Indonesian|Indian|Pakistani|Iranian|Iraqi|Israeli|Egyptian|Nigerian|Kenyan|Ethiopian|Australian|Catholic|Protestant|Baptist|Methodist|Lutheran|Orthodox|Jewish|Muslim|Hindu|Buddhist|Sikh|Atheist|Democrat|Republican|Libertarian|Socialist|Communist)\b`),
			Score:  0.6,
		},
	}, []string{
		"nationality", "religion", "religious", "ethnicity", "citizen",
		"citizenship", "political", "affiliation", "faith", "denomination",
	})
}
