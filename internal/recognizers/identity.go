// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewPassport returns the recognizer for US passport numbers: an optional
// letter followed by 8-9 digits. Structurally weak, so the score leans on
// travel-document vocabulary nearby.
func NewPassport() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.Passport, []detector.Pattern{
		{
			Name:   "passport_number",
			Regexp: regexp.MustCompile(`\b[A-Z]?\d{8,9}\b`),
			Score:  0.3,
		},
	}, []string{
		"passport", "passport number", "passport no", "travel document",
	})
}

// NewStateID returns the recognizer for state-issued identification numbers.
// Formats vary by state, so both shapes score low and depend on context.
func NewStateID() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.StateID, []detector.Pattern{
		{
			Name:   "state_id_alpha_num",
			Regexp: regexp.MustCompile(`\b[A-Z]{1,2}\d{6,8}\b`),
			Score:  0.3,
		},
		{
			Name:   "state_id_num",
			Regexp: regexp.MustCompile(`\b\d{7,12}\b`),
			Score:  0.2,
		},
	}, []string{
		"state id", "state identification", "id number",
		"identification number", "id card", "state issued",
	})
}

// NewMilitaryID returns the recognizer for Department of Defense ID numbers.
func NewMilitaryID() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.MilitaryID, []detector.Pattern{
		{
			Name:   "military_id_labeled",
			Regexp: regexp.MustCompile(`\b(?i:military|service|dod)[:\s#]*\d{10}\b`),
			Score:  0.85,
		},
		{
			Name:   "dod_id",
			Regexp: regexp.MustCompile(`\b\d{10}\b`),
			Score:  0.3,
		},
	}, []string{
		"military", "dod", "department of defense", "service member",
		"veteran", "armed forces", "army", "navy", "air force", "marines",
		"coast guard",
	})
}

// NewDriverLicense returns the recognizer for US driver's license numbers.
// The letter-plus-digits shapes cover the most common state formats.
func NewDriverLicense() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.DriverLicense, []detector.Pattern{
		{
			Name:   "license_labeled",
			Regexp: regexp.MustCompile(`\b(?i:driver'?s?\s+license|license\s+(?:number|no)|lic)[:\s#]*[A-Z0-9]{5,13}\b`),
			Score:  0.8,
		},
		{
			Name:   "license_letter_digits",
			Regexp: regexp.MustCompile(`\b[A-Z]\d{7}\b`),
			Score:  0.4,
		},
		{
			Name:   "license_letter_long",
			Regexp: regexp.MustCompile(`\b[A-Z]\d{12}\b`),
			Score:  0.3,
		},
	}, []string{
		"driver", "license", "driver's license", "drivers license", "dmv",
		"driving", "motor vehicle",
	})
}
