// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewSSN returns the recognizer for US Social Security Numbers. Every
// pattern is gated by the SSA assignment rules (area not 000/666/9xx, group
// not 00, serial not 0000); the bare 9-digit shape scores low because it
// collides with routing numbers and other identifiers, and relies on nearby
// vocabulary to clear the threshold.
func NewSSN() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.SSN, []detector.Pattern{
		{
			Name:     "ssn_dashed",
			Regexp:   regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
			Score:    0.6,
			Validate: validSSN,
		},
		{
			Name:     "ssn_spaced",
			Regexp:   regexp.MustCompile(`\b\d{3}\s\d{2}\s\d{4}\b`),
			Score:    0.5,
			Validate: validSSN,
		},
		{
			Name:     "ssn_bare",
			Regexp:   regexp.MustCompile(`\b\d{9}\b`),
			Score:    0.3,
			Validate: validSSN,
		},
	}, []string{
		"ssn", "social security", "social security number", "tax id",
		"taxpayer", "tin", "benefits", "medicare", "medicaid",
	})
}
