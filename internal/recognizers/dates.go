// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewDateTime returns the recognizer for generic dates and times.
func NewDateTime() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.DateTime, []detector.Pattern{
		{
			Name:   "date_iso",
			Regexp: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
			Score:  0.6,
		},
		{
			Name:   "date_written",
			Regexp: regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`),
			Score:  0.6,
		},
		{
			Name:   "time_of_day",
			Regexp: regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\s?(?:AM|PM|am|pm)?\b`),
			Score:  0.4,
		},
	}, []string{
		"date", "dated", "scheduled", "appointment", "effective", "issued",
		"expires",
	})
}

// NewDateOfBirth returns the recognizer for dates of birth. The numeric
// shapes are any plausible calendar date; only birth vocabulary in the
// window separates a DOB from an ordinary date, which is exactly how the
// score bands are set: 0.5-0.6 base, boosted past DATE_TIME when "born" or
// "dob" appears nearby.
func NewDateOfBirth() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.DateOfBirth, []detector.Pattern{
		{
			Name:   "dob_mdy",
			Regexp: regexp.MustCompile(`\b(?:0?[1-9]|1[0-2])[/\-](?:0?[1-9]|[12]\d|3[01])[/\-](?:19|20)\d{2}\b`),
			Score:  0.5,
		},
		{
			Name:   "dob_dmy",
			Regexp: regexp.MustCompile(`\b(?:0?[1-9]|[12]\d|3[01])[/\-](?:0?[1-9]|1[0-2])[/\-](?:19|20)\d{2}\b`),
			Score:  0.5,
		},
		{
			Name:   "dob_written",
			Regexp: regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+(?:19|20)\d{2}\b`),
			Score:  0.6,
		},
	}, []string{
		"dob", "date of birth", "birth date", "birthday", "born",
		"birthdate", "d.o.b",
	})
}
