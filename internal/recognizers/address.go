// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewUSAddress returns the recognizer for US street addresses: house number,
// street name, a street-type suffix, optional unit, optional city/state/ZIP
// tail. ZIP codes alone score 0.3 and need address vocabulary nearby.
func NewUSAddress() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.USAddress, []detector.Pattern{
		{
			Name:   "us_address_full",
			Regexp: regexp.MustCompile(`\d{1,5}\s+[\w\s]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Way|Court|Ct|Circle|Cir|Place|Pl)\.?(?:\s+(?:Apt|Suite|Unit|#)\s*\d+)?(?:,?\s+[\w\s]+,?\s+[A-Z]{2}\s+\d{5}(?:-\d{4})?)?`),
			Score:  0.85,
		},
		{
			Name:   "zip_code",
			Regexp: regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`),
			Score:  0.3,
		},
	}, []string{
		"address", "street", "avenue", "road", "city", "state", "zip",
		"postal", "mailing", "residence", "home", "office",
	})
}

// NewLocation returns the recognizer for city/state place references.
func NewLocation() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.Location, []detector.Pattern{
		{
			Name:   "city_state",
			Regexp: regexp.MustCompile(`\b[A-Z][a-zà-ÿ]+(?:\s+[A-Z][a-zà-ÿ]+)?,\s+(?:A[KLRZ]|C[AOT]|D[CE]|FL|GA|HI|I[ADLN]|K[SY]|LA|M[ADEINOST]|N[CDEHJMVY]|O[HKR]|PA|RI|S[CD]|T[NX]|UT|V[AT]|W[AIVY])\b`),
			Score:  0.7,
		},
	}, []string{
		"location", "city", "state", "country", "born in", "residing",
		"located", "based in",
	})
}
