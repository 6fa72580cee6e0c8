// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewMedicalRecord returns the recognizer for medical record numbers. The
// labeled form is near-certain; the bare numeric run scores 0.1 and only a
// clinical context window can lift it past any sane threshold.
func NewMedicalRecord() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.MedicalRecord, []detector.Pattern{
		{
			Name:   "mrn_labeled",
			Regexp: regexp.MustCompile(`\b(?i:medical record|patient id|mrn|mr#?)[:\s#]*\d{6,12}\b`),
			Score:  0.85,
		},
		{
			Name:   "mrn_numeric",
			Regexp: regexp.MustCompile(`\b\d{6,10}\b`),
			Score:  0.1,
		},
	}, []string{
		"mrn", "medical record", "patient id", "patient number",
		"chart number", "hospital", "clinic", "healthcare", "medical",
	})
}

// NewHealthInsurance returns the recognizer for health insurance member IDs.
func NewHealthInsurance() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.HealthInsurance, []detector.Pattern{
		{
			Name:   "insurance_id_alpha",
			Regexp: regexp.MustCompile(`\b[A-Z]{3}\d{9,12}\b`),
			Score:  0.6,
		},
		{
			Name:   "insurance_id_mixed",
			Regexp: regexp.MustCompile(`\b[A-Z0-9]{10,15}\b`),
			Score:  0.3,
		},
	}, []string{
		"insurance", "member id", "policy number", "subscriber id",
		"group number", "health plan", "coverage", "beneficiary",
	})
}

// NewMedicalLicense returns the recognizer for practitioner license numbers.
// The bare two-letter-seven-digit shape is checksum-gated in the DEA
// registration scheme.
func NewMedicalLicense() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.MedicalLicense, []detector.Pattern{
		{
			Name:   "medical_license_labeled",
			Regexp: regexp.MustCompile(`\b(?i:medical license|med lic|dea)[:\s#]*[A-Z]{2}\d{7}\b`),
			Score:  0.85,
		},
		{
			Name:     "dea_number",
			Regexp:   regexp.MustCompile(`\b[A-Z]{2}\d{7}\b`),
			Score:    0.3,
			Validate: deaValid,
		},
	}, []string{
		"medical license", "license number", "dea", "physician", "doctor",
		"practitioner", "npi", "prescriber",
	})
}
