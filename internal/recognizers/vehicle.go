// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewVehicleRegistration returns the recognizer for VINs and registration
// numbers. The 17-character shape uses the VIN alphabet, which excludes
// I, O and Q.
func NewVehicleRegistration() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.VehicleReg, []detector.Pattern{
		{
			Name:   "vin",
			Regexp: regexp.MustCompile(`\b[A-HJ-NPR-Z0-9]{17}\b`),
			Score:  0.85,
		},
		{
			Name:   "registration_labeled",
			Regexp: regexp.MustCompile(`\b(?i:registration|vehicle|vin)[:\s#]*[A-Z0-9]{6,17}\b`),
			Score:  0.7,
		},
	}, []string{
		"vin", "vehicle identification", "registration", "title",
		"automobile", "car", "truck", "motorcycle",
	})
}

// NewLicensePlate returns the recognizer for license plate numbers. The
// unlabeled shape matches most ALL-CAPS token runs, so it scores below
// threshold and needs plate vocabulary nearby.
func NewLicensePlate() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.LicensePlate, []detector.Pattern{
		{
			Name:   "license_plate_labeled",
			Regexp: regexp.MustCompile(`\b(?i:license plate|plate|tag)[:\s#]*[A-Z0-9]{2,8}\b`),
			Score:  0.8,
		},
		{
			Name:   "license_plate_standard",
			Regexp: regexp.MustCompile(`\b[A-Z0-9]{1,3}[-\s]?[A-Z0-9]{2,4}[-\s]?[A-Z0-9]{1,4}\b`),
			Score:  0.4,
		},
	}, []string{
		"license plate", "plate number", "tag", "vehicle plate",
		"registration plate",
	})
}
