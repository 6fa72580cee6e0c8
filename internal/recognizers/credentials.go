// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewCredentials returns the recognizer for login credentials. Both shapes
// are labeled: a bare secret has no detectable structure, so only
// "password: X" / "username: Y" disclosures are claimed, label included in
// the span so the rewrite removes the pairing.
func NewCredentials() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.Credentials, []detector.Pattern{
		{
			Name:   "password_labeled",
			Regexp: regexp.MustCompile(`\b(?i:passcode|password|pwd|pass)[:=\s][:\s]*\S{4,}`),
			Score:  0.9,
		},
		{
			Name:   "username_labeled",
			Regexp: regexp.MustCompile(`\b(?i:username|userid|user|login)[:=\s][:\s]*\S{3,}`),
			Score:  0.7,
		},
	}, []string{
		"password", "username", "login", "credentials", "authentication",
		"sign in", "log in",
	})
}
