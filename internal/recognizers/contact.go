// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewEmailAddress returns the recognizer for email addresses.
func NewEmailAddress() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.EmailAddress, []detector.Pattern{
		{
			Name:   "email_standard",
			Regexp: regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`),
			Score:  0.85,
		},
	}, []string{
		"email", "e-mail", "mail", "contact", "reach", "send",
	})
}

// NewPhoneNumber returns the recognizer for US phone numbers. Bare 10-digit
// runs are deliberately not claimed here: without separators or a parenthesized
// area code they are indistinguishable from account and service numbers.
func NewPhoneNumber() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.PhoneNumber, []detector.Pattern{
		{
			Name:   "phone_international",
			Regexp: regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
			Score:  0.8,
		},
		{
			Name:   "phone_parenthesized",
			Regexp: regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}\b`),
			Score:  0.75,
		},
		{
			Name:   "phone_separated",
			Regexp: regexp.MustCompile(`\b\d{3}[-.]\d{3}[-.]\d{4}\b`),
			Score:  0.7,
		},
	}, []string{
		"phone", "telephone", "tel", "call", "mobile", "cell", "fax", "dial",
	})
}

// NewURL returns the recognizer for web addresses.
func NewURL() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.URL, []detector.Pattern{
		{
			Name:   "url_scheme",
			Regexp: regexp.MustCompile(`\bhttps?://[^\s<>"']+`),
			Score:  0.85,
		},
		{
			Name:   "url_www",
			Regexp: regexp.MustCompile(`\bwww\.[a-zA-Z0-9-]+\.[a-zA-Z]{2,}[^\s<>"']*`),
			Score:  0.6,
		},
	}, []string{
		"url", "website", "web", "link", "visit", "browse", "homepage",
	})
}

// NewIPAddress returns the recognizer for IPv4 and IPv6 addresses.
func NewIPAddress() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.IPAddress, []detector.Pattern{
		{
			Name:   "ipv4",
			Regexp: regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`),
			Score:  0.8,
		},
		{
			Name:   "ipv6_full",
			Regexp: regexp.MustCompile(`\b(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b`),
			Score:  0.8,
		},
		{
			Name:   "ipv6_compressed",
			Regexp: regexp.MustCompile(`\b(?:[0-9a-fA-F]{1,4}:)+:(?:[0-9a-fA-F]{1,4}:)*[0-9a-fA-F]{1,4}\b`),
			Score:  0.6,
		},
	}, []string{
		"ip", "ip address", "ipv4", "ipv6", "server", "host", "gateway", "subnet",
	})
}
