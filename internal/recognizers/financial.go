// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewCreditCard returns the recognizer for payment card numbers. All shapes
// are Luhn-gated, which removes nearly every random digit run before scoring.
func NewCreditCard() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.CreditCard, []detector.Pattern{
		{
			Name:     "card_grouped_16",
			Regexp:   regexp.MustCompile(`\b\d{4}[-\s]\d{4}[-\s]\d{4}[-\s]\d{4}\b`),
			Score:    0.8,
			Validate: luhnValid,
		},
		{
			Name:     "card_grouped_amex",
			Regexp:   regexp.MustCompile(`\b\d{4}[-\s]\d{6}[-\s]\d{5}\b`),
			Score:    0.8,
			Validate: luhnValid,
		},
		{
			Name:     "card_contiguous",
			Regexp:   regexp.MustCompile(`\b\d{13,16}\b`),
			Score:    0.4,
			Validate: luhnValid,
		},
	}, []string{
		"credit card", "card number", "visa", "mastercard", "amex",
		"american express", "discover", "cvv", "expiration", "debit",
	})
}

// NewBankNumber returns the recognizer for US bank account numbers. The shape
// is a bare digit run, so the base score stays far below threshold and only
// banking vocabulary promotes it.
func NewBankNumber() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.BankNumber, []detector.Pattern{
		{
			Name:   "bank_account",
			Regexp: regexp.MustCompile(`\b\d{8,17}\b`),
			Score:  0.2,
		},
	}, []string{
		"bank", "account", "checking", "savings", "deposit", "withdrawal",
		"balance", "routing",
	})
}

// NewITIN returns the recognizer for Individual Taxpayer Identification
// Numbers: 9xx area with a 7x-9x group, the IRS-reserved shape that the SSN
// rules reject.
func NewITIN() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.ITIN, []detector.Pattern{
		{
			Name:   "itin_dashed",
			Regexp: regexp.MustCompile(`\b9\d{2}-[7-9]\d-\d{4}\b`),
			Score:  0.7,
		},
		{
			Name:   "itin_compact",
			Regexp: regexp.MustCompile(`\b9\d{2}[7-9]\d{5}\b`),
			Score:  0.45,
		},
	}, []string{
		"itin", "taxpayer", "tax id", "individual taxpayer", "irs",
	})
}

// NewIBAN returns the recognizer for International Bank Account Numbers,
// gated by the ISO 13616 mod-97 checksum.
func NewIBAN() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.IBANCode, []detector.Pattern{
		{
			Name:     "iban",
			Regexp:   regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z0-9]{11,30}\b`),
			Score:    0.9,
			Validate: ibanValid,
		},
	}, []string{
		"iban", "international bank", "swift", "bic", "wire", "sepa",
	})
}

// NewFinancialAccount returns the recognizer for generic financial account
// numbers: labeled account references plus bare 9-digit routing-number runs.
// The 9-digit shape intentionally collides with other identifiers; the
// resolver owns that ambiguity.
func NewFinancialAccount() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.FinancialAccount, []detector.Pattern{
		{
			Name:   "account_labeled",
			Regexp: regexp.MustCompile(`\b(?i:account|acct|a/c)[:\s#]*\d{6,17}\b`),
			Score:  0.8,
		},
		{
			Name:   "routing_number",
			Regexp: regexp.MustCompile(`\b\d{9}\b`),
			Score:  0.3,
		},
	}, []string{
		"account", "routing", "bank", "financial", "brokerage", "investment",
		"savings", "checking", "wire", "transfer",
	})
}
