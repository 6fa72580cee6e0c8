// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"math/big"
	"strings"
)

var mod97 = big.NewInt(97)

// digitsOf strips separators and returns the digit runes, or "" if any
// remaining rune is not a digit.
func digitsOf(s string) string {
	clean := strings.NewReplacer("-", "", " ", "", ".", "").Replace(s)
	for _, r := range clean {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return clean
}

// validSSN reports whether a 9-digit string respects SSA assignment rules:
// area not 000, 666 or 900-999, group not 00, serial not 0000.
func validSSN(s string) bool {
	d := digitsOf(s)
	if len(d) != 9 {
		return false
	}
	area := d[0:3]
	if area == "000" || area == "666" || area[0] == '9' {
		return false
	}
	if d[3:5] == "00" {
		return false
	}
	if d[5:9] == "0000" {
		return false
	}
	return true
}

// luhnValid reports whether the digits of s (separators allowed) pass the
// Luhn mod-10 check used by payment card numbers.
func luhnValid(s string) bool {
	d := digitsOf(s)
	if len(d) < 13 || len(d) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(d) - 1; i >= 0; i-- {
		n := int(d[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}

// deaValid reports whether s looks like a DEA registration number: two
// letters followed by seven digits where the seventh is the check digit
// (odd-position digits plus twice the even-position digits, mod 10).
func deaValid(s string) bool {
	if len(s) != 9 {
		return false
	}
	d := s[2:]
	for i := 0; i < len(d); i++ {
		if d[i] < '0' || d[i] > '9' {
			return false
		}
	}
	odd := int(d[0]-'0') + int(d[2]-'0') + int(d[4]-'0')
	even := int(d[1]-'0') + int(d[3]-'0') + int(d[5]-'0')
	return (odd+2*even)%10 == int(d[6]-'0')
}

// ibanValid checks an IBAN candidate with the ISO 13616 mod-97 test: move
// the first four characters to the end, map letters to 10-35, and the
// resulting integer must be congruent to 1 modulo 97.
func ibanValid(s string) bool {
	if len(s) < 15 || len(s) > 34 {
		return false
	}
	rearranged := s[4:] + s[:4]
	var sb strings.Builder
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteString(big.NewInt(int64(r-'A') + 10).String())
		default:
			return false
		}
	}
	n, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok {
		return false
	}
	return new(big.Int).Mod(n, mod97).Int64() == 1
}

// notCommonPhrase reports whether a capitalized word pair is a real name
// candidate rather than a well-known non-name phrase.
func notCommonPhrase(s string) bool {
	return !commonPhrases[strings.ToLower(s)]
}

// Capitalized pairs that match the name patterns but never denote a person.
var commonPhrases = map[string]bool{
	"united states":   true,
	"new york":        true,
	"new jersey":      true,
	"los angeles":     true,
	"san francisco":   true,
	"las vegas":       true,
	"north carolina":  true,
	"south dakota":    true,
	"social security": true,
	"medical record":  true,
	"credit card":     true,
	"drivers license": true,
	"air force":       true,
	"coast guard":     true,
	"middle east":     true,
	"happy birthday":  true,
	"best regards":    true,
	"thank you":       true,
	"dear sir":        true,
	"po box":          true,

	// Triples for the three-part shape.
	"new york city":                  true,
	"salt lake city":                 true,
	"internal revenue service":       true,
	"social security administration": true,
	"world health organization":      true,
}
