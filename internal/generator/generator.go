// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package generator produces synthetic replacement values that preserve the
// shape of the entity they replace: an SSN stays a dashed 9-digit number in
// a valid assignment range, a VIN stays 17 characters of the VIN alphabet,
// an email stays a syntactically valid address on a reserved example domain.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"textscrub/internal/detector"
)

// Func produces one synthetic value, drawing randomness only from rng so
// that a seed fully determines the output sequence.
type Func func(rng *rand.Rand) string

// Synthetic is the built-in generator. One rand.Rand is consumed in call
// order: two instances built with the same nonzero seed produce identical
// replacement sequences. The contract is reproducibility, not cryptographic
// strength. Not safe for concurrent use; construct one per worker.
type Synthetic struct {
	rng   *rand.Rand
	table map[detector.EntityType]Func
}

// New builds a Synthetic generator. A seed of 0 means time-seeded, giving
// non-reproducible output; any other value pins the sequence.
func New(seed int64) *Synthetic {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Synthetic{
		rng:   rand.New(rand.NewSource(seed)),
		table: make(map[detector.EntityType]Func),
	}
	s.registerBuiltins()
	return s
}

// Register installs or replaces the generator function for one entity type.
// New entity types get shaped replacements without touching the anonymizer.
func (s *Synthetic) Register(et detector.EntityType, fn Func) {
	s.table[et] = fn
}

// Replacement returns a synthetic value for et. Unknown entity types fall
// back to the deterministic placeholder [REDACTED_<entity_type>].
func (s *Synthetic) Replacement(et detector.EntityType) string {
	if fn, ok := s.table[et]; ok {
		return fn(s.rng)
	}
	return "[REDACTED_" + string(et) + "]"
}

func (s *Synthetic) registerBuiltins() {
	s.table[detector.Person] = func(r *rand.Rand) string {
		return pick(r, firstNames) + " " + pick(r, lastNames)
	}
	s.table[detector.EmailAddress] = func(r *rand.Rand) string {
		return fmt.Sprintf("user%03d@example.%s", r.Intn(1000), pick(r, []string{"com", "org", "net"}))
	}
	s.table[detector.PhoneNumber] = func(r *rand.Rand) string {
		// 555-01xx is the reserved fictional exchange.
		return fmt.Sprintf("(555) 01%d-%04d", r.Intn(10), r.Intn(10000))
	}
	s.table[detector.SSN] = func(r *rand.Rand) string {
		// Valid area numbers are 001-665 and 667-899.
		area := 1 + r.Intn(898)
		if area >= 666 {
			area++
		}
		return fmt.Sprintf("%03d-%02d-%04d", area, 1+r.Intn(99), 1+r.Intn(9999))
	}
	s.table[detector.DriverLicense] = func(r *rand.Rand) string {
		return letters(r, 1) + digits(r, 7)
	}
	s.table[detector.CreditCard] = func(r *rand.Rand) string {
		payload := "4" + digits(r, 14)
		number := payload + luhnCheckDigit(payload)
		return number[0:4] + "-" + number[4:8] + "-" + number[8:12] + "-" + number[12:16]
	}
	s.table[detector.BankNumber] = func(r *rand.Rand) string {
		return digits(r, 10+r.Intn(3))
	}
	s.table[detector.ITIN] = func(r *rand.Rand) string {
		return fmt.Sprintf("9%02d-7%d-%04d", r.Intn(100), r.Intn(10), r.Intn(10000))
	}
	s.table[detector.IPAddress] = func(r *rand.Rand) string {
		return fmt.Sprintf("192.168.%d.%d", r.Intn(256), 1+r.Intn(254))
	}
	s.table[detector.Location] = func(r *rand.Rand) string {
		return pick(r, cities) + ", " + pick(r, stateAbbrs)
	}
	s.table[detector.DateTime] = func(r *rand.Rand) string {
		return fmt.Sprintf("%04d-%02d-%02d", 1970+r.Intn(55), 1+r.Intn(12), 1+r.Intn(28))
	}
	s.table[detector.NRP] = func(r *rand.Rand) string {
		return pick(r, nationalities)
	}
	s.table[detector.MedicalLicense] = func(r *rand.Rand) string {
		return "ML" + digits(r, 7)
	}
	s.table[detector.URL] = func(r *rand.Rand) string {
		return fmt.Sprintf("https://www.example%04d.com", r.Intn(10000))
	}
	s.table[detector.IBANCode] = func(r *rand.Rand) string {
		return syntheticIBAN(r)
	}
	s.table[detector.Passport] = func(r *rand.Rand) string {
		return digits(r, 9)
	}
	s.table[detector.StateID] = func(r *rand.Rand) string {
		return letters(r, 1) + digits(r, 8)
	}
	s.table[detector.MedicalRecord] = func(r *rand.Rand) string {
		return "MRN" + digits(r, 8)
	}
	s.table[detector.HealthInsurance] = func(r *rand.Rand) string {
		return letters(r, 3) + digits(r, 10)
	}
	s.table[detector.EmployeeID] = func(r *rand.Rand) string {
		return "EMP" + digits(r, 6)
	}
	s.table[detector.StudentID] = func(r *rand.Rand) string {
		return "STU" + digits(r, 7)
	}
	s.table[detector.MilitaryID] = func(r *rand.Rand) string {
		return digits(r, 10)
	}
	s.table[detector.VehicleReg] = func(r *rand.Rand) string {
		var sb strings.Builder
		for i := 0; i < 17; i++ {
			sb.WriteByte(vinAlphabet[r.Intn(len(vinAlphabet))])
		}
		return sb.String()
	}
	s.table[detector.LicensePlate] = func(r *rand.Rand) string {
		return letters(r, 3) + "-" + digits(r, 4)
	}
	s.table[detector.Credentials] = func(r *rand.Rand) string {
		// Never fabricate plausible secrets.
		return "[REDACTED_CREDENTIALS]"
	}
	s.table[detector.USAddress] = func(r *rand.Rand) string {
		return fmt.Sprintf("%d %s %s", 100+r.Intn(9900), pick(r, streetNames), pick(r, streetTypes))
	}
	s.table[detector.DateOfBirth] = func(r *rand.Rand) string {
		// Ages roughly 18-90.
		return fmt.Sprintf("%02d/%02d/%04d", 1+r.Intn(12), 1+r.Intn(28), 1935+r.Intn(71))
	}
	s.table[detector.MaidenName] = func(r *rand.Rand) string {
		return pick(r, lastNames)
	}
	s.table[detector.FinancialAccount] = func(r *rand.Rand) string {
		return digits(r, 10)
	}
}

// VIN character set: I, O and Q are excluded to avoid digit confusion.
const vinAlphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

const uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// digits returns n random digits, first one nonzero so lengths survive
// numeric reparsing.
func digits(r *rand.Rand, n int) string {
	var sb strings.Builder
	sb.WriteByte(byte('1' + r.Intn(9)))
	for i := 1; i < n; i++ {
		sb.WriteByte(byte('0' + r.Intn(10)))
	}
	return sb.String()
}

func letters(r *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(uppercase[r.Intn(26)])
	}
	return sb.String()
}

func pick(r *rand.Rand, list []string) string {
	return list[r.Intn(len(list))]
}

// luhnCheckDigit computes the mod-10 check digit for a digit payload, with
// doubling applied from the rightmost payload digit.
func luhnCheckDigit(payload string) string {
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		n := int(payload[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return string(byte('0' + (10-sum%10)%10))
}

// syntheticIBAN builds a German-format IBAN whose mod-97 checksum verifies.
func syntheticIBAN(r *rand.Rand) string {
	bban := digits(r, 18)
	// Check digits: 98 minus (BBAN + "DE00" as digits) mod 97, where D=13
	// and E=14.
	check := 98 - mod97String(bban+"131400")
	return fmt.Sprintf("DE%02d%s", check, bban)
}

// mod97String reduces a decimal digit string modulo 97 without big-integer
// arithmetic.
func mod97String(s string) int {
	rem := 0
	for i := 0; i < len(s); i++ {
		rem = (rem*10 + int(s[i]-'0')) % 97
	}
	return rem
}
