// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package recognizers defines the built-in pattern recognizers, one per
// entity type. Patterns carry base confidence scores in [0,1]; low scores
// (0.1-0.3) mark structurally ambiguous shapes such as bare digit runs that
// only clear the detection threshold when context keywords corroborate them.
// Alternations inside a pattern are ordered longest-first so the leftmost
// match is also the longest one.
package recognizers

import "textscrub/internal/detector"

// All returns every built-in recognizer. Order is fixed but carries no
// semantic weight: the registry sorts entity types and the resolver owns
// overlap decisions.
func All() []detector.Recognizer {
	return []detector.Recognizer{
		NewPerson(),
		NewEmailAddress(),
		NewPhoneNumber(),
		NewURL(),
		NewIPAddress(),
		NewSSN(),
		NewDriverLicense(),
		NewCreditCard(),
		NewBankNumber(),
		NewITIN(),
		NewIBAN(),
		NewFinancialAccount(),
		NewPassport(),
		NewStateID(),
		NewMilitaryID(),
		NewMedicalRecord(),
		NewHealthInsurance(),
		NewMedicalLicense(),
		NewEmployeeID(),
		NewStudentID(),
		NewVehicleRegistration(),
		NewLicensePlate(),
		NewCredentials(),
		NewUSAddress(),
		NewLocation(),
		NewDateTime(),
		NewDateOfBirth(),
		NewNRP(),
		NewMaidenName(),
	}
}
