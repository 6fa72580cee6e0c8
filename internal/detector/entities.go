// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// Built-in entity types. The string values are the wire/report names and the
// keys of the generator dispatch table; the constants exist so call sites
// don't scatter literals.
const (
	Person           EntityType = "PERSON"
	EmailAddress     EntityType = "EMAIL_ADDRESS"
	PhoneNumber      EntityType = "PHONE_NUMBER"
	SSN              EntityType = "US_SSN"
	DriverLicense    EntityType = "US_DRIVER_LICENSE"
	CreditCard       EntityType = "CREDIT_CARD"
	BankNumber       EntityType = "US_BANK_NUMBER"
	ITIN             EntityType = "US_ITIN"
	IPAddress        EntityType = "IP_ADDRESS"
	Location         EntityType = "LOCATION"
	DateTime         EntityType = "DATE_TIME"
	NRP              EntityType = "NRP"
	MedicalLicense   EntityType = "MEDICAL_LICENSE"
	URL              EntityType = "URL"
	IBANCode         EntityType = "IBAN_CODE"
	Passport         EntityType = "US_PASSPORT"
	StateID          EntityType = "STATE_ID"
	MedicalRecord    EntityType = "MEDICAL_RECORD"
	HealthInsurance  EntityType = "HEALTH_INSURANCE_ID"
	EmployeeID       EntityType = "EMPLOYEE_ID"
	StudentID        EntityType = "STUDENT_ID"
	MilitaryID       EntityType = "MILITARY_ID"
	VehicleReg       EntityType = "VEHICLE_REGISTRATION"
	LicensePlate     EntityType = "LICENSE_PLATE"
	Credentials      EntityType = "CREDENTIALS"
	USAddress        EntityType = "US_ADDRESS"
	DateOfBirth      EntityType = "DATE_OF_BIRTH"
	MaidenName       EntityType = "MOTHERS_MAIDEN_NAME"
	FinancialAccount EntityType = "FINANCIAL_ACCOUNT"
)
