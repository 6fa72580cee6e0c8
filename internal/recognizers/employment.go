// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"regexp"

	"textscrub/internal/detector"
)

// NewEmployeeID returns the recognizer for employer-assigned IDs.
func NewEmployeeID() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.EmployeeID, []detector.Pattern{
		{
			Name:   "employee_id_labeled",
			Regexp: regexp.MustCompile(`\b(?i:employee|staff|worker|emp)[:\s#]*\d{4,10}\b`),
			Score:  0.85,
		},
		{
			Name:   "employee_id_prefix",
			Regexp: regexp.MustCompile(`\bEMP\d{4,8}\b`),
			Score:  0.7,
		},
	}, []string{
		"employee", "emp id", "staff id", "worker id", "badge number",
		"personnel", "payroll", "human resources",
	})
}

// NewStudentID returns the recognizer for school and university student IDs.
func NewStudentID() *detector.PatternRecognizer {
	return detector.NewPatternRecognizer(detector.StudentID, []detector.Pattern{
		{
			Name:   "student_id_labeled",
			Regexp: regexp.MustCompile(`\b(?i:student id|student|sid)[:\s#]*\d{5,12}\b`),
			Score:  0.85,
		},
		{
			Name:   "student_id_prefix",
			Regexp: regexp.MustCompile(`\b[A-Z]{1,3}\d{6,10}\b`),
			Score:  0.4,
		},
	}, []string{
		"student", "student id", "sid", "university", "college", "school",
		"enrollment", "academic",
	})
}
