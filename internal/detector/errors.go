// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "errors"

// Pipeline error taxonomy. All four are configuration or construction errors:
// malformed input text never raises, it simply yields fewer or zero matches.
// Raise sites wrap these with detail; callers test with errors.Is.
var (
	// ErrDuplicateEntityType is returned by the registry when a second
	// recognizer is registered for an entity type that already has one.
	ErrDuplicateEntityType = errors.New("duplicate entity type")

	// ErrUnknownEntityType is returned when detection is requested for an
	// entity type absent from the registry.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrInvalidSpan is returned by the resolver for a zero-width or inverted
	// candidate span. A recognizer emitting one is a programming error;
	// the detection call fails rather than guessing.
	ErrInvalidSpan = errors.New("invalid candidate span")

	// ErrOverlappingOrOutOfRangeMatch is returned by the anonymizer when the
	// match list violates the resolver's invariant: a span past the end of
	// the text, inverted, or overlapping a neighbor. The input text is
	// returned unmodified; no partial rewrite is ever produced.
	ErrOverlappingOrOutOfRangeMatch = errors.New("overlapping or out-of-range match")
)
