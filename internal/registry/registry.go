// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package registry holds the catalogue of recognizers the pipeline can
// detect. A registry is populated once at startup and read-only afterwards;
// one recognizer owns one entity type.
package registry

import (
	"fmt"
	"sort"

	"textscrub/internal/detector"
)

// Registry maps each entity type to its single recognizer. The zero value is
// not usable; call New.
type Registry struct {
	recognizers map[detector.EntityType]detector.Recognizer
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		recognizers: make(map[detector.EntityType]detector.Recognizer),
	}
}

// Register adds a recognizer. Registering a second recognizer for an entity
// type that already has one fails with detector.ErrDuplicateEntityType.
func (r *Registry) Register(rec detector.Recognizer) error {
	et := rec.EntityType()
	if _, exists := r.recognizers[et]; exists {
		return fmt.Errorf("%w: %s", detector.ErrDuplicateEntityType, et)
	}
	r.recognizers[et] = rec
	return nil
}

// Get returns the recognizer for the given entity type.
func (r *Registry) Get(et detector.EntityType) (detector.Recognizer, bool) {
	rec, ok := r.recognizers[et]
	return rec, ok
}

// EntityTypes returns every registered entity type in ascending order, so
// iteration over the full registry is deterministic.
func (r *Registry) EntityTypes() []detector.EntityType {
	types := make([]detector.EntityType, 0, len(r.recognizers))
	for et := range r.recognizers {
		types = append(types, et)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Len returns the number of registered recognizers.
func (r *Registry) Len() int {
	return len(r.recognizers)
}
