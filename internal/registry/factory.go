// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"

	"textscrub/internal/detector"
	"textscrub/internal/recognizers"
)

// BuildDefault returns a registry holding every built-in recognizer.
func BuildDefault() (*Registry, error) {
	return Build(nil)
}

// Build returns a registry holding the built-in recognizers named by enabled
// (nil or empty means all of them) plus any extra recognizers, typically
// parsed from a recognizer file. A name in enabled that no built-in owns
// fails with ErrUnknownEntityType; an extra recognizer colliding with an
// enabled built-in fails with ErrDuplicateEntityType.
func Build(enabled []detector.EntityType, extras ...detector.Recognizer) (*Registry, error) {
	builtin := recognizers.All()

	want := make(map[detector.EntityType]bool, len(enabled))
	for _, et := range enabled {
		want[et] = true
	}

	reg := New()
	for _, r := range builtin {
		if len(want) > 0 && !want[r.EntityType()] {
			continue
		}
		delete(want, r.EntityType())
		if err := reg.Register(r); err != nil {
			return nil, err
		}
	}
	for _, r := range extras {
		delete(want, r.EntityType())
		if err := reg.Register(r); err != nil {
			return nil, err
		}
	}
	for et := range want {
		return nil, fmt.Errorf("%w: %s", detector.ErrUnknownEntityType, et)
	}
	return reg, nil
}
