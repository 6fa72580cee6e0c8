// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// tagWalker collects every EXIF tag into a name → value map.
type tagWalker struct {
	tags map[string]string
}

func (w *tagWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag != nil {
		w.tags[string(name)] = tag.String()
	}
	return nil
}

// extractImage flattens an image's EXIF metadata into one "Tag: value" line
// per tag, alphabetically, with GPS coordinates converted to decimal
// degrees. Camera owner names, descriptions and positions are PII the same
// way document text is; rendering them as labeled lines lets the ordinary
// recognizers and their context windows see them. Pixel data is never read.
func extractImage(path string) (*Content, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("no EXIF data in %s: %w", path, err)
	}

	walker := &tagWalker{tags: make(map[string]string)}
	if err := x.Walk(walker); err != nil {
		return nil, fmt.Errorf("error walking EXIF tags: %w", err)
	}

	// LatLong applies the hemisphere references, so these come out signed.
	if lat, long, err := x.LatLong(); err == nil {
		walker.tags["GPSLatitudeDecimal"] = fmt.Sprintf("%.6f", lat)
		walker.tags["GPSLongitudeDecimal"] = fmt.Sprintf("%.6f", long)
	}

	names := make([]string, 0, len(walker.tags))
	for name := range walker.tags {
		// The raw sexagesimal triplets duplicate the decimal fields.
		if name == string(exif.GPSLatitude) || name == string(exif.GPSLongitude) || name == string(exif.GPSTimeStamp) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	for _, name := range names {
		fmt.Fprintf(&buf, "%s: %s\n", name, walker.tags[name])
	}
	return newContent(path, buf.String(), 1), nil
}
