// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package mappingstore

import (
	"path/filepath"
	"testing"

	"textscrub/internal/detector"
)

func TestMemory_SaveAndLoad(t *testing.T) {
	store := Memory()
	defer store.Close()

	if err := store.Save(detector.ReplacementMapping{"John Doe": "Maria Garcia"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got["John Doe"] != "Maria Garcia" {
		t.Errorf("Load = %v", got)
	}
}

func TestMemory_LoadReturnsCopy(t *testing.T) {
	store := Memory()
	defer store.Close()

	if err := store.Save(detector.ReplacementMapping{"a": "1"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	first, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	first["a"] = "mutated"
	first["b"] = "added"

	second, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if second["a"] != "1" {
		t.Error("caller mutation leaked into the store")
	}
	if _, ok := second["b"]; ok {
		t.Error("caller addition leaked into the store")
	}
}

func TestMemory_SaveMerges(t *testing.T) {
	store := Memory()
	defer store.Close()

	if err := store.Save(detector.ReplacementMapping{"a": "1"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(detector.ReplacementMapping{"b": "2"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got["a"] != "1" || got["b"] != "2" {
		t.Errorf("merged mapping = %v", got)
	}
}

func TestBolt_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.db")

	store, err := Bolt(path)
	if err != nil {
		t.Fatalf("Bolt open failed: %v", err)
	}
	if err := store.Save(detector.ReplacementMapping{
		"123-45-6789": "528-12-1234",
		"John Doe":    "Maria Garcia",
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Bolt(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got["123-45-6789"] != "528-12-1234" || got["John Doe"] != "Maria Garcia" {
		t.Errorf("persisted mapping = %v", got)
	}
}

func TestBolt_SaveNeverRemoves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.db")

	store, err := Bolt(path)
	if err != nil {
		t.Fatalf("Bolt open failed: %v", err)
	}
	defer store.Close()

	if err := store.Save(detector.ReplacementMapping{"a": "1", "b": "2"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(detector.ReplacementMapping{"c": "3"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 entries, got %d: %v", len(got), got)
	}
}

func TestOpen_PathSelectsImplementation(t *testing.T) {
	mem, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	defer mem.Close()
	if _, ok := mem.(*memoryStore); !ok {
		t.Errorf("Open(\"\") = %T, want memory store", mem)
	}

	path := filepath.Join(t.TempDir(), "mapping.db")
	persistent, err := Open(path)
	if err != nil {
		t.Fatalf("Open(path) failed: %v", err)
	}
	defer persistent.Close()
	if _, ok := persistent.(*boltStore); !ok {
		t.Errorf("Open(path) = %T, want bolt store", persistent)
	}
}
