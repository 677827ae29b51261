// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package kvstore provides the named byte-blob persistence substrate.
package kvstore

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SetAndGet(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want 'v'", got)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	store := openTestStore(t)

	store.Set("k", []byte("first"))
	store.Set("k", []byte("second"))

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get = %q, want last write", got)
	}
}

func TestStore_Delete(t *testing.T) {
	store := openTestStore(t)

	store.Set("k", []byte("v"))
	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Error("Record should be gone after delete")
	}

	// Deleting again is a no-op.
	if err := store.Delete("k"); err != nil {
		t.Errorf("Delete of missing key should not error: %v", err)
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Set(KeyUserSettings, []byte(`{"userName":"Edex"}`))
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(KeyUserSettings)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != `{"userName":"Edex"}` {
		t.Errorf("Get after reopen = %q", got)
	}
}
