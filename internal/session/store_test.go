package session

import (
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()

	if _, ok := store.Get("absent"); ok {
		t.Fatalf("expected miss for unknown session")
	}

	rec := Record{SessionID: "s-1", ProfileJSON: []byte(`{"target_location":"Nairobi"}`), UpdatedAt: "2026-08-01T10:00:00Z"}
	if err := store.Put(rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok := store.Get("s-1")
	if !ok {
		t.Fatalf("expected hit")
	}
	if string(got.ProfileJSON) != string(rec.ProfileJSON) {
		t.Fatalf("profile mismatch: %s", got.ProfileJSON)
	}

	rec.ProfileJSON = []byte(`{"target_location":"Kisumu"}`)
	rec.UpdatedAt = "2026-08-02T10:00:00Z"
	if err := store.Put(rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, _ = store.Get("s-1")
	if string(got.ProfileJSON) != string(rec.ProfileJSON) {
		t.Fatalf("expected updated profile, got %s", got.ProfileJSON)
	}
	if got.UpdatedAt != "2026-08-02T10:00:00Z" {
		t.Fatalf("expected updated timestamp, got %s", got.UpdatedAt)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	exerciseStore(t, store)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	exerciseStore(t, store)
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Put(Record{SessionID: "s-2", ProfileJSON: []byte(`{}`), UpdatedAt: "2026-08-01T00:00:00Z"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if _, ok := reopened.Get("s-2"); !ok {
		t.Fatalf("expected record to survive reopen")
	}
}
