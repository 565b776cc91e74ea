package bboltstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"foodtrace/internal/platform/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSetGetDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an absent key, got %v", err)
	}

	if err := store.Set(ctx, "session/current", `{"role":"farmer"}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, err := store.Get(ctx, "session/current")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != `{"role":"farmer"}` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := store.Delete(ctx, "session/current"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "session/current"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteAbsentKeyIsIdempotent(t *testing.T) {
	store := openTestStore(t)
	if err := store.Delete(context.Background(), "never-written"); err != nil {
		t.Fatalf("deleting an absent key must succeed, got %v", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "persist.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := store.Set(ctx, "directory/participants", "[]"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	value, err := reopened.Get(ctx, "directory/participants")
	if err != nil || value != "[]" {
		t.Fatalf("value did not survive reopen: %q err %v", value, err)
	}
}
