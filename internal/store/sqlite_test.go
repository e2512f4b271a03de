package store

import (
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteKV() error = %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKV_SetGet(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("history", `[{"id":"a1"}]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := kv.Get("history")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if got != `[{"id":"a1"}]` {
		t.Errorf("Get() = %q, want %q", got, `[{"id":"a1"}]`)
	}
}

func TestSQLiteKV_GetMissingKey(t *testing.T) {
	kv := openTestKV(t)

	got, ok, err := kv.Get("nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Errorf("Get() = %q, ok = true, want miss", got)
	}
}

func TestSQLiteKV_SetOverwrites(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("k", "old"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := kv.Set("k", "new"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := kv.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v", got, ok, err)
	}
	if got != "new" {
		t.Errorf("Get() after overwrite = %q, want %q", got, "new")
	}
}

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("NewSQLiteKV() error = %v", err)
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	kv, err = NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("NewSQLiteKV() reopen error = %v", err)
	}
	defer kv.Close()

	got, ok, err := kv.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get() after reopen = %q, %v, %v", got, ok, err)
	}
	if got != "v" {
		t.Errorf("Get() after reopen = %q, want %q", got, "v")
	}
}
