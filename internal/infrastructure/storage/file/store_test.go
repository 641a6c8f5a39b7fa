package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_SetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	ctx := context.Background()

	if _, ok, _ := store.Get(ctx, "token"); ok {
		t.Fatal("expected missing key")
	}

	if err := store.Set(ctx, "token", "abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := store.Get(ctx, "token")
	if err != nil || !ok || val != "abc" {
		t.Fatalf("Get = %q, %v, %v", val, ok, err)
	}

	if err := store.Delete(ctx, "token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "token"); ok {
		t.Fatal("expected deleted key")
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := first.Set(ctx, "username", "bob"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore (reopen): %v", err)
	}
	val, ok, err := second.Get(ctx, "username")
	if err != nil || !ok || val != "bob" {
		t.Fatalf("Get after reopen = %q, %v, %v", val, ok, err)
	}
}

func TestStore_CorruptDocumentTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{{{ not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, ok, err := store.Get(context.Background(), "token"); err != nil || ok {
		t.Fatalf("corrupt document must read as empty, got ok=%v err=%v", ok, err)
	}
}

func TestStore_DeleteMissingKeyIsNoop(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("Delete of missing key: %v", err)
	}
}
