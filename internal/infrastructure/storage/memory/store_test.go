package memory

import (
	"context"
	"sync"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, ok, _ := store.Get(ctx, "token"); ok {
		t.Fatal("expected missing key")
	}
	if err := store.Set(ctx, "token", "abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if val, ok, _ := store.Get(ctx, "token"); !ok || val != "abc" {
		t.Fatalf("Get = %q, %v", val, ok)
	}
	if err := store.Delete(ctx, "token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "token"); ok {
		t.Fatal("expected deleted key")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "key", "value")
			_, _, _ = store.Get(ctx, "key")
			_ = store.Delete(ctx, "key")
		}()
	}
	wg.Wait()
}
