package subs

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.json")

	r, err := NewFileRepository(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Put(Subscription{ChatID: "42", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := r.Put(Subscription{ChatID: "7", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("put: %v", err)
	}

	if _, ok, _ := r.Get("42"); !ok {
		t.Error("expected chat 42 to be subscribed")
	}

	// Reload from disk.
	r2, err := NewFileRepository(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	list, err := r2.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 subscriptions after reload, got %d", len(list))
	}
	if list[0].ChatID != "42" || list[1].ChatID != "7" {
		t.Errorf("unexpected order: %s, %s", list[0].ChatID, list[1].ChatID)
	}

	if err := r2.Delete("42"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := r2.Get("42"); ok {
		t.Error("chat 42 should be gone")
	}
}

func TestMemoryRepository(t *testing.T) {
	r := NewMemoryRepository()
	if err := r.Put(Subscription{ChatID: "1"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	list, _ := r.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 subscription, got %d", len(list))
	}
	if err := r.Delete("1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if list, _ = r.List(); len(list) != 0 {
		t.Errorf("expected empty list, got %d", len(list))
	}
}
