package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	if v, err := s.Get(ctx, "sess-1", "key"); err != nil || v != "" {
		t.Fatalf("expected empty for unknown session, got %q err=%v", v, err)
	}

	if err := s.Set(ctx, "sess-1", "key", "value"); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Get(ctx, "sess-1", "key"); v != "value" {
		t.Errorf("expected value, got %q", v)
	}

	// Keys are scoped to their session.
	if v, _ := s.Get(ctx, "sess-2", "key"); v != "" {
		t.Errorf("expected empty for other session, got %q", v)
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	s.Set(ctx, "sess-1", "key", "old")
	s.Set(ctx, "sess-1", "key", "new")
	if v, _ := s.Get(ctx, "sess-1", "key"); v != "new" {
		t.Errorf("expected new, got %q", v)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(30 * time.Minute)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	s.Set(ctx, "sess-1", "key", "value")

	now = now.Add(29 * time.Minute)
	if v, _ := s.Get(ctx, "sess-1", "key"); v != "value" {
		t.Fatalf("entry expired too early, got %q", v)
	}

	now = now.Add(2 * time.Minute)
	if v, _ := s.Get(ctx, "sess-1", "key"); v != "" {
		t.Fatalf("expected expired entry to be gone, got %q", v)
	}

	// A write after expiry starts a fresh session.
	s.Set(ctx, "sess-1", "other", "fresh")
	if v, _ := s.Get(ctx, "sess-1", "key"); v != "" {
		t.Errorf("old key must not survive expiry, got %q", v)
	}
	if v, _ := s.Get(ctx, "sess-1", "other"); v != "fresh" {
		t.Errorf("expected fresh, got %q", v)
	}
}

func TestMemoryStoreWriteRefreshesTTL(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(30 * time.Minute)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	s.Set(ctx, "sess-1", "key", "value")
	now = now.Add(20 * time.Minute)
	s.Set(ctx, "sess-1", "key2", "value2")

	now = now.Add(20 * time.Minute) // 40m after first write, 20m after second
	if v, _ := s.Get(ctx, "sess-1", "key"); v != "value" {
		t.Errorf("TTL should be refreshed on write, got %q", v)
	}
}
