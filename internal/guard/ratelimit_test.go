package guard

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	rl := NewRateLimiterWithClock(newTestStore(), 60*time.Second, 3, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := rl.Allow(ctx, "sess-1")
		if err != nil {
			t.Fatal(err)
		}
		if !allowed {
			t.Fatalf("request %d should be admitted", i+1)
		}
		now = now.Add(time.Second)
	}

	allowed, err := rl.Allow(ctx, "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Fatal("4th request within the window must be rejected")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	now := start
	clock := func() time.Time { return now }
	rl := NewRateLimiterWithClock(newTestStore(), 60*time.Second, 3, clock)
	ctx := context.Background()

	// Three requests at t=0s, 10s, 20s fill the window.
	for i := 0; i < 3; i++ {
		if allowed, _ := rl.Allow(ctx, "sess-1"); !allowed {
			t.Fatalf("request %d should be admitted", i+1)
		}
		now = now.Add(10 * time.Second)
	}

	now = start.Add(30 * time.Second)
	if allowed, _ := rl.Allow(ctx, "sess-1"); allowed {
		t.Fatal("4th request at 30s must be rejected")
	}

	// 61s after the first request, that one has left the window. The
	// window slides; it does not reset as a whole.
	now = start.Add(61 * time.Second)
	if allowed, _ := rl.Allow(ctx, "sess-1"); !allowed {
		t.Fatal("request after the first timestamp expired must be admitted")
	}

	// Requests from 10s and 20s are still in the window, plus the one
	// just recorded: the limit is reached again.
	now = start.Add(62 * time.Second)
	if allowed, _ := rl.Allow(ctx, "sess-1"); allowed {
		t.Fatal("window must still count the remaining timestamps")
	}
}

func TestRejectedAttemptIsNotRecorded(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	now := start
	clock := func() time.Time { return now }
	rl := NewRateLimiterWithClock(newTestStore(), 60*time.Second, 3, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rl.Allow(ctx, "sess-1")
	}

	// Hammering while blocked must not extend the block.
	for i := 0; i < 10; i++ {
		now = now.Add(time.Second)
		if allowed, _ := rl.Allow(ctx, "sess-1"); allowed {
			t.Fatal("request inside the window must be rejected")
		}
	}

	now = start.Add(61 * time.Second)
	if allowed, _ := rl.Allow(ctx, "sess-1"); !allowed {
		t.Fatal("rejected attempts must not have been recorded")
	}
}

func TestRateLimiterSessionsAreIndependent(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithClock(newTestStore(), 60*time.Second, 3, func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rl.Allow(ctx, "sess-1")
	}
	if allowed, _ := rl.Allow(ctx, "sess-1"); allowed {
		t.Fatal("sess-1 should be blocked")
	}
	if allowed, _ := rl.Allow(ctx, "sess-2"); !allowed {
		t.Fatal("sess-2 must not be affected by sess-1's history")
	}
}

func TestRateLimiterCorruptStateResets(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	store.Set(ctx, "sess-1", "request_log", "not json")

	rl := NewRateLimiter(store, 60*time.Second, 3)
	if allowed, err := rl.Allow(ctx, "sess-1"); err != nil || !allowed {
		t.Fatalf("corrupt state should be discarded, got allowed=%v err=%v", allowed, err)
	}
}
