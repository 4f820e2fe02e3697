package guard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/seeeye/area710-booking/internal/session"
)

const requestLogKey = "request_log"

// RateLimiter admits at most limit requests per session within a sliding
// window. Request timestamps live in the session store so the limit holds
// across instances when a shared store is configured.
type RateLimiter struct {
	store  session.Store
	window time.Duration
	limit  int
	now    func() time.Time
}

func NewRateLimiter(store session.Store, window time.Duration, limit int) *RateLimiter {
	return &RateLimiter{
		store:  store,
		window: window,
		limit:  limit,
		now:    time.Now,
	}
}

// NewRateLimiterWithClock is like NewRateLimiter with an injected clock.
func NewRateLimiterWithClock(store session.Store, window time.Duration, limit int, now func() time.Time) *RateLimiter {
	rl := NewRateLimiter(store, window, limit)
	rl.now = now
	return rl
}

// Allow prunes timestamps outside the window, then either records the
// current request and admits it, or rejects without recording when the
// session is already at the limit. Rejected attempts do not extend the
// window.
func (rl *RateLimiter) Allow(ctx context.Context, sessionID string) (bool, error) {
	raw, err := rl.store.Get(ctx, sessionID, requestLogKey)
	if err != nil {
		return false, fmt.Errorf("load request log: %w", err)
	}

	var stamps []int64
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &stamps); err != nil {
			// Corrupt state is discarded rather than locking the session out.
			stamps = nil
		}
	}

	now := rl.now()
	cutoff := now.Add(-rl.window).UnixMilli()
	recent := stamps[:0]
	for _, ts := range stamps {
		if ts > cutoff {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= rl.limit {
		return false, nil
	}

	recent = append(recent, now.UnixMilli())
	encoded, err := json.Marshal(recent)
	if err != nil {
		return false, fmt.Errorf("encode request log: %w", err)
	}
	if err := rl.store.Set(ctx, sessionID, requestLogKey, string(encoded)); err != nil {
		return false, fmt.Errorf("store request log: %w", err)
	}
	return true, nil
}
