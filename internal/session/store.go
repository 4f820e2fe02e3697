// Package session provides the key-value store that holds per-session abuse
// state (CSRF token, rate-limit history). The guards depend only on the
// Store interface; the concrete backend is chosen at wiring time.
package session

import "context"

// Store is a per-session key-value store. Get returns the empty string for
// keys that were never set or have expired.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
}
