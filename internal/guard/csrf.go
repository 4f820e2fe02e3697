// Package guard implements the anti-abuse checks that run before a booking
// request reaches validation: per-session rate limiting and CSRF token
// verification.
package guard

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/seeeye/area710-booking/internal/session"
)

const csrfTokenKey = "csrf_token"

// csrfTokenBytes is the entropy of a freshly issued token; hex-encoded it
// yields a 64-character opaque string.
const csrfTokenBytes = 32

// CSRFGuard issues one token per session and verifies the token echoed back
// with a booking submission.
type CSRFGuard struct {
	store session.Store
}

func NewCSRFGuard(store session.Store) *CSRFGuard {
	return &CSRFGuard{store: store}
}

// Token returns the session's CSRF token, generating it on first use. The
// token is stable for the lifetime of the session, so repeated calls return
// the same value.
func (g *CSRFGuard) Token(ctx context.Context, sessionID string) (string, error) {
	existing, err := g.store.Get(ctx, sessionID, csrfTokenKey)
	if err != nil {
		return "", fmt.Errorf("load csrf token: %w", err)
	}
	if existing != "" {
		return existing, nil
	}

	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate csrf token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := g.store.Set(ctx, sessionID, csrfTokenKey, token); err != nil {
		return "", fmt.Errorf("store csrf token: %w", err)
	}
	return token, nil
}

// Verify reports whether submitted matches the session's stored token. A
// session without a token, or an empty submission, never verifies. The
// comparison is constant-time.
func (g *CSRFGuard) Verify(ctx context.Context, sessionID, submitted string) (bool, error) {
	stored, err := g.store.Get(ctx, sessionID, csrfTokenKey)
	if err != nil {
		return false, fmt.Errorf("load csrf token: %w", err)
	}
	if stored == "" || submitted == "" {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1, nil
}
