package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/seeeye/area710-booking/pkg/config"
	"github.com/seeeye/area710-booking/pkg/logger"
)

// Session assigns every client a stable session ID via an HttpOnly cookie.
// The ID keys the abuse state (CSRF token, rate-limit history) in the
// session store; the handlers never see the cookie itself.
func Session(cfg config.SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if c, err := r.Cookie(cfg.CookieName); err == nil && c.Value != "" {
				sessionID = c.Value
			} else {
				sessionID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), logger.SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session ID assigned by the Session middleware, or
// the empty string when the middleware did not run.
func SessionID(r *http.Request) string {
	if v := r.Context().Value(logger.SessionIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
