package middleware

import (
	"net/http"

	"github.com/seeeye/area710-booking/pkg/logger"
)

// OriginCheck rejects cross-origin requests from origins outside the
// allowlist with a bare 403 before any other processing. Requests without an
// Origin header (same-origin, curl, monitoring) pass through; the CORS layer
// still decides which origins get response headers.
func OriginCheck(allowed []string) func(http.Handler) http.Handler {
	allowAll := false
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			allowAll = true
		}
		set[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && !allowAll {
				if _, ok := set[origin]; !ok {
					logger.WarnContext(r.Context(), "Rejected disallowed origin", "origin", origin)
					w.WriteHeader(http.StatusForbidden)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
