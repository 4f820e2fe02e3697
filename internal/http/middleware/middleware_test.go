package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/seeeye/area710-booking/pkg/config"
)

func TestSessionAssignsCookie(t *testing.T) {
	cfg := config.SessionConfig{CookieName: "area710_session", TTL: time.Hour}

	var seen string
	handler := Session(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionID(r)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("handler did not receive a session ID")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "area710_session" {
		t.Fatalf("expected session cookie, got %v", cookies)
	}
	if cookies[0].Value != seen {
		t.Error("cookie value and context session ID differ")
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
}

func TestSessionReusesExistingCookie(t *testing.T) {
	cfg := config.SessionConfig{CookieName: "area710_session", TTL: time.Hour}

	var seen string
	handler := Session(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionID(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "area710_session", Value: "existing-id"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "existing-id" {
		t.Errorf("expected existing session ID, got %q", seen)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no new cookie may be issued for an existing session")
	}
}

func TestOriginCheck(t *testing.T) {
	allowed := []string{"https://area710.de"}

	handler := OriginCheck(allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		origin string
		want   int
	}{
		{"allowed origin", "https://area710.de", http.StatusOK},
		{"no origin header", "", http.StatusOK},
		{"disallowed origin", "https://evil.example", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
			if tt.want == http.StatusForbidden && rec.Body.Len() != 0 {
				t.Error("origin rejection must have an empty body")
			}
		})
	}
}

func TestOriginCheckWildcard(t *testing.T) {
	handler := OriginCheck([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("wildcard must admit any origin, got %d", rec.Code)
	}
}
