package guard

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/seeeye/area710-booking/internal/session"
)

func newTestStore() *session.MemoryStore {
	return session.NewMemoryStore(time.Hour)
}

func TestTokenIsIdempotentPerSession(t *testing.T) {
	g := NewCSRFGuard(newTestStore())
	ctx := context.Background()

	first, err := g.Token(ctx, "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Token(ctx, "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("token changed between calls: %q vs %q", first, second)
	}
}

func TestTokenShape(t *testing.T) {
	g := NewCSRFGuard(newTestStore())

	token, err := g.Token(context.Background(), "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := hex.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
	if len(raw) != csrfTokenBytes {
		t.Errorf("expected %d bytes of entropy, got %d", csrfTokenBytes, len(raw))
	}
}

func TestTokensDifferAcrossSessions(t *testing.T) {
	g := NewCSRFGuard(newTestStore())
	ctx := context.Background()

	a, _ := g.Token(ctx, "sess-a")
	b, _ := g.Token(ctx, "sess-b")
	if a == b {
		t.Error("different sessions must not share a token")
	}
}

func TestVerify(t *testing.T) {
	g := NewCSRFGuard(newTestStore())
	ctx := context.Background()

	token, err := g.Token(ctx, "sess-1")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		sessionID string
		submitted string
		want      bool
	}{
		{"matching token", "sess-1", token, true},
		{"wrong token", "sess-1", "deadbeef", false},
		{"empty token", "sess-1", "", false},
		{"session without token", "sess-2", token, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Verify(ctx, tt.sessionID, tt.submitted)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Verify = %v, want %v", got, tt.want)
			}
		})
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string, string) (string, error) {
	return "", errors.New("store down")
}

func (failingStore) Set(context.Context, string, string, string) error {
	return errors.New("store down")
}

func TestVerifyStoreFailure(t *testing.T) {
	g := NewCSRFGuard(failingStore{})

	ok, err := g.Verify(context.Background(), "sess-1", "whatever")
	if err == nil {
		t.Fatal("expected error")
	}
	if ok {
		t.Error("a store failure must never verify")
	}
}
