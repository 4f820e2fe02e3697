package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	values    map[string]string
	expiresAt time.Time
}

// MemoryStore is an in-process Store for development and tests. Sessions
// expire ttl after their last write; expired entries are dropped lazily on
// access.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return "", nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return "", nil
	}
	return entry.values[key], nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok || s.now().After(entry.expiresAt) {
		entry = &memoryEntry{values: make(map[string]string)}
		s.sessions[sessionID] = entry
	}
	entry.values[key] = value
	entry.expiresAt = s.now().Add(s.ttl)
	return nil
}
