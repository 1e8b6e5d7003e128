// Package session provides the in-memory implementation of the session store.
//
// Session state in this service is a single flag-and-name pair per client
// context, so a mutex-guarded map is the whole store. A janitor goroutine
// evicts expired sessions between requests.
package session

import (
	"context"
	"sync"
	"time"

	"secureauth/internal/domain/entity"
	"secureauth/internal/domain/service"
)

// MemoryStore is a thread-safe in-memory implementation of service.SessionStore.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session // keyed by session ID
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*entity.Session),
		now:      time.Now,
	}
}

// Put stores the session under its ID, replacing any existing entry.
func (s *MemoryStore) Put(_ context.Context, sess *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *sess
	s.sessions[sess.ID] = &clone

	return nil
}

// Get returns the session for the given id. Expired sessions are treated as
// absent and removed lazily.
func (s *MemoryStore) Get(_ context.Context, id string) (*entity.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, service.ErrSessionNotFound
	}

	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()

		return nil, service.ErrSessionNotFound
	}

	clone := *sess

	return &clone, nil
}

// Delete removes the session for the given id. Idempotent.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}

// Janitor periodically evicts expired sessions until ctx is cancelled.
// Intended to run as a background goroutine under the fx lifecycle.
func (s *MemoryStore) Janitor(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemoryStore) evictExpired() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
		}
	}
}
