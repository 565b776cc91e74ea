// Package memory provides in-memory session adapters for tests and local runs.
package memory

import (
	"context"
	"sync"

	"foodtrace/contexts/identity-access/session-service/domain/entities"
)

type SessionStore struct {
	mu      sync.Mutex
	session entities.Session
	present bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Load(ctx context.Context) (entities.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.present
}

func (s *SessionStore) Save(ctx context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.present = true
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = entities.Session{}
	s.present = false
	return nil
}
