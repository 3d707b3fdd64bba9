package memory

import (
	"context"
	"sync"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// SessionStore is the memory-only session snapshot store, used in tests and
// when running without Redis. Nothing survives the process.
type SessionStore struct {
	mu   sync.Mutex
	sess domain.Session
	set  bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Load(_ context.Context) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return domain.Anonymous(), nil
	}
	return s.sess, nil
}

func (s *SessionStore) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	s.set = true
	return nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = domain.Anonymous()
	s.set = true
	return nil
}
