package session

import (
	"context"
	"sync"

	"stayhub/models"
)

// MemoryStore keeps sessions in process memory. Conversations are lost on
// restart; suitable for tests and single-instance deployments without Redis.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]*models.Session
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*models.Session)}
}

// Get loads the session for a user, or a fresh one when none is stored.
func (s *MemoryStore) Get(ctx context.Context, userID int64) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		copied := *sess
		return &copied, nil
	}
	return &models.Session{UserID: userID}, nil
}

// Save stores the session.
func (s *MemoryStore) Save(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sessions[sess.UserID] = &copied
	return nil
}

// Clear removes the stored session.
func (s *MemoryStore) Clear(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}
