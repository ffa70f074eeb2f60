package memory

import (
	"context"
	"sync"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionRepo creates an empty in-memory SessionRepository.
func NewSessionRepo() port.SessionRepository {
	return &sessionRepository{sessions: make(map[string]domain.Session)}
}

func (r *sessionRepository) Get(_ context.Context, sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *sessionRepository) Put(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	r.sessions[session.ID] = *session
	r.mu.Unlock()
	return nil
}

func (r *sessionRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}
