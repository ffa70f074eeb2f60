package service

import (
	"context"
	"errors"
	"time"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

// SetRoleInput is the DTO for choosing a role on the welcome screen.
type SetRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// SessionService tracks which role each visitor session has chosen.
type SessionService interface {
	SetRole(ctx context.Context, sessionID string, role domain.UserRole) (*domain.Session, error)
	GetRole(ctx context.Context, sessionID string) (domain.UserRole, error)
	Clear(ctx context.Context, sessionID string) error
}

type sessionService struct {
	repo port.SessionRepository
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(repo port.SessionRepository) SessionService {
	return &sessionService{repo: repo}
}

func (s *sessionService) SetRole(ctx context.Context, sessionID string, role domain.UserRole) (*domain.Session, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	session := &domain.Session{
		ID:        sessionID,
		Role:      role,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetRole returns RoleNone for sessions that never picked a role.
func (s *sessionService) GetRole(ctx context.Context, sessionID string) (domain.UserRole, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.RoleNone, nil
	}
	if err != nil {
		return domain.RoleNone, err
	}
	return session.Role, nil
}

// Clear resets the session to no role. Clearing an unknown session is not an error.
func (s *sessionService) Clear(ctx context.Context, sessionID string) error {
	err := s.repo.Delete(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}
