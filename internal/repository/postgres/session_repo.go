package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

type sessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo creates a new PostgreSQL-backed SessionRepository.
func NewSessionRepo(db *sqlx.DB) port.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	var session domain.Session
	err := r.db.GetContext(ctx, &session, "SELECT id, role, updated_at FROM sessions WHERE id = $1", sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sessionRepo.Get: %w", err)
	}
	return &session, nil
}

func (r *sessionRepo) Put(ctx context.Context, session *domain.Session) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO sessions (id, role, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`,
		session.ID, string(session.Role), session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sessionRepo.Put: %w", err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = $1", sessionID)
	if err != nil {
		return fmt.Errorf("sessionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
