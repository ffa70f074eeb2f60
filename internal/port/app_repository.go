package port

import (
	"context"

	"github.com/google/uuid"

	"scholarlink/internal/domain"
)

// StudentRepository defines the contract for student persistence.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	List(ctx context.Context, offset, limit int) ([]domain.Student, int, error)
	ListVerified(ctx context.Context) ([]domain.Student, error)
	Update(ctx context.Context, student *domain.Student) error
	// MarkVerified sets is_verified and percentage without touching the profile.
	MarkVerified(ctx context.Context, id uuid.UUID, percentage float64) error
	AddDocument(ctx context.Context, doc *domain.StudentDocument) error
}

// DonorRepository defines the contract for donor and preference persistence.
type DonorRepository interface {
	Create(ctx context.Context, donor *domain.Donor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Donor, error)
	SetPreferences(ctx context.Context, donorID uuid.UUID, prefs domain.DonorPreferences) error
}

// SessionRepository stores the active role per visitor session.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Put(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, sessionID string) error
}
