package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

type donorRepo struct {
	db *sqlx.DB
}

// NewDonorRepo creates a new PostgreSQL-backed DonorRepository.
func NewDonorRepo(db *sqlx.DB) port.DonorRepository {
	return &donorRepo{db: db}
}

// donorRow flattens a donor and its optional preferences into one row.
type donorRow struct {
	domain.Donor
	domain.DonorPreferences
	HasPreferences bool `db:"has_preferences"`
}

func (r *donorRepo) Create(ctx context.Context, donor *domain.Donor) error {
	if donor.ID == uuid.Nil {
		donor.ID = uuid.New()
	}
	now := time.Now().UTC()
	donor.CreatedAt = now
	donor.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO donors (id, name, email, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		donor.ID, donor.Name, donor.Email, donor.CreatedAt, donor.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "email") {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("donorRepo.Create: %w", err)
	}
	return nil
}

func (r *donorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Donor, error) {
	var row donorRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, email, created_at, updated_at, has_preferences,
		budget, gender_pref, family_bg_pref, study_level_pref, location_pref
		FROM donors WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, fmt.Errorf("donorRepo.GetByID: %w", err)
	}

	donor := row.Donor
	if row.HasPreferences {
		prefs := row.DonorPreferences
		donor.Preferences = &prefs
	}
	return &donor, nil
}

func (r *donorRepo) SetPreferences(ctx context.Context, donorID uuid.UUID, prefs domain.DonorPreferences) error {
	result, err := r.db.ExecContext(ctx, `UPDATE donors SET has_preferences = TRUE, budget = $1,
		gender_pref = $2, family_bg_pref = $3, study_level_pref = $4, location_pref = $5, updated_at = $6
		WHERE id = $7`,
		prefs.Budget, string(prefs.GenderPref), prefs.FamilyBgPref, prefs.StudyLevelPref, prefs.LocationPref,
		time.Now().UTC(), donorID)
	if err != nil {
		return fmt.Errorf("donorRepo.SetPreferences: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDonorNotFound
	}
	return nil
}
