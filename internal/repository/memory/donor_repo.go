package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

type donorRepository struct {
	mu     sync.RWMutex
	donors map[uuid.UUID]*domain.Donor
	emails map[string]uuid.UUID
}

// NewDonorRepo creates an empty in-memory DonorRepository.
func NewDonorRepo() port.DonorRepository {
	return &donorRepository{
		donors: make(map[uuid.UUID]*domain.Donor),
		emails: make(map[string]uuid.UUID),
	}
}

func cloneDonor(d *domain.Donor) *domain.Donor {
	out := *d
	if d.Preferences != nil {
		prefs := *d.Preferences
		out.Preferences = &prefs
	}
	return &out
}

func (r *donorRepository) Create(_ context.Context, donor *domain.Donor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.emails[donor.Email]; taken {
		return domain.ErrDuplicateEmail
	}
	if donor.ID == uuid.Nil {
		donor.ID = uuid.New()
	}
	now := time.Now().UTC()
	donor.CreatedAt = now
	donor.UpdatedAt = now

	r.donors[donor.ID] = cloneDonor(donor)
	r.emails[donor.Email] = donor.ID
	return nil
}

func (r *donorRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Donor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.donors[id]
	if !ok {
		return nil, domain.ErrDonorNotFound
	}
	return cloneDonor(d), nil
}

func (r *donorRepository) SetPreferences(_ context.Context, donorID uuid.UUID, prefs domain.DonorPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.donors[donorID]
	if !ok {
		return domain.ErrDonorNotFound
	}
	d.Preferences = &prefs
	d.UpdatedAt = time.Now().UTC()
	return nil
}
