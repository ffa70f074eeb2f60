package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

// RegisterDonorInput is the DTO for creating a donor.
type RegisterDonorInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// SetPreferencesInput is the DTO for the donor preference form.
type SetPreferencesInput struct {
	Budget         float64 `json:"budget" binding:"gte=0"`
	GenderPref     string  `json:"gender_pref" binding:"required"`
	FamilyBgPref   string  `json:"family_bg_pref" binding:"required"`
	StudyLevelPref string  `json:"study_level_pref" binding:"required"`
	LocationPref   string  `json:"location_pref"`
}

func (in SetPreferencesInput) toDomain() (domain.DonorPreferences, error) {
	gender := domain.GenderPref(in.GenderPref)
	switch gender {
	case domain.GenderAny, domain.GenderFemale, domain.GenderMale:
	default:
		return domain.DonorPreferences{}, fmt.Errorf("%w: gender_pref %q", domain.ErrInvalidPreferences, in.GenderPref)
	}
	if !slices.Contains(domain.FamilyBackgrounds, in.FamilyBgPref) {
		return domain.DonorPreferences{}, fmt.Errorf("%w: family_bg_pref %q", domain.ErrInvalidPreferences, in.FamilyBgPref)
	}
	if !slices.Contains(domain.StudyLevels, in.StudyLevelPref) {
		return domain.DonorPreferences{}, fmt.Errorf("%w: study_level_pref %q", domain.ErrInvalidPreferences, in.StudyLevelPref)
	}
	if in.Budget < 0 {
		return domain.DonorPreferences{}, fmt.Errorf("%w: budget must not be negative", domain.ErrInvalidPreferences)
	}
	return domain.DonorPreferences{
		Budget:         in.Budget,
		GenderPref:     gender,
		FamilyBgPref:   in.FamilyBgPref,
		StudyLevelPref: in.StudyLevelPref,
		LocationPref:   strings.TrimSpace(in.LocationPref),
	}, nil
}

// DonorService defines the donor management contract.
type DonorService interface {
	Register(ctx context.Context, input RegisterDonorInput) (*domain.Donor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Donor, error)
	SetPreferences(ctx context.Context, id uuid.UUID, input SetPreferencesInput) (*domain.DonorPreferences, error)
	GetPreferences(ctx context.Context, id uuid.UUID) (*domain.DonorPreferences, error)
	Matches(ctx context.Context, id uuid.UUID) ([]domain.Student, error)
}

type donorService struct {
	repo    port.DonorRepository
	matcher Matcher
	links   documentLinks
}

// NewDonorService creates a new DonorService implementation. storage builds
// document links on matched students and may be nil.
func NewDonorService(repo port.DonorRepository, matcher Matcher, storage port.DocumentStorage) DonorService {
	return &donorService{repo: repo, matcher: matcher, links: documentLinks{storage: storage}}
}

func (s *donorService) Register(ctx context.Context, input RegisterDonorInput) (*domain.Donor, error) {
	donor := &domain.Donor{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(input.Name),
		Email: strings.ToLower(strings.TrimSpace(input.Email)),
	}
	if err := s.repo.Create(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}

func (s *donorService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Donor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *donorService) SetPreferences(ctx context.Context, id uuid.UUID, input SetPreferencesInput) (*domain.DonorPreferences, error) {
	prefs, err := input.toDomain()
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetPreferences(ctx, id, prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (s *donorService) GetPreferences(ctx context.Context, id uuid.UUID) (*domain.DonorPreferences, error) {
	donor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donor.Preferences == nil {
		return nil, domain.ErrPreferencesNotSet
	}
	return donor.Preferences, nil
}

// Matches returns the students shown to the donor. Preferences must be saved first.
func (s *donorService) Matches(ctx context.Context, id uuid.UUID) ([]domain.Student, error) {
	prefs, err := s.GetPreferences(ctx, id)
	if err != nil {
		return nil, err
	}
	students, err := s.matcher.Match(ctx, *prefs)
	if err != nil {
		return nil, err
	}
	s.links.students(ctx, students)
	return students, nil
}
