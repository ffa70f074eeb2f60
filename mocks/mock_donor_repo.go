package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"scholarlink/internal/domain"
)

// MockDonorRepo is a mock implementation of port.DonorRepository.
type MockDonorRepo struct {
	mock.Mock
}

func (m *MockDonorRepo) Create(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}

func (m *MockDonorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorRepo) SetPreferences(ctx context.Context, donorID uuid.UUID, prefs domain.DonorPreferences) error {
	args := m.Called(ctx, donorID, prefs)
	return args.Error(0)
}

// MockSessionRepo is a mock implementation of port.SessionRepository.
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepo) Put(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
