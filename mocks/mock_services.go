package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"scholarlink/internal/domain"
	"scholarlink/internal/export"
	"scholarlink/internal/service"
)

// MockStudentService is a mock implementation of service.StudentService.
type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) Register(ctx context.Context, input service.RegisterStudentInput) (*domain.Student, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentService) List(ctx context.Context, offset, limit int) ([]domain.Student, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Student), args.Int(1), args.Error(2)
}

func (m *MockStudentService) Update(ctx context.Context, id uuid.UUID, input service.UpdateStudentInput) (*domain.Student, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentService) SubmitMarksMemo(ctx context.Context, id uuid.UUID, input service.DocumentUpload) (*service.MarksMemoOutcome, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MarksMemoOutcome), args.Error(1)
}

func (m *MockStudentService) Export(ctx context.Context, w io.Writer, format export.Format) error {
	args := m.Called(ctx, w, format)
	return args.Error(0)
}

// MockDonorService is a mock implementation of service.DonorService.
type MockDonorService struct {
	mock.Mock
}

func (m *MockDonorService) Register(ctx context.Context, input service.RegisterDonorInput) (*domain.Donor, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorService) SetPreferences(ctx context.Context, id uuid.UUID, input service.SetPreferencesInput) (*domain.DonorPreferences, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonorPreferences), args.Error(1)
}

func (m *MockDonorService) GetPreferences(ctx context.Context, id uuid.UUID) (*domain.DonorPreferences, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonorPreferences), args.Error(1)
}

func (m *MockDonorService) Matches(ctx context.Context, id uuid.UUID) ([]domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

// MockSessionService is a mock implementation of service.SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) SetRole(ctx context.Context, sessionID string, role domain.UserRole) (*domain.Session, error) {
	args := m.Called(ctx, sessionID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) GetRole(ctx context.Context, sessionID string) (domain.UserRole, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.UserRole), args.Error(1)
}

func (m *MockSessionService) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockVerificationService is a mock implementation of service.VerificationService.
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) Verify(ctx context.Context, input service.DocumentUpload) (*domain.VerificationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationResult), args.Error(1)
}

func (m *MockVerificationService) Provider() string {
	args := m.Called()
	return args.String(0)
}
