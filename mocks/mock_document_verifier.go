package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scholarlink/internal/domain"
)

// MockDocumentVerifier is a mock implementation of port.DocumentVerifier.
type MockDocumentVerifier struct {
	mock.Mock
}

func (m *MockDocumentVerifier) Verify(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationResult), args.Error(1)
}

func (m *MockDocumentVerifier) Name() string {
	args := m.Called()
	return args.String(0)
}

// MockVerificationGateway is a mock implementation of port.VerificationGateway.
type MockVerificationGateway struct {
	mock.Mock
}

func (m *MockVerificationGateway) Verify(ctx context.Context, req domain.VerificationRequest) domain.VerificationResult {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.VerificationResult)
}
