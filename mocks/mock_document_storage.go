package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scholarlink/internal/port"
)

// MockDocumentStorage is a mock implementation of port.DocumentStorage.
type MockDocumentStorage struct {
	mock.Mock
}

func (m *MockDocumentStorage) Put(ctx context.Context, input port.PutObjectInput) (*port.StoredObject, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.StoredObject), args.Error(1)
}

func (m *MockDocumentStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockDocumentStorage) URL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
