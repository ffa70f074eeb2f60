package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scholarlink/internal/domain"
	"scholarlink/internal/service"
	"scholarlink/mocks"
)

func TestSessionService_SetRole(t *testing.T) {
	repo := new(mocks.MockSessionRepo)
	repo.On("Put", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.ID == "sess-1" && s.Role == domain.RoleDonor
	})).Return(nil)
	svc := service.NewSessionService(repo)

	session, err := svc.SetRole(context.Background(), "sess-1", domain.RoleDonor)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleDonor, session.Role)
	assert.False(t, session.UpdatedAt.IsZero())
}

func TestSessionService_SetRole_Invalid(t *testing.T) {
	repo := new(mocks.MockSessionRepo)
	svc := service.NewSessionService(repo)

	_, err := svc.SetRole(context.Background(), "sess-1", domain.UserRole("admin"))

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestSessionService_GetRole_UnknownSessionHasNoRole(t *testing.T) {
	repo := new(mocks.MockSessionRepo)
	repo.On("Get", mock.Anything, "fresh").Return(nil, domain.ErrNotFound)
	svc := service.NewSessionService(repo)

	role, err := svc.GetRole(context.Background(), "fresh")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleNone, role)
}

func TestSessionService_Clear_UnknownSession(t *testing.T) {
	repo := new(mocks.MockSessionRepo)
	repo.On("Delete", mock.Anything, "fresh").Return(domain.ErrNotFound)
	svc := service.NewSessionService(repo)

	assert.NoError(t, svc.Clear(context.Background(), "fresh"))
}
