package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"scholarlink/internal/domain"
	"scholarlink/internal/handler"
	"scholarlink/internal/middleware"
	"scholarlink/mocks"
)

func TestSessionHandler_SetRole(t *testing.T) {
	svc := new(mocks.MockSessionService)
	h := handler.NewSessionHandler(svc)
	svc.On("SetRole", mock.Anything, "sess-123456", domain.RoleStudent).
		Return(&domain.Session{ID: "sess-123456", Role: domain.RoleStudent}, nil)

	c, w := jsonContext(t, http.MethodPut, "/api/v1/session/role", map[string]string{"role": "student"})
	c.Set(middleware.ContextKeySessionID, "sess-123456")
	h.SetRole(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"session_id":"sess-123456","role":"student"}}`, w.Body.String())
}

func TestSessionHandler_SetRole_Invalid(t *testing.T) {
	svc := new(mocks.MockSessionService)
	h := handler.NewSessionHandler(svc)
	svc.On("SetRole", mock.Anything, mock.Anything, domain.UserRole("admin")).Return(nil, domain.ErrInvalidRole)

	c, w := jsonContext(t, http.MethodPut, "/api/v1/session/role", map[string]string{"role": "admin"})
	c.Set(middleware.ContextKeySessionID, "sess-123456")
	h.SetRole(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ROLE", decode(t, w).Error.Code)
}

func TestSessionHandler_GetAndClear(t *testing.T) {
	svc := new(mocks.MockSessionService)
	h := handler.NewSessionHandler(svc)
	svc.On("GetRole", mock.Anything, "sess-123456").Return(domain.RoleNone, nil)
	svc.On("Clear", mock.Anything, "sess-123456").Return(nil)

	c, w := jsonContext(t, http.MethodGet, "/api/v1/session/role", nil)
	c.Set(middleware.ContextKeySessionID, "sess-123456")
	h.GetRole(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":""`)

	c, w = jsonContext(t, http.MethodDelete, "/api/v1/session/role", nil)
	c.Set(middleware.ContextKeySessionID, "sess-123456")
	h.ClearRole(c)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
