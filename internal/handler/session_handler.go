package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarlink/internal/domain"
	"scholarlink/internal/middleware"
	"scholarlink/internal/service"
)

// SessionHandler manages the role a visitor has picked.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// SetRole handles PUT /api/v1/session/role
// @Summary Choose a role
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID; generated when absent"
// @Param request body SetRoleRequest true "Role"
// @Success 200 {object} Response{data=RoleResponse} "Role saved"
// @Failure 400 {object} ErrorResponseBody "Invalid role"
// @Router /session/role [put]
func (h *SessionHandler) SetRole(c *gin.Context) {
	var input service.SetRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sessionID := middleware.GetSessionID(c)
	session, err := h.sessionService.SetRole(c.Request.Context(), sessionID, domain.UserRole(input.Role))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, RoleResponse{SessionID: sessionID, Role: session.Role})
}

// GetRole handles GET /api/v1/session/role
// @Summary Get the current role
// @Description An empty role means the visitor has not chosen yet.
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} Response{data=RoleResponse} "Current role"
// @Router /session/role [get]
func (h *SessionHandler) GetRole(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	role, err := h.sessionService.GetRole(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, RoleResponse{SessionID: sessionID, Role: role})
}

// ClearRole handles DELETE /api/v1/session/role
// @Summary Leave the current role
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} Response{data=RoleResponse} "Role cleared"
// @Router /session/role [delete]
func (h *SessionHandler) ClearRole(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if err := h.sessionService.Clear(c.Request.Context(), sessionID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, RoleResponse{SessionID: sessionID, Role: domain.RoleNone})
}
