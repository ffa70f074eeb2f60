package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db       Pinger
	provider string
}

// NewHealthHandler creates a new HealthHandler. db may be nil when state is kept in memory.
// provider names the active verification strategy.
func NewHealthHandler(db Pinger, provider string) *HealthHandler {
	return &HealthHandler{db: db, provider: provider}
}

// Liveness handles GET /healthz
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Verifier: h.provider})
}

// Readiness handles GET /readyz
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: "database not reachable"})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Verifier: h.provider})
}
