package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"scholarlink/internal/handler"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		db     handler.Pinger
		status int
	}{
		{"memory store", nil, http.StatusOK},
		{"database up", fakePinger{}, http.StatusOK},
		{"database down", fakePinger{err: errors.New("refused")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHealthHandler(tt.db, "simulated")
			c, w := jsonContext(t, http.MethodGet, "/readyz", nil)

			h.Readiness(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(nil, "gemini")
	c, w := jsonContext(t, http.MethodGet, "/healthz", nil)

	h.Liveness(c)

	assert.JSONEq(t, `{"status":"ok","verifier":"gemini"}`, w.Body.String())
}
