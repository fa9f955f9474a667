package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serveHealth(h *HealthHandler, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLivenessAlwaysOK(t *testing.T) {
	rec := serveHealth(NewHealthHandler(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadinessAllHealthy(t *testing.T) {
	handler := NewHealthHandler(
		NamedChecker{Name: "postgres", Checker: pingFunc(func(context.Context) error { return nil })},
		NamedChecker{Name: "redis", Checker: pingFunc(func(context.Context) error { return nil })},
	)

	rec := serveHealth(handler, "/readyz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.Status)
	assert.Equal(t, "ok", body.Checks["postgres"])
}

func TestReadinessDegraded(t *testing.T) {
	handler := NewHealthHandler(
		NamedChecker{Name: "postgres", Checker: pingFunc(func(context.Context) error { return nil })},
		NamedChecker{Name: "redis", Checker: pingFunc(func(context.Context) error {
			return errors.New(errors.ErrCodeServiceUnavailable, "connection refused")
		})},
	)

	rec := serveHealth(handler, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "ok", body.Checks["postgres"])
	assert.Contains(t, body.Checks["redis"], "connection refused")
}
