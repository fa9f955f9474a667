package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports the health of one backing dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// NamedChecker pairs a checker with the name reported in the readiness body.
type NamedChecker struct {
	Name    string
	Checker HealthChecker
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checkers []NamedChecker
	timeout  time.Duration
}

// NewHealthHandler wires the handler.  Checkers may be empty for offline
// deployments backed by the in-memory rule store.
func NewHealthHandler(checkers ...NamedChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers, timeout: 2 * time.Second}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness pings every registered dependency.  Any failure yields a 503
// with the per-dependency breakdown.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	checks := map[string]string{}
	healthy := true
	for _, nc := range h.checkers {
		if err := nc.Checker.Ping(ctx); err != nil {
			checks[nc.Name] = err.Error()
			healthy = false
			continue
		}
		checks[nc.Name] = "ok"
	}

	status := http.StatusOK
	state := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "checks": checks})
}
