// Package http assembles the gin route tree and the HTTP server that
// serves it.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/interfaces/http/handlers"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and middleware dependencies for the
// complete route tree.
type RouterConfig struct {
	ValidationHandler  *handlers.ValidationHandler
	PlaybookHandler    *handlers.PlaybookHandler
	TerminologyHandler *handlers.TerminologyHandler
	MarketHandler      *handlers.MarketHandler
	HealthHandler      *handlers.HealthHandler

	// MetricsHandler serves GET /metrics; nil disables the endpoint.
	MetricsHandler http.Handler
	// MetricsRecorder instruments served requests; nil disables it.
	MetricsRecorder middleware.HTTPMetricsRecorder

	CORS   middleware.CORSConfig
	Logger logging.Logger
	Mode   string // gin mode: "debug" | "release" | "test"
}

// NewRouter constructs the complete route tree.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNopLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS))
	if cfg.MetricsRecorder != nil {
		r.Use(middleware.Metrics(cfg.MetricsRecorder))
	}

	// Probes and scrape endpoint stay outside /api/v1.
	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	api := r.Group("/api/v1")
	{
		if cfg.ValidationHandler != nil {
			api.POST("/validation/cultural", cfg.ValidationHandler.Validate)
			api.POST("/validation/realtime", cfg.ValidationHandler.ScoreRealTime)
		}
		if cfg.PlaybookHandler != nil {
			api.POST("/playbooks/generate", cfg.PlaybookHandler.Generate)
		}
		if cfg.MarketHandler != nil {
			api.GET("/markets/:market/guidelines", cfg.MarketHandler.GetGuidelines)
		}
		if cfg.TerminologyHandler != nil {
			api.POST("/terminology/analyze", cfg.TerminologyHandler.Analyze)
			api.POST("/terminology/validate", cfg.TerminologyHandler.ValidateTerm)
			api.GET("/terminology/suggestions", cfg.TerminologyHandler.Suggest)
		}
	}

	return r
}
