package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/validation"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// ValidationHandler serves the cultural validation endpoints.
type ValidationHandler struct {
	service *validation.Service
}

// NewValidationHandler wires the handler.
func NewValidationHandler(service *validation.Service) *ValidationHandler {
	return &ValidationHandler{service: service}
}

// ValidateRequest is the body of POST /api/v1/validation/cultural.
type ValidateRequest struct {
	Content       ctypes.ContentInput `json:"content"`
	AssetType     string              `json:"asset_type"`
	TargetMarkets []string            `json:"target_markets"`
}

// Validate runs the full validation pipeline.
func (h *ValidationHandler) Validate(c *gin.Context) {
	var req ValidateRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.ValidateCulturalAppropriateness(
		c.Request.Context(), req.Content, req.AssetType, req.TargetMarkets)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RealTimeRequest is the body of POST /api/v1/validation/realtime.
type RealTimeRequest struct {
	Text          string   `json:"text"`
	TargetMarkets []string `json:"target_markets"`
}

// ScoreRealTime returns the lightweight draft score.
func (h *ValidationHandler) ScoreRealTime(c *gin.Context) {
	var req RealTimeRequest
	if !bindJSON(c, &req) {
		return
	}

	score, err := h.service.ScoreRealTime(c.Request.Context(), req.Text, req.TargetMarkets)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}
