package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/validation"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// PlaybookHandler serves transformation playbook generation.
type PlaybookHandler struct {
	service *validation.Service
}

// NewPlaybookHandler wires the handler.
func NewPlaybookHandler(service *validation.Service) *PlaybookHandler {
	return &PlaybookHandler{service: service}
}

// PlaybookRequest is the body of POST /api/v1/playbooks/generate.
type PlaybookRequest struct {
	Content      ctypes.ContentInput `json:"content"`
	AssetType    string              `json:"asset_type"`
	SourceMarket string              `json:"source_market"`
	TargetMarket string              `json:"target_market"`
}

// Generate builds the source-to-target adaptation plan.
func (h *PlaybookHandler) Generate(c *gin.Context) {
	var req PlaybookRequest
	if !bindJSON(c, &req) {
		return
	}

	playbook, err := h.service.GenerateTransformationPlaybook(
		c.Request.Context(), req.Content, req.AssetType, req.SourceMarket, req.TargetMarket)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playbook)
}
