package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/validation"
)

// MarketHandler serves per-market cultural guidance.
type MarketHandler struct {
	service *validation.Service
}

// NewMarketHandler wires the handler.
func NewMarketHandler(service *validation.Service) *MarketHandler {
	return &MarketHandler{service: service}
}

// GetGuidelines returns the visual cultural guidelines for a market.
// Unknown markets receive the generic fallback rather than a 404, matching
// the service contract.
func (h *MarketHandler) GetGuidelines(c *gin.Context) {
	market := c.Param("market")
	c.JSON(http.StatusOK, h.service.GetVisualGuidelines(market))
}
