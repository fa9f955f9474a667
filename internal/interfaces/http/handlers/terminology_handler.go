package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/terminology"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// TerminologyHandler serves the terminology intelligence endpoints.
type TerminologyHandler struct {
	service *terminology.Service
}

// NewTerminologyHandler wires the handler.
func NewTerminologyHandler(service *terminology.Service) *TerminologyHandler {
	return &TerminologyHandler{service: service}
}

// AnalyzeRequest is the body of POST /api/v1/terminology/analyze.
type AnalyzeRequest struct {
	Text            string   `json:"text"`
	BrandID         string   `json:"brand_id"`
	TherapeuticArea string   `json:"therapeutic_area"`
	Audience        string   `json:"audience"`
	TargetMarkets   []string `json:"target_markets"`
}

// Analyze runs full-text terminology analysis.
func (h *TerminologyHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.AnalyzeTerminology(
		c.Request.Context(), req.Text, req.BrandID, req.TherapeuticArea,
		ctypes.AudienceContext(req.Audience), req.TargetMarkets)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ValidateTermRequest is the body of POST /api/v1/terminology/validate.
type ValidateTermRequest struct {
	Term         string `json:"term"`
	BrandID      string `json:"brand_id"`
	Audience     string `json:"audience"`
	TargetMarket string `json:"target_market"`
}

// ValidateTerm validates a single term for live feedback.
func (h *TerminologyHandler) ValidateTerm(c *gin.Context) {
	var req ValidateTermRequest
	if !bindJSON(c, &req) {
		return
	}

	verdict, err := h.service.ValidateTermInRealTime(
		c.Request.Context(), req.Term, req.BrandID,
		ctypes.AudienceContext(req.Audience), req.TargetMarket)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, verdict)
}

// Suggest returns ranked approved terms for a partial input.
// GET /api/v1/terminology/suggestions?partial=&brand_id=&therapeutic_area=&audience=&target_market=
func (h *TerminologyHandler) Suggest(c *gin.Context) {
	suggestions, err := h.service.GetContextualSuggestions(
		c.Request.Context(),
		c.Query("partial"),
		c.Query("brand_id"),
		c.Query("therapeutic_area"),
		ctypes.AudienceContext(c.DefaultQuery("audience", string(ctypes.ContextHCP))),
		c.Query("target_market"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
