package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/application/validation"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/database/memory"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/intelligence/termextract"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/prometheus"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/interfaces/http/handlers"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// newTestRouter assembles the full route tree over the seeded in-memory
// repositories, exactly as the offline deployment does.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	validationSvc := validation.NewService(
		memory.NewSeededRuleRepository(),
		rules.NewStaticGuidelineProvider(),
		nil, nil,
		logging.NewNopLogger())
	terminologySvc := terminology.NewService(
		memory.NewSeededTerminologyRepository(),
		termextract.NewExtractor(),
		nil,
		logging.NewNopLogger())
	metrics := prometheus.NewMetrics()

	return NewRouter(RouterConfig{
		ValidationHandler:  handlers.NewValidationHandler(validationSvc),
		PlaybookHandler:    handlers.NewPlaybookHandler(validationSvc),
		TerminologyHandler: handlers.NewTerminologyHandler(terminologySvc),
		MarketHandler:      handlers.NewMarketHandler(validationSvc),
		HealthHandler:      handlers.NewHealthHandler(),
		MetricsHandler:     metrics.Handler(),
		MetricsRecorder:    metrics,
		Logger:             logging.NewNopLogger(),
		Mode:               gin.TestMode,
	})
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestValidateCulturalEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/validation/cultural", handlers.ValidateRequest{
		Content: ctypes.ContentInput{
			ID:       "content-1",
			Headline: "A bright new day",
			BrandElements: ctypes.BrandElements{
				Colors: []string{"white"},
			},
		},
		AssetType:     "banner",
		TargetMarkets: []string{"China"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result validation.CulturalValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 90, result.MarketReadiness["China"])
	assert.Equal(t, ctypes.RiskLow, result.RiskLevel)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "Associated with mourning and death", result.Issues[0].Description)
}

func TestValidateCulturalRejectsEmptyContent(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/validation/cultural", handlers.ValidateRequest{
		TargetMarkets: []string{"China"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CMP_001", body.Code)
}

func TestValidateCulturalRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validation/cultural",
		bytes.NewReader([]byte("{not json")))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "COMMON_002", body.Code)
}

func TestRealTimeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/validation/realtime", handlers.RealTimeRequest{
		Text:          "We can cure your condition",
		TargetMarkets: []string{"United States"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var score ctypes.RealTimeScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
	assert.Equal(t, 50, score.Score)
	require.NotEmpty(t, score.Warnings)
	assert.Equal(t, "cure", score.Warnings[0].Element)
}

func TestPlaybookEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/playbooks/generate", handlers.PlaybookRequest{
		Content:      ctypes.ContentInput{Headline: "Take control of your health"},
		AssetType:    "banner",
		SourceMarket: "United States",
		TargetMarket: "China",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var playbook validation.TransformationPlaybook
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &playbook))
	assert.Equal(t, "China", playbook.TargetMarket)
	assert.NotEmpty(t, playbook.TextTransformations)
}

func TestMarketGuidelinesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/markets/China/guidelines", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var guidelines rules.VisualCulturalGuidelines
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guidelines))
	assert.False(t, guidelines.Generic)
	assert.NotEmpty(t, guidelines.Colors.Avoid)
}

func TestTerminologyValidateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/terminology/validate", handlers.ValidateTermRequest{
		Term:     "wonder drug",
		BrandID:  "brand-cardio",
		Audience: "marketing",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var verdict ctypes.TermValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.False(t, verdict.IsValid)
}

func TestTerminologyValidateRejectsUnknownAudience(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/terminology/validate", handlers.ValidateTermRequest{
		Term:     "hypertension",
		BrandID:  "brand-cardio",
		Audience: "everyone",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TRM_002", body.Code)
}

func TestTerminologySuggestionsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/terminology/suggestions?partial=hyper&brand_id=brand-cardio&audience=hcp", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Suggestions []ctypes.TermSuggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Suggestions)
	assert.Equal(t, "hypertension", body.Suggestions[0].Term)
}

func TestTerminologySuggestionsTargetMarket(t *testing.T) {
	router := newTestRouter(t)

	fetch := func(query string) []ctypes.TermSuggestion {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/terminology/suggestions?"+query, nil)
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Suggestions []ctypes.TermSuggestion `json:"suggestions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body.Suggestions)
		return body.Suggestions
	}

	// The myocardial-infarction entry carries a Japan cultural note, so
	// targeting Japan lowers its confidence relative to the unscoped query.
	unscoped := fetch("partial=myo&brand_id=brand-cardio&audience=hcp")
	japan := fetch("partial=myo&brand_id=brand-cardio&audience=hcp&target_market=Japan")

	assert.Equal(t, "myocardial infarction", unscoped[0].Term)
	assert.Equal(t, "myocardial infarction", japan[0].Term)
	assert.Less(t, japan[0].Confidence, unscoped[0].Confidence)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDEchoedOnResponse(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-123")
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	// A missing request ID is generated server-side.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
