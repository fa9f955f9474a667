package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	r := newEngine(RequestID())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDPreserved(t *testing.T) {
	r := newEngine(RequestID(), func(c *gin.Context) {
		assert.Equal(t, "req-7", GetRequestID(c))
		c.Next()
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-7", rec.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine(CORS(CORSConfig{AllowedOrigins: []string{"https://studio.example.com"}}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://studio.example.com")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://studio.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORSDisallowedOrigin(t *testing.T) {
	r := newEngine(CORS(CORSConfig{AllowedOrigins: []string{"https://studio.example.com"}}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

type recordingMetrics struct {
	method string
	route  string
	status int
	calls  int
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.method, m.route, m.status = method, route, status
	m.calls++
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	recorder := &recordingMetrics{}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(recorder))
	r.GET("/markets/:market/guidelines", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/markets/China/guidelines", nil))

	require.Equal(t, 1, recorder.calls)
	assert.Equal(t, "/markets/:market/guidelines", recorder.route)
	assert.Equal(t, http.StatusOK, recorder.status)
}

func TestMetricsUnmatchedRoute(t *testing.T) {
	recorder := &recordingMetrics{}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(recorder))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Equal(t, 1, recorder.calls)
	assert.Equal(t, "unmatched", recorder.route)
	assert.Equal(t, http.StatusNotFound, recorder.status)
}
