package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware())
	r.GET("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/metrics", Handler())

	return r
}

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/abc", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	val := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/items/:id", "200"))
	assert.GreaterOrEqual(t, val, 1.0)
	assert.Positive(t, testutil.CollectAndCount(httpRequestDuration))
}

func TestMiddleware_StatusAndUnknownPath(t *testing.T) {
	r := newRouter()

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))

	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/boom", "500")), 1.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "404")), 1.0)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	r := newRouter()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/x", http.NoBody))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reclaim_http_requests_total")
}

func TestObserveSuggestion(t *testing.T) {
	before := testutil.ToFloat64(suggestionRequestsTotal.WithLabelValues("lost", "ok"))
	ObserveSuggestion("lost", 12, 3, 2*time.Millisecond, nil)
	assert.Equal(t, before+1, testutil.ToFloat64(suggestionRequestsTotal.WithLabelValues("lost", "ok")))

	beforeErr := testutil.ToFloat64(suggestionRequestsTotal.WithLabelValues("found", "error"))
	ObserveSuggestion("found", 0, 0, 0, errors.New("boom"))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(suggestionRequestsTotal.WithLabelValues("found", "error")))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "unknown", normalizePath(""))
	assert.Equal(t, "/api/v1/items/lost", normalizePath("/api/v1/items/lost"))
}
