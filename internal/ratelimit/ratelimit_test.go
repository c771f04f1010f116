package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidRate(t *testing.T) {
	_, err := New("lots", "")
	assert.Error(t, err)
}

func TestNew_InvalidRedisURL(t *testing.T) {
	_, err := New("10-S", "not a url")
	assert.Error(t, err)
}

func TestNew_DefaultRate(t *testing.T) {
	l, err := New("", "")
	require.NoError(t, err)
	assert.Equal(t, int64(300), l.Rate.Limit)
}

func TestMiddleware_LimitsPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l, err := New("2-M", "")
	require.NoError(t, err)

	r := gin.New()
	r.Use(Middleware(l))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1").Code)

	w := do("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"too_many_requests"`)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	// other clients keep their own budget
	assert.Equal(t, http.StatusOK, do("10.0.0.2").Code)
}
