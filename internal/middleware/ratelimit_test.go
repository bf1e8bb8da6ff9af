package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Middleware())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/api/v1/stats", ok)
	router.GET(constants.HealthPath, ok)
	return router
}

func request(router *gin.Engine, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(2, constants.HealthPath)
	defer rl.Close()
	router := newLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, request(router, "/api/v1/stats", "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, request(router, "/api/v1/stats", "10.0.0.1:1000").Code)

	w := request(router, "/api/v1/stats", "10.0.0.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Rate limit exceeded. Please try again later."}`, w.Body.String())
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	// Other clients keep their own budget.
	assert.Equal(t, http.StatusOK, request(router, "/api/v1/stats", "10.0.0.2:1000").Code)

	// Health checks are never limited.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, request(router, constants.HealthPath, "10.0.0.1:1000").Code)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0)
	defer rl.Close()
	router := newLimitedRouter(rl)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, request(router, "/api/v1/stats", "10.0.0.1:1000").Code)
	}
}

func TestRateLimiter_CloseIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1)
	rl.Close()
	assert.NotPanics(t, rl.Close)
}
