package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newRateLimitedRouter(r rate.Limit, burst int) *gin.Engine {
	router := gin.New()
	router.GET("/ping", RateLimit(r, burst), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func ping(router http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	router := newRateLimitedRouter(rate.Limit(1), 3)

	for i := 0; i < 3; i++ {
		rec := ping(router)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	router := newRateLimitedRouter(rate.Limit(1), 2)

	ping(router)
	ping(router)

	rec := ping(router)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_SeparateClientsSeparateBuckets(t *testing.T) {
	router := newRateLimitedRouter(rate.Limit(1), 1)

	first := httptest.NewRequest(http.MethodGet, "/ping", nil)
	first.RemoteAddr = "198.51.100.1:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	// same client again, bucket drained
	again := httptest.NewRequest(http.MethodGet, "/ping", nil)
	again.RemoteAddr = "198.51.100.1:1234"
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, again)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// a different client gets its own bucket
	other := httptest.NewRequest(http.MethodGet, "/ping", nil)
	other.RemoteAddr = "198.51.100.2:1234"
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}
