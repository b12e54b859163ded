package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(limit, window))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func getFrom(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = ip + ":51234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	r := limitedRouter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, getFrom(r, "198.51.100.1").Code)
	}
	w := getFrom(r, "198.51.100.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiterIsPerIP(t *testing.T) {
	r := limitedRouter(1, time.Minute)

	assert.Equal(t, http.StatusOK, getFrom(r, "198.51.100.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, "198.51.100.2").Code)
	assert.Equal(t, http.StatusOK, getFrom(r, "198.51.100.3").Code)
}

func TestRateLimiterWindowResets(t *testing.T) {
	r := limitedRouter(1, 30*time.Millisecond)

	assert.Equal(t, http.StatusOK, getFrom(r, "198.51.100.4").Code)
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, "198.51.100.4").Code)

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, http.StatusOK, getFrom(r, "198.51.100.4").Code)
}
