package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response. check pings whichever storage
// backend is active; backend names it in the payload. breaker reports the
// remote-API circuit breaker state and is nil for backends without one.
func Health(backend string, check func(context.Context) error, breaker func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storage := "connected"
		if err := check(ctx); err != nil {
			storage = "error"
		}

		status := http.StatusOK
		if storage != "connected" {
			status = http.StatusServiceUnavailable
		}

		body := gin.H{
			"ok":      status == http.StatusOK,
			"backend": backend,
			"storage": storage,
		}
		if breaker != nil {
			body["circuit_breaker"] = breaker()
		}
		c.JSON(status, body)
	}
}
