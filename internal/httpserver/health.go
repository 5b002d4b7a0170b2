package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "travel-assistant"

	readinessTimeout = 2 * time.Second
)

// ReadinessCheck reports whether a backing store can serve traffic.
type ReadinessCheck func(ctx context.Context) error

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck reports ready only when the conversation store answers.
// @Summary Readiness Check
// @Description Check if the API and its conversation store are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Store unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := srv.ready(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: response.InternalServerErrorCode,
				Message:   "not ready",
				Data:      statusBody("unavailable"),
			})
			return
		}
	}
	response.OK(c, statusBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
