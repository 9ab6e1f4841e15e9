package httpserver

import (
	"net/http"

	"ujenzi-notify/pkg/errors"
	"ujenzi-notify/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health.
// @Summary Health Check
// @Description Check the service and its database connection.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /health [GET]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.healthCheck.Ping: %v", err)
		response.Error(c, errors.NewHTTPError(503, "Database connection failed", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "ujenzi-notify",
		"database": "connected",
	})
}

// readyCheck reports readiness to serve traffic.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /ready [GET]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.Error(c, errors.NewHTTPError(503, "Database connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "ujenzi-notify",
	})
}

// liveCheck reports process liveness.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [GET]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "ujenzi-notify",
	})
}
