package http

import (
	"ujenzi-notify/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the delivery log read endpoint.
func MapRoutes(r *gin.RouterGroup, mw middleware.Middleware, h *handler) {
	r.Use(mw.Auth())
	r.GET("", h.Recent)
}
