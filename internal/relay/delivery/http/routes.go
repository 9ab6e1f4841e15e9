package http

import (
	"ujenzi-notify/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the internal SMS relay endpoint. Access is gated
// by the internal key middleware, not by user authentication.
func MapRoutes(r *gin.RouterGroup, mw middleware.Middleware, h *handler) {
	r.Use(mw.InternalKey())
	r.POST("", h.Send)
}
