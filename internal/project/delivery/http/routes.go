package http

import (
	"ujenzi-notify/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the project read endpoints.
func MapRoutes(r *gin.RouterGroup, mw middleware.Middleware, h *handler) {
	r.Use(mw.Auth())
	r.GET("", h.Get)
	r.GET("/:id", h.Detail)
}
