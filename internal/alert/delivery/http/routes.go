package http

import (
	"ujenzi-notify/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the alert and status-update endpoints.
func MapRoutes(r *gin.RouterGroup, mw middleware.Middleware, h *handler) {
	r.Use(mw.Auth())
	r.POST("", h.CreateAlert)
	r.GET("", h.Get)
	r.GET("/:id", h.Detail)
	r.PATCH("/:id/read", h.MarkRead)
}

// MapUpdateRoutes registers the ad-hoc status update endpoint.
func MapUpdateRoutes(r *gin.RouterGroup, mw middleware.Middleware, h *handler) {
	r.Use(mw.Auth())
	r.POST("", h.DispatchUpdate)
}
