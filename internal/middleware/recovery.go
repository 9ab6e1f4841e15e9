package middleware

import (
	"ujenzi-notify/pkg/discord"
	pkgLog "ujenzi-notify/pkg/log"
	"ujenzi-notify/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into generic 500 responses and ships the
// report to the ops webhook.
func Recovery(l pkgLog.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := c.Request.Context()
				l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					rec, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, rec, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
