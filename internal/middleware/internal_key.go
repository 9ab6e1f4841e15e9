package middleware

import (
	"crypto/subtle"

	"ujenzi-notify/pkg/response"

	"github.com/gin-gonic/gin"
)

// InternalKeyHeader carries the shared key for internal endpoints.
const InternalKeyHeader = "X-Internal-Key"

// InternalKey gates internal endpoints behind a shared key. The compare
// is constant-time.
func (m Middleware) InternalKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(InternalKeyHeader)
		if m.internalKey == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "Invalid internal key | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
