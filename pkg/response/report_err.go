package response

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"ujenzi-notify/pkg/discord"

	"github.com/gin-gonic/gin"
)

// ReportErrorAsync ships an internal error to the ops webhook without
// blocking the request. Nothing is reported when no webhook is configured.
func ReportErrorAsync(c *gin.Context, d discord.IDiscord, err error) {
	if d == nil {
		return
	}

	report := buildErrorReport(c, err)
	go func() {
		// Detached from the request context so the report survives the
		// response being written.
		if sendErr := d.SendError(context.Background(), "Service Error", report, err); sendErr != nil {
			// Standard log as fallback since we are in an async goroutine.
			log.Printf("pkg.response.ReportErrorAsync.SendError: %v\n", sendErr)
		}
	}()
}

// PanicError sends a generic 500 for a recovered panic and ships the
// report to the ops webhook.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	ReportErrorAsync(c, d, err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

func buildErrorReport(c *gin.Context, err error) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Route  : %s\n", c.Request.URL.String()))
	sb.WriteString(fmt.Sprintf("Method : %s\n", c.Request.Method))
	if params := c.Request.URL.Query().Encode(); params != "" {
		sb.WriteString(fmt.Sprintf("Params : %s\n", params))
	}
	sb.WriteString(fmt.Sprintf("Error  : %v", err))
	return sb.String()
}
