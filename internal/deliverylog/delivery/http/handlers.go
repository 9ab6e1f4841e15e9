package http

import (
	"github.com/gin-gonic/gin"

	"ujenzi-notify/pkg/response"
	"ujenzi-notify/pkg/scope"
)

// Recent returns the newest delivery attempts.
// @Summary Recent delivery attempts
// @Description List recent SMS delivery attempts newest-first. Non-administrators must filter by project.
// @Tags DeliveryLog
// @Produce json
// @Param project_id query string false "Project filter"
// @Param limit query int false "Maximum entries"
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/delivery-logs [GET]
func (h *handler) Recent(c *gin.Context) {
	ctx := c.Request.Context()

	var req recentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.deliverylog.delivery.http.Recent.ShouldBindQuery: %v", err)
		response.Error(c, errInvalidInput)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Recent(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRecentResp(o))
}
