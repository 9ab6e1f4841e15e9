package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ujenzi-notify/internal/relay"
)

// Send relays one SMS to the gateway.
// @Summary Relay SMS
// @Description Send a single SMS on behalf of a trusted internal caller and record it in the delivery log.
// @Tags Internal
// @Accept json
// @Produce json
// @Param body body sendReq true "SMS"
// @Success 200 {object} sendResp
// @Failure 500 {object} sendErrResp
// @Router /internal/api/v1/sms [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.relay.delivery.http.Send.ShouldBindJSON: %v", err)
		c.JSON(http.StatusInternalServerError, newSendErrResp(relay.ErrInvalidInput))
		return
	}

	o, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, newSendErrResp(err))
		return
	}

	c.JSON(http.StatusOK, newSendResp(o))
}
