package http

import (
	"github.com/gin-gonic/gin"

	"ujenzi-notify/pkg/response"
	"ujenzi-notify/pkg/scope"
)

// CreateAlert creates and dispatches an alert.
// @Summary Create alert
// @Description Create a project alert and dispatch it by SMS to the project's stakeholders. Delivery failure does not fail the request; check the delivery field.
// @Tags Alert
// @Accept json
// @Produce json
// @Param body body createAlertReq true "Alert"
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/alerts [POST]
func (h *handler) CreateAlert(c *gin.Context) {
	ctx := c.Request.Context()

	var req createAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.CreateAlert.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidInput)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.CreateAlert(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCreateAlertResp(o))
}

// DispatchUpdate sends an ad-hoc status update.
// @Summary Dispatch status update
// @Description Send an ad-hoc project status message by SMS without creating an alert record.
// @Tags Alert
// @Accept json
// @Produce json
// @Param body body dispatchUpdateReq true "Update"
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/updates [POST]
func (h *handler) DispatchUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dispatchUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.DispatchUpdate.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidInput)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.DispatchUpdate(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDeliveryResp(o.Delivery))
}

// Get lists alerts.
// @Summary List alerts
// @Description List alerts newest-first with optional project and category filters.
// @Tags Alert
// @Produce json
// @Param project_id query string false "Project filter"
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Router /api/v1/alerts [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Get.ShouldBindQuery: %v", err)
		response.Error(c, errInvalidInput)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newGetResp(o))
}

// Detail returns one alert.
// @Summary Get alert
// @Tags Alert
// @Produce json
// @Param id path string true "Alert ID"
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/alerts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	a, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAlertResp(a))
}

// MarkRead flags an alert as read.
// @Summary Mark alert read
// @Tags Alert
// @Produce json
// @Param id path string true "Alert ID"
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/alerts/{id}/read [PATCH]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	a, err := h.uc.MarkRead(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAlertResp(a))
}
