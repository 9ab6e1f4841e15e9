package http

import (
	"github.com/gin-gonic/gin"

	"ujenzi-notify/pkg/response"
	"ujenzi-notify/pkg/scope"
)

// Get lists projects.
// @Summary List projects
// @Description List monitored construction projects with optional filters.
// @Tags Project
// @Produce json
// @Param site_code query string false "Site code filter"
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Router /api/v1/projects [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.project.delivery.http.Get.ShouldBindQuery: %v", err)
		response.Error(c, errBadRequest)
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

// Detail returns one project.
// @Summary Get project
// @Description Get one project by identifier, including its stakeholder list.
// @Tags Project
// @Produce json
// @Param id path string true "Project ID"
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	p, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProjectResp(p))
}
