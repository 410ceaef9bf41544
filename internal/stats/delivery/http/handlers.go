package http

import (
	"github.com/gin-gonic/gin"

	"smartstudy/internal/middleware"
	"smartstudy/pkg/response"
)

// Summary godoc
// @Summary     Dashboard summary
// @Description Headline metrics: completions today/this week/total, active
// @Description task count, streaks, consistency, avg priority, completion rate.
// @Tags        Stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/stats/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.GetSummary(ctx, scope)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSummary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(output))
}

// Weekly godoc
// @Summary     Weekly completion series
// @Description Last 7 local days ending today, zero-filled.
// @Tags        Stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} weeklyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/stats/weekly [GET]
func (h *handler) Weekly(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.GetWeekly(ctx, scope)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetWeekly: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newWeeklyResp(output))
}

// Categories godoc
// @Summary     Category distribution
// @Description Task counts per category. Empty categories are omitted.
// @Tags        Stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} categoriesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/stats/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.GetCategories(ctx, scope)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetCategories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoriesResp(output))
}

// Heatmap godoc
// @Summary     Activity heatmap
// @Description 365-day completion grid with quantized intensity levels.
// @Tags        Stats
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} heatmapResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/stats/heatmap [GET]
func (h *handler) Heatmap(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.GetHeatmap(ctx, scope)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetHeatmap: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHeatmapResp(output))
}
