package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/service"
)

type HistoryHandler struct {
	history    service.HistoryService
	translator service.TranslatorService
}

func NewHistoryHandler(history service.HistoryService, translator service.TranslatorService) *HistoryHandler {
	return &HistoryHandler{history: history, translator: translator}
}

type insightsResponse struct {
	Insights string `json:"insights"`
}

func (h *HistoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/history", h.List)
	g.DELETE("/history", h.Clear)
	g.GET("/history/analytics", h.Analytics)
	g.POST("/history/insights", h.Insights)
}

// List returns all activity records, newest first.
// @Summary List history
// @Description List all activity records, newest first
// @Tags history
// @Produce json
// @Success 200 {array} model.ActivityRecord
// @Failure 500 {object} errorResponse
// @Router /history [get]
func (h *HistoryHandler) List(c echo.Context) error {
	records, err := h.history.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// Clear empties the activity log.
// @Summary Clear history
// @Description Delete all activity records. Irreversible.
// @Tags history
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} errorResponse
// @Router /history [delete]
func (h *HistoryHandler) Clear(c echo.Context) error {
	if err := h.history.Clear(c.Request().Context()); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "history cleared"})
}

// Analytics returns the derived usage view.
// @Summary Usage analytics
// @Description Aggregate counts derived from the activity log
// @Tags history
// @Produce json
// @Success 200 {object} model.AnalyticsView
// @Failure 500 {object} errorResponse
// @Router /history/analytics [get]
func (h *HistoryHandler) Analytics(c echo.Context) error {
	view, err := h.history.ComputeAnalytics(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Insights generates usage-insight text from the current analytics.
// Best effort: remote failures yield a fixed fallback, never an error.
// @Summary Usage insights
// @Description Generate a short AI commentary on usage patterns
// @Tags history
// @Produce json
// @Success 200 {object} insightsResponse
// @Failure 500 {object} errorResponse
// @Router /history/insights [post]
func (h *HistoryHandler) Insights(c echo.Context) error {
	ctx := c.Request().Context()
	view, err := h.history.ComputeAnalytics(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, insightsResponse{
		Insights: h.translator.GenerateInsights(ctx, view),
	})
}
