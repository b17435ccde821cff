package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/andriybobchuk/mooney/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler handles HTTP requests for financial analytics.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// registerAnalyticsRoutes registers routes related to financial analytics.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := &analyticsHandler{analyticsService: analyticsService}

	rg.GET("/analytics/monthly", h.monthlyReport)
}

// monthlyReport godoc
// @Summary Monthly financial report
// @Description Currency-normalized revenue, metric chain and expense category rollup for one month
// @Tags analytics
// @Produce json
// @Param year query int false "Year (defaults to the current month)"
// @Param month query int false "Month, 1-12"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /analytics/monthly [get]
func (h *analyticsHandler) monthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month, ok := monthFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year or month query parameter"})
		return
	}

	report, err := h.analyticsService.MonthlyReport(c.Request.Context(), month)
	if err != nil {
		logger.Error("Failed to build monthly report", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}
