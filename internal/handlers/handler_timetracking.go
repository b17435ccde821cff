package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/andriybobchuk/mooney/internal/middleware"
	"github.com/gin-gonic/gin"
)

// timeTrackingHandler handles HTTP requests related to time tracking.
type timeTrackingHandler struct {
	trackingService portssvc.TimeTrackingSvcFacade
}

// newTimeTrackingHandler creates a new timeTrackingHandler.
func newTimeTrackingHandler(ts portssvc.TimeTrackingSvcFacade) *timeTrackingHandler {
	return &timeTrackingHandler{trackingService: ts}
}

// registerTimeTrackingRoutes registers routes related to time tracking.
func registerTimeTrackingRoutes(rg *gin.RouterGroup, trackingService portssvc.TimeTrackingSvcFacade) {
	h := newTimeTrackingHandler(trackingService)

	rg.GET("/jobs", h.listJobs)

	tracking := rg.Group("/tracking")
	{
		tracking.POST("/start/:jobID", h.startTracking)
		tracking.POST("/stop", h.stopTracking)
		tracking.GET("/active", h.getActiveTimeBlock)
		tracking.POST("/repair", h.repairCrossMidnight)
	}

	blocks := rg.Group("/timeblocks")
	{
		blocks.POST("", h.upsertTimeBlock)
		blocks.GET("", h.listTimeBlocksByDate)
		blocks.DELETE("/:id", h.deleteTimeBlock)
	}

	statuses := rg.Group("/statusupdates")
	{
		statuses.POST("", h.upsertStatusUpdate)
		statuses.GET("", h.listStatusUpdatesByDate)
		statuses.DELETE("/:id", h.deleteStatusUpdate)
	}
}

// dateFromQuery resolves the ?date= query param (2006-01-02), defaulting to
// today when absent.
func dateFromQuery(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// listJobs godoc
// @Summary List the static job set
// @Tags tracking
// @Produce json
// @Success 200 {array} dto.JobResponse
// @Router /jobs [get]
func (h *timeTrackingHandler) listJobs(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListJobResponse(h.trackingService.Jobs(c.Request.Context())))
}

// startTracking godoc
// @Summary Start tracking a job
// @Description Opens an active time block; fails when one is already running
// @Tags tracking
// @Produce json
// @Param jobID path string true "Job ID"
// @Success 201 {object} dto.TimeBlockResponse
// @Failure 400 {object} map[string]string "Unknown job"
// @Failure 409 {object} map[string]string "A block is already active"
// @Router /tracking/start/{jobID} [post]
func (h *timeTrackingHandler) startTracking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	block, err := h.trackingService.StartTracking(c.Request.Context(), c.Param("jobID"))
	if err != nil {
		logger.Warn("Failed to start tracking", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to start tracking")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTimeBlockResponse(block))
}

// stopTracking godoc
// @Summary Stop the active time block
// @Description Closes the active block and stores its duration; a no-op when nothing runs
// @Tags tracking
// @Produce json
// @Success 200 {object} dto.TimeBlockResponse
// @Success 204 "Nothing was being tracked"
// @Router /tracking/stop [post]
func (h *timeTrackingHandler) stopTracking(c *gin.Context) {
	block, err := h.trackingService.StopTracking(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to stop tracking")
		return
	}
	if block == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeBlockResponse(block))
}

// getActiveTimeBlock godoc
// @Summary Get the currently active time block
// @Tags tracking
// @Produce json
// @Success 200 {object} dto.TimeBlockResponse
// @Success 204 "No active block"
// @Router /tracking/active [get]
func (h *timeTrackingHandler) getActiveTimeBlock(c *gin.Context) {
	block, err := h.trackingService.GetActiveTimeBlock(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve active block")
		return
	}
	if block == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeBlockResponse(block))
}

// repairCrossMidnight godoc
// @Summary Split an active block that crossed midnight
// @Description The original ends at 23:59:59 of its start day and a fresh block starts today; safe to call repeatedly
// @Tags tracking
// @Success 204 "No Content"
// @Router /tracking/repair [post]
func (h *timeTrackingHandler) repairCrossMidnight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.trackingService.RepairCrossMidnight(c.Request.Context()); err != nil {
		logger.Error("Failed to repair cross-midnight block", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to repair tracking state")
		return
	}
	c.Status(http.StatusNoContent)
}

// upsertTimeBlock godoc
// @Summary Create or overwrite a time block
// @Tags tracking
// @Accept json
// @Produce json
// @Param block body dto.UpsertTimeBlockRequest true "Time block details"
// @Success 200 {object} dto.TimeBlockResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Router /timeblocks [post]
func (h *timeTrackingHandler) upsertTimeBlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertTimeBlock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	block, err := h.trackingService.UpsertTimeBlock(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to save time block")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeBlockResponse(block))
}

// listTimeBlocksByDate godoc
// @Summary List the time blocks of one calendar day
// @Tags tracking
// @Produce json
// @Param date query string false "Day, 2006-01-02 (defaults to today)"
// @Success 200 {array} dto.TimeBlockResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /timeblocks [get]
func (h *timeTrackingHandler) listTimeBlocksByDate(c *gin.Context) {
	date, ok := dateFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date query parameter, expected YYYY-MM-DD"})
		return
	}

	blocks, err := h.trackingService.ListTimeBlocksByDate(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err, "Failed to list time blocks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTimeBlockResponse(blocks))
}

// deleteTimeBlock godoc
// @Summary Delete a time block
// @Tags tracking
// @Param id path string true "Time block ID"
// @Success 204 "No Content"
// @Router /timeblocks/{id} [delete]
func (h *timeTrackingHandler) deleteTimeBlock(c *gin.Context) {
	if err := h.trackingService.DeleteTimeBlock(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete time block")
		return
	}
	c.Status(http.StatusNoContent)
}

// upsertStatusUpdate godoc
// @Summary Write the status text for a job and day
// @Tags tracking
// @Accept json
// @Produce json
// @Param status body dto.UpsertStatusUpdateRequest true "Status details"
// @Success 200 {object} dto.StatusUpdateResponse
// @Failure 400 {object} map[string]string "Invalid input format or unknown job"
// @Router /statusupdates [post]
func (h *timeTrackingHandler) upsertStatusUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertStatusUpdate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	update, err := h.trackingService.UpsertStatusUpdate(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to save status update")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatusUpdateResponse(update))
}

// listStatusUpdatesByDate godoc
// @Summary List the status updates of one calendar day
// @Tags tracking
// @Produce json
// @Param date query string false "Day, 2006-01-02 (defaults to today)"
// @Success 200 {array} dto.StatusUpdateResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /statusupdates [get]
func (h *timeTrackingHandler) listStatusUpdatesByDate(c *gin.Context) {
	date, ok := dateFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date query parameter, expected YYYY-MM-DD"})
		return
	}

	updates, err := h.trackingService.ListStatusUpdatesByDate(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err, "Failed to list status updates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStatusUpdateResponse(updates))
}

// deleteStatusUpdate godoc
// @Summary Delete a status update
// @Tags tracking
// @Param id path string true "Status update ID"
// @Success 204 "No Content"
// @Router /statusupdates/{id} [delete]
func (h *timeTrackingHandler) deleteStatusUpdate(c *gin.Context) {
	if err := h.trackingService.DeleteStatusUpdate(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete status update")
		return
	}
	c.Status(http.StatusNoContent)
}

// timeAnalyticsHandler handles HTTP requests for time analytics.
type timeAnalyticsHandler struct {
	timeAnalyticsService portssvc.TimeAnalyticsSvcFacade
}

// registerTimeAnalyticsRoutes registers routes related to time analytics.
func registerTimeAnalyticsRoutes(rg *gin.RouterGroup, timeAnalyticsService portssvc.TimeAnalyticsSvcFacade) {
	h := &timeAnalyticsHandler{timeAnalyticsService: timeAnalyticsService}

	group := rg.Group("/timeanalytics")
	{
		group.GET("/daily", h.dailySummary)
		group.GET("/weekly", h.weeklyAnalytics)
		group.GET("/lastndays", h.lastNDaysAnalytics)
	}
}

// dailySummary godoc
// @Summary Per-job hour breakdown for one day
// @Tags timeanalytics
// @Produce json
// @Param date query string false "Day, 2006-01-02 (defaults to today)"
// @Success 200 {object} domain.DailySummary
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /timeanalytics/daily [get]
func (h *timeAnalyticsHandler) dailySummary(c *gin.Context) {
	date, ok := dateFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date query parameter, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.timeAnalyticsService.DailySummary(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err, "Failed to build daily summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// weeklyAnalytics godoc
// @Summary Trailing 7-day time report
// @Description Total and flat per-day average over the 7 calendar days ending at the given date
// @Tags timeanalytics
// @Produce json
// @Param date query string false "Window end day, 2006-01-02 (defaults to today)"
// @Success 200 {object} domain.WeeklyAnalytics
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /timeanalytics/weekly [get]
func (h *timeAnalyticsHandler) weeklyAnalytics(c *gin.Context) {
	date, ok := dateFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date query parameter, expected YYYY-MM-DD"})
		return
	}

	report, err := h.timeAnalyticsService.WeeklyAnalytics(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err, "Failed to build weekly analytics")
		return
	}
	c.JSON(http.StatusOK, report)
}

// lastNDaysAnalytics godoc
// @Summary Trailing n-day working-time report
// @Description Monday-Friday blocks only, averaged over the window's working days
// @Tags timeanalytics
// @Produce json
// @Param date query string false "Window end day, 2006-01-02 (defaults to today)"
// @Param days query int false "Window length in days (default 7)"
// @Success 200 {object} domain.WeeklyAnalytics
// @Failure 400 {object} map[string]string "Invalid date or days"
// @Router /timeanalytics/lastndays [get]
func (h *timeAnalyticsHandler) lastNDaysAnalytics(c *gin.Context) {
	date, ok := dateFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date query parameter, expected YYYY-MM-DD"})
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days query parameter"})
		return
	}

	report, err := h.timeAnalyticsService.LastNDaysAnalytics(c.Request.Context(), date, days)
	if err != nil {
		respondServiceError(c, err, "Failed to build last-n-days analytics")
		return
	}
	c.JSON(http.StatusOK, report)
}
