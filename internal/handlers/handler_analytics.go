package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorlista/vehicle_catalog_app/internal/apperrors"
	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
	"github.com/motorlista/vehicle_catalog_app/internal/middleware"
)

// trackingHandler records traffic events from the public catalog. These
// endpoints are fire-and-forget for the frontend; failures still return an
// error status so the rate limiter and logs see them.
type trackingHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// registerTrackingRoutes registers the public event recording routes.
func registerTrackingRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := &trackingHandler{analyticsService: analyticsService}

	track := rg.Group("/track/vehicles/:vehicleID")
	{
		track.POST("/view", h.recordView)
		track.POST("/whatsapp-click", h.recordWhatsAppClick)
	}
}

func (h *trackingHandler) recordView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.analyticsService.RecordView(c.Request.Context(), c.Param("vehicleID")); err != nil {
		logger.Error("Failed to record view", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *trackingHandler) recordWhatsAppClick(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.analyticsService.RecordWhatsAppClick(c.Request.Context(), c.Param("vehicleID")); err != nil {
		logger.Error("Failed to record whatsapp click", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event"})
		return
	}
	c.Status(http.StatusNoContent)
}

// analyticsHandler serves the authenticated dashboard aggregates.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// registerAnalyticsRoutes registers the dashboard analytics routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := &analyticsHandler{analyticsService: analyticsService}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", h.getSummary)
		analytics.GET("/vehicles/:vehicleID/daily", h.getVehicleDailyStats)
	}
}

func (h *analyticsHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID, ok := middleware.GetAgencyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.analyticsService.GetAgencySummary(c.Request.Context(), agencyID)
	if err != nil {
		logger.Error("Failed to get analytics summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve analytics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsSummaryResponse(summary))
}

func (h *analyticsHandler) getVehicleDailyStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID, ok := middleware.GetAgencyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	stats, err := h.analyticsService.GetVehicleDailyStats(c.Request.Context(), agencyID, c.Param("vehicleID"), days)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this listing"})
		default:
			logger.Error("Failed to get daily stats", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyStatsResponse(stats))
}
