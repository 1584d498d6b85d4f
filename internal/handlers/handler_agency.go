package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlista/vehicle_catalog_app/internal/apperrors"
	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
	"github.com/motorlista/vehicle_catalog_app/internal/middleware"
)

// agencyHandler handles the authenticated agency profile endpoints.
type agencyHandler struct {
	agencyService portssvc.AgencySvcFacade
}

func newAgencyHandler(agencyService portssvc.AgencySvcFacade) *agencyHandler {
	return &agencyHandler{agencyService: agencyService}
}

// registerAgencyRoutes registers routes related to the caller's own agency.
func registerAgencyRoutes(rg *gin.RouterGroup, agencyService portssvc.AgencySvcFacade) {
	h := newAgencyHandler(agencyService)

	agencies := rg.Group("/agencies")
	{
		agencies.GET("/me", h.getMyAgency)
		agencies.PUT("/me", h.updateMyAgency)
	}
}

// RegisterPublicAgencyRoutes registers the unauthenticated agency profile
// route used by catalog visitors.
func RegisterPublicAgencyRoutes(rg *gin.RouterGroup, agencyService portssvc.AgencySvcFacade) {
	h := newAgencyHandler(agencyService)

	rg.GET("/agencies/:username", h.getAgencyByUsername)
}

func (h *agencyHandler) getAgencyByUsername(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agency, err := h.agencyService.GetAgencyByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agency not found"})
		} else {
			logger.Error("Failed to get agency by username", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve agency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAgencyResponse(agency))
}

func (h *agencyHandler) getMyAgency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID, ok := middleware.GetAgencyIDFromContext(c)
	if !ok {
		logger.Error("Agency ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	agency, err := h.agencyService.GetAgencyByID(c.Request.Context(), agencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agency not found"})
		} else {
			logger.Error("Failed to get agency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve agency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAgencyResponse(agency))
}

func (h *agencyHandler) updateMyAgency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID, ok := middleware.GetAgencyIDFromContext(c)
	if !ok {
		logger.Error("Agency ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAgency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	agency, err := h.agencyService.UpdateAgencyProfile(c.Request.Context(), agencyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agency not found"})
		} else {
			logger.Error("Failed to update agency profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update agency"})
		}
		return
	}

	logger.Info("Agency profile updated")
	c.JSON(http.StatusOK, dto.ToAgencyResponse(agency))
}
