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

// vehicleHandler handles the authenticated inventory endpoints.
type vehicleHandler struct {
	vehicleService portssvc.VehicleSvcFacade
}

func newVehicleHandler(vehicleService portssvc.VehicleSvcFacade) *vehicleHandler {
	return &vehicleHandler{vehicleService: vehicleService}
}

// registerVehicleRoutes registers routes related to the caller's own listings.
func registerVehicleRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleSvcFacade) {
	h := newVehicleHandler(vehicleService)

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("", h.listMyVehicles)
		vehicles.GET("/:vehicleID", h.getVehicle)
		vehicles.PUT("/:vehicleID", h.updateVehicle)
		vehicles.DELETE("/:vehicleID", h.deleteVehicle)
	}
}

func (h *vehicleHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID, ok := middleware.GetAgencyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVehicle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), agencyID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPlanLimitReached):
			logger.Warn("Listing limit reached", slog.String("agency_id", agencyID))
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating vehicle", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create vehicle", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		}
		return
	}

	logger.Info("Vehicle created", slog.String("vehicle_id", vehicle.VehicleID))
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(*vehicle, ""))
}

func (h *vehicleHandler) listMyVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID, ok := middleware.GetAgencyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	nextToken := c.Query("nextToken")

	vehicles, token, err := h.vehicleService.ListMyVehicles(c.Request.Context(), agencyID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list vehicles", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vehicles"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListVehiclesResponse{
		Vehicles:  dto.ToVehicleResponses(vehicles),
		NextToken: token,
	})
}

func (h *vehicleHandler) getVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID, ok := middleware.GetAgencyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), c.Param("vehicleID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			logger.Error("Failed to get vehicle", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicle"})
		}
		return
	}

	// The inventory endpoint only exposes the caller's own listings.
	if vehicle.AgencyID != agencyID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(*vehicle, ""))
}

func (h *vehicleHandler) updateVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID, ok := middleware.GetAgencyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVehicle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), agencyID, c.Param("vehicleID"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this listing"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update vehicle", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		}
		return
	}

	logger.Info("Vehicle updated", slog.String("vehicle_id", vehicle.VehicleID))
	c.JSON(http.StatusOK, dto.ToVehicleResponse(*vehicle, ""))
}

func (h *vehicleHandler) deleteVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	agencyID, ok := middleware.GetAgencyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.vehicleService.DeleteVehicle(c.Request.Context(), agencyID, c.Param("vehicleID"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this listing"})
		default:
			logger.Error("Failed to delete vehicle", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
