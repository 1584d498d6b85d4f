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

// catalogHandler serves the public, unauthenticated catalog pages.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(catalogService portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

// RegisterCatalogRoutes registers the public catalog routes.
func RegisterCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("/:username", h.browseCatalog)
		catalog.GET("/:username/bounds", h.getCatalogBounds)
	}
}

func (h *catalogHandler) browseCatalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind catalog query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.catalogService.BrowseCatalog(c.Request.Context(), c.Param("username"), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catalog not found"})
		} else {
			logger.Error("Failed to browse catalog", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogResponse(page))
}

func (h *catalogHandler) getCatalogBounds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.BoundsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind bounds query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	bounds, err := h.catalogService.GetCatalogBounds(c.Request.Context(), c.Param("username"), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catalog not found"})
		} else {
			logger.Error("Failed to compute catalog bounds", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute bounds"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogBoundsResponse(bounds))
}
