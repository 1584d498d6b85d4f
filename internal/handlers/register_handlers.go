package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/middleware"
	"github.com/motorlista/vehicle_catalog_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	publicLimiter *limiter.Limiter,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services)

	// Public catalog and tracking routes, rate limited per client IP
	setupPublicRoutes(r, services, publicLimiter)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupPublicRoutes configures the unauthenticated catalog surface.
func setupPublicRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	publicLimiter *limiter.Limiter,
) {
	public := r.Group("/", middleware.RateLimit(publicLimiter))

	RegisterCatalogRoutes(public, services.Catalog)
	RegisterPublicAgencyRoutes(public, services.Agency)
	registerTrackingRoutes(public, services.Analytics)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAgencyRoutes(v1, services.Agency)
	registerVehicleRoutes(v1, services.Vehicle)
	registerAnalyticsRoutes(v1, services.Analytics)
}
