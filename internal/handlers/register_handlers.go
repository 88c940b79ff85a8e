package handlers

import (
	"net/http"

	"github.com/FretAfrique/fret_backoffice_app/cmd/docs"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/middleware"
	"github.com/FretAfrique/fret_backoffice_app/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes wires all HTTP routes onto the engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerAuthRoutes(r, cfg, services)
	registerTrackingRoutes(r, services.LTA)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes groups every authenticated back-office route under /api/v1.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	apiV1 := r.Group("/api/v1")
	apiV1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		registerCityRoutes(apiV1, services.City)
		registerClientRoutes(apiV1, services.Client)
		registerTariffRoutes(apiV1, services.Tariff)
		registerLTARoutes(apiV1, services.LTA, services.LTAPayment)
		registerAccountingRoutes(apiV1, services.Accounting)
		registerTreasuryRoutes(apiV1, services.Treasury)
		registerCurrencyRoutes(apiV1, services.Currency)
		registerUserRoutes(apiV1, services.User)
	}
}

// setupSwaggerRoutes exposes the generated API documentation outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
