// Package app provides router configuration.
package app

import (
	"github.com/guttosm/recipe-cost-service/config"
	"github.com/guttosm/recipe-cost-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	db *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(db.DB.HealthCheck))
	healthHandler.RegisterCircuitBreaker("mongodb_ingredients", db.IngredientCircuitBreaker)
	healthHandler.RegisterCircuitBreaker("mongodb_recipes", db.RecipeCircuitBreaker)
	healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)

	var authService = services.Auth
	if !cfg.Auth.Enabled {
		authService = nil
	}

	routerCfg := http.RouterConfig{
		RateLimit:          cfg.Server.RateLimit,
		RateWindow:         cfg.Server.RateWindow,
		RequestTimeout:     cfg.Server.RequestTimeout,
		EnableAuth:         cfg.Auth.Enabled,
		APIKeys:            cfg.Auth.APIKeys,
		CORSOrigins:        cfg.Server.CORSOrigins,
		SwaggerUser:        cfg.Server.SwaggerUser,
		SwaggerPass:        cfg.Server.SwaggerPass,
		LoggingService:     db.LoggingService,
		AuthService:        authService,
		IngredientService:  services.Ingredients,
		RecipeService:      services.Recipes,
		AssociationService: services.Associations,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
