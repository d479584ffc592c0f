// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/recipe-cost-service/config"
	"github.com/guttosm/recipe-cost-service/internal/http"
	"github.com/guttosm/recipe-cost-service/internal/middleware"
)

// InitializeApp creates and wires all application dependencies.
// The returned cleanup function closes the MongoDB connection and should be
// called on shutdown.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Monetary values serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize database components (MongoDB repositories and services)
	dbComponents, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	// Initialize business services
	serviceComponents := InitializeServices(dbComponents, cfg.Auth)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	// Audit and request logs persist through a pooled async writer.
	middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())

	cleanup := func() {
		middleware.StopAsyncLogger()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dbComponents.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config), cleanup, nil
}
