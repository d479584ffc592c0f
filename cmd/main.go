// Package main is the entry point for the recipe-cost-service application.
//
// @title           Recipe Cost Service API
// @version         1.0.0
// @description     API for managing recipes, ingredients, and their cost breakdown.
//
//	Recipe totals are kept in sync with ingredient prices: every price or
//	quantity change recomputes the affected cost contributions.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/recipe-cost-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Ingredients
// @tag.description Ingredient catalog operations
//
// @tag.name        Recipes
// @tag.description Recipe and cost aggregation operations
//
// @tag.name        Associations
// @tag.description Recipe ingredient association operations
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/recipe-cost-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/guttosm/recipe-cost-service/config"
	"github.com/guttosm/recipe-cost-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
