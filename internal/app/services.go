// Package app provides service initialization.
package app

import (
	"github.com/guttosm/recipe-cost-service/config"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Calculator   service.CostCalculator
	Ingredients  service.IngredientService
	Recipes      service.RecipeService
	Associations service.AssociationService
	Auth         service.AuthService
}

// InitializeServices wires the business services on top of the repositories.
func InitializeServices(db *DatabaseComponents, cfg config.AuthConfig) *ServiceComponents {
	calculator := service.NewCostCalculatorService()

	ingredientService := service.NewIngredientService(
		db.IngredientRepo,
		db.RecipeRepo,
		db.AssociationRepo,
		db.TxnRunner,
		calculator,
	)

	recipeService := service.NewRecipeService(db.RecipeRepo)

	associationService := service.NewAssociationService(
		db.IngredientRepo,
		db.RecipeRepo,
		db.AssociationRepo,
		db.TxnRunner,
		calculator,
	)

	authService := service.NewAuthService(db.UserRepo, service.AuthConfig{
		Secret:   cfg.JWTSecretKey,
		TokenTTL: cfg.AccessTokenTTL,
		Issuer:   cfg.Issuer,
	})

	return &ServiceComponents{
		Calculator:   calculator,
		Ingredients:  ingredientService,
		Recipes:      recipeService,
		Associations: associationService,
		Auth:         authService,
	}
}
