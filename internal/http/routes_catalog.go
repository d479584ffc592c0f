package http

import (
	"github.com/gin-gonic/gin"
)

// CatalogRoutes registers the ingredient, recipe, and association routes.
type CatalogRoutes struct {
	ingredients  *IngredientHandler
	recipes      *RecipeHandler
	associations *AssociationHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(cfg *RouterConfig) *CatalogRoutes {
	return &CatalogRoutes{
		ingredients:  NewIngredientHandler(cfg.IngredientService),
		recipes:      NewRecipeHandler(cfg.RecipeService),
		associations: NewAssociationHandler(cfg.AssociationService),
	}
}

// RegisterRoutes implements RouteGroup.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	ingredients := rg.Group("/ingredients")
	{
		ingredients.POST("", r.ingredients.Create)
		ingredients.GET("", r.ingredients.List)
		ingredients.PUT("/:id", r.ingredients.Update)
		ingredients.DELETE("/:id", r.ingredients.Delete)
	}

	recipes := rg.Group("/recipes")
	{
		recipes.POST("", r.recipes.Create)
		recipes.GET("", r.recipes.List)
		recipes.GET("/:recipeId", r.recipes.Get)
		recipes.PUT("/:recipeId", r.recipes.Rename)

		recipes.POST("/:recipeId/ingredients/:ingredientId", r.associations.Create)
		recipes.PUT("/:recipeId/ingredients/:ingredientId", r.associations.UpdateQuantity)
		recipes.GET("/:recipeId/ingredients", r.associations.List)
	}
}
