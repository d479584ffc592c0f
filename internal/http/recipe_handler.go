package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

// RecipeHandler provides HTTP handlers for recipe routes.
type RecipeHandler struct {
	recipes service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipes service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// Create handles POST /api/recipes requests.
//
// @Summary      Create recipe
// @Description  Registers a recipe. The total cost starts at zero and is maintained by the association operations.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        request body dto.RecipeRequest true "Recipe data"
// @Success      201 {object} dto.SuccessResponse "Created recipe"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), req.Name)
	if err != nil {
		builder.DomainError(err)
		return
	}

	auditLog(c, "recipe_create", "Recipe created", map[string]interface{}{
		"recipe_id": recipe.ID,
		"name":      recipe.Name,
	})
	builder.SuccessCreated(dto.NewRecipeResponse(*recipe))
}

// Rename handles PUT /api/recipes/:recipeId requests.
//
// @Summary      Rename recipe
// @Description  Changes the recipe's name. The total cost is never touched by this operation.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        recipeId path string true "Recipe id"
// @Param        request body dto.RecipeRequest true "Recipe data"
// @Success      200 {object} dto.SuccessResponse "Renamed recipe"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown recipe"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/recipes/{recipeId} [put]
func (h *RecipeHandler) Rename(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	id := c.Param("recipeId")
	recipe, err := h.recipes.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		builder.DomainError(err)
		return
	}

	auditLog(c, "recipe_rename", "Recipe renamed", map[string]interface{}{
		"recipe_id": id,
	})
	builder.SuccessOK(dto.NewRecipeResponse(*recipe))
}

// Get handles GET /api/recipes/:recipeId requests.
//
// @Summary      Get recipe
// @Description  Returns one recipe with its current total ingredient cost.
// @Tags         Recipes
// @Produce      json
// @Param        recipeId path string true "Recipe id"
// @Success      200 {object} dto.SuccessResponse "Recipe"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown recipe"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/recipes/{recipeId} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	recipe, err := h.recipes.GetByID(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		builder.DomainError(err)
		return
	}

	builder.SuccessOK(dto.NewRecipeResponse(*recipe))
}

// List handles GET /api/recipes requests.
//
// @Summary      List recipes
// @Description  Returns a page of recipes, optionally filtered by name. Sort keys: name, total_cost.
// @Tags         Recipes
// @Produce      json
// @Param        filter query string false "Case-insensitive name filter"
// @Param        page query int false "Zero-based page index"
// @Param        sort query string false "Sort key" default(name)
// @Param        direction query string false "asc or desc" default(asc)
// @Success      200 {object} dto.SuccessResponse "Page of recipes"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	page, err := h.recipes.List(c.Request.Context(), bindListRequest(c))
	if err != nil {
		builder.DomainError(err)
		return
	}

	builder.SuccessOK(dto.NewPageResponse(page, dto.NewRecipeResponse))
}
