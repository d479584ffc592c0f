package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

// AssociationHandler provides HTTP handlers for recipe-ingredient
// association routes.
type AssociationHandler struct {
	associations service.AssociationService
}

// NewAssociationHandler creates a new association handler.
func NewAssociationHandler(associations service.AssociationService) *AssociationHandler {
	return &AssociationHandler{associations: associations}
}

// Create handles POST /api/recipes/:recipeId/ingredients/:ingredientId requests.
//
// @Summary      Link ingredient to recipe
// @Description  Associates an ingredient with a recipe in the given quantity. The cost contribution is computed from the ingredient's current package values and added to the recipe total atomically.
// @Tags         Associations
// @Accept       json
// @Produce      json
// @Param        recipeId path string true "Recipe id"
// @Param        ingredientId path string true "Ingredient id"
// @Param        request body dto.AssociationRequest true "Quantity used"
// @Success      201 {object} dto.SuccessResponse "Created association"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid quantity"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown recipe or ingredient"
// @Failure      409 {object} dto.ErrorResponse "Conflict - pair already associated"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/recipes/{recipeId}/ingredients/{ingredientId} [post]
func (h *AssociationHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	recipeID := c.Param("recipeId")
	ingredientID := c.Param("ingredientId")
	association, err := h.associations.Create(c.Request.Context(), recipeID, ingredientID, req.QuantityUsed)
	if err != nil {
		builder.DomainError(err)
		return
	}

	auditLog(c, "association_create", "Ingredient linked to recipe", map[string]interface{}{
		"recipe_id":     recipeID,
		"ingredient_id": ingredientID,
	})
	builder.SuccessCreated(dto.NewAssociationResponse(*association))
}

// UpdateQuantity handles PUT /api/recipes/:recipeId/ingredients/:ingredientId requests.
//
// @Summary      Change quantity used
// @Description  Changes how much of the ingredient the recipe uses. The old contribution is swapped for the recomputed one in the recipe total atomically.
// @Tags         Associations
// @Accept       json
// @Produce      json
// @Param        recipeId path string true "Recipe id"
// @Param        ingredientId path string true "Ingredient id"
// @Param        request body dto.AssociationRequest true "Quantity used"
// @Success      200 {object} dto.SuccessResponse "Updated association"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid quantity"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown recipe or ingredient"
// @Failure      409 {object} dto.ErrorResponse "Conflict - pair not associated"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/recipes/{recipeId}/ingredients/{ingredientId} [put]
func (h *AssociationHandler) UpdateQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	recipeID := c.Param("recipeId")
	ingredientID := c.Param("ingredientId")
	association, err := h.associations.UpdateQuantity(c.Request.Context(), recipeID, ingredientID, req.QuantityUsed)
	if err != nil {
		builder.DomainError(err)
		return
	}

	auditLog(c, "association_update", "Association quantity changed", map[string]interface{}{
		"recipe_id":     recipeID,
		"ingredient_id": ingredientID,
	})
	builder.SuccessOK(dto.NewAssociationResponse(*association))
}

// List handles GET /api/recipes/:recipeId/ingredients requests.
//
// @Summary      List recipe ingredients
// @Description  Returns a page of the recipe's ingredients with quantities and cost contributions, optionally filtered by ingredient name. Sort keys: ingredient_name, quantity_used, cost_contribution.
// @Tags         Associations
// @Produce      json
// @Param        recipeId path string true "Recipe id"
// @Param        filter query string false "Case-insensitive ingredient name filter"
// @Param        page query int false "Zero-based page index"
// @Param        sort query string false "Sort key" default(ingredient_name)
// @Param        direction query string false "asc or desc" default(asc)
// @Success      200 {object} dto.SuccessResponse "Page of recipe ingredients"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown recipe"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/recipes/{recipeId}/ingredients [get]
func (h *AssociationHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	page, err := h.associations.ListForRecipe(c.Request.Context(), c.Param("recipeId"), bindListRequest(c))
	if err != nil {
		builder.DomainError(err)
		return
	}

	builder.SuccessOK(dto.NewPageResponse(page, dto.NewAssociatedIngredientResponse))
}
