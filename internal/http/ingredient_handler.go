package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

// IngredientHandler provides HTTP handlers for ingredient routes.
type IngredientHandler struct {
	ingredients service.IngredientService
}

// NewIngredientHandler creates a new ingredient handler.
func NewIngredientHandler(ingredients service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// Create handles POST /api/ingredients requests.
//
// @Summary      Create ingredient
// @Description  Registers an ingredient with its package quantity and package price.
// @Tags         Ingredients
// @Accept       json
// @Produce      json
// @Param        request body dto.IngredientRequest true "Ingredient data"
// @Success      201 {object} dto.SuccessResponse "Created ingredient"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	ingredient, err := h.ingredients.Create(c.Request.Context(), service.IngredientInput{
		Name:               req.Name,
		QuantityPerPackage: req.QuantityPerPackage,
		PricePerPackage:    req.PricePerPackage,
	})
	if err != nil {
		builder.DomainError(err)
		return
	}

	auditLog(c, "ingredient_create", "Ingredient created", map[string]interface{}{
		"ingredient_id": ingredient.ID,
		"name":          ingredient.Name,
	})
	builder.SuccessCreated(dto.NewIngredientResponse(*ingredient))
}

// Update handles PUT /api/ingredients/:id requests.
//
// @Summary      Update ingredient
// @Description  Rewrites an ingredient's name and package values, recomputing the cost contribution of every recipe that uses it in the same atomic operation.
// @Tags         Ingredients
// @Accept       json
// @Produce      json
// @Param        id path string true "Ingredient id"
// @Param        request body dto.IngredientRequest true "Ingredient data"
// @Success      200 {object} dto.SuccessResponse "Updated ingredient"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown ingredient"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/ingredients/{id} [put]
func (h *IngredientHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	id := c.Param("id")
	ingredient, err := h.ingredients.Update(c.Request.Context(), id, service.IngredientInput{
		Name:               req.Name,
		QuantityPerPackage: req.QuantityPerPackage,
		PricePerPackage:    req.PricePerPackage,
	})
	if err != nil {
		builder.DomainError(err)
		return
	}

	auditLog(c, "ingredient_update", "Ingredient updated", map[string]interface{}{
		"ingredient_id": id,
	})
	builder.SuccessOK(dto.NewIngredientResponse(*ingredient))
}

// Delete handles DELETE /api/ingredients/:id requests.
//
// @Summary      Delete ingredient
// @Description  Removes an ingredient, unlinking it from every recipe and subtracting its cost contributions from their totals in the same atomic operation.
// @Tags         Ingredients
// @Produce      json
// @Param        id path string true "Ingredient id"
// @Success      204 "Deleted"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown ingredient"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	if err := h.ingredients.Delete(c.Request.Context(), id); err != nil {
		builder.DomainError(err)
		return
	}

	auditLog(c, "ingredient_delete", "Ingredient deleted", map[string]interface{}{
		"ingredient_id": id,
	})
	builder.SuccessNoContent()
}

// List handles GET /api/ingredients requests.
//
// @Summary      List ingredients
// @Description  Returns a page of ingredients, optionally filtered by name. Sort keys: name, quantity_per_package, price_per_package.
// @Tags         Ingredients
// @Produce      json
// @Param        filter query string false "Case-insensitive name filter"
// @Param        page query int false "Zero-based page index"
// @Param        sort query string false "Sort key" default(name)
// @Param        direction query string false "asc or desc" default(asc)
// @Success      200 {object} dto.SuccessResponse "Page of ingredients"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	page, err := h.ingredients.List(c.Request.Context(), bindListRequest(c))
	if err != nil {
		builder.DomainError(err)
		return
	}

	builder.SuccessOK(dto.NewPageResponse(page, dto.NewIngredientResponse))
}
