package http

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/recipe-cost-service/internal/apperr"
	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/domain/model"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

func quantityEq(expected string) interface{} {
	return mock.MatchedBy(func(d *decimal.Decimal) bool {
		return d != nil && d.Equal(decimal.RequireFromString(expected))
	})
}

// TestAssociationHandler_Create tests POST /api/recipes/:recipeId/ingredients/:ingredientId.
func TestAssociationHandler_Create(t *testing.T) {
	t.Run("links an ingredient to a recipe", func(t *testing.T) {
		router, m := setupRouter(t)
		m.associations.On("Create", mock.Anything, "rec-1", "ing-1", quantityEq("200")).
			Return(&model.Association{
				RecipeID:         "rec-1",
				IngredientID:     "ing-1",
				QuantityUsed:     decimal.RequireFromString("200"),
				CostContribution: decimal.RequireFromString("5.02"),
			}, nil)

		w := doJSON(router, http.MethodPost, "/api/recipes/rec-1/ingredients/ing-1", `{"quantity_used": 200}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := decodeData[dto.AssociationResponse](t, w)
		assert.Equal(t, "rec-1", data.RecipeID)
		assert.Equal(t, "ing-1", data.IngredientID)
		assert.True(t, decimal.RequireFromString("5.02").Equal(data.CostContribution))
		m.associations.AssertExpectations(t)
	})

	t.Run("duplicate pair answers 409", func(t *testing.T) {
		router, m := setupRouter(t)
		m.associations.On("Create", mock.Anything, "rec-1", "ing-1", mock.Anything).
			Return(nil, apperr.Conflict(i18n.ErrKeyAlreadyAssociated))

		w := doJSON(router, http.MethodPost, "/api/recipes/rec-1/ingredients/ing-1", `{"quantity_used": 200}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown recipe answers 404", func(t *testing.T) {
		router, m := setupRouter(t)
		m.associations.On("Create", mock.Anything, "missing", "ing-1", mock.Anything).
			Return(nil, apperr.NotFound(i18n.ErrKeyRecipeNotFound))

		w := doJSON(router, http.MethodPost, "/api/recipes/missing/ingredients/ing-1", `{"quantity_used": 200}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing quantity answers 400", func(t *testing.T) {
		router, m := setupRouter(t)
		m.associations.On("Create", mock.Anything, "rec-1", "ing-1", mock.Anything).
			Return(nil, apperr.Validation(i18n.ErrKeyQuantityUsedRequired))

		w := doJSON(router, http.MethodPost, "/api/recipes/rec-1/ingredients/ing-1", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestAssociationHandler_UpdateQuantity tests PUT /api/recipes/:recipeId/ingredients/:ingredientId.
func TestAssociationHandler_UpdateQuantity(t *testing.T) {
	t.Run("replaces the quantity and contribution", func(t *testing.T) {
		router, m := setupRouter(t)
		m.associations.On("UpdateQuantity", mock.Anything, "rec-1", "ing-1", quantityEq("350.5")).
			Return(&model.Association{
				RecipeID:         "rec-1",
				IngredientID:     "ing-1",
				QuantityUsed:     decimal.RequireFromString("350.5"),
				CostContribution: decimal.RequireFromString("8.76"),
			}, nil)

		w := doJSON(router, http.MethodPut, "/api/recipes/rec-1/ingredients/ing-1", `{"quantity_used": 350.5}`)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData[dto.AssociationResponse](t, w)
		assert.True(t, decimal.RequireFromString("350.5").Equal(data.QuantityUsed))
		m.associations.AssertExpectations(t)
	})

	t.Run("pair not associated answers 409", func(t *testing.T) {
		router, m := setupRouter(t)
		m.associations.On("UpdateQuantity", mock.Anything, "rec-1", "ing-9", mock.Anything).
			Return(nil, apperr.Conflict(i18n.ErrKeyNotAssociated))

		w := doJSON(router, http.MethodPut, "/api/recipes/rec-1/ingredients/ing-9", `{"quantity_used": 10}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// TestAssociationHandler_List tests GET /api/recipes/:recipeId/ingredients.
func TestAssociationHandler_List(t *testing.T) {
	t.Run("returns the recipe's ingredient page", func(t *testing.T) {
		router, m := setupRouter(t)

		page := model.NewPage([]model.AssociatedIngredient{
			{
				RecipeID:         "rec-1",
				IngredientID:     "ing-1",
				IngredientName:   "Wheat flour",
				QuantityUsed:     decimal.RequireFromString("200"),
				CostContribution: decimal.RequireFromString("5.02"),
			},
		}, 1, 0, 10)
		m.associations.On("ListForRecipe", mock.Anything, "rec-1", service.PageQuery{
			SortBy:    "cost_contribution",
			Direction: "desc",
		}).Return(&page, nil)

		w := doJSON(router, http.MethodGet, "/api/recipes/rec-1/ingredients?sort=cost_contribution&direction=desc", "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData[dto.PageResponse[dto.AssociatedIngredientResponse]](t, w)
		assert.Len(t, data.Items, 1)
		assert.Equal(t, "Wheat flour", data.Items[0].IngredientName)
		m.associations.AssertExpectations(t)
	})

	t.Run("unknown recipe answers 404", func(t *testing.T) {
		router, m := setupRouter(t)
		m.associations.On("ListForRecipe", mock.Anything, "missing", mock.Anything).
			Return(nil, apperr.NotFound(i18n.ErrKeyRecipeNotFound))

		w := doJSON(router, http.MethodGet, "/api/recipes/missing/ingredients", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
