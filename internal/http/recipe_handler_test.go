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

// TestRecipeHandler_Create tests POST /api/recipes.
func TestRecipeHandler_Create(t *testing.T) {
	t.Run("creates a recipe with a zero total", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recipes.On("Create", mock.Anything, "Carrot cake").
			Return(&model.Recipe{ID: "rec-1", Name: "Carrot cake", TotalCost: decimal.Zero}, nil)

		w := doJSON(router, http.MethodPost, "/api/recipes", `{"name": "Carrot cake"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := decodeData[dto.RecipeResponse](t, w)
		assert.Equal(t, "rec-1", data.ID)
		assert.Equal(t, "Carrot cake", data.Name)
		assert.True(t, data.TotalCost.IsZero())
		m.recipes.AssertExpectations(t)
	})

	t.Run("blank name answers 400", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recipes.On("Create", mock.Anything, "").
			Return(nil, apperr.Validation(i18n.ErrKeyRecipeNameRequired))

		w := doJSON(router, http.MethodPost, "/api/recipes", `{"name": ""}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestRecipeHandler_Rename tests PUT /api/recipes/:recipeId.
func TestRecipeHandler_Rename(t *testing.T) {
	t.Run("renames and keeps the total", func(t *testing.T) {
		router, m := setupRouter(t)
		total := decimal.RequireFromString("15.02")
		m.recipes.On("Rename", mock.Anything, "rec-1", "Spiced carrot cake").
			Return(&model.Recipe{ID: "rec-1", Name: "Spiced carrot cake", TotalCost: total}, nil)

		w := doJSON(router, http.MethodPut, "/api/recipes/rec-1", `{"name": "Spiced carrot cake"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData[dto.RecipeResponse](t, w)
		assert.Equal(t, "Spiced carrot cake", data.Name)
		assert.True(t, total.Equal(data.TotalCost))
	})

	t.Run("unknown recipe answers 404", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recipes.On("Rename", mock.Anything, "missing", "X").
			Return(nil, apperr.NotFound(i18n.ErrKeyRecipeNotFound))

		w := doJSON(router, http.MethodPut, "/api/recipes/missing", `{"name": "X"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestRecipeHandler_Get tests GET /api/recipes/:recipeId.
func TestRecipeHandler_Get(t *testing.T) {
	t.Run("returns the recipe", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recipes.On("GetByID", mock.Anything, "rec-1").
			Return(&model.Recipe{ID: "rec-1", Name: "Brioche", TotalCost: decimal.RequireFromString("7.35")}, nil)

		w := doJSON(router, http.MethodGet, "/api/recipes/rec-1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData[dto.RecipeResponse](t, w)
		assert.Equal(t, "Brioche", data.Name)
	})

	t.Run("unknown recipe answers 404", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recipes.On("GetByID", mock.Anything, "missing").
			Return(nil, apperr.NotFound(i18n.ErrKeyRecipeNotFound))

		w := doJSON(router, http.MethodGet, "/api/recipes/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestRecipeHandler_List tests GET /api/recipes.
func TestRecipeHandler_List(t *testing.T) {
	router, m := setupRouter(t)

	page := model.NewPage([]model.Recipe{
		{ID: "rec-1", Name: "Brioche", TotalCost: decimal.RequireFromString("7.35")},
		{ID: "rec-2", Name: "Carrot cake", TotalCost: decimal.RequireFromString("15.02")},
	}, 2, 0, 10)
	m.recipes.On("List", mock.Anything, service.PageQuery{
		Direction: "desc",
		SortBy:    "total_cost",
	}).Return(&page, nil)

	w := doJSON(router, http.MethodGet, "/api/recipes?sort=total_cost&direction=desc", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData[dto.PageResponse[dto.RecipeResponse]](t, w)
	assert.Equal(t, int64(2), data.TotalItems)
	assert.Len(t, data.Items, 2)
	assert.False(t, data.HasNext)
	m.recipes.AssertExpectations(t)
}
