package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/recipe-cost-service/internal/apperr"
	"github.com/guttosm/recipe-cost-service/internal/domain/model"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
	"github.com/guttosm/recipe-cost-service/internal/mocks"
	"github.com/guttosm/recipe-cost-service/internal/repository"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

type associationServiceMocks struct {
	ingredients  *mocks.MockIngredientRepository
	recipes      *mocks.MockRecipeRepository
	associations *mocks.MockAssociationRepository
}

func newAssociationService(t *testing.T) (service.AssociationService, associationServiceMocks) {
	t.Helper()
	m := associationServiceMocks{
		ingredients:  new(mocks.MockIngredientRepository),
		recipes:      new(mocks.MockRecipeRepository),
		associations: new(mocks.MockAssociationRepository),
	}
	svc := service.NewAssociationService(m.ingredients, m.recipes, m.associations, &mocks.FakeTxnRunner{}, service.NewCostCalculatorService())
	return svc, m
}

// TestAssociationService_Create tests association creation and its
// precondition order.
func TestAssociationService_Create(t *testing.T) {
	t.Run("creates the association and adds its contribution", func(t *testing.T) {
		svc, m := newAssociationService(t)

		recipe := &model.Recipe{ID: "rec-1", TotalCost: decimal.RequireFromString("10.00")}
		ingredient := &model.Ingredient{
			ID:                 "ing-1",
			QuantityPerPackage: 500,
			PricePerPackage:    decimal.RequireFromString("25.00"),
		}

		m.associations.On("Exists", mock.Anything, "rec-1", "ing-1").Return(false, nil)
		m.recipes.On("GetByID", mock.Anything, "rec-1").Return(recipe, nil)
		m.ingredients.On("GetByID", mock.Anything, "ing-1").Return(ingredient, nil)
		// Unit price 0.05, quantity used 100.50 => 5.02; 10.00 + 5.02 = 15.02.
		m.recipes.On("UpdateTotalCost", mock.Anything, "rec-1", decimalEq("15.02")).Return(nil)
		m.associations.On("Create", mock.Anything, mock.AnythingOfType("*model.Association")).Return(nil)

		got, err := svc.Create(context.Background(), "rec-1", "ing-1", decPtr("100.50"))

		require.NoError(t, err)
		assert.Equal(t, "rec-1", got.RecipeID)
		assert.Equal(t, "ing-1", got.IngredientID)
		assert.Equal(t, "5.02", got.CostContribution.StringFixed(2))
		m.recipes.AssertExpectations(t)
		m.associations.AssertExpectations(t)
	})

	t.Run("duplicate pair conflicts before any other check", func(t *testing.T) {
		svc, m := newAssociationService(t)
		m.associations.On("Exists", mock.Anything, "rec-1", "ing-1").Return(true, nil)

		got, err := svc.Create(context.Background(), "rec-1", "ing-1", nil)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Equal(t, i18n.ErrKeyAlreadyAssociated, apperr.MessageKeyOf(err))
		m.recipes.AssertNotCalled(t, "GetByID")
		m.ingredients.AssertNotCalled(t, "GetByID")
	})

	t.Run("quantity is validated before the referenced entities", func(t *testing.T) {
		svc, m := newAssociationService(t)
		m.associations.On("Exists", mock.Anything, "rec-1", "ing-1").Return(false, nil)

		_, err := svc.Create(context.Background(), "rec-1", "ing-1", decPtr("0"))

		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Equal(t, i18n.ErrKeyQuantityUsedNotPositive, apperr.MessageKeyOf(err))
		m.recipes.AssertNotCalled(t, "GetByID")
	})

	t.Run("unknown recipe is checked before the ingredient", func(t *testing.T) {
		svc, m := newAssociationService(t)
		m.associations.On("Exists", mock.Anything, "missing", "ing-1").Return(false, nil)
		m.recipes.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		_, err := svc.Create(context.Background(), "missing", "ing-1", decPtr("1"))

		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Equal(t, i18n.ErrKeyRecipeNotFound, apperr.MessageKeyOf(err))
		m.ingredients.AssertNotCalled(t, "GetByID")
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		svc, m := newAssociationService(t)
		recipe := &model.Recipe{ID: "rec-1"}
		m.associations.On("Exists", mock.Anything, "rec-1", "missing").Return(false, nil)
		m.recipes.On("GetByID", mock.Anything, "rec-1").Return(recipe, nil)
		m.ingredients.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		_, err := svc.Create(context.Background(), "rec-1", "missing", decPtr("1"))

		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Equal(t, i18n.ErrKeyIngredientNotFound, apperr.MessageKeyOf(err))
	})
}

// TestAssociationService_UpdateQuantity tests quantity updates and the
// adjusted-total protocol.
func TestAssociationService_UpdateQuantity(t *testing.T) {
	t.Run("replaces the old contribution in the total", func(t *testing.T) {
		svc, m := newAssociationService(t)

		recipe := &model.Recipe{ID: "rec-1", TotalCost: decimal.RequireFromString("50.00")}
		ingredient := &model.Ingredient{
			ID:                 "ing-1",
			QuantityPerPackage: 2,
			PricePerPackage:    decimal.RequireFromString("7.00"),
		}
		association := &model.Association{
			RecipeID:         "rec-1",
			IngredientID:     "ing-1",
			QuantityUsed:     decimal.RequireFromString("1"),
			CostContribution: decimal.RequireFromString("5.00"),
		}

		m.recipes.On("GetByID", mock.Anything, "rec-1").Return(recipe, nil)
		m.ingredients.On("GetByID", mock.Anything, "ing-1").Return(ingredient, nil)
		m.associations.On("Get", mock.Anything, "rec-1", "ing-1").Return(association, nil)
		// Unit price 3.50, new quantity 2 => 7.00; 50.00 - 5.00 + 7.00 = 52.00.
		m.recipes.On("UpdateTotalCost", mock.Anything, "rec-1", decimalEq("52.00")).Return(nil)
		m.associations.On("UpdateQuantity", mock.Anything, "rec-1", "ing-1", decimalEq("2"), decimalEq("7.00")).Return(nil)

		got, err := svc.UpdateQuantity(context.Background(), "rec-1", "ing-1", decPtr("2"))

		require.NoError(t, err)
		assert.Equal(t, "7.00", got.CostContribution.StringFixed(2))
		assert.Equal(t, "2", got.QuantityUsed.String())
		m.recipes.AssertExpectations(t)
		m.associations.AssertExpectations(t)
	})

	t.Run("missing association is a conflict, not a not-found", func(t *testing.T) {
		svc, m := newAssociationService(t)

		recipe := &model.Recipe{ID: "rec-1"}
		ingredient := &model.Ingredient{ID: "ing-1", QuantityPerPackage: 2, PricePerPackage: decimal.RequireFromString("7.00")}
		m.recipes.On("GetByID", mock.Anything, "rec-1").Return(recipe, nil)
		m.ingredients.On("GetByID", mock.Anything, "ing-1").Return(ingredient, nil)
		m.associations.On("Get", mock.Anything, "rec-1", "ing-1").Return(nil, nil)

		got, err := svc.UpdateQuantity(context.Background(), "rec-1", "ing-1", decPtr("2"))

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Equal(t, i18n.ErrKeyNotAssociated, apperr.MessageKeyOf(err))
	})

	t.Run("entities are checked before the association", func(t *testing.T) {
		svc, m := newAssociationService(t)
		m.recipes.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		_, err := svc.UpdateQuantity(context.Background(), "missing", "ing-1", decPtr("2"))

		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		m.associations.AssertNotCalled(t, "Get")
	})
}

// TestAssociationService_ListForRecipe tests the per-recipe listing.
func TestAssociationService_ListForRecipe(t *testing.T) {
	t.Run("returns a page of associated ingredients", func(t *testing.T) {
		svc, m := newAssociationService(t)

		recipe := &model.Recipe{ID: "rec-1"}
		m.recipes.On("GetByID", mock.Anything, "rec-1").Return(recipe, nil)
		m.associations.On("CountForRecipe", mock.Anything, "rec-1", "butter").Return(int64(1), nil)
		m.associations.On("ListForRecipe", mock.Anything, "rec-1", repository.ListQuery{
			Filter:    "butter",
			SortField: "ingredient.name",
			Ascending: true,
			PageIndex: 0,
			PageSize:  service.DefaultPageSize,
		}).Return([]model.AssociatedIngredient{{RecipeID: "rec-1", IngredientID: "ing-1", IngredientName: "Butter"}}, nil)

		page, err := svc.ListForRecipe(context.Background(), "rec-1", service.PageQuery{Filter: "butter"})

		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, "Butter", page.Items[0].IngredientName)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		svc, m := newAssociationService(t)
		m.recipes.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		page, err := svc.ListForRecipe(context.Background(), "missing", service.PageQuery{})

		require.Error(t, err)
		assert.Nil(t, page)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		m.associations.AssertNotCalled(t, "CountForRecipe")
	})
}
