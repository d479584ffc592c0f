//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/recipe-cost-service/internal/domain/model"
)

func newTestAssociation(recipeID, ingredientID, quantity, contribution string) *model.Association {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &model.Association{
		RecipeID:         recipeID,
		IngredientID:     ingredientID,
		QuantityUsed:     decimal.RequireFromString(quantity),
		CostContribution: decimal.RequireFromString(contribution),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestAssociationRepository_CreateExistsGet(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewMongoAssociationRepository(db)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "rec-1", "ing-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-1", "250.5", "2.5050")))

	exists, err = repo.Exists(ctx, "rec-1", "ing-1")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.Get(ctx, "rec-1", "ing-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.QuantityUsed.Equal(decimal.RequireFromString("250.5")))
	assert.True(t, got.CostContribution.Equal(decimal.RequireFromString("2.5050")))

	got, err = repo.Get(ctx, "rec-1", "ing-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAssociationRepository_UniquePairIndex(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewMongoAssociationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-1", "100", "1.00")))

	// Same pair again violates the unique (recipe_id, ingredient_id) index
	err := repo.Create(ctx, newTestAssociation("rec-1", "ing-1", "200", "2.00"))
	require.Error(t, err)
	assert.True(t, mongo.IsDuplicateKeyError(err))

	// Other pairs sharing one side are fine
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-2", "50", "0.50")))
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-2", "ing-1", "75", "0.75")))
}

func TestAssociationRepository_UpdateQuantity(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewMongoAssociationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-1", "100", "1.00")))

	err := repo.UpdateQuantity(ctx, "rec-1", "ing-1",
		decimal.RequireFromString("350.5"), decimal.RequireFromString("8.7625"))
	require.NoError(t, err)

	got, err := repo.Get(ctx, "rec-1", "ing-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.QuantityUsed.Equal(decimal.RequireFromString("350.5")))
	assert.True(t, got.CostContribution.Equal(decimal.RequireFromString("8.7625")))

	err = repo.UpdateQuantity(ctx, "rec-1", "missing", decimal.Zero, decimal.Zero)
	assert.Error(t, err)
}

func TestAssociationRepository_ListByIngredient(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	recipes := NewMongoRecipeRepository(db)
	repo := NewMongoAssociationRepository(db)
	ctx := context.Background()

	require.NoError(t, recipes.Create(ctx, newTestRecipe("rec-1", "Sourdough", "12.00")))
	require.NoError(t, recipes.Create(ctx, newTestRecipe("rec-2", "Baguette", "6.50")))
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-flour", "500", "5.00")))
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-2", "ing-flour", "300", "3.00")))
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-salt", "10", "0.05")))

	out, err := repo.ListByIngredient(ctx, "ing-flour")
	require.NoError(t, err)
	require.Len(t, out, 2)

	byRecipe := make(map[string]model.AssociationWithRecipe, len(out))
	for _, a := range out {
		byRecipe[a.RecipeID] = a
	}
	require.Contains(t, byRecipe, "rec-1")
	require.Contains(t, byRecipe, "rec-2")
	// The join carries the recipe's current state
	assert.Equal(t, "Sourdough", byRecipe["rec-1"].Recipe.Name)
	assert.True(t, byRecipe["rec-1"].Recipe.TotalCost.Equal(decimal.RequireFromString("12.00")))
	assert.True(t, byRecipe["rec-2"].QuantityUsed.Equal(decimal.RequireFromString("300")))

	out, err = repo.ListByIngredient(ctx, "ing-missing")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAssociationRepository_DeleteByIngredient(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewMongoAssociationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-1", "100", "1.00")))
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-2", "ing-1", "200", "2.00")))
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-2", "50", "0.50")))

	require.NoError(t, repo.DeleteByIngredient(ctx, "ing-1"))

	exists, err := repo.Exists(ctx, "rec-1", "ing-1")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = repo.Exists(ctx, "rec-2", "ing-1")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = repo.Exists(ctx, "rec-1", "ing-2")
	require.NoError(t, err)
	assert.True(t, exists)

	// Deleting with no matches is a no-op
	require.NoError(t, repo.DeleteByIngredient(ctx, "ing-missing"))
}

func TestAssociationRepository_CountAndListForRecipe(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	ingredients := NewMongoIngredientRepository(db)
	repo := NewMongoAssociationRepository(db)
	ctx := context.Background()

	seed := []struct {
		id, name, price string
	}{
		{"ing-flour", "Flour", "4.99"},
		{"ing-almond", "Almond Flour", "12.50"},
		{"ing-sugar", "Sugar", "3.00"},
	}
	for _, s := range seed {
		require.NoError(t, ingredients.Create(ctx, newTestIngredient(s.id, s.name, s.price)))
	}
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-flour", "500", "5.00")))
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-almond", "200", "5.00")))
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-1", "ing-sugar", "100", "0.60")))
	require.NoError(t, repo.Create(ctx, newTestAssociation("rec-2", "ing-flour", "300", "3.00")))

	t.Run("count without filter", func(t *testing.T) {
		total, err := repo.CountForRecipe(ctx, "rec-1", "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("count filtered by ingredient name", func(t *testing.T) {
		total, err := repo.CountForRecipe(ctx, "rec-1", "flour")
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("count for recipe with no associations", func(t *testing.T) {
		total, err := repo.CountForRecipe(ctx, "rec-missing", "flour")
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("list joins the ingredient name", func(t *testing.T) {
		items, err := repo.ListForRecipe(ctx, "rec-1", ListQuery{SortField: "ingredient.name", Ascending: true, PageIndex: 0, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Almond Flour", items[0].IngredientName)
		assert.Equal(t, "Flour", items[1].IngredientName)
		assert.Equal(t, "Sugar", items[2].IngredientName)
		assert.Equal(t, "rec-1", items[0].RecipeID)
		assert.True(t, items[0].QuantityUsed.Equal(decimal.RequireFromString("200")))
	})

	t.Run("list filtered by ingredient name", func(t *testing.T) {
		items, err := repo.ListForRecipe(ctx, "rec-1", ListQuery{Filter: "flour", SortField: "ingredient.name", Ascending: true, PageIndex: 0, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Almond Flour", items[0].IngredientName)
		assert.Equal(t, "Flour", items[1].IngredientName)
	})

	t.Run("list sorted by contribution descending", func(t *testing.T) {
		items, err := repo.ListForRecipe(ctx, "rec-1", ListQuery{SortField: "cost_contribution", Ascending: false, PageIndex: 0, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Sugar", items[2].IngredientName)
	})

	t.Run("pagination", func(t *testing.T) {
		items, err := repo.ListForRecipe(ctx, "rec-1", ListQuery{SortField: "ingredient.name", Ascending: true, PageIndex: 1, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Sugar", items[0].IngredientName)
	})
}
