// Code generated manually. DO NOT EDIT.

// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/recipe-cost-service/internal/domain/model"
	"github.com/guttosm/recipe-cost-service/internal/repository"
)

// MockIngredientRepository is a testify mock for repository.IngredientRepository.
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ctx context.Context, ingredient *model.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) GetByID(ctx context.Context, id string) (*model.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Update(ctx context.Context, ingredient *model.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIngredientRepository) Count(ctx context.Context, filter string) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIngredientRepository) List(ctx context.Context, q repository.ListQuery) ([]model.Ingredient, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

// MockRecipeRepository is a testify mock for repository.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) UpdateName(ctx context.Context, id, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockRecipeRepository) UpdateTotalCost(ctx context.Context, id string, total decimal.Decimal) error {
	args := m.Called(ctx, id, total)
	return args.Error(0)
}

func (m *MockRecipeRepository) Count(ctx context.Context, filter string) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) List(ctx context.Context, q repository.ListQuery) ([]model.Recipe, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// MockAssociationRepository is a testify mock for repository.AssociationRepository.
type MockAssociationRepository struct {
	mock.Mock
}

func (m *MockAssociationRepository) Exists(ctx context.Context, recipeID, ingredientID string) (bool, error) {
	args := m.Called(ctx, recipeID, ingredientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssociationRepository) Get(ctx context.Context, recipeID, ingredientID string) (*model.Association, error) {
	args := m.Called(ctx, recipeID, ingredientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Association), args.Error(1)
}

func (m *MockAssociationRepository) Create(ctx context.Context, association *model.Association) error {
	args := m.Called(ctx, association)
	return args.Error(0)
}

func (m *MockAssociationRepository) UpdateQuantity(ctx context.Context, recipeID, ingredientID string, quantityUsed, contribution decimal.Decimal) error {
	args := m.Called(ctx, recipeID, ingredientID, quantityUsed, contribution)
	return args.Error(0)
}

func (m *MockAssociationRepository) ListByIngredient(ctx context.Context, ingredientID string) ([]model.AssociationWithRecipe, error) {
	args := m.Called(ctx, ingredientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AssociationWithRecipe), args.Error(1)
}

func (m *MockAssociationRepository) DeleteByIngredient(ctx context.Context, ingredientID string) error {
	args := m.Called(ctx, ingredientID)
	return args.Error(0)
}

func (m *MockAssociationRepository) CountForRecipe(ctx context.Context, recipeID, filter string) (int64, error) {
	args := m.Called(ctx, recipeID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssociationRepository) ListForRecipe(ctx context.Context, recipeID string, q repository.ListQuery) ([]model.AssociatedIngredient, error) {
	args := m.Called(ctx, recipeID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AssociatedIngredient), args.Error(1)
}

// MockUserRepository is a testify mock for repository.UserRepositoryInterface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockLogsRepository is a testify mock for repository.LogsRepositoryInterface.
type MockLogsRepository struct {
	mock.Mock
}

func (m *MockLogsRepository) InsertLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepository) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.LogEntry), args.Get(1).(int64), args.Error(2)
}

// FakeTxnRunner executes the callback directly with the given context. Unit
// tests use it so service transaction bodies run against mocks.
type FakeTxnRunner struct {
	// Err, when set, is returned without invoking the callback.
	Err error
}

func (f *FakeTxnRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.Err != nil {
		return f.Err
	}
	return fn(ctx)
}
