// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/domain/model"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

// MockIngredientService is a testify mock for service.IngredientService.
type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) Create(ctx context.Context, in service.IngredientInput) (*model.Ingredient, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientService) Update(ctx context.Context, id string, in service.IngredientInput) (*model.Ingredient, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIngredientService) List(ctx context.Context, q service.PageQuery) (*model.Page[model.Ingredient], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Ingredient]), args.Error(1)
}

// MockRecipeService is a testify mock for service.RecipeService.
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, name string) (*model.Recipe, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) Rename(ctx context.Context, id, name string) (*model.Recipe, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context, q service.PageQuery) (*model.Page[model.Recipe], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Recipe]), args.Error(1)
}

// MockAssociationService is a testify mock for service.AssociationService.
type MockAssociationService struct {
	mock.Mock
}

func (m *MockAssociationService) Create(ctx context.Context, recipeID, ingredientID string, quantityUsed *decimal.Decimal) (*model.Association, error) {
	args := m.Called(ctx, recipeID, ingredientID, quantityUsed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Association), args.Error(1)
}

func (m *MockAssociationService) UpdateQuantity(ctx context.Context, recipeID, ingredientID string, quantityUsed *decimal.Decimal) (*model.Association, error) {
	args := m.Called(ctx, recipeID, ingredientID, quantityUsed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Association), args.Error(1)
}

func (m *MockAssociationService) ListForRecipe(ctx context.Context, recipeID string, q service.PageQuery) (*model.Page[model.AssociatedIngredient], error) {
	args := m.Called(ctx, recipeID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.AssociatedIngredient]), args.Error(1)
}

// MockLoggingService is a testify mock for service.LoggingService.
type MockLoggingService struct {
	mock.Mock
}

// NewMockLoggingService creates a new mock with expectations asserted on
// test cleanup.
func NewMockLoggingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLoggingService {
	m := &MockLoggingService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.LogEntry), args.Get(1).(int64), args.Error(2)
}

// MockAuthService is a testify mock for service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name string) (string, *model.User, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*dto.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *MockAuthService) TokenTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
