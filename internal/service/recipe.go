package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/recipe-cost-service/internal/apperr"
	"github.com/guttosm/recipe-cost-service/internal/domain/model"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
	"github.com/guttosm/recipe-cost-service/internal/repository"
)

// recipeSortKeys maps public sort keys to recipe store fields.
var recipeSortKeys = map[string]string{
	"name":       "name",
	"total_cost": "total_cost",
}

const recipeDefaultSortField = "name"

// RecipeService manages recipes. It never computes totals: a recipe's total
// cost is owned by the association and ingredient cascades and starts at
// zero.
type RecipeService interface {
	Create(ctx context.Context, name string) (*model.Recipe, error)
	// Rename changes the recipe's name and nothing else.
	Rename(ctx context.Context, id, name string) (*model.Recipe, error)
	GetByID(ctx context.Context, id string) (*model.Recipe, error)
	List(ctx context.Context, q PageQuery) (*model.Page[model.Recipe], error)
}

// recipeService implements RecipeService.
type recipeService struct {
	recipes repository.RecipeRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes repository.RecipeRepository) RecipeService {
	return &recipeService{recipes: recipes}
}

func validateRecipeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation(i18n.ErrKeyRecipeNameRequired)
	}
	if len([]rune(name)) > model.MaxNameLength {
		return "", apperr.Validation(i18n.ErrKeyRecipeNameTooLong)
	}
	return name, nil
}

// Create validates and stores a new recipe with a zero total cost.
func (s *recipeService) Create(ctx context.Context, name string) (*model.Recipe, error) {
	name, err := validateRecipeName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	recipe := &model.Recipe{
		ID:        uuid.NewString(),
		Name:      name,
		TotalCost: decimal.Zero.RoundBank(moneyScale),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	log.Info().
		Str("recipe_id", recipe.ID).
		Str("name", recipe.Name).
		Msg("recipe created")
	return recipe, nil
}

// Rename implements RecipeService.
func (s *recipeService) Rename(ctx context.Context, id, name string) (*model.Recipe, error) {
	name, err := validateRecipeName(name)
	if err != nil {
		return nil, err
	}

	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}
	if recipe == nil {
		return nil, apperr.NotFound(i18n.ErrKeyRecipeNotFound)
	}

	if err := s.recipes.UpdateName(ctx, id, name); err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	recipe.Name = name
	log.Info().
		Str("recipe_id", id).
		Msg("recipe renamed")
	return recipe, nil
}

// GetByID returns the recipe with the given id.
func (s *recipeService) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}
	if recipe == nil {
		return nil, apperr.NotFound(i18n.ErrKeyRecipeNotFound)
	}
	return recipe, nil
}

// List implements RecipeService.
func (s *recipeService) List(ctx context.Context, q PageQuery) (*model.Page[model.Recipe], error) {
	resolved := resolvePageQuery(q, recipeSortKeys, recipeDefaultSortField)

	total, err := s.recipes.Count(ctx, resolved.Filter)
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	pageIndex := ResolvePageIndex(resolved.PageIndex, total, resolved.PageSize)
	items, err := s.recipes.List(ctx, repository.ListQuery{
		Filter:    resolved.Filter,
		SortField: resolved.SortField,
		Ascending: resolved.Direction == SortAsc,
		PageIndex: pageIndex,
		PageSize:  resolved.PageSize,
	})
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	page := model.NewPage(items, total, pageIndex, resolved.PageSize)
	return &page, nil
}
