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
	"github.com/guttosm/recipe-cost-service/internal/metrics"
	"github.com/guttosm/recipe-cost-service/internal/repository"
)

// ingredientSortKeys maps public sort keys to ingredient store fields.
var ingredientSortKeys = map[string]string{
	"name":                 "name",
	"quantity_per_package": "quantity_per_package",
	"price_per_package":    "price_per_package",
}

const ingredientDefaultSortField = "name"

// IngredientInput carries the ingredient fields as they arrive from the API
// layer. Pointers distinguish absent values from zero values.
type IngredientInput struct {
	Name               string
	QuantityPerPackage *float64
	PricePerPackage    *decimal.Decimal
}

// IngredientService manages ingredients and the cascades that keep recipe
// totals consistent with ingredient edits.
type IngredientService interface {
	Create(ctx context.Context, in IngredientInput) (*model.Ingredient, error)
	// Update rewrites the ingredient and recomputes the contribution of
	// every association referencing it, adjusting each owning recipe's
	// total. All writes commit atomically.
	Update(ctx context.Context, id string, in IngredientInput) (*model.Ingredient, error)
	// Delete subtracts the ingredient's contributions from every recipe
	// using it, removes those associations, and deletes the ingredient.
	// All writes commit atomically.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q PageQuery) (*model.Page[model.Ingredient], error)
}

// ingredientService implements IngredientService.
type ingredientService struct {
	ingredients  repository.IngredientRepository
	recipes      repository.RecipeRepository
	associations repository.AssociationRepository
	txn          repository.TxnRunner
	calculator   CostCalculator
}

// NewIngredientService creates a new IngredientService.
func NewIngredientService(
	ingredients repository.IngredientRepository,
	recipes repository.RecipeRepository,
	associations repository.AssociationRepository,
	txn repository.TxnRunner,
	calculator CostCalculator,
) IngredientService {
	return &ingredientService{
		ingredients:  ingredients,
		recipes:      recipes,
		associations: associations,
		txn:          txn,
		calculator:   calculator,
	}
}

func validateIngredientName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation(i18n.ErrKeyIngredientNameRequired)
	}
	if len([]rune(name)) > model.MaxNameLength {
		return "", apperr.Validation(i18n.ErrKeyIngredientNameTooLong)
	}
	return name, nil
}

func (s *ingredientService) validateInput(in IngredientInput) (string, error) {
	name, err := validateIngredientName(in.Name)
	if err != nil {
		return "", err
	}
	if err := validatePackageQuantity(in.QuantityPerPackage); err != nil {
		return "", err
	}
	if err := validatePackagePrice(in.PricePerPackage); err != nil {
		return "", err
	}
	return name, nil
}

// Create validates and stores a new ingredient.
func (s *ingredientService) Create(ctx context.Context, in IngredientInput) (*model.Ingredient, error) {
	name, err := s.validateInput(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ingredient := &model.Ingredient{
		ID:                 uuid.NewString(),
		Name:               name,
		QuantityPerPackage: *in.QuantityPerPackage,
		PricePerPackage:    *in.PricePerPackage,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.ingredients.Create(ctx, ingredient); err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	log.Info().
		Str("ingredient_id", ingredient.ID).
		Str("name", ingredient.Name).
		Msg("ingredient created")
	return ingredient, nil
}

// Update implements IngredientService.
func (s *ingredientService) Update(ctx context.Context, id string, in IngredientInput) (*model.Ingredient, error) {
	name, err := s.validateInput(in)
	if err != nil {
		return nil, err
	}

	var updated *model.Ingredient
	err = s.txn.WithTransaction(ctx, func(ctx context.Context) error {
		ingredient, err := s.ingredients.GetByID(ctx, id)
		if err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		if ingredient == nil {
			return apperr.NotFound(i18n.ErrKeyIngredientNotFound)
		}

		ingredient.Name = name
		ingredient.QuantityPerPackage = *in.QuantityPerPackage
		ingredient.PricePerPackage = *in.PricePerPackage
		ingredient.UpdatedAt = time.Now().UTC()

		if err := s.recomputeContributions(ctx, ingredient); err != nil {
			return err
		}

		if err := s.ingredients.Update(ctx, ingredient); err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}

		updated = ingredient
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	log.Info().
		Str("ingredient_id", id).
		Msg("ingredient updated")
	return updated, nil
}

// recomputeContributions recomputes the contribution of every association
// referencing the ingredient and adjusts each owning recipe's total. Each
// association keeps its quantity used; only the unit price changed.
func (s *ingredientService) recomputeContributions(ctx context.Context, ingredient *model.Ingredient) error {
	refs, err := s.associations.ListByIngredient(ctx, ingredient.ID)
	if err != nil {
		return apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	for _, ref := range refs {
		contribution, err := s.calculator.ComputeContribution(
			&ingredient.QuantityPerPackage,
			&ingredient.PricePerPackage,
			&ref.QuantityUsed,
		)
		if err != nil {
			metrics.RecordContributionComputation("error")
			return err
		}
		metrics.RecordContributionComputation("ok")

		if err := s.associations.UpdateQuantity(ctx, ref.RecipeID, ref.IngredientID, ref.QuantityUsed, contribution); err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}

		total := adjustTotal(ref.Recipe.TotalCost, ref.CostContribution, contribution)
		if err := s.recipes.UpdateTotalCost(ctx, ref.RecipeID, total); err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		metrics.RecordTotalAdjustment("ingredient_update")
	}

	metrics.RecordCascadeFanout(len(refs))
	return nil
}

// Delete implements IngredientService.
func (s *ingredientService) Delete(ctx context.Context, id string) error {
	err := s.txn.WithTransaction(ctx, func(ctx context.Context) error {
		ingredient, err := s.ingredients.GetByID(ctx, id)
		if err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		if ingredient == nil {
			return apperr.NotFound(i18n.ErrKeyIngredientNotFound)
		}

		refs, err := s.associations.ListByIngredient(ctx, id)
		if err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}

		for _, ref := range refs {
			total := decimal.Max(ref.Recipe.TotalCost.Sub(ref.CostContribution), decimal.Zero).RoundBank(moneyScale)
			if err := s.recipes.UpdateTotalCost(ctx, ref.RecipeID, total); err != nil {
				return apperr.Wrap(i18n.ErrKeyInternalError, err)
			}
			metrics.RecordTotalAdjustment("ingredient_delete")
		}

		if len(refs) > 0 {
			if err := s.associations.DeleteByIngredient(ctx, id); err != nil {
				return apperr.Wrap(i18n.ErrKeyInternalError, err)
			}
		}
		metrics.RecordCascadeFanout(len(refs))

		if err := s.ingredients.Delete(ctx, id); err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		return nil
	})
	if err != nil {
		return apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	log.Info().
		Str("ingredient_id", id).
		Msg("ingredient deleted")
	return nil
}

// List implements IngredientService.
func (s *ingredientService) List(ctx context.Context, q PageQuery) (*model.Page[model.Ingredient], error) {
	resolved := resolvePageQuery(q, ingredientSortKeys, ingredientDefaultSortField)

	total, err := s.ingredients.Count(ctx, resolved.Filter)
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	pageIndex := ResolvePageIndex(resolved.PageIndex, total, resolved.PageSize)
	items, err := s.ingredients.List(ctx, repository.ListQuery{
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
