package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/recipe-cost-service/internal/apperr"
	"github.com/guttosm/recipe-cost-service/internal/domain/model"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
	"github.com/guttosm/recipe-cost-service/internal/metrics"
	"github.com/guttosm/recipe-cost-service/internal/repository"
)

// associationSortKeys maps public sort keys to the fields of the
// association-with-ingredient join.
var associationSortKeys = map[string]string{
	"ingredient_name":   "ingredient.name",
	"quantity_used":     "quantity_used",
	"cost_contribution": "cost_contribution",
}

const associationDefaultSortField = "ingredient.name"

// AssociationService manages recipe-ingredient associations and owns the
// recipe-total update protocol: subtract the old contribution, add the new
// one, never let a total go negative.
type AssociationService interface {
	// Create links an ingredient to a recipe. The contribution is computed
	// from the ingredient's current package values and added to the recipe
	// total. Fails with a conflict when the pair is already linked.
	Create(ctx context.Context, recipeID, ingredientID string, quantityUsed *decimal.Decimal) (*model.Association, error)
	// UpdateQuantity changes how much of the ingredient the recipe uses and
	// swaps the old contribution for the recomputed one in the recipe total.
	// Fails with a conflict when the pair is not linked.
	UpdateQuantity(ctx context.Context, recipeID, ingredientID string, quantityUsed *decimal.Decimal) (*model.Association, error)
	// ListForRecipe returns a page of the recipe's ingredients with their
	// quantities and contributions. The filter matches the ingredient name.
	ListForRecipe(ctx context.Context, recipeID string, q PageQuery) (*model.Page[model.AssociatedIngredient], error)
}

// associationService implements AssociationService.
type associationService struct {
	ingredients  repository.IngredientRepository
	recipes      repository.RecipeRepository
	associations repository.AssociationRepository
	txn          repository.TxnRunner
	calculator   CostCalculator
}

// NewAssociationService creates a new AssociationService.
func NewAssociationService(
	ingredients repository.IngredientRepository,
	recipes repository.RecipeRepository,
	associations repository.AssociationRepository,
	txn repository.TxnRunner,
	calculator CostCalculator,
) AssociationService {
	return &associationService{
		ingredients:  ingredients,
		recipes:      recipes,
		associations: associations,
		txn:          txn,
		calculator:   calculator,
	}
}

// Create implements AssociationService. Precondition order matters: the
// duplicate check comes first, then the quantity, then the referenced
// entities.
func (s *associationService) Create(ctx context.Context, recipeID, ingredientID string, quantityUsed *decimal.Decimal) (*model.Association, error) {
	var created *model.Association
	err := s.txn.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.associations.Exists(ctx, recipeID, ingredientID)
		if err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		if exists {
			return apperr.Conflict(i18n.ErrKeyAlreadyAssociated)
		}

		if err := validateQuantityUsed(quantityUsed); err != nil {
			return err
		}

		recipe, err := s.recipes.GetByID(ctx, recipeID)
		if err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		if recipe == nil {
			return apperr.NotFound(i18n.ErrKeyRecipeNotFound)
		}

		ingredient, err := s.ingredients.GetByID(ctx, ingredientID)
		if err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		if ingredient == nil {
			return apperr.NotFound(i18n.ErrKeyIngredientNotFound)
		}

		contribution, err := s.calculator.ComputeContribution(
			&ingredient.QuantityPerPackage,
			&ingredient.PricePerPackage,
			quantityUsed,
		)
		if err != nil {
			metrics.RecordContributionComputation("error")
			return err
		}
		metrics.RecordContributionComputation("ok")

		// Pure addition: nothing to subtract, so no clamp is needed.
		total := recipe.TotalCost.Add(contribution).RoundBank(moneyScale)
		if err := s.recipes.UpdateTotalCost(ctx, recipeID, total); err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		metrics.RecordTotalAdjustment("association_create")

		now := time.Now().UTC()
		association := &model.Association{
			RecipeID:         recipeID,
			IngredientID:     ingredientID,
			QuantityUsed:     *quantityUsed,
			CostContribution: contribution,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.associations.Create(ctx, association); err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}

		created = association
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	log.Info().
		Str("recipe_id", recipeID).
		Str("ingredient_id", ingredientID).
		Str("contribution", created.CostContribution.StringFixed(moneyScale)).
		Msg("association created")
	return created, nil
}

// UpdateQuantity implements AssociationService. Unlike Create, the
// referenced entities are checked before the association itself.
func (s *associationService) UpdateQuantity(ctx context.Context, recipeID, ingredientID string, quantityUsed *decimal.Decimal) (*model.Association, error) {
	var updated *model.Association
	err := s.txn.WithTransaction(ctx, func(ctx context.Context) error {
		recipe, err := s.recipes.GetByID(ctx, recipeID)
		if err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		if recipe == nil {
			return apperr.NotFound(i18n.ErrKeyRecipeNotFound)
		}

		ingredient, err := s.ingredients.GetByID(ctx, ingredientID)
		if err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		if ingredient == nil {
			return apperr.NotFound(i18n.ErrKeyIngredientNotFound)
		}

		association, err := s.associations.Get(ctx, recipeID, ingredientID)
		if err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		if association == nil {
			return apperr.Conflict(i18n.ErrKeyNotAssociated)
		}

		if err := validateQuantityUsed(quantityUsed); err != nil {
			return err
		}

		contribution, err := s.calculator.ComputeContribution(
			&ingredient.QuantityPerPackage,
			&ingredient.PricePerPackage,
			quantityUsed,
		)
		if err != nil {
			metrics.RecordContributionComputation("error")
			return err
		}
		metrics.RecordContributionComputation("ok")

		total := adjustTotal(recipe.TotalCost, association.CostContribution, contribution)
		if err := s.recipes.UpdateTotalCost(ctx, recipeID, total); err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}
		metrics.RecordTotalAdjustment("association_update")

		if err := s.associations.UpdateQuantity(ctx, recipeID, ingredientID, *quantityUsed, contribution); err != nil {
			return apperr.Wrap(i18n.ErrKeyInternalError, err)
		}

		association.QuantityUsed = *quantityUsed
		association.CostContribution = contribution
		association.UpdatedAt = time.Now().UTC()
		updated = association
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	log.Info().
		Str("recipe_id", recipeID).
		Str("ingredient_id", ingredientID).
		Str("contribution", updated.CostContribution.StringFixed(moneyScale)).
		Msg("association quantity updated")
	return updated, nil
}

// ListForRecipe implements AssociationService.
func (s *associationService) ListForRecipe(ctx context.Context, recipeID string, q PageQuery) (*model.Page[model.AssociatedIngredient], error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}
	if recipe == nil {
		return nil, apperr.NotFound(i18n.ErrKeyRecipeNotFound)
	}

	resolved := resolvePageQuery(q, associationSortKeys, associationDefaultSortField)

	total, err := s.associations.CountForRecipe(ctx, recipeID, resolved.Filter)
	if err != nil {
		return nil, apperr.Wrap(i18n.ErrKeyInternalError, err)
	}

	pageIndex := ResolvePageIndex(resolved.PageIndex, total, resolved.PageSize)
	items, err := s.associations.ListForRecipe(ctx, recipeID, repository.ListQuery{
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
