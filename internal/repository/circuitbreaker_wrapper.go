// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/guttosm/recipe-cost-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-cost-service/internal/domain/model"
)

// The wrappers protect the read and listing paths only. Writes run inside
// transactions whose aborts already fail the whole operation, and counting
// those aborts as breaker failures would trip the breaker on contention
// rather than on an unhealthy database.

// IngredientRepositoryWithCircuitBreaker wraps an IngredientRepository with
// circuit breaker protection on reads.
type IngredientRepositoryWithCircuitBreaker struct {
	repo           IngredientRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewIngredientRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewIngredientRepositoryWithCircuitBreaker(repo IngredientRepository, cb *circuitbreaker.CircuitBreaker) *IngredientRepositoryWithCircuitBreaker {
	return &IngredientRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a new ingredient.
func (r *IngredientRepositoryWithCircuitBreaker) Create(ctx context.Context, ingredient *model.Ingredient) error {
	return r.repo.Create(ctx, ingredient)
}

// GetByID returns the ingredient with circuit breaker protection.
func (r *IngredientRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.Ingredient, error) {
	var result *model.Ingredient
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// Update overwrites the ingredient's mutable fields.
func (r *IngredientRepositoryWithCircuitBreaker) Update(ctx context.Context, ingredient *model.Ingredient) error {
	return r.repo.Update(ctx, ingredient)
}

// Delete removes the ingredient.
func (r *IngredientRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.repo.Delete(ctx, id)
}

// Count returns the filtered total with circuit breaker protection.
func (r *IngredientRepositoryWithCircuitBreaker) Count(ctx context.Context, filter string) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, filter)
		return cbErr
	})
	return result, err
}

// List returns one page of ingredients with circuit breaker protection.
func (r *IngredientRepositoryWithCircuitBreaker) List(ctx context.Context, q ListQuery) ([]model.Ingredient, error) {
	var result []model.Ingredient
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, q)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *IngredientRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// RecipeRepositoryWithCircuitBreaker wraps a RecipeRepository with circuit
// breaker protection on reads.
type RecipeRepositoryWithCircuitBreaker struct {
	repo           RecipeRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRecipeRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRecipeRepositoryWithCircuitBreaker(repo RecipeRepository, cb *circuitbreaker.CircuitBreaker) *RecipeRepositoryWithCircuitBreaker {
	return &RecipeRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a new recipe.
func (r *RecipeRepositoryWithCircuitBreaker) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.repo.Create(ctx, recipe)
}

// GetByID returns the recipe with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	var result *model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// UpdateName renames the recipe.
func (r *RecipeRepositoryWithCircuitBreaker) UpdateName(ctx context.Context, id, name string) error {
	return r.repo.UpdateName(ctx, id, name)
}

// UpdateTotalCost overwrites the stored total cost.
func (r *RecipeRepositoryWithCircuitBreaker) UpdateTotalCost(ctx context.Context, id string, total decimal.Decimal) error {
	return r.repo.UpdateTotalCost(ctx, id, total)
}

// Count returns the filtered total with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) Count(ctx context.Context, filter string) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, filter)
		return cbErr
	})
	return result, err
}

// List returns one page of recipes with circuit breaker protection.
func (r *RecipeRepositoryWithCircuitBreaker) List(ctx context.Context, q ListQuery) ([]model.Recipe, error) {
	var result []model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, q)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RecipeRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// InsertLog stores a single log entry with circuit breaker protection.
// If the circuit is open the entry is dropped: logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) InsertLog(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.InsertLog(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// QueryLogs retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error) {
	var (
		result []model.LogEntry
		total  int64
	)
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, total, cbErr = r.repo.QueryLogs(ctx, opts)
		return cbErr
	})
	return result, total, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
