package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/guttosm/recipe-cost-service/internal/domain/model"
)

// ListQuery carries resolved listing parameters into a repository. The
// filter is already normalized, the sort field is a store field from an
// allow-list, and the page index is a valid page for the filtered total.
type ListQuery struct {
	Filter    string
	SortField string
	Ascending bool
	PageIndex int
	PageSize  int
}

// IngredientRepository persists ingredients.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *model.Ingredient) error
	GetByID(ctx context.Context, id string) (*model.Ingredient, error)
	Update(ctx context.Context, ingredient *model.Ingredient) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter string) (int64, error)
	List(ctx context.Context, q ListQuery) ([]model.Ingredient, error)
}

// RecipeRepository persists recipes and their derived totals.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	GetByID(ctx context.Context, id string) (*model.Recipe, error)
	UpdateName(ctx context.Context, id, name string) error
	// UpdateTotalCost overwrites the stored total. Callers compute the new
	// total inside a transaction so concurrent adjustments serialize.
	UpdateTotalCost(ctx context.Context, id string, total decimal.Decimal) error
	Count(ctx context.Context, filter string) (int64, error)
	List(ctx context.Context, q ListQuery) ([]model.Recipe, error)
}

// AssociationRepository persists recipe-ingredient associations.
type AssociationRepository interface {
	Exists(ctx context.Context, recipeID, ingredientID string) (bool, error)
	Get(ctx context.Context, recipeID, ingredientID string) (*model.Association, error)
	Create(ctx context.Context, association *model.Association) error
	// UpdateQuantity rewrites the quantity used and the contribution of one
	// association.
	UpdateQuantity(ctx context.Context, recipeID, ingredientID string, quantityUsed, contribution decimal.Decimal) error
	// ListByIngredient returns every association referencing the ingredient,
	// joined with its recipe. Cascades iterate this set.
	ListByIngredient(ctx context.Context, ingredientID string) ([]model.AssociationWithRecipe, error)
	DeleteByIngredient(ctx context.Context, ingredientID string) error
	CountForRecipe(ctx context.Context, recipeID, filter string) (int64, error)
	// ListForRecipe returns a page of the recipe's associations joined with
	// the ingredient name. The filter matches the ingredient name.
	ListForRecipe(ctx context.Context, recipeID string, q ListQuery) ([]model.AssociatedIngredient, error)
}

// TxnRunner executes a function inside a single transaction. Every write
// the function performs through the repositories becomes visible atomically,
// and concurrent transactions touching the same documents serialize or
// abort.
type TxnRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepositoryInterface defines user persistence operations.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// LogsRepositoryInterface defines log persistence operations.
type LogsRepositoryInterface interface {
	InsertLog(ctx context.Context, entry *model.LogEntry) error
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error)
}
