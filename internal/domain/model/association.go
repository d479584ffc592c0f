package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Association links a recipe to an ingredient it consumes. The pair
// (RecipeID, IngredientID) is unique. CostContribution is derived from the
// ingredient's package values and QuantityUsed at creation/update time and
// persisted redundantly, so recipe-total adjustments can subtract the old
// value without recomputing it.
type Association struct {
	RecipeID         string          `json:"recipe_id"`
	IngredientID     string          `json:"ingredient_id"`
	QuantityUsed     decimal.Decimal `json:"quantity_used"`
	CostContribution decimal.Decimal `json:"cost_contribution"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AssociationWithRecipe carries an association together with its parent
// recipe's current state. It is the unit the cascade paths iterate over
// when an ingredient changes or is removed.
type AssociationWithRecipe struct {
	Association `json:"association"`
	Recipe      Recipe `json:"recipe"`
}

// AssociatedIngredient is a row of the per-recipe ingredient listing: the
// association joined with the ingredient's name for filtering and sorting.
type AssociatedIngredient struct {
	RecipeID         string          `json:"recipe_id"`
	IngredientID     string          `json:"ingredient_id"`
	IngredientName   string          `json:"ingredient_name"`
	QuantityUsed     decimal.Decimal `json:"quantity_used"`
	CostContribution decimal.Decimal `json:"cost_contribution"`
}
