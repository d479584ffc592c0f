// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/shopspring/decimal"
)

// IngredientRequest represents the JSON request body for creating or
// updating an ingredient.
//
// Field presence and positivity are validated by the service layer so the
// API can answer with precise, translated messages per field. Pointers keep
// "absent" distinguishable from "zero".
//
// @Description Ingredient payload with package quantity and package price
// @Example {"name": "Wheat flour", "quantity_per_package": 1000, "price_per_package": 10.00}
type IngredientRequest struct {
	// Name is the ingredient name (at most 100 characters).
	Name string `json:"name" example:"Wheat flour"`
	// QuantityPerPackage is how many units one package holds. Must be greater than 0.
	QuantityPerPackage *float64 `json:"quantity_per_package" example:"1000"`
	// PricePerPackage is the price paid per package. Must be greater than 0.
	PricePerPackage *decimal.Decimal `json:"price_per_package" swaggertype:"number" example:"10.00"`
} // @name IngredientRequest

// RecipeRequest represents the JSON request body for creating or renaming a
// recipe.
//
// @Description Recipe payload
// @Example {"name": "Carrot cake"}
type RecipeRequest struct {
	// Name is the recipe name (at most 100 characters).
	Name string `json:"name" example:"Carrot cake"`
} // @name RecipeRequest

// AssociationRequest represents the JSON request body for linking an
// ingredient to a recipe or changing the quantity used.
//
// @Description Quantity of the ingredient the recipe uses
// @Example {"quantity_used": 200}
type AssociationRequest struct {
	// QuantityUsed is how much of the ingredient the recipe consumes,
	// in the ingredient's package unit. Must be greater than 0.
	QuantityUsed *decimal.Decimal `json:"quantity_used" swaggertype:"number" example:"200"`
} // @name AssociationRequest

// ListRequest carries the query string parameters common to every listing
// endpoint.
type ListRequest struct {
	// Filter is a case-insensitive substring match on the name.
	Filter string `form:"filter"`
	// Page is the zero-based page index. Out-of-range values are clamped.
	Page int `form:"page"`
	// Sort is the public sort key. Unknown keys fall back to the default.
	Sort string `form:"sort"`
	// Direction is asc or desc. Anything else falls back to asc.
	Direction string `form:"direction"`
} // @name ListRequest
