// Package model defines the domain entities for the recipe cost service.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxNameLength is the maximum length, in code points, of ingredient and
// recipe names.
const MaxNameLength = 100

// Ingredient represents a purchasable input with a price per package and a
// quantity per package. Updating either value invalidates the cost
// contribution of every association that references the ingredient.
type Ingredient struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	QuantityPerPackage float64         `json:"quantity_per_package"`
	PricePerPackage    decimal.Decimal `json:"price_per_package"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
