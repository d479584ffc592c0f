package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe represents a named product whose total ingredient cost is tracked
// in aggregate. TotalCost is derived: it is only ever written by the cost
// engine as old total minus a stale or removed contribution (clamped at
// zero) plus a fresh contribution, and it is always rounded to two decimal
// places.
type Recipe struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	TotalCost decimal.Decimal `json:"total_cost"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
