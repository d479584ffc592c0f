// Package service implements the cost aggregation and consistency engine:
// contribution computation, the recipe-total update protocol, and the
// cascades that keep recipe totals in sync with ingredient edits.
package service

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/recipe-cost-service/internal/apperr"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
)

const (
	// unitPriceScale is the intermediate precision of the per-unit price.
	// Rounding the division at six places avoids compounding rounding error
	// before the final monetary rounding.
	unitPriceScale = 6
	// moneyScale is the scale of every monetary amount that leaves the
	// engine.
	moneyScale = 2
)

// CostCalculator derives the monetary contribution of one association from
// the ingredient's package values and the quantity used.
type CostCalculator interface {
	// ComputeContribution returns round2(round6(packagePrice /
	// packageQuantity) * quantityUsed), both roundings half-to-even.
	// Pointer arguments distinguish "absent" from "zero"; each precondition
	// failure is a distinct validation error.
	ComputeContribution(packageQuantity *float64, packagePrice, quantityUsed *decimal.Decimal) (decimal.Decimal, error)
}

// CostCalculatorService implements CostCalculator. It is pure: no state, no
// side effects, deterministic given inputs.
type CostCalculatorService struct{}

// NewCostCalculatorService creates a new CostCalculatorService.
func NewCostCalculatorService() *CostCalculatorService {
	return &CostCalculatorService{}
}

// ComputeContribution implements CostCalculator.
func (s *CostCalculatorService) ComputeContribution(packageQuantity *float64, packagePrice, quantityUsed *decimal.Decimal) (decimal.Decimal, error) {
	if err := validatePackageQuantity(packageQuantity); err != nil {
		return decimal.Zero, err
	}
	if err := validatePackagePrice(packagePrice); err != nil {
		return decimal.Zero, err
	}
	if err := validateQuantityUsed(quantityUsed); err != nil {
		return decimal.Zero, err
	}

	unitPrice := packagePrice.Div(decimal.NewFromFloat(*packageQuantity)).RoundBank(unitPriceScale)

	return unitPrice.Mul(*quantityUsed).RoundBank(moneyScale), nil
}

func validatePackageQuantity(packageQuantity *float64) error {
	if packageQuantity == nil {
		return apperr.Validation(i18n.ErrKeyPackageQuantityRequired)
	}
	if *packageQuantity <= 0 {
		return apperr.Validation(i18n.ErrKeyPackageQuantityNotPositive)
	}
	return nil
}

func validatePackagePrice(packagePrice *decimal.Decimal) error {
	if packagePrice == nil {
		return apperr.Validation(i18n.ErrKeyPackagePriceRequired)
	}
	if packagePrice.Sign() <= 0 {
		return apperr.Validation(i18n.ErrKeyPackagePriceNotPositive)
	}
	return nil
}

func validateQuantityUsed(quantityUsed *decimal.Decimal) error {
	if quantityUsed == nil {
		return apperr.Validation(i18n.ErrKeyQuantityUsedRequired)
	}
	if quantityUsed.Sign() <= 0 {
		return apperr.Validation(i18n.ErrKeyQuantityUsedNotPositive)
	}
	return nil
}

// adjustTotal applies the recipe-total update protocol: subtract the stale
// contribution (clamped at zero so the total can never go negative), add
// the fresh one, and round to the monetary scale. The clamp must never
// trigger under correct bookkeeping; it guards against accumulated drift.
func adjustTotal(currentTotal, oldContribution, newContribution decimal.Decimal) decimal.Decimal {
	return decimal.Max(currentTotal.Sub(oldContribution), decimal.Zero).
		Add(newContribution).
		RoundBank(moneyScale)
}
