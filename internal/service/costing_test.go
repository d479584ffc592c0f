package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/recipe-cost-service/internal/apperr"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
)

func floatPtr(f float64) *float64 { return &f }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// TestCostCalculatorService_ComputeContribution tests the contribution formula.
func TestCostCalculatorService_ComputeContribution(t *testing.T) {
	svc := NewCostCalculatorService()

	tests := []struct {
		name            string
		packageQuantity *float64
		packagePrice    *decimal.Decimal
		quantityUsed    *decimal.Decimal
		expected        string
	}{
		{
			name:            "exact unit price",
			packageQuantity: floatPtr(500),
			packagePrice:    decPtr("25.00"),
			quantityUsed:    decPtr("100.50"),
			expected:        "5.02",
		},
		{
			name:            "whole cent unit price",
			packageQuantity: floatPtr(1000),
			packagePrice:    decPtr("10.00"),
			quantityUsed:    decPtr("200"),
			expected:        "2.00",
		},
		{
			name:            "repeating decimal unit price rounds at six places",
			packageQuantity: floatPtr(3),
			packagePrice:    decPtr("1.00"),
			quantityUsed:    decPtr("3"),
			expected:        "1.00",
		},
		{
			name:            "half cent rounds to even",
			packageQuantity: floatPtr(2),
			packagePrice:    decPtr("0.05"),
			quantityUsed:    decPtr("1"),
			expected:        "0.02",
		},
		{
			name:            "fractional package quantity",
			packageQuantity: floatPtr(2.5),
			packagePrice:    decPtr("10.00"),
			quantityUsed:    decPtr("1.25"),
			expected:        "5.00",
		},
		{
			name:            "large quantities",
			packageQuantity: floatPtr(10000),
			packagePrice:    decPtr("123.45"),
			quantityUsed:    decPtr("9999"),
			expected:        "123.44",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ComputeContribution(tt.packageQuantity, tt.packagePrice, tt.quantityUsed)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

// TestCostCalculatorService_ComputeContribution_Deterministic verifies that
// repeated computations on the same inputs give identical results.
func TestCostCalculatorService_ComputeContribution_Deterministic(t *testing.T) {
	svc := NewCostCalculatorService()

	first, err := svc.ComputeContribution(floatPtr(7), decPtr("19.99"), decPtr("3.33"))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		got, err := svc.ComputeContribution(floatPtr(7), decPtr("19.99"), decPtr("3.33"))
		require.NoError(t, err)
		assert.True(t, first.Equal(got))
	}
}

// TestCostCalculatorService_ComputeContribution_Validation tests the
// precondition failures and their message keys.
func TestCostCalculatorService_ComputeContribution_Validation(t *testing.T) {
	svc := NewCostCalculatorService()

	tests := []struct {
		name            string
		packageQuantity *float64
		packagePrice    *decimal.Decimal
		quantityUsed    *decimal.Decimal
		expectedKey     string
	}{
		{
			name:         "missing package quantity",
			packagePrice: decPtr("10.00"),
			quantityUsed: decPtr("1"),
			expectedKey:  i18n.ErrKeyPackageQuantityRequired,
		},
		{
			name:            "zero package quantity",
			packageQuantity: floatPtr(0),
			packagePrice:    decPtr("10.00"),
			quantityUsed:    decPtr("1"),
			expectedKey:     i18n.ErrKeyPackageQuantityNotPositive,
		},
		{
			name:            "negative package quantity",
			packageQuantity: floatPtr(-5),
			packagePrice:    decPtr("10.00"),
			quantityUsed:    decPtr("1"),
			expectedKey:     i18n.ErrKeyPackageQuantityNotPositive,
		},
		{
			name:            "missing package price",
			packageQuantity: floatPtr(10),
			quantityUsed:    decPtr("1"),
			expectedKey:     i18n.ErrKeyPackagePriceRequired,
		},
		{
			name:            "zero package price",
			packageQuantity: floatPtr(10),
			packagePrice:    decPtr("0"),
			quantityUsed:    decPtr("1"),
			expectedKey:     i18n.ErrKeyPackagePriceNotPositive,
		},
		{
			name:            "missing quantity used",
			packageQuantity: floatPtr(10),
			packagePrice:    decPtr("10.00"),
			expectedKey:     i18n.ErrKeyQuantityUsedRequired,
		},
		{
			name:            "negative quantity used",
			packageQuantity: floatPtr(10),
			packagePrice:    decPtr("10.00"),
			quantityUsed:    decPtr("-1"),
			expectedKey:     i18n.ErrKeyQuantityUsedNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ComputeContribution(tt.packageQuantity, tt.packagePrice, tt.quantityUsed)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Equal(t, tt.expectedKey, apperr.MessageKeyOf(err))
			assert.True(t, got.IsZero())
		})
	}
}

// TestAdjustTotal tests the recipe-total update protocol.
func TestAdjustTotal(t *testing.T) {
	tests := []struct {
		name            string
		currentTotal    string
		oldContribution string
		newContribution string
		expected        string
	}{
		{
			name:            "replace contribution",
			currentTotal:    "50.00",
			oldContribution: "5.00",
			newContribution: "7.00",
			expected:        "52.00",
		},
		{
			name:            "shrink contribution",
			currentTotal:    "150.00",
			oldContribution: "30.25",
			newContribution: "5.00",
			expected:        "124.75",
		},
		{
			name:            "stale contribution larger than total clamps at zero",
			currentTotal:    "3.00",
			oldContribution: "10.00",
			newContribution: "1.50",
			expected:        "1.50",
		},
		{
			name:            "zero old contribution is pure addition",
			currentTotal:    "10.00",
			oldContribution: "0",
			newContribution: "2.50",
			expected:        "12.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjustTotal(
				decimal.RequireFromString(tt.currentTotal),
				decimal.RequireFromString(tt.oldContribution),
				decimal.RequireFromString(tt.newContribution),
			)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}
