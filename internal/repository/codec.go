package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Monetary values are stored as Decimal128 so the database holds the exact
// decimal the engine computed, not a float approximation.

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	out, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode decimal %q: %w", d.String(), err)
	}
	return out, nil
}

func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	out, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decode decimal %q: %w", d.String(), err)
	}
	return out, nil
}

// mustDecimal128 is for values the engine already validated and rounded.
// ParseDecimal128 only fails on malformed strings, which decimal.Decimal
// cannot produce.
func mustDecimal128(d decimal.Decimal) primitive.Decimal128 {
	out, err := toDecimal128(d)
	if err != nil {
		panic(err)
	}
	return out
}
