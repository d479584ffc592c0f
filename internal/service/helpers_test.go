package service_test

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func floatPtr(f float64) *float64 { return &f }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func decimalEq(expected string) interface{} {
	want := decimal.RequireFromString(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
