package service

import "github.com/shopspring/decimal"

// TaxCalculatorFunc adapts a plain function to domain.TaxCalculator
type TaxCalculatorFunc func(grossMonthly decimal.Decimal) decimal.Decimal

// NetTakeHome implements domain.TaxCalculator
func (f TaxCalculatorFunc) NetTakeHome(grossMonthly decimal.Decimal) decimal.Decimal {
	return f(grossMonthly)
}

// FlatRateTaxCalculator withholds a single flat rate from gross salary
type FlatRateTaxCalculator struct {
	rate decimal.Decimal
}

// NewFlatRateTaxCalculator creates a calculator for a rate in [0,1). Out of range rates are clamped.
func NewFlatRateTaxCalculator(rate decimal.Decimal) *FlatRateTaxCalculator {
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		rate = decimal.NewFromInt(1)
	}
	return &FlatRateTaxCalculator{rate: rate}
}

// NetTakeHome implements domain.TaxCalculator
func (c *FlatRateTaxCalculator) NetTakeHome(grossMonthly decimal.Decimal) decimal.Decimal {
	if !grossMonthly.IsPositive() {
		return decimal.Zero
	}
	return grossMonthly.Mul(decimal.NewFromInt(1).Sub(c.rate)).Round(2)
}
