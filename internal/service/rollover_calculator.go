package service

import (
	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateRollover returns the unspent amount per bucket. Overspent buckets roll over zero.
func CalculateRollover(cycle *domain.BudgetCycle, transactions []*domain.BudgetTransaction, monthlyNetIncome decimal.Decimal) domain.RolloverResult {
	result := domain.RolloverResult{
		Needs:   decimal.Zero,
		Wants:   decimal.Zero,
		Savings: decimal.Zero,
	}
	if !monthlyNetIncome.IsPositive() {
		return result
	}

	spend := AggregateSpend(cycle, transactions)
	leftover := func(b domain.Bucket) decimal.Decimal {
		return decimal.Max(decimal.Zero, bucketLimit(cycle, monthlyNetIncome, b).Sub(spend.Spent(b)))
	}

	result.Needs = leftover(domain.BucketNeeds)
	result.Wants = leftover(domain.BucketWants)
	result.Savings = leftover(domain.BucketSavings)
	return result
}
