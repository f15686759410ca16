package service

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const testUserID = "auth0|test"

func newTestCycle(needs, wants, savings float64, income int64) *domain.BudgetCycle {
	return &domain.BudgetCycle{
		ID:         uuid.New(),
		UserID:     testUserID,
		StartDate:  noon(2026, time.September, 25),
		EndDate:    noon(2026, time.October, 24),
		PaydayDay:  25,
		NeedsPct:   needs,
		WantsPct:   wants,
		SavingsPct: savings,
		NetIncome:  decimal.NewFromInt(income),
		Status:     domain.CycleStatusActive,
	}
}

func spendTx(cycle *domain.BudgetCycle, bucket domain.Bucket, amount int64) *domain.BudgetTransaction {
	return &domain.BudgetTransaction{
		ID:         uuid.New(),
		CycleID:    cycle.ID,
		Bucket:     bucket,
		Amount:     decimal.NewFromInt(amount),
		OccurredAt: noon(2026, time.October, 1),
	}
}

// bucketSpend builds one transaction per bucket
func bucketSpend(cycle *domain.BudgetCycle, needs, wants, savings int64) []*domain.BudgetTransaction {
	return []*domain.BudgetTransaction{
		spendTx(cycle, domain.BucketNeeds, needs),
		spendTx(cycle, domain.BucketWants, wants),
		spendTx(cycle, domain.BucketSavings, savings),
	}
}
