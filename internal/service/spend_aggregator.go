package service

import (
	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// progressWarningThreshold is the used percentage at which a budget turns to warning
var progressWarningThreshold = decimal.NewFromInt(90)

// SpendSummary holds a cycle's actual spend
type SpendSummary struct {
	ByBucket      map[domain.Bucket]decimal.Decimal
	ByCategory    map[uuid.UUID]decimal.Decimal
	Uncategorized map[domain.Bucket]decimal.Decimal
}

// Spent returns the total for a bucket
func (s SpendSummary) Spent(b domain.Bucket) decimal.Decimal {
	if v, ok := s.ByBucket[b]; ok {
		return v
	}
	return decimal.Zero
}

// AggregateSpend totals the cycle's transactions by bucket and by category.
// Transactions that belong to another cycle or carry an unknown bucket are ignored.
func AggregateSpend(cycle *domain.BudgetCycle, transactions []*domain.BudgetTransaction) SpendSummary {
	summary := SpendSummary{
		ByBucket:      make(map[domain.Bucket]decimal.Decimal, len(domain.Buckets)),
		ByCategory:    make(map[uuid.UUID]decimal.Decimal),
		Uncategorized: make(map[domain.Bucket]decimal.Decimal, len(domain.Buckets)),
	}
	for _, b := range domain.Buckets {
		summary.ByBucket[b] = decimal.Zero
		summary.Uncategorized[b] = decimal.Zero
	}

	for _, tx := range transactions {
		if tx == nil || tx.CycleID != cycle.ID || !tx.Bucket.IsValid() {
			continue
		}
		summary.ByBucket[tx.Bucket] = summary.ByBucket[tx.Bucket].Add(tx.Amount)
		if tx.CategoryID != nil {
			summary.ByCategory[*tx.CategoryID] = summary.ByCategory[*tx.CategoryID].Add(tx.Amount)
		} else {
			summary.Uncategorized[tx.Bucket] = summary.Uncategorized[tx.Bucket].Add(tx.Amount)
		}
	}

	return summary
}

// bucketLimit is income times the cycle's stored percentage for a bucket
func bucketLimit(cycle *domain.BudgetCycle, income decimal.Decimal, b domain.Bucket) decimal.Decimal {
	return income.Mul(decimal.NewFromFloat(cycle.Allocation().Pct(b)))
}

// SummarizeCycle builds the plan-vs-actual view of a cycle
func SummarizeCycle(cycle *domain.BudgetCycle, categories []*domain.BudgetCategory, transactions []*domain.BudgetTransaction, income decimal.Decimal) *domain.CycleSummary {
	spend := AggregateSpend(cycle, transactions)
	if income.IsNegative() {
		income = decimal.Zero
	}

	summary := &domain.CycleSummary{
		Cycle:      cycle,
		TotalLimit: decimal.Zero,
		TotalSpent: decimal.Zero,
		Buckets:    make([]domain.BucketProgress, 0, len(domain.Buckets)),
		Categories: make([]domain.CategoryProgress, 0, len(categories)),
	}

	for _, b := range domain.Buckets {
		limit := bucketLimit(cycle, income, b)
		spent := spend.Spent(b)
		summary.TotalLimit = summary.TotalLimit.Add(limit)
		summary.TotalSpent = summary.TotalSpent.Add(spent)
		summary.Buckets = append(summary.Buckets, domain.BucketProgress{
			Bucket:         b,
			Pct:            cycle.Allocation().Pct(b),
			BudgetProgress: calculateProgress(limit, spent),
			Uncategorized:  spend.Uncategorized[b],
		})
	}

	for _, cat := range categories {
		if cat == nil || cat.CycleID != cycle.ID {
			continue
		}
		spent, ok := spend.ByCategory[cat.ID]
		if !ok {
			spent = decimal.Zero
		}
		summary.Categories = append(summary.Categories, domain.CategoryProgress{
			CategoryID:     cat.ID.String(),
			CategoryName:   cat.Name,
			Bucket:         cat.Bucket,
			BudgetProgress: calculateProgress(cat.LimitAmount, spent),
		})
	}

	return summary
}

// calculateProgress computes remaining, percentage used and status for a limit
func calculateProgress(limit, spent decimal.Decimal) domain.BudgetProgress {
	progress := domain.BudgetProgress{
		Limit:      limit,
		Spent:      spent,
		Remaining:  limit.Sub(spent),
		Percentage: decimal.Zero,
		Status:     domain.ProgressOnTrack,
	}

	if limit.IsPositive() {
		progress.Percentage = spent.Div(limit).Mul(decimal.NewFromInt(100)).Round(1)
	} else if spent.IsPositive() {
		// Any spend against a zero limit is over budget
		progress.Percentage = decimal.NewFromInt(100)
		progress.Status = domain.ProgressOver
		return progress
	}

	switch {
	case spent.GreaterThan(limit):
		progress.Status = domain.ProgressOver
	case progress.Percentage.GreaterThanOrEqual(progressWarningThreshold):
		progress.Status = domain.ProgressWarning
	}
	return progress
}
