package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Bucket is one of the three top-level spending buckets
type Bucket string

const (
	BucketNeeds   Bucket = "needs"
	BucketWants   Bucket = "wants"
	BucketSavings Bucket = "savings"
)

// Buckets lists every bucket in display order
var Buckets = []Bucket{BucketNeeds, BucketWants, BucketSavings}

// IsValid reports whether the bucket is a known value
func (b Bucket) IsValid() bool {
	switch b {
	case BucketNeeds, BucketWants, BucketSavings:
		return true
	}
	return false
}

// BudgetAllocation is a three-way percentage split expressed as fractions of 1
type BudgetAllocation struct {
	NeedsPct   float64 `json:"needsPct"`
	WantsPct   float64 `json:"wantsPct"`
	SavingsPct float64 `json:"savingsPct"`
}

// Pct returns the percentage assigned to a bucket
func (a BudgetAllocation) Pct(b Bucket) float64 {
	switch b {
	case BucketNeeds:
		return a.NeedsPct
	case BucketWants:
		return a.WantsPct
	case BucketSavings:
		return a.SavingsPct
	}
	return 0
}

// Sum returns the total of the three percentages
func (a BudgetAllocation) Sum() float64 {
	return a.NeedsPct + a.WantsPct + a.SavingsPct
}

// Validate checks that each percentage lies in [0,1] and that they sum to 1 within tolerance
func (a BudgetAllocation) Validate(tolerance float64) error {
	for _, p := range []float64{a.NeedsPct, a.WantsPct, a.SavingsPct} {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return ErrInvalidAllocation
		}
	}
	if math.Abs(a.Sum()-1) > tolerance {
		return ErrInvalidAllocation
	}
	return nil
}

// Strategy names a fixed allocation a user can pick instead of the scored one
type Strategy string

const (
	StrategySurvival   Strategy = "survival"
	StrategyBalanced   Strategy = "balanced"
	StrategyAggressive Strategy = "aggressive"
	// StrategyCustom labels scored allocations that match none of the fixed strategies
	StrategyCustom Strategy = "custom"
)

// IntelligentAllocationResult is the allocation scorer's output with its diagnostics
type IntelligentAllocationResult struct {
	Allocation       BudgetAllocation `json:"allocation"`
	Strategy         Strategy         `json:"strategy"`
	NetIncome        decimal.Decimal  `json:"netIncome"`
	FixedCosts       decimal.Decimal  `json:"fixedCosts"`
	DisposableIncome decimal.Decimal  `json:"disposableIncome"`
	FixedCostRatio   float64          `json:"fixedCostRatio"`
	Reasoning        []string         `json:"reasoning"`
}
