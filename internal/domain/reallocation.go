package domain

import "github.com/shopspring/decimal"

// BucketVariance describes how far a bucket's spend strayed from its limit
type BucketVariance struct {
	Bucket Bucket          `json:"bucket"`
	Amount decimal.Decimal `json:"amount"`
	// Percentage is the signed variance relative to the limit (0.12 means 12% over)
	Percentage float64 `json:"percentage"`
}

// ReallocationDetails lists every bucket that crossed a variance threshold
type ReallocationDetails struct {
	Overspent  []BucketVariance `json:"overspent"`
	Underspent []BucketVariance `json:"underspent"`
}

// ReallocationSuggestion is the analyzer's advice for the next allocation
type ReallocationSuggestion struct {
	ShouldReallocate bool                `json:"shouldReallocate"`
	Reason           string              `json:"reason,omitempty"`
	Proposed         BudgetAllocation    `json:"proposed"`
	Details          ReallocationDetails `json:"details"`
}

// RolloverResult is the unspent amount per bucket at cycle close. Values are never negative.
type RolloverResult struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
}

// Amount returns the rollover for a bucket
func (r RolloverResult) Amount(b Bucket) decimal.Decimal {
	switch b {
	case BucketNeeds:
		return r.Needs
	case BucketWants:
		return r.Wants
	case BucketSavings:
		return r.Savings
	}
	return decimal.Zero
}

// Total returns the sum across buckets
func (r RolloverResult) Total() decimal.Decimal {
	return r.Needs.Add(r.Wants).Add(r.Savings)
}

// BudgetProgress tracks spend against a limit for a bucket or category
type BudgetProgress struct {
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
	Status     string          `json:"status"`
}

// Progress status values
const (
	ProgressOnTrack = "on_track"
	ProgressWarning = "warning"
	ProgressOver    = "over"
)

// BucketProgress is the progress of a single bucket in a cycle
type BucketProgress struct {
	Bucket Bucket  `json:"bucket"`
	Pct    float64 `json:"pct"`
	BudgetProgress
	Uncategorized decimal.Decimal `json:"uncategorized"`
}

// CategoryProgress is the progress of a single category in a cycle
type CategoryProgress struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Bucket       Bucket `json:"bucket"`
	BudgetProgress
}

// CycleSummary is the plan-vs-actual view of one cycle
type CycleSummary struct {
	Cycle      *BudgetCycle       `json:"cycle"`
	TotalLimit decimal.Decimal    `json:"totalLimit"`
	TotalSpent decimal.Decimal    `json:"totalSpent"`
	Buckets    []BucketProgress   `json:"buckets"`
	Categories []CategoryProgress `json:"categories"`
}
