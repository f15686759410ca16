package service

import (
	"fmt"
	"math"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Variance thresholds relative to a bucket's limit. Overspend is flagged earlier than underspend.
const (
	overspendThreshold  = 0.10
	underspendThreshold = -0.15

	maxReallocationShift = 0.05
	reallocationSumSlack = 0.01
	minMeaningfulChange  = 0.01
)

// AnalyzeAndSuggestReallocation compares a cycle's spend with its plan and proposes
// shifting up to five points toward the bucket that ran over. The cycle's stored
// percentages are used as-is.
func AnalyzeAndSuggestReallocation(cycle *domain.BudgetCycle, transactions []*domain.BudgetTransaction, monthlyNetIncome decimal.Decimal) *domain.ReallocationSuggestion {
	current := cycle.Allocation()
	suggestion := &domain.ReallocationSuggestion{
		Proposed: current,
		Details: domain.ReallocationDetails{
			Overspent:  []domain.BucketVariance{},
			Underspent: []domain.BucketVariance{},
		},
	}

	if !monthlyNetIncome.IsPositive() {
		return suggestion
	}

	spend := AggregateSpend(cycle, transactions)
	over := make(map[domain.Bucket]float64)
	under := make(map[domain.Bucket]float64)

	for _, b := range domain.Buckets {
		limit := bucketLimit(cycle, monthlyNetIncome, b)
		diff := spend.Spent(b).Sub(limit)

		pct := 0.0
		if limit.IsPositive() {
			pct = diff.Div(limit).InexactFloat64()
		}

		switch {
		case diff.IsPositive() && pct > overspendThreshold:
			over[b] = pct
			suggestion.Details.Overspent = append(suggestion.Details.Overspent,
				domain.BucketVariance{Bucket: b, Amount: diff, Percentage: pct})
		case diff.IsNegative() && pct < underspendThreshold:
			under[b] = pct
			suggestion.Details.Underspent = append(suggestion.Details.Underspent,
				domain.BucketVariance{Bucket: b, Amount: diff, Percentage: pct})
		}
	}

	// A shift needs both a donor and a recipient
	if len(over) == 0 || len(under) == 0 {
		return suggestion
	}

	needs, wants, savings := current.NeedsPct, current.WantsPct, current.SavingsPct
	needsOverPct, needsOver := over[domain.BucketNeeds]
	wantsOverPct, wantsOver := over[domain.BucketWants]
	_, savingsOver := over[domain.BucketSavings]
	needsUnderPct, needsUnder := under[domain.BucketNeeds]
	_, wantsUnder := under[domain.BucketWants]
	_, savingsUnder := under[domain.BucketSavings]

	var (
		reason    string
		donor     domain.Bucket
		donorPct  float64
		capped    bool
		wantShift float64
	)
	// capShift limits a move to what the donor bucket still holds
	capShift := func(shift float64, from domain.Bucket, available float64) float64 {
		donor, donorPct, wantShift = from, available, shift
		if shift > available {
			capped = true
			return available
		}
		return shift
	}

	switch {
	case needsOver:
		shift := math.Min(maxReallocationShift, needsOverPct/2)
		if wantsUnder {
			shift = capShift(shift, domain.BucketWants, wants)
			wants -= shift
			needs += shift
			reason = fmt.Sprintf("Needs ran %.0f%% over budget while wants came in under. Moving %.0f points from wants to needs.",
				needsOverPct*100, shift*100)
		} else if savingsUnder {
			shift = capShift(shift, domain.BucketSavings, savings)
			savings -= shift
			needs += shift
			reason = fmt.Sprintf("Needs ran %.0f%% over budget while savings came in under. Moving %.0f points from savings to needs.",
				needsOverPct*100, shift*100)
		}
	case wantsOver && savingsUnder:
		shift := math.Min(maxReallocationShift, wantsOverPct/2)
		shift = capShift(shift, domain.BucketSavings, savings)
		savings -= shift
		wants += shift
		reason = fmt.Sprintf("Wants ran %.0f%% over budget while savings came in under. Moving %.0f points from savings to wants.",
			wantsOverPct*100, shift*100)
	case needsUnder && (wantsOver || savingsOver):
		shift := math.Min(maxReallocationShift, math.Abs(needsUnderPct)/2)
		shift = capShift(shift, domain.BucketNeeds, needs)
		needs -= shift
		if savingsUnder {
			savings += shift
			reason = fmt.Sprintf("Needs came in %.0f%% under budget. Moving %.0f points from needs to savings.",
				math.Abs(needsUnderPct)*100, shift*100)
		} else {
			wants += shift
			reason = fmt.Sprintf("Needs came in %.0f%% under budget while discretionary spend ran over. Moving %.0f points from needs to wants.",
				math.Abs(needsUnderPct)*100, shift*100)
		}
	}

	if reason == "" {
		return suggestion
	}
	if capped {
		reason += fmt.Sprintf(" The move is limited to the %.1f points %s still holds.", donorPct*100, donor)
	}

	if sum := needs + wants + savings; sum > 0 && math.Abs(sum-1) > reallocationSumSlack {
		needs, wants, savings = needs/sum, wants/sum, savings/sum
	}
	proposed := domain.BudgetAllocation{
		NeedsPct:   roundPct(needs),
		WantsPct:   roundPct(wants),
		SavingsPct: roundPct(savings),
	}

	if !changedMeaningfully(current, proposed) {
		if capped {
			// The rules called for a move but the donor bucket is nearly empty
			suggestion.Reason = fmt.Sprintf("A %.0f point move was called for, but %s holds only %.1f points, so no change is proposed.",
				wantShift*100, donor, donorPct*100)
		}
		return suggestion
	}

	suggestion.ShouldReallocate = true
	suggestion.Reason = reason
	suggestion.Proposed = proposed
	return suggestion
}

func changedMeaningfully(current, proposed domain.BudgetAllocation) bool {
	for _, b := range domain.Buckets {
		if math.Abs(proposed.Pct(b)-current.Pct(b)) > minMeaningfulChange {
			return true
		}
	}
	return false
}

func roundPct(v float64) float64 {
	return math.Round(v*100) / 100
}
