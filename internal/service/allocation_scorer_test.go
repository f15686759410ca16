package service

import (
	"math"
	"strings"
	"testing"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertNormalized(t *testing.T, a domain.BudgetAllocation) {
	t.Helper()
	assert.InDelta(t, 1.0, a.Sum(), 1e-9, "allocation must sum to 1")
	for _, b := range domain.Buckets {
		p := a.Pct(b)
		assert.False(t, math.IsNaN(p), "%s is NaN", b)
		assert.GreaterOrEqual(t, p, 0.0, "%s below 0", b)
		assert.LessOrEqual(t, p, 1.0, "%s above 1", b)
	}
}

func TestComputeIntelligentAllocation_SurvivalMode(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
		StableSalary:    dec(3000),
		Rent:            dec(2000),
		TitheRemittance: dec(200),
		DebtObligations: dec(300),
		UtilitiesTotal:  dec(400),
	})

	assert.Equal(t, "3500", result.FixedCosts.String(), "living buffer of 600 is added to fixed costs")
	assert.GreaterOrEqual(t, result.FixedCostRatio, 0.85)
	assert.Equal(t, domain.StrategySurvival, result.Strategy)
	assert.InDelta(t, 0.92, result.Allocation.NeedsPct, 1e-9)
	assert.InDelta(t, 0.08, result.Allocation.WantsPct, 1e-9)
	assert.Equal(t, 0.0, result.Allocation.SavingsPct)
	assert.True(t, result.DisposableIncome.IsZero())
	assertNormalized(t, result.Allocation)

	require.NotEmpty(t, result.Reasoning)
	assert.True(t, strings.HasPrefix(result.Reasoning[0], "Survival mode"))
	assert.Contains(t, result.Reasoning[1], "High fixed costs")
}

func TestComputeIntelligentAllocation_LowFixedCosts(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
		StableSalary:    dec(8000),
		Rent:            dec(800),
		TitheRemittance: dec(100),
		UtilitiesTotal:  dec(100),
	})

	assert.InDelta(t, 0.2, result.FixedCostRatio, 1e-9)
	assert.Less(t, result.Allocation.NeedsPct, 0.5)
	assert.Greater(t, result.Allocation.SavingsPct, 0.15)
	assert.InDelta(t, 0.40, result.Allocation.NeedsPct, 1e-9)
	assert.InDelta(t, 0.36, result.Allocation.WantsPct, 1e-9)
	assert.InDelta(t, 0.24, result.Allocation.SavingsPct, 1e-9)
	assert.Equal(t, "6400", result.DisposableIncome.String())
	assert.Contains(t, result.Reasoning[0], "Low fixed costs")
}

func TestComputeIntelligentAllocation_FamilyNeedsMoreThanYoungProfessional(t *testing.T) {
	scorer := NewAllocationScorer(nil)
	base := domain.UserBudgetProfile{
		StableSalary:    dec(8000),
		Rent:            dec(800),
		TitheRemittance: dec(100),
		UtilitiesTotal:  dec(100),
		LifeStage:       domain.LifeStageYoungProfessional,
	}
	family := base
	family.LifeStage = domain.LifeStageFamily

	young := scorer.ComputeIntelligentAllocation(base)
	fam := scorer.ComputeIntelligentAllocation(family)

	assert.Greater(t, fam.Allocation.NeedsPct, young.Allocation.NeedsPct)
	assert.InDelta(t, 0.52, fam.Allocation.NeedsPct, 1e-9)
	assert.InDelta(t, 0.28, fam.Allocation.WantsPct, 1e-9)
	assert.InDelta(t, 0.20, fam.Allocation.SavingsPct, 1e-9)
}

func TestComputeIntelligentAllocation_FallbackReasoning(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	// ratio 2100/5000 = 0.42 sits in the quiet part of the curve
	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
		StableSalary: dec(5000),
		Rent:         dec(1500),
	})

	assert.Equal(t, []string{"Standard allocation applied."}, result.Reasoning)
	assert.InDelta(t, 0.485, result.Allocation.NeedsPct, 1e-9)
	assert.Equal(t, domain.StrategyBalanced, result.Strategy)
}

func TestComputeIntelligentAllocation_ZeroIncome(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{})

	assert.True(t, result.NetIncome.IsZero())
	assert.Equal(t, 1.0, result.FixedCostRatio)
	assert.Equal(t, domain.StrategySurvival, result.Strategy)
	assertNormalized(t, result.Allocation)
}

func TestComputeIntelligentAllocation_ZeroIncomeWithDebt(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{DebtObligations: dec(500)})

	assert.Equal(t, 1.0, result.FixedCostRatio)
	// survival 92/8/0 plus the debt pressure move of five points from wants
	assert.InDelta(t, 0.97, result.Allocation.NeedsPct, 1e-9)
	assert.InDelta(t, 0.03, result.Allocation.WantsPct, 1e-9)
	assert.Equal(t, 0.0, result.Allocation.SavingsPct)
	assertNormalized(t, result.Allocation)

	require.Len(t, result.Reasoning, 3)
	assert.Contains(t, result.Reasoning[2], "Debt-to-income ratio of 100%")
}

func TestComputeIntelligentAllocation_SurvivalWithModifiers(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
		StableSalary: dec(3000),
		Rent:         dec(2490),
		LifeStage:    domain.LifeStageFamily,
	})

	assert.InDelta(t, 1.03, result.FixedCostRatio, 1e-9)
	// Modifiers still apply on top of the survival split, so the family
	// adjustment pushes needs to the clamp and the result is not 92/8/0
	assert.InDelta(t, 1.0, result.Allocation.NeedsPct, 1e-9)
	assert.InDelta(t, 0.0, result.Allocation.WantsPct, 1e-9)
	assert.InDelta(t, 0.0, result.Allocation.SavingsPct, 1e-9)
	assertNormalized(t, result.Allocation)

	require.Len(t, result.Reasoning, 3)
	assert.True(t, strings.HasPrefix(result.Reasoning[0], "Survival mode"))
	assert.Contains(t, result.Reasoning[2], "Family life stage")
}

func TestComputeIntelligentAllocation_AppliesTax(t *testing.T) {
	scorer := NewAllocationScorer(NewFlatRateTaxCalculator(decimal.RequireFromString("0.2")))

	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
		StableSalary: dec(5000),
		ApplyTax:     true,
		SideIncome:   dec(500),
	})
	assert.Equal(t, "4500", result.NetIncome.String())

	untaxed := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
		StableSalary: dec(5000),
		SideIncome:   dec(500),
	})
	assert.Equal(t, "5500", untaxed.NetIncome.String())
}

func TestComputeIntelligentAllocation_TaxFunc(t *testing.T) {
	calls := 0
	scorer := NewAllocationScorer(TaxCalculatorFunc(func(gross decimal.Decimal) decimal.Decimal {
		calls++
		return gross.Sub(dec(1000))
	}))

	scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{StableSalary: dec(4000)})
	assert.Equal(t, 0, calls, "tax calculator must only run when applyTax is set")

	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{StableSalary: dec(4000), ApplyTax: true})
	assert.Equal(t, 1, calls)
	assert.Equal(t, "3000", result.NetIncome.String())
}

func TestComputeIntelligentAllocation_DebtPressure(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
		StableSalary:    dec(5000),
		DebtObligations: dec(2000),
	})

	// ratio 0.52 gives 0.535 needs, then +5pp for DTI of 0.4
	assert.InDelta(t, 0.585, result.Allocation.NeedsPct, 1e-9)
	assert.InDelta(t, 0.229, result.Allocation.WantsPct, 1e-9)
	assert.InDelta(t, 0.186, result.Allocation.SavingsPct, 1e-9)
	assert.Len(t, result.Reasoning, 1)
	assert.Contains(t, result.Reasoning[0], "Debt-to-income")
}

func TestComputeIntelligentAllocation_DependentsCapped(t *testing.T) {
	scorer := NewAllocationScorer(nil)
	profile := domain.UserBudgetProfile{
		StableSalary: dec(8000),
		Rent:         dec(1000),
	}

	five := profile
	five.Dependents = 5
	seven := profile
	seven.Dependents = 7

	a := scorer.ComputeIntelligentAllocation(five)
	b := scorer.ComputeIntelligentAllocation(seven)

	assert.InDelta(t, a.Allocation.NeedsPct, b.Allocation.NeedsPct, 1e-12, "dependents pressure is capped at 10 points")
	assert.InDelta(t, 0.50, a.Allocation.NeedsPct, 1e-9)
	assert.InDelta(t, 0.30, a.Allocation.WantsPct, 1e-9)
	assert.InDelta(t, 0.20, a.Allocation.SavingsPct, 1e-9)
}

func TestComputeIntelligentAllocation_UnknownEnumsUseDefaults(t *testing.T) {
	scorer := NewAllocationScorer(nil)
	profile := domain.UserBudgetProfile{
		StableSalary: dec(5000),
		Rent:         dec(1500),
	}
	odd := profile
	odd.LifeStage = "astronaut"
	odd.SpendingStyle = "chaotic"
	odd.FinancialPriority = ""

	assert.Equal(t,
		scorer.ComputeIntelligentAllocation(profile).Allocation,
		scorer.ComputeIntelligentAllocation(odd).Allocation)
}

func TestComputeIntelligentAllocation_SumsToOneWithinRange(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	stages := []domain.LifeStage{domain.LifeStageStudent, domain.LifeStageYoungProfessional, domain.LifeStageFamily, domain.LifeStageRetiree}
	priorities := []domain.FinancialPriority{domain.PriorityDebtPayoff, domain.PrioritySavingsGrowth, domain.PriorityLifestyle, domain.PriorityBalanced}
	styles := []domain.SpendingStyle{domain.SpendingStyleConservative, domain.SpendingStyleModerate, domain.SpendingStyleLiberal}
	rents := []int64{0, 500, 1500, 2500, 4000, 9000}

	for _, stage := range stages {
		for _, priority := range priorities {
			for _, style := range styles {
				for _, rent := range rents {
					for dependents := 0; dependents <= 6; dependents += 3 {
						result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
							StableSalary:      dec(4000),
							Rent:              dec(rent),
							DebtObligations:   dec(rent / 2),
							LifeStage:         stage,
							FinancialPriority: priority,
							SpendingStyle:     style,
							Dependents:        dependents,
						})
						assertNormalized(t, result.Allocation)
						assert.NotEmpty(t, result.Reasoning)
					}
				}
			}
		}
	}
}

func TestComputeIntelligentAllocation_RentMonotonic(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	for _, style := range []domain.SpendingStyle{domain.SpendingStyleModerate, domain.SpendingStyleConservative} {
		previous := -1.0
		for rent := int64(0); rent <= 8000; rent += 50 {
			result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
				StableSalary:  dec(5000),
				Rent:          dec(rent),
				SpendingStyle: style,
			})
			require.GreaterOrEqual(t, result.Allocation.NeedsPct, previous-1e-12,
				"needs decreased at rent %d (%s)", rent, style)
			previous = result.Allocation.NeedsPct
		}
	}
}

func TestComputeIntelligentAllocation_SurvivalAtBoundary(t *testing.T) {
	scorer := NewAllocationScorer(nil)

	// (2800 rent + 600 buffer) / 4000 is exactly 0.85
	result := scorer.ComputeIntelligentAllocation(domain.UserBudgetProfile{
		StableSalary: dec(4000),
		Rent:         dec(2800),
	})

	assert.InDelta(t, 0.85, result.FixedCostRatio, 1e-12)
	assert.InDelta(t, 0.92, result.Allocation.NeedsPct, 1e-9)
	assert.Equal(t, 0.0, result.Allocation.SavingsPct)
}

func TestBaseSplit_Curve(t *testing.T) {
	tests := []struct {
		ratio     float64
		wantNeeds float64
	}{
		{0.0, 0.40},
		{0.34, 0.40},
		{0.35, 0.45},
		{0.45, 0.50},
		{0.55, 0.55},
		{0.65, 0.65},
		{0.75, 0.75},
		{0.80, 0.835},
		{0.85, 0.92},
		{1.5, 0.92},
	}

	for _, tt := range tests {
		split := baseSplit(tt.ratio)
		assert.InDelta(t, tt.wantNeeds, split.needs, 1e-9, "ratio %.2f", tt.ratio)
		assert.InDelta(t, (1-tt.wantNeeds)*0.6, split.wants, 1e-9, "ratio %.2f", tt.ratio)
		assert.InDelta(t, (1-tt.wantNeeds)*0.4, split.savings, 1e-9, "ratio %.2f", tt.ratio)
	}
}

func TestNormalizeSplit_ExtremeModifiers(t *testing.T) {
	a := normalizeSplit(pctTriple{needs: 1.4, wants: -0.3, savings: 0.2})

	assertNormalized(t, a)
	assert.InDelta(t, 1/1.2, a.NeedsPct, 1e-9)
	assert.Equal(t, 0.0, a.WantsPct)
}

func TestNormalizeSplit_AllZero(t *testing.T) {
	a := normalizeSplit(pctTriple{needs: -1, wants: -1, savings: -1})
	assert.Equal(t, domain.BudgetAllocation{NeedsPct: 0.5, WantsPct: 0.3, SavingsPct: 0.2}, a)
}

func TestLabelStrategy(t *testing.T) {
	tests := []struct {
		name       string
		allocation domain.BudgetAllocation
		want       domain.Strategy
	}{
		{"survival", domain.BudgetAllocation{NeedsPct: 0.9, WantsPct: 0.1}, domain.StrategySurvival},
		{"aggressive", domain.BudgetAllocation{NeedsPct: 0.4, WantsPct: 0.2, SavingsPct: 0.4}, domain.StrategyAggressive},
		{"balanced", domain.BudgetAllocation{NeedsPct: 0.5, WantsPct: 0.3, SavingsPct: 0.2}, domain.StrategyBalanced},
		{"custom", domain.BudgetAllocation{NeedsPct: 0.7, WantsPct: 0.2, SavingsPct: 0.1}, domain.StrategyCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labelStrategy(tt.allocation))
		})
	}
}
