package service

import (
	"fmt"
	"math"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Fixed-cost ratio breakpoints for the base needs curve
const (
	survivalCostRatio = 0.85
	highCostRatio     = 0.75
	moderateCostRatio = 0.55
	lowCostRatio      = 0.35
)

const (
	survivalNeedsPct = 0.92
	survivalWantsPct = 0.08

	// Discretionary income left after needs is split 60/40 between wants and savings
	wantsShareOfRemainder = 0.6

	maxDependentsPoints = 10
	pointsPerDependent  = 2
	debtToIncomeLimit   = 0.36

	normalizeTolerance = 0.001

	fallbackReasoning = "Standard allocation applied."
)

// pctTriple is an unnormalized needs/wants/savings split used while scoring
type pctTriple struct {
	needs, wants, savings float64
}

func (t pctTriple) add(o pctTriple) pctTriple {
	return pctTriple{
		needs:   t.needs + o.needs,
		wants:   t.wants + o.wants,
		savings: t.savings + o.savings,
	}
}

// points builds an adjustment from percentage points (1 pp = 0.01)
func points(needs, wants, savings float64) pctTriple {
	return pctTriple{needs: needs / 100, wants: wants / 100, savings: savings / 100}
}

// scoringInput is what every modifier can see
type scoringInput struct {
	profile   domain.UserBudgetProfile
	netIncome decimal.Decimal
}

// allocationModifier returns an additive adjustment and the reasoning line that explains it.
// A modifier that does not apply returns a zero adjustment and an empty reason.
type allocationModifier func(in scoringInput) (pctTriple, string)

// allocationModifiers are applied in this order
var allocationModifiers = []allocationModifier{
	lifeStageModifier,
	priorityModifier,
	spendingStyleModifier,
	dependentsModifier,
	debtPressureModifier,
}

// AllocationScorer turns a budget profile into a normalized needs/wants/savings split
type AllocationScorer struct {
	tax domain.TaxCalculator
}

// NewAllocationScorer creates a new AllocationScorer. tax may be nil, in which case
// profiles with ApplyTax set use their gross salary unchanged.
func NewAllocationScorer(tax domain.TaxCalculator) *AllocationScorer {
	return &AllocationScorer{tax: tax}
}

// ComputeIntelligentAllocation scores a profile. It never fails and never divides by zero.
func (s *AllocationScorer) ComputeIntelligentAllocation(profile domain.UserBudgetProfile) *domain.IntelligentAllocationResult {
	salary := profile.StableSalary
	if profile.ApplyTax && s.tax != nil {
		salary = s.tax.NetTakeHome(salary)
	}
	netIncome := decimal.Max(decimal.Zero, salary.Add(profile.SideIncome))

	fixedCosts := decimal.Max(decimal.Zero, profile.Rent.
		Add(profile.TitheRemittance).
		Add(profile.DebtObligations).
		Add(profile.UtilitiesTotal).
		Add(profile.EffectiveLivingBuffer()))

	ratio := 1.0
	if netIncome.IsPositive() {
		ratio = fixedCosts.Div(netIncome).InexactFloat64()
	}
	disposable := decimal.Max(decimal.Zero, netIncome.Sub(fixedCosts))

	var reasoning []string
	split := baseSplit(ratio)

	if ratio >= survivalCostRatio {
		split = pctTriple{needs: survivalNeedsPct, wants: survivalWantsPct, savings: 0}
		reasoning = append(reasoning, fmt.Sprintf(
			"Survival mode: fixed costs take %.0f%% of income, so needs are held at 92%% and savings are paused.", ratio*100))
	}

	if ratio >= highCostRatio {
		reasoning = append(reasoning, fmt.Sprintf(
			"High fixed costs (%.0f%% of income) leave little room for wants and savings.", ratio*100))
	} else if ratio < lowCostRatio {
		reasoning = append(reasoning, fmt.Sprintf(
			"Low fixed costs (%.0f%% of income) leave more savings headroom.", ratio*100))
	}

	in := scoringInput{profile: profile, netIncome: netIncome}
	for _, modify := range allocationModifiers {
		adjustment, reason := modify(in)
		if reason == "" {
			continue
		}
		split = split.add(adjustment)
		reasoning = append(reasoning, reason)
	}

	allocation := normalizeSplit(split)

	if len(reasoning) == 0 {
		reasoning = []string{fallbackReasoning}
	}

	return &domain.IntelligentAllocationResult{
		Allocation:       allocation,
		Strategy:         labelStrategy(allocation),
		NetIncome:        netIncome,
		FixedCosts:       fixedCosts,
		DisposableIncome: disposable,
		FixedCostRatio:   ratio,
		Reasoning:        reasoning,
	}
}

// baseSplit maps the fixed-cost ratio onto a continuous needs curve and
// divides the remainder between wants and savings
func baseSplit(ratio float64) pctTriple {
	var needs float64
	switch {
	case ratio >= survivalCostRatio:
		needs = survivalNeedsPct
	case ratio >= highCostRatio:
		needs = 0.75 + (ratio-highCostRatio)*1.7
	case ratio >= moderateCostRatio:
		needs = 0.55 + (ratio - moderateCostRatio)
	case ratio >= lowCostRatio:
		needs = 0.45 + (ratio-lowCostRatio)*0.5
	default:
		needs = 0.40
	}

	remainder := 1 - needs
	return pctTriple{
		needs:   needs,
		wants:   remainder * wantsShareOfRemainder,
		savings: remainder * (1 - wantsShareOfRemainder),
	}
}

func lifeStageModifier(in scoringInput) (pctTriple, string) {
	switch in.profile.LifeStage.OrDefault() {
	case domain.LifeStageStudent:
		return points(8, -5, -3), "Student life stage: more weight on essentials like tuition, books and transport."
	case domain.LifeStageFamily:
		return points(12, -8, -4), "Family life stage: household essentials take a larger share."
	case domain.LifeStageRetiree:
		return points(5, 5, -10), "Retiree life stage: savings draw down in favour of care and leisure."
	case domain.LifeStageYoungProfessional:
		return pctTriple{}, ""
	}
	return pctTriple{}, ""
}

func priorityModifier(in scoringInput) (pctTriple, string) {
	switch in.profile.FinancialPriority.OrDefault() {
	case domain.PriorityDebtPayoff:
		return points(5, -15, 10), "Debt payoff priority: wants are trimmed to speed up repayments."
	case domain.PrioritySavingsGrowth:
		return points(0, -10, 10), "Savings growth priority: ten points moved from wants to savings."
	case domain.PriorityLifestyle:
		return points(-5, 10, -5), "Lifestyle priority: more room for wants."
	case domain.PriorityBalanced:
		return pctTriple{}, ""
	}
	return pctTriple{}, ""
}

func spendingStyleModifier(in scoringInput) (pctTriple, string) {
	switch in.profile.SpendingStyle.OrDefault() {
	case domain.SpendingStyleConservative:
		return points(0, -5, 5), "Conservative spending style: five points shifted from wants to savings."
	case domain.SpendingStyleLiberal:
		return points(0, 5, -5), "Liberal spending style: five points shifted from savings to wants."
	case domain.SpendingStyleModerate:
		return pctTriple{}, ""
	}
	return pctTriple{}, ""
}

func dependentsModifier(in scoringInput) (pctTriple, string) {
	if in.profile.Dependents <= 0 {
		return pctTriple{}, ""
	}
	delta := math.Min(float64(in.profile.Dependents*pointsPerDependent), maxDependentsPoints)
	reason := fmt.Sprintf("%d dependent(s): needs raised by %.0f points.", in.profile.Dependents, delta)
	return points(delta, -delta*0.6, -delta*0.4), reason
}

func debtPressureModifier(in scoringInput) (pctTriple, string) {
	if !in.profile.DebtObligations.IsPositive() {
		return pctTriple{}, ""
	}
	// Any debt against no income counts as fully leveraged
	dti := 1.0
	if in.netIncome.IsPositive() {
		dti = in.profile.DebtObligations.Div(in.netIncome).InexactFloat64()
	}
	if dti <= debtToIncomeLimit {
		return pctTriple{}, ""
	}
	reason := fmt.Sprintf("Debt-to-income ratio of %.0f%% is above 36%%: five points moved from wants to needs.", dti*100)
	return points(5, -5, 0), reason
}

// normalizeSplit clamps each share to [0,1] and rescales so the three sum to 1
func normalizeSplit(t pctTriple) domain.BudgetAllocation {
	needs := clamp01(t.needs)
	wants := clamp01(t.wants)
	savings := clamp01(t.savings)

	sum := needs + wants + savings
	if sum <= 1e-9 {
		return StrategyToAllocationOrDefault(domain.StrategyBalanced)
	}
	needs, wants, savings = needs/sum, wants/sum, savings/sum

	if sum = needs + wants + savings; math.Abs(sum-1) > normalizeTolerance {
		needs, wants, savings = needs/sum, wants/sum, savings/sum
	}

	return domain.BudgetAllocation{NeedsPct: needs, WantsPct: wants, SavingsPct: savings}
}

// labelStrategy describes a split. The label never feeds back into the math.
func labelStrategy(a domain.BudgetAllocation) domain.Strategy {
	switch {
	case a.NeedsPct >= 0.85:
		return domain.StrategySurvival
	case a.SavingsPct >= 0.35 && a.WantsPct <= 0.25:
		return domain.StrategyAggressive
	case math.Abs(a.NeedsPct-0.5) < 0.1:
		return domain.StrategyBalanced
	}
	return domain.StrategyCustom
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
