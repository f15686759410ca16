package domain

import "github.com/shopspring/decimal"

// DefaultLivingBuffer is added to fixed costs when a profile does not set one
var DefaultLivingBuffer = decimal.NewFromInt(600)

// LifeStage describes where a person is in life
type LifeStage string

const (
	LifeStageStudent           LifeStage = "student"
	LifeStageYoungProfessional LifeStage = "young_professional"
	LifeStageFamily            LifeStage = "family"
	LifeStageRetiree           LifeStage = "retiree"
)

// IsValid reports whether the life stage is a known value
func (l LifeStage) IsValid() bool {
	switch l {
	case LifeStageStudent, LifeStageYoungProfessional, LifeStageFamily, LifeStageRetiree:
		return true
	}
	return false
}

// OrDefault returns the life stage, or young_professional when unknown
func (l LifeStage) OrDefault() LifeStage {
	if l.IsValid() {
		return l
	}
	return LifeStageYoungProfessional
}

// SpendingStyle describes how freely a person spends
type SpendingStyle string

const (
	SpendingStyleConservative SpendingStyle = "conservative"
	SpendingStyleModerate     SpendingStyle = "moderate"
	SpendingStyleLiberal      SpendingStyle = "liberal"
)

// IsValid reports whether the spending style is a known value
func (s SpendingStyle) IsValid() bool {
	switch s {
	case SpendingStyleConservative, SpendingStyleModerate, SpendingStyleLiberal:
		return true
	}
	return false
}

// OrDefault returns the spending style, or moderate when unknown
func (s SpendingStyle) OrDefault() SpendingStyle {
	if s.IsValid() {
		return s
	}
	return SpendingStyleModerate
}

// FinancialPriority is the goal a person wants the plan to favour
type FinancialPriority string

const (
	PriorityDebtPayoff    FinancialPriority = "debt_payoff"
	PrioritySavingsGrowth FinancialPriority = "savings_growth"
	PriorityLifestyle     FinancialPriority = "lifestyle"
	PriorityBalanced      FinancialPriority = "balanced"
)

// IsValid reports whether the priority is a known value
func (p FinancialPriority) IsValid() bool {
	switch p {
	case PriorityDebtPayoff, PrioritySavingsGrowth, PriorityLifestyle, PriorityBalanced:
		return true
	}
	return false
}

// OrDefault returns the priority, or balanced when unknown
func (p FinancialPriority) OrDefault() FinancialPriority {
	if p.IsValid() {
		return p
	}
	return PriorityBalanced
}

// IncomeFrequency is how often salary is paid. It is informational only;
// salary figures are always monthly amounts.
type IncomeFrequency string

const (
	IncomeFrequencyMonthly  IncomeFrequency = "monthly"
	IncomeFrequencyBiweekly IncomeFrequency = "biweekly"
	IncomeFrequencyWeekly   IncomeFrequency = "weekly"
)

// IsValid reports whether the frequency is a known value
func (f IncomeFrequency) IsValid() bool {
	switch f {
	case IncomeFrequencyMonthly, IncomeFrequencyBiweekly, IncomeFrequencyWeekly:
		return true
	}
	return false
}

// OrDefault returns the frequency, or monthly when unknown
func (f IncomeFrequency) OrDefault() IncomeFrequency {
	if f.IsValid() {
		return f
	}
	return IncomeFrequencyMonthly
}

// UserBudgetProfile holds the financial facts the allocation scorer works from.
// All money fields are monthly amounts and are expected to be non-negative.
type UserBudgetProfile struct {
	StableSalary      decimal.Decimal   `json:"stableSalary"`
	ApplyTax          bool              `json:"applyTax"`
	SideIncome        decimal.Decimal   `json:"sideIncome"`
	Rent              decimal.Decimal   `json:"rent"`
	TitheRemittance   decimal.Decimal   `json:"titheRemittance"`
	DebtObligations   decimal.Decimal   `json:"debtObligations"`
	UtilitiesTotal    decimal.Decimal   `json:"utilitiesTotal"`
	LivingBuffer      *decimal.Decimal  `json:"livingBuffer,omitempty"`
	LifeStage         LifeStage         `json:"lifeStage"`
	Dependents        int               `json:"dependents"`
	IncomeFrequency   IncomeFrequency   `json:"incomeFrequency"`
	SpendingStyle     SpendingStyle     `json:"spendingStyle"`
	FinancialPriority FinancialPriority `json:"financialPriority"`
}

// EffectiveLivingBuffer returns the configured buffer or the default
func (p UserBudgetProfile) EffectiveLivingBuffer() decimal.Decimal {
	if p.LivingBuffer != nil {
		return *p.LivingBuffer
	}
	return DefaultLivingBuffer
}

// TaxCalculator converts a gross monthly salary into net take-home pay
type TaxCalculator interface {
	NetTakeHome(grossMonthly decimal.Decimal) decimal.Decimal
}
