package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// PlanFile is the on-disk TOML layout read by the planner CLI.
// Money is written as strings so that amounts keep their exact decimal value.
type PlanFile struct {
	TaxRate float64     `toml:"tax_rate"`
	Profile ProfileFile `toml:"profile"`
}

// ProfileFile mirrors domain.UserBudgetProfile.
type ProfileFile struct {
	StableSalary      string  `toml:"stable_salary"`
	ApplyTax          bool    `toml:"apply_tax"`
	SideIncome        string  `toml:"side_income,omitempty"`
	Rent              string  `toml:"rent,omitempty"`
	TitheRemittance   string  `toml:"tithe_remittance,omitempty"`
	DebtObligations   string  `toml:"debt_obligations,omitempty"`
	UtilitiesTotal    string  `toml:"utilities_total,omitempty"`
	LivingBuffer      *string `toml:"living_buffer,omitempty"`
	LifeStage         string  `toml:"life_stage,omitempty"`
	Dependents        int     `toml:"dependents,omitempty"`
	IncomeFrequency   string  `toml:"income_frequency,omitempty"`
	SpendingStyle     string  `toml:"spending_style,omitempty"`
	FinancialPriority string  `toml:"financial_priority,omitempty"`
}

// Plan is a loaded, validated plan file.
type Plan struct {
	Profile domain.UserBudgetProfile
	TaxRate decimal.Decimal
}

// LoadProfile reads and validates a plan file.
func LoadProfile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("reading profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes TOML plan data.
func ParseProfile(data []byte) (Plan, error) {
	var file PlanFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Plan{}, fmt.Errorf("parsing profile: %w", err)
	}

	if file.TaxRate < 0 || file.TaxRate >= 1 {
		return Plan{}, errors.New("tax_rate must be in [0, 1)")
	}

	profile, err := file.Profile.toDomain()
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		Profile: profile,
		TaxRate: decimal.NewFromFloat(file.TaxRate),
	}, nil
}

func (p ProfileFile) toDomain() (domain.UserBudgetProfile, error) {
	var errs []error

	money := func(field, value string, required bool) decimal.Decimal {
		if value == "" {
			if required {
				errs = append(errs, fmt.Errorf("%s is required", field))
			}
			return decimal.Zero
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be a decimal number: %w", field, err))
			return decimal.Zero
		}
		if d.IsNegative() {
			errs = append(errs, fmt.Errorf("%s must not be negative", field))
			return decimal.Zero
		}
		return d
	}

	profile := domain.UserBudgetProfile{
		StableSalary:      money("stable_salary", p.StableSalary, true),
		ApplyTax:          p.ApplyTax,
		SideIncome:        money("side_income", p.SideIncome, false),
		Rent:              money("rent", p.Rent, false),
		TitheRemittance:   money("tithe_remittance", p.TitheRemittance, false),
		DebtObligations:   money("debt_obligations", p.DebtObligations, false),
		UtilitiesTotal:    money("utilities_total", p.UtilitiesTotal, false),
		LifeStage:         domain.LifeStage(p.LifeStage),
		Dependents:        p.Dependents,
		IncomeFrequency:   domain.IncomeFrequency(p.IncomeFrequency),
		SpendingStyle:     domain.SpendingStyle(p.SpendingStyle),
		FinancialPriority: domain.FinancialPriority(p.FinancialPriority),
	}
	if p.LivingBuffer != nil {
		buffer := money("living_buffer", *p.LivingBuffer, true)
		profile.LivingBuffer = &buffer
	}
	if p.Dependents < 0 {
		errs = append(errs, errors.New("dependents must not be negative"))
	}

	if len(errs) > 0 {
		return domain.UserBudgetProfile{}, fmt.Errorf("invalid profile: %w", errors.Join(errs...))
	}
	return profile, nil
}
