package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AllocationHandler handles stateless allocation HTTP requests
type AllocationHandler struct {
	scorer *service.AllocationScorer
}

// NewAllocationHandler creates a new AllocationHandler
func NewAllocationHandler(scorer *service.AllocationScorer) *AllocationHandler {
	return &AllocationHandler{scorer: scorer}
}

// ProfileRequest is a budget profile in API requests. Money fields are decimal strings.
type ProfileRequest struct {
	StableSalary      string  `json:"stableSalary"`
	ApplyTax          bool    `json:"applyTax"`
	SideIncome        string  `json:"sideIncome,omitempty"`
	Rent              string  `json:"rent,omitempty"`
	TitheRemittance   string  `json:"titheRemittance,omitempty"`
	DebtObligations   string  `json:"debtObligations,omitempty"`
	UtilitiesTotal    string  `json:"utilitiesTotal,omitempty"`
	LivingBuffer      *string `json:"livingBuffer,omitempty"`
	LifeStage         string  `json:"lifeStage,omitempty"`
	Dependents        int     `json:"dependents"`
	IncomeFrequency   string  `json:"incomeFrequency,omitempty"`
	SpendingStyle     string  `json:"spendingStyle,omitempty"`
	FinancialPriority string  `json:"financialPriority,omitempty"`
}

// AllocationResponse represents a three-way split in API responses
type AllocationResponse struct {
	NeedsPct   float64 `json:"needsPct"`
	WantsPct   float64 `json:"wantsPct"`
	SavingsPct float64 `json:"savingsPct"`
}

// IntelligentAllocationResponse represents a scored allocation in API responses
type IntelligentAllocationResponse struct {
	Allocation       AllocationResponse `json:"allocation"`
	Strategy         string             `json:"strategy"`
	NetIncome        string             `json:"netIncome"`
	FixedCosts       string             `json:"fixedCosts"`
	DisposableIncome string             `json:"disposableIncome"`
	FixedCostRatio   float64            `json:"fixedCostRatio"`
	Reasoning        []string           `json:"reasoning"`
}

// StrategyResponse represents a named strategy in API responses
type StrategyResponse struct {
	Name       string             `json:"name"`
	Allocation AllocationResponse `json:"allocation"`
}

// ComputeAllocation godoc
// @Summary Score a budget profile
// @Description Compute a needs/wants/savings split for a profile without storing anything
// @Tags allocations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileRequest true "Budget profile"
// @Success 200 {object} IntelligentAllocationResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /allocations/compute [post]
func (h *AllocationHandler) ComputeAllocation(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile, validationErrors := parseProfileRequest(req)
	if len(validationErrors) > 0 {
		return NewValidationError(c, "Validation failed", validationErrors)
	}

	result := h.scorer.ComputeIntelligentAllocation(profile)

	log.Debug().Str("user_id", userID).Str("strategy", string(result.Strategy)).Msg("Allocation computed")

	return c.JSON(http.StatusOK, toIntelligentAllocationResponse(result))
}

// GetStrategy godoc
// @Summary Get a fixed strategy
// @Description Return the split for a named strategy
// @Tags allocations
// @Produce json
// @Security BearerAuth
// @Param name path string true "Strategy name" Enums(survival, balanced, aggressive)
// @Success 200 {object} StrategyResponse
// @Failure 404 {object} ProblemDetails
// @Router /allocations/strategies/{name} [get]
func (h *AllocationHandler) GetStrategy(c echo.Context) error {
	name := domain.Strategy(c.Param("name"))

	allocation, err := service.StrategyToAllocation(name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStrategy) {
			return NewNotFoundError(c, "Unknown strategy")
		}
		return NewInternalError(c, "Failed to resolve strategy")
	}

	return c.JSON(http.StatusOK, StrategyResponse{
		Name:       string(name),
		Allocation: toAllocationResponse(allocation),
	})
}

// parseProfileRequest converts a request into a profile, collecting every field error
func parseProfileRequest(req ProfileRequest) (domain.UserBudgetProfile, []ValidationError) {
	var errs []ValidationError

	money := func(field, value string, required bool) decimal.Decimal {
		if value == "" {
			if required {
				errs = append(errs, ValidationError{Field: field, Message: "Required"})
			}
			return decimal.Zero
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			errs = append(errs, ValidationError{Field: field, Message: "Must be a valid decimal number"})
			return decimal.Zero
		}
		if d.IsNegative() {
			errs = append(errs, ValidationError{Field: field, Message: "Must not be negative"})
			return decimal.Zero
		}
		return d
	}

	profile := domain.UserBudgetProfile{
		StableSalary:      money("stableSalary", req.StableSalary, true),
		ApplyTax:          req.ApplyTax,
		SideIncome:        money("sideIncome", req.SideIncome, false),
		Rent:              money("rent", req.Rent, false),
		TitheRemittance:   money("titheRemittance", req.TitheRemittance, false),
		DebtObligations:   money("debtObligations", req.DebtObligations, false),
		UtilitiesTotal:    money("utilitiesTotal", req.UtilitiesTotal, false),
		LifeStage:         domain.LifeStage(req.LifeStage),
		Dependents:        req.Dependents,
		IncomeFrequency:   domain.IncomeFrequency(req.IncomeFrequency),
		SpendingStyle:     domain.SpendingStyle(req.SpendingStyle),
		FinancialPriority: domain.FinancialPriority(req.FinancialPriority),
	}
	if req.LivingBuffer != nil {
		buffer := money("livingBuffer", *req.LivingBuffer, true)
		profile.LivingBuffer = &buffer
	}
	if req.Dependents < 0 {
		errs = append(errs, ValidationError{Field: "dependents", Message: "Must not be negative"})
	}

	return profile, errs
}

func toAllocationResponse(a domain.BudgetAllocation) AllocationResponse {
	return AllocationResponse{
		NeedsPct:   a.NeedsPct,
		WantsPct:   a.WantsPct,
		SavingsPct: a.SavingsPct,
	}
}

func toIntelligentAllocationResponse(r *domain.IntelligentAllocationResult) IntelligentAllocationResponse {
	return IntelligentAllocationResponse{
		Allocation:       toAllocationResponse(r.Allocation),
		Strategy:         string(r.Strategy),
		NetIncome:        r.NetIncome.StringFixed(2),
		FixedCosts:       r.FixedCosts.StringFixed(2),
		DisposableIncome: r.DisposableIncome.StringFixed(2),
		FixedCostRatio:   r.FixedCostRatio,
		Reasoning:        r.Reasoning,
	}
}
