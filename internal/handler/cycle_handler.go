package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CycleHandler handles budget cycle HTTP requests
type CycleHandler struct {
	cycleService *service.BudgetCycleService
}

// NewCycleHandler creates a new CycleHandler
func NewCycleHandler(cycleService *service.BudgetCycleService) *CycleHandler {
	return &CycleHandler{cycleService: cycleService}
}

// StartCycleRequest represents the start cycle request body
type StartCycleRequest struct {
	Profile       ProfileRequest `json:"profile"`
	PaydayDay     int            `json:"paydayDay"`
	ReferenceDate *string        `json:"referenceDate,omitempty"`
	Strategy      *string        `json:"strategy,omitempty"`
}

// CreateCategoryRequest represents the create category request body
type CreateCategoryRequest struct {
	Bucket string `json:"bucket"`
	Name   string `json:"name"`
	Limit  string `json:"limit"`
}

// RecordTransactionRequest represents the record transaction request body
type RecordTransactionRequest struct {
	Bucket      string  `json:"bucket"`
	CategoryID  *string `json:"categoryId,omitempty"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	OccurredAt  *string `json:"occurredAt,omitempty"`
}

// ApplyReallocationRequest represents an accepted allocation
type ApplyReallocationRequest struct {
	NeedsPct   float64 `json:"needsPct"`
	WantsPct   float64 `json:"wantsPct"`
	SavingsPct float64 `json:"savingsPct"`
}

// RollOverRequest represents the rollover request body
type RollOverRequest struct {
	Carry bool `json:"carry"`
}

// CycleWindowResponse represents a payday window in API responses
type CycleWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CycleResponse represents a budget cycle in API responses
type CycleResponse struct {
	ID              string             `json:"id"`
	StartDate       string             `json:"startDate"`
	EndDate         string             `json:"endDate"`
	PaydayDay       int                `json:"paydayDay"`
	Allocation      AllocationResponse `json:"allocation"`
	NetIncome       string             `json:"netIncome"`
	Status          string             `json:"status"`
	PreviousCycleID *string            `json:"previousCycleId,omitempty"`
	ClosedAt        *string            `json:"closedAt,omitempty"`
	CreatedAt       string             `json:"createdAt"`
}

// StartCycleResponse represents a created cycle and its scoring
type StartCycleResponse struct {
	Cycle   CycleResponse                 `json:"cycle"`
	Scoring IntelligentAllocationResponse `json:"scoring"`
}

// CategoryResponse represents a budget category in API responses
type CategoryResponse struct {
	ID        string `json:"id"`
	CycleID   string `json:"cycleId"`
	Bucket    string `json:"bucket"`
	Name      string `json:"name"`
	Limit     string `json:"limit"`
	CreatedAt string `json:"createdAt"`
}

// TransactionResponse represents a budget transaction in API responses
type TransactionResponse struct {
	ID          string  `json:"id"`
	CycleID     string  `json:"cycleId"`
	Bucket      string  `json:"bucket"`
	CategoryID  *string `json:"categoryId,omitempty"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	OccurredAt  string  `json:"occurredAt"`
}

// ProgressResponse represents spend against a limit
type ProgressResponse struct {
	Limit      string `json:"limit"`
	Spent      string `json:"spent"`
	Remaining  string `json:"remaining"`
	Percentage string `json:"percentage"`
	Status     string `json:"status"`
}

// BucketProgressResponse represents one bucket of a cycle summary
type BucketProgressResponse struct {
	Bucket string  `json:"bucket"`
	Pct    float64 `json:"pct"`
	ProgressResponse
	Uncategorized string `json:"uncategorized"`
}

// CategoryProgressResponse represents one category of a cycle summary
type CategoryProgressResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Bucket       string `json:"bucket"`
	ProgressResponse
}

// CycleSummaryResponse represents the plan-vs-actual view of a cycle
type CycleSummaryResponse struct {
	Cycle      CycleResponse              `json:"cycle"`
	TotalLimit string                     `json:"totalLimit"`
	TotalSpent string                     `json:"totalSpent"`
	Buckets    []BucketProgressResponse   `json:"buckets"`
	Categories []CategoryProgressResponse `json:"categories"`
}

// BucketVarianceResponse represents a bucket past a variance threshold
type BucketVarianceResponse struct {
	Bucket     string  `json:"bucket"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// ReallocationResponse represents a reallocation suggestion
type ReallocationResponse struct {
	ShouldReallocate bool                     `json:"shouldReallocate"`
	Reason           string                   `json:"reason,omitempty"`
	Proposed         AllocationResponse       `json:"proposed"`
	Overspent        []BucketVarianceResponse `json:"overspent"`
	Underspent       []BucketVarianceResponse `json:"underspent"`
}

// RolloverAmountsResponse represents the unspent amount per bucket
type RolloverAmountsResponse struct {
	Needs   string `json:"needs"`
	Wants   string `json:"wants"`
	Savings string `json:"savings"`
	Total   string `json:"total"`
}

// RollOverResponse represents the outcome of closing a cycle
type RollOverResponse struct {
	Closed   CycleResponse           `json:"closed"`
	Next     CycleResponse           `json:"next"`
	Rollover RolloverAmountsResponse `json:"rollover"`
	Seeded   []CategoryResponse      `json:"seeded"`
}

// GetWindow godoc
// @Summary Compute a payday window
// @Description Return the cycle window containing a date for a payday
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param payday query int true "Day of month salary arrives (1-31)"
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} CycleWindowResponse
// @Failure 400 {object} ProblemDetails
// @Router /cycles/window [get]
func (h *CycleHandler) GetWindow(c echo.Context) error {
	payday, err := strconv.Atoi(c.QueryParam("payday"))
	if err != nil || payday < domain.MinPaydayDay || payday > domain.MaxPaydayDay {
		return NewValidationError(c, "Invalid payday", []ValidationError{
			{Field: "payday", Message: "Must be between 1 and 31"},
		})
	}

	ref := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		ref, err = time.Parse(dateLayout, raw)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be in YYYY-MM-DD format"},
			})
		}
	}

	return c.JSON(http.StatusOK, toCycleWindowResponse(service.ComputeCycleWindow(ref, payday)))
}

// StartCycle godoc
// @Summary Start a budget cycle
// @Description Score a profile and open the cycle containing the reference date
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StartCycleRequest true "Cycle start request"
// @Success 201 {object} StartCycleResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /cycles [post]
func (h *CycleHandler) StartCycle(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req StartCycleRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile, validationErrors := parseProfileRequest(req.Profile)
	if len(validationErrors) > 0 {
		return NewValidationError(c, "Validation failed", validationErrors)
	}

	input := service.StartCycleInput{
		UserID:    userID,
		Profile:   profile,
		PaydayDay: req.PaydayDay,
	}
	if req.ReferenceDate != nil && *req.ReferenceDate != "" {
		parsed, err := time.Parse(dateLayout, *req.ReferenceDate)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "referenceDate", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		input.ReferenceDate = parsed
	}
	if req.Strategy != nil && *req.Strategy != "" {
		strategy := domain.Strategy(*req.Strategy)
		input.Strategy = &strategy
	}

	result, err := h.cycleService.StartCycle(input)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to start cycle")
	}

	log.Info().
		Str("user_id", userID).
		Str("cycle_id", result.Cycle.ID.String()).
		Str("strategy", string(result.Scoring.Strategy)).
		Msg("Budget cycle started")

	return c.JSON(http.StatusCreated, StartCycleResponse{
		Cycle:   toCycleResponse(result.Cycle),
		Scoring: toIntelligentAllocationResponse(result.Scoring),
	})
}

// ListCycles godoc
// @Summary List budget cycles
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CycleResponse
// @Router /cycles [get]
func (h *CycleHandler) ListCycles(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	cycles, err := h.cycleService.ListCycles(userID)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to get cycles")
	}

	response := make([]CycleResponse, len(cycles))
	for i, cycle := range cycles {
		response[i] = toCycleResponse(cycle)
	}
	return c.JSON(http.StatusOK, response)
}

// GetCurrentCycle godoc
// @Summary Get the active budget cycle
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CycleResponse
// @Failure 404 {object} ProblemDetails
// @Router /cycles/current [get]
func (h *CycleHandler) GetCurrentCycle(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	cycle, err := h.cycleService.GetCurrentCycle(userID)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to get current cycle")
	}
	return c.JSON(http.StatusOK, toCycleResponse(cycle))
}

// GetCycle godoc
// @Summary Get a budget cycle
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Success 200 {object} CycleResponse
// @Failure 404 {object} ProblemDetails
// @Router /cycles/{id} [get]
func (h *CycleHandler) GetCycle(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	cycle, err := h.cycleService.GetCycle(userID, cycleID)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to get cycle")
	}
	return c.JSON(http.StatusOK, toCycleResponse(cycle))
}

// CreateCategory godoc
// @Summary Add a category to a cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /cycles/{id}/categories [post]
func (h *CycleHandler) CreateCategory(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	limit, err := decimal.NewFromString(req.Limit)
	if err != nil {
		return NewValidationError(c, "Invalid limit", []ValidationError{
			{Field: "limit", Message: "Must be a valid decimal number"},
		})
	}

	category, err := h.cycleService.CreateCategory(userID, cycleID, domain.Bucket(req.Bucket), req.Name, limit)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to create category")
	}

	log.Info().Str("user_id", userID).Str("cycle_id", cycleID.String()).Str("category_id", category.ID.String()).Msg("Budget category created")

	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// ListCategories godoc
// @Summary List a cycle's categories
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Success 200 {array} CategoryResponse
// @Router /cycles/{id}/categories [get]
func (h *CycleHandler) ListCategories(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	categories, err := h.cycleService.ListCategories(userID, cycleID)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to get categories")
	}

	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = toCategoryResponse(category)
	}
	return c.JSON(http.StatusOK, response)
}

// RecordTransaction godoc
// @Summary Record spend in a cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Param request body RecordTransactionRequest true "Transaction"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Router /cycles/{id}/transactions [post]
func (h *CycleHandler) RecordTransaction(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	var req RecordTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	input := service.RecordTransactionInput{
		Bucket:      domain.Bucket(req.Bucket),
		Description: req.Description,
		Amount:      amount,
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return NewValidationError(c, "Invalid category ID", []ValidationError{
				{Field: "categoryId", Message: "Must be a UUID"},
			})
		}
		input.CategoryID = &categoryID
	}
	if req.OccurredAt != nil && *req.OccurredAt != "" {
		occurredAt, err := time.Parse(dateLayout, *req.OccurredAt)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "occurredAt", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		input.OccurredAt = occurredAt
	}

	tx, err := h.cycleService.RecordTransaction(userID, cycleID, input)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to record transaction")
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(tx))
}

// ListTransactions godoc
// @Summary List a cycle's transactions
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Success 200 {array} TransactionResponse
// @Router /cycles/{id}/transactions [get]
func (h *CycleHandler) ListTransactions(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	txs, err := h.cycleService.ListTransactions(userID, cycleID)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to get transactions")
	}

	response := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		response[i] = toTransactionResponse(tx)
	}
	return c.JSON(http.StatusOK, response)
}

// GetSummary godoc
// @Summary Get a cycle's plan-vs-actual summary
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Success 200 {object} CycleSummaryResponse
// @Router /cycles/{id}/summary [get]
func (h *CycleHandler) GetSummary(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	summary, err := h.cycleService.GetSummary(userID, cycleID)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to get summary")
	}
	return c.JSON(http.StatusOK, toCycleSummaryResponse(summary))
}

// GetReallocation godoc
// @Summary Suggest a reallocation
// @Description Compare spend with the plan and propose a shift of up to five points
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Success 200 {object} ReallocationResponse
// @Router /cycles/{id}/reallocation [get]
func (h *CycleHandler) GetReallocation(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	suggestion, err := h.cycleService.SuggestReallocation(userID, cycleID)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to analyze cycle")
	}
	return c.JSON(http.StatusOK, toReallocationResponse(suggestion))
}

// ApplyReallocation godoc
// @Summary Apply an allocation to an active cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Param request body ApplyReallocationRequest true "Allocation"
// @Success 200 {object} CycleResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /cycles/{id}/reallocation [post]
func (h *CycleHandler) ApplyReallocation(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	var req ApplyReallocationRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	cycle, err := h.cycleService.ApplyReallocation(userID, cycleID, domain.BudgetAllocation{
		NeedsPct:   req.NeedsPct,
		WantsPct:   req.WantsPct,
		SavingsPct: req.SavingsPct,
	})
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to apply reallocation")
	}

	log.Info().Str("user_id", userID).Str("cycle_id", cycleID.String()).Msg("Reallocation applied")

	return c.JSON(http.StatusOK, toCycleResponse(cycle))
}

// GetRollover godoc
// @Summary Preview a cycle's rollover
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Success 200 {object} RolloverAmountsResponse
// @Router /cycles/{id}/rollover [get]
func (h *CycleHandler) GetRollover(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	rollover, err := h.cycleService.PreviewRollover(userID, cycleID)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to compute rollover")
	}
	return c.JSON(http.StatusOK, toRolloverAmountsResponse(rollover))
}

// RollOver godoc
// @Summary Close a cycle and open the next one
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Param request body RollOverRequest false "Rollover options"
// @Success 201 {object} RollOverResponse
// @Failure 409 {object} ProblemDetails
// @Router /cycles/{id}/rollover [post]
func (h *CycleHandler) RollOver(c echo.Context) error {
	userID, cycleID, handled, err := cycleParams(c)
	if handled {
		return err
	}

	var req RollOverRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return NewValidationError(c, "Invalid request body", nil)
		}
	}

	result, err := h.cycleService.RollOver(userID, cycleID, req.Carry)
	if err != nil {
		return handleCycleError(c, err, userID, "Failed to roll over cycle")
	}

	log.Info().
		Str("user_id", userID).
		Str("closed_cycle_id", result.Closed.ID.String()).
		Str("next_cycle_id", result.Next.ID.String()).
		Int("seeded", len(result.Seeded)).
		Msg("Budget cycle rolled over")

	seeded := make([]CategoryResponse, len(result.Seeded))
	for i, category := range result.Seeded {
		seeded[i] = toCategoryResponse(category)
	}

	return c.JSON(http.StatusCreated, RollOverResponse{
		Closed:   toCycleResponse(result.Closed),
		Next:     toCycleResponse(result.Next),
		Rollover: toRolloverAmountsResponse(result.Rollover),
		Seeded:   seeded,
	})
}

// cycleParams reads the authenticated user and the :id path parameter.
// When handled is true a problem response has already been written and err is its result.
func cycleParams(c echo.Context) (userID string, cycleID uuid.UUID, handled bool, err error) {
	userID = middleware.GetUserID(c)
	if userID == "" {
		return "", uuid.Nil, true, NewUnauthorizedError(c, "Authentication required")
	}

	cycleID, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		return "", uuid.Nil, true, NewValidationError(c, "Invalid cycle ID", nil)
	}
	return userID, cycleID, false, nil
}

// handleCycleError maps domain errors to problem responses
func handleCycleError(c echo.Context, err error, userID, detail string) error {
	switch {
	case errors.Is(err, domain.ErrCycleNotFound):
		return NewNotFoundError(c, "Budget cycle not found")
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewNotFoundError(c, "Budget category not found")
	case errors.Is(err, domain.ErrCycleAlreadyActive):
		return NewConflictError(c, "An active budget cycle already exists")
	case errors.Is(err, domain.ErrCycleClosed):
		return NewConflictError(c, "Budget cycle is closed")
	case errors.Is(err, domain.ErrCategoryAlreadyExists):
		return NewConflictError(c, "A category with this name already exists in the bucket")
	case errors.Is(err, domain.ErrInvalidPayday):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "paydayDay", Message: "Must be between 1 and 31"},
		})
	case errors.Is(err, domain.ErrInvalidStrategy):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "strategy", Message: "Must be survival, balanced or aggressive"},
		})
	case errors.Is(err, domain.ErrInvalidBucket):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "bucket", Message: "Must be needs, wants or savings"},
		})
	case errors.Is(err, domain.ErrCategoryBucketMismatch):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category belongs to a different bucket"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Must be zero or positive"},
		})
	case errors.Is(err, domain.ErrInvalidAllocation):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "allocation", Message: "Percentages must be within [0,1] and sum to 1"},
		})
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name cannot be empty"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Too long"},
		})
	}

	log.Error().Err(err).Str("user_id", userID).Msg(detail)
	return NewInternalError(c, detail)
}

func toCycleWindowResponse(w domain.CycleWindow) CycleWindowResponse {
	return CycleWindowResponse{
		Start: w.Start.Format(dateLayout),
		End:   w.End.Format(dateLayout),
	}
}

func toCycleResponse(cycle *domain.BudgetCycle) CycleResponse {
	resp := CycleResponse{
		ID:         cycle.ID.String(),
		StartDate:  cycle.StartDate.Format(dateLayout),
		EndDate:    cycle.EndDate.Format(dateLayout),
		PaydayDay:  cycle.PaydayDay,
		Allocation: toAllocationResponse(cycle.Allocation()),
		NetIncome:  cycle.NetIncome.StringFixed(2),
		Status:     string(cycle.Status),
		CreatedAt:  cycle.CreatedAt.Format(time.RFC3339),
	}
	if cycle.PreviousCycleID != nil {
		prev := cycle.PreviousCycleID.String()
		resp.PreviousCycleID = &prev
	}
	if cycle.ClosedAt != nil {
		closedAt := cycle.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &closedAt
	}
	return resp
}

func toCategoryResponse(category *domain.BudgetCategory) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		CycleID:   category.CycleID.String(),
		Bucket:    string(category.Bucket),
		Name:      category.Name,
		Limit:     category.LimitAmount.StringFixed(2),
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionResponse(tx *domain.BudgetTransaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          tx.ID.String(),
		CycleID:     tx.CycleID.String(),
		Bucket:      string(tx.Bucket),
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		OccurredAt:  tx.OccurredAt.Format(dateLayout),
	}
	if tx.CategoryID != nil {
		categoryID := tx.CategoryID.String()
		resp.CategoryID = &categoryID
	}
	return resp
}

func toProgressResponse(p domain.BudgetProgress) ProgressResponse {
	return ProgressResponse{
		Limit:      p.Limit.StringFixed(2),
		Spent:      p.Spent.StringFixed(2),
		Remaining:  p.Remaining.StringFixed(2),
		Percentage: p.Percentage.StringFixed(1),
		Status:     p.Status,
	}
}

func toCycleSummaryResponse(summary *domain.CycleSummary) CycleSummaryResponse {
	buckets := make([]BucketProgressResponse, len(summary.Buckets))
	for i, b := range summary.Buckets {
		buckets[i] = BucketProgressResponse{
			Bucket:           string(b.Bucket),
			Pct:              b.Pct,
			ProgressResponse: toProgressResponse(b.BudgetProgress),
			Uncategorized:    b.Uncategorized.StringFixed(2),
		}
	}

	categories := make([]CategoryProgressResponse, len(summary.Categories))
	for i, cat := range summary.Categories {
		categories[i] = CategoryProgressResponse{
			CategoryID:       cat.CategoryID,
			CategoryName:     cat.CategoryName,
			Bucket:           string(cat.Bucket),
			ProgressResponse: toProgressResponse(cat.BudgetProgress),
		}
	}

	return CycleSummaryResponse{
		Cycle:      toCycleResponse(summary.Cycle),
		TotalLimit: summary.TotalLimit.StringFixed(2),
		TotalSpent: summary.TotalSpent.StringFixed(2),
		Buckets:    buckets,
		Categories: categories,
	}
}

func toVarianceResponses(variances []domain.BucketVariance) []BucketVarianceResponse {
	result := make([]BucketVarianceResponse, len(variances))
	for i, v := range variances {
		result[i] = BucketVarianceResponse{
			Bucket:     string(v.Bucket),
			Amount:     v.Amount.StringFixed(2),
			Percentage: v.Percentage,
		}
	}
	return result
}

func toReallocationResponse(s *domain.ReallocationSuggestion) ReallocationResponse {
	return ReallocationResponse{
		ShouldReallocate: s.ShouldReallocate,
		Reason:           s.Reason,
		Proposed:         toAllocationResponse(s.Proposed),
		Overspent:        toVarianceResponses(s.Details.Overspent),
		Underspent:       toVarianceResponses(s.Details.Underspent),
	}
}

func toRolloverAmountsResponse(r domain.RolloverResult) RolloverAmountsResponse {
	return RolloverAmountsResponse{
		Needs:   r.Needs.StringFixed(2),
		Wants:   r.Wants.StringFixed(2),
		Savings: r.Savings.StringFixed(2),
		Total:   r.Total().StringFixed(2),
	}
}
