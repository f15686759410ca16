package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetCycleService handles the budget cycle lifecycle on top of the repositories
type BudgetCycleService struct {
	cycleRepo       domain.BudgetCycleRepository
	categoryRepo    domain.BudgetCategoryRepository
	transactionRepo domain.BudgetTransactionRepository
	scorer          *AllocationScorer
	now             func() time.Time
}

// NewBudgetCycleService creates a new BudgetCycleService
func NewBudgetCycleService(
	cycleRepo domain.BudgetCycleRepository,
	categoryRepo domain.BudgetCategoryRepository,
	transactionRepo domain.BudgetTransactionRepository,
	scorer *AllocationScorer,
) *BudgetCycleService {
	return &BudgetCycleService{
		cycleRepo:       cycleRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		scorer:          scorer,
		now:             time.Now,
	}
}

// StartCycleInput describes the first cycle of a plan
type StartCycleInput struct {
	UserID        string
	Profile       domain.UserBudgetProfile
	PaydayDay     int
	ReferenceDate time.Time
	// Strategy overrides the scored allocation when set
	Strategy *domain.Strategy
}

// StartCycleResult is the created cycle plus the scoring that produced it
type StartCycleResult struct {
	Cycle   *domain.BudgetCycle                 `json:"cycle"`
	Scoring *domain.IntelligentAllocationResult `json:"scoring"`
}

// StartCycle scores the profile and creates the cycle containing the reference date
func (s *BudgetCycleService) StartCycle(input StartCycleInput) (*StartCycleResult, error) {
	if input.PaydayDay < domain.MinPaydayDay || input.PaydayDay > domain.MaxPaydayDay {
		return nil, domain.ErrInvalidPayday
	}

	existing, err := s.cycleRepo.GetActive(input.UserID)
	if err != nil && !errors.Is(err, domain.ErrCycleNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCycleAlreadyActive
	}

	scoring := s.scorer.ComputeIntelligentAllocation(input.Profile)
	allocation := scoring.Allocation
	if input.Strategy != nil {
		allocation, err = StrategyToAllocation(*input.Strategy)
		if err != nil {
			return nil, err
		}
	}

	ref := input.ReferenceDate
	if ref.IsZero() {
		ref = s.now()
	}

	cycle := NewBudgetCycle(input.UserID, ref, input.PaydayDay, allocation, scoring.NetIncome)
	created, err := s.cycleRepo.Create(cycle)
	if err != nil {
		return nil, err
	}

	return &StartCycleResult{Cycle: created, Scoring: scoring}, nil
}

// GetCurrentCycle returns the user's active cycle
func (s *BudgetCycleService) GetCurrentCycle(userID string) (*domain.BudgetCycle, error) {
	return s.cycleRepo.GetActive(userID)
}

// GetCycle returns a cycle owned by the user
func (s *BudgetCycleService) GetCycle(userID string, cycleID uuid.UUID) (*domain.BudgetCycle, error) {
	return s.cycleRepo.GetByID(userID, cycleID)
}

// ListCycles returns every cycle of the user, newest first
func (s *BudgetCycleService) ListCycles(userID string) ([]*domain.BudgetCycle, error) {
	return s.cycleRepo.GetAllByUser(userID)
}

// CreateCategory adds a category to one bucket of an active cycle
func (s *BudgetCycleService) CreateCategory(userID string, cycleID uuid.UUID, bucket domain.Bucket, name string, limit decimal.Decimal) (*domain.BudgetCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !bucket.IsValid() {
		return nil, domain.ErrInvalidBucket
	}
	if limit.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	cycle, err := s.activeCycle(userID, cycleID)
	if err != nil {
		return nil, err
	}

	return s.categoryRepo.Create(&domain.BudgetCategory{
		ID:          uuid.New(),
		CycleID:     cycle.ID,
		Bucket:      bucket,
		Name:        name,
		LimitAmount: limit,
	})
}

// ListCategories returns the categories of a cycle
func (s *BudgetCycleService) ListCategories(userID string, cycleID uuid.UUID) ([]*domain.BudgetCategory, error) {
	cycle, err := s.cycleRepo.GetByID(userID, cycleID)
	if err != nil {
		return nil, err
	}
	return s.categoryRepo.GetAllByCycle(cycle.ID)
}

// RecordTransactionInput describes a new transaction
type RecordTransactionInput struct {
	Bucket      domain.Bucket
	CategoryID  *uuid.UUID
	Description string
	Amount      decimal.Decimal
	OccurredAt  time.Time
}

// RecordTransaction appends a transaction to an active cycle
func (s *BudgetCycleService) RecordTransaction(userID string, cycleID uuid.UUID, input RecordTransactionInput) (*domain.BudgetTransaction, error) {
	if !input.Bucket.IsValid() {
		return nil, domain.ErrInvalidBucket
	}
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	description := strings.TrimSpace(input.Description)
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrNameTooLong
	}

	cycle, err := s.activeCycle(userID, cycleID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(cycle.ID, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category.Bucket != input.Bucket {
			return nil, domain.ErrCategoryBucketMismatch
		}
	}

	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = s.now()
	}

	return s.transactionRepo.Create(&domain.BudgetTransaction{
		ID:          uuid.New(),
		CycleID:     cycle.ID,
		Bucket:      input.Bucket,
		CategoryID:  input.CategoryID,
		Description: description,
		Amount:      input.Amount,
		OccurredAt:  occurredAt,
	})
}

// ListTransactions returns a cycle's transactions
func (s *BudgetCycleService) ListTransactions(userID string, cycleID uuid.UUID) ([]*domain.BudgetTransaction, error) {
	cycle, err := s.cycleRepo.GetByID(userID, cycleID)
	if err != nil {
		return nil, err
	}
	return s.transactionRepo.GetAllByCycle(cycle.ID)
}

// GetSummary returns the plan-vs-actual view of a cycle
func (s *BudgetCycleService) GetSummary(userID string, cycleID uuid.UUID) (*domain.CycleSummary, error) {
	snap, err := s.snapshot(userID, cycleID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAllByCycle(snap.cycle.ID)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	return SummarizeCycle(snap.cycle, categories, snap.transactions, snap.cycle.NetIncome), nil
}

// SuggestReallocation analyzes a cycle's spend against its plan
func (s *BudgetCycleService) SuggestReallocation(userID string, cycleID uuid.UUID) (*domain.ReallocationSuggestion, error) {
	snap, err := s.snapshot(userID, cycleID)
	if err != nil {
		return nil, err
	}
	return AnalyzeAndSuggestReallocation(snap.cycle, snap.transactions, snap.cycle.NetIncome), nil
}

// ApplyReallocation replaces an active cycle's percentages with an accepted allocation
func (s *BudgetCycleService) ApplyReallocation(userID string, cycleID uuid.UUID, allocation domain.BudgetAllocation) (*domain.BudgetCycle, error) {
	if err := allocation.Validate(domain.AllocationApplyTolerance); err != nil {
		return nil, err
	}

	cycle, err := s.activeCycle(userID, cycleID)
	if err != nil {
		return nil, err
	}

	return s.cycleRepo.UpdateAllocation(userID, cycle.ID, allocation)
}

// PreviewRollover returns what would carry into the next cycle
func (s *BudgetCycleService) PreviewRollover(userID string, cycleID uuid.UUID) (domain.RolloverResult, error) {
	snap, err := s.snapshot(userID, cycleID)
	if err != nil {
		return domain.RolloverResult{}, err
	}
	return CalculateRollover(snap.cycle, snap.transactions, snap.cycle.NetIncome), nil
}

// RollOverResult is the outcome of closing a cycle
type RollOverResult struct {
	Closed   *domain.BudgetCycle      `json:"closed"`
	Next     *domain.BudgetCycle      `json:"next"`
	Rollover domain.RolloverResult    `json:"rollover"`
	Seeded   []*domain.BudgetCategory `json:"seeded"`
}

// RollOver closes an active cycle and opens its successor with the same payday and
// allocation. When carry is set, each bucket's positive leftover seeds a category
// in the new cycle.
func (s *BudgetCycleService) RollOver(userID string, cycleID uuid.UUID, carry bool) (*RollOverResult, error) {
	snap, err := s.snapshot(userID, cycleID)
	if err != nil {
		return nil, err
	}
	cycle := snap.cycle
	if !cycle.IsActive() {
		return nil, domain.ErrCycleClosed
	}

	rollover := CalculateRollover(cycle, snap.transactions, cycle.NetIncome)

	next := NewBudgetCycle(cycle.UserID, util.AddDays(cycle.EndDate, 1), cycle.PaydayDay, cycle.Allocation(), cycle.NetIncome)
	previousID := cycle.ID
	next.PreviousCycleID = &previousID

	closedAt := s.now()
	if err := s.cycleRepo.Close(cycle.UserID, cycle.ID, closedAt); err != nil {
		return nil, fmt.Errorf("close cycle: %w", err)
	}
	cycle.Status = domain.CycleStatusClosed
	cycle.ClosedAt = &closedAt

	created, err := s.cycleRepo.Create(next)
	if err != nil {
		return nil, fmt.Errorf("create next cycle: %w", err)
	}

	result := &RollOverResult{
		Closed:   cycle,
		Next:     created,
		Rollover: rollover,
		Seeded:   []*domain.BudgetCategory{},
	}

	if !carry {
		return result, nil
	}

	for _, b := range domain.Buckets {
		amount := rollover.Amount(b)
		if !amount.IsPositive() {
			continue
		}
		category, err := s.categoryRepo.Create(&domain.BudgetCategory{
			ID:          uuid.New(),
			CycleID:     created.ID,
			Bucket:      b,
			Name:        domain.RolloverCategoryName,
			LimitAmount: amount,
		})
		if err != nil {
			return nil, fmt.Errorf("seed rollover category: %w", err)
		}
		result.Seeded = append(result.Seeded, category)
	}

	return result, nil
}

// RollOverExpired closes every active cycle that ended before asOf, without carrying leftovers.
// It returns how many cycles were rolled over; failures on individual cycles are collected.
func (s *BudgetCycleService) RollOverExpired(asOf time.Time) (int, error) {
	expired, err := s.cycleRepo.GetExpiredActive(util.DateOnly(asOf))
	if err != nil {
		return 0, err
	}

	rolled := 0
	var errs []error
	for _, cycle := range expired {
		if _, err := s.RollOver(cycle.UserID, cycle.ID, false); err != nil {
			errs = append(errs, fmt.Errorf("cycle %s: %w", cycle.ID, err))
			continue
		}
		rolled++
	}
	return rolled, errors.Join(errs...)
}

// cycleSnapshot is a cycle and its transactions read once for one computation
type cycleSnapshot struct {
	cycle        *domain.BudgetCycle
	transactions []*domain.BudgetTransaction
}

func (s *BudgetCycleService) snapshot(userID string, cycleID uuid.UUID) (*cycleSnapshot, error) {
	cycle, err := s.cycleRepo.GetByID(userID, cycleID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.GetAllByCycle(cycle.ID)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return &cycleSnapshot{cycle: cycle, transactions: transactions}, nil
}

func (s *BudgetCycleService) activeCycle(userID string, cycleID uuid.UUID) (*domain.BudgetCycle, error) {
	cycle, err := s.cycleRepo.GetByID(userID, cycleID)
	if err != nil {
		return nil, err
	}
	if !cycle.IsActive() {
		return nil, domain.ErrCycleClosed
	}
	return cycle, nil
}
