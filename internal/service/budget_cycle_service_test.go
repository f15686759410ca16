package service

import (
	"errors"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cycleServiceFixture struct {
	svc          *BudgetCycleService
	cycles       *testutil.MockBudgetCycleRepository
	categories   *testutil.MockBudgetCategoryRepository
	transactions *testutil.MockBudgetTransactionRepository
}

func setupBudgetCycleService() *cycleServiceFixture {
	cycles := testutil.NewMockBudgetCycleRepository()
	categories := testutil.NewMockBudgetCategoryRepository()
	transactions := testutil.NewMockBudgetTransactionRepository()

	svc := NewBudgetCycleService(cycles, categories, transactions, NewAllocationScorer(nil))
	svc.now = func() time.Time { return noon(2026, time.October, 14) }

	return &cycleServiceFixture{svc: svc, cycles: cycles, categories: categories, transactions: transactions}
}

func testProfile() domain.UserBudgetProfile {
	return domain.UserBudgetProfile{
		StableSalary:    dec(8000),
		Rent:            dec(800),
		TitheRemittance: dec(100),
		UtilitiesTotal:  dec(100),
	}
}

func TestBudgetCycleService_StartCycle(t *testing.T) {
	f := setupBudgetCycleService()

	result, err := f.svc.StartCycle(StartCycleInput{
		UserID:    testUserID,
		Profile:   testProfile(),
		PaydayDay: 25,
	})
	require.NoError(t, err)

	cycle := result.Cycle
	assert.Equal(t, testUserID, cycle.UserID)
	assert.Equal(t, domain.CycleStatusActive, cycle.Status)
	assert.Equal(t, noon(2026, time.September, 25), cycle.StartDate)
	assert.Equal(t, noon(2026, time.October, 24), cycle.EndDate)
	assert.Equal(t, result.Scoring.Allocation, cycle.Allocation())
	assert.Equal(t, "8000", cycle.NetIncome.String())
	assert.NotEmpty(t, result.Scoring.Reasoning)

	stored, err := f.cycles.GetActive(testUserID)
	require.NoError(t, err)
	assert.Equal(t, cycle.ID, stored.ID)
}

func TestBudgetCycleService_StartCycle_StrategyOverride(t *testing.T) {
	f := setupBudgetCycleService()
	strategy := domain.StrategyAggressive

	result, err := f.svc.StartCycle(StartCycleInput{
		UserID:        testUserID,
		Profile:       testProfile(),
		PaydayDay:     1,
		ReferenceDate: noon(2026, time.March, 15),
		Strategy:      &strategy,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BudgetAllocation{NeedsPct: 0.4, WantsPct: 0.2, SavingsPct: 0.4}, result.Cycle.Allocation())
	assert.Equal(t, noon(2026, time.March, 1), result.Cycle.StartDate)
}

func TestBudgetCycleService_StartCycle_Errors(t *testing.T) {
	unknown := domain.Strategy("yolo")

	tests := []struct {
		name    string
		input   StartCycleInput
		seed    bool
		wantErr error
	}{
		{"payday zero", StartCycleInput{UserID: testUserID, PaydayDay: 0}, false, domain.ErrInvalidPayday},
		{"payday 32", StartCycleInput{UserID: testUserID, PaydayDay: 32}, false, domain.ErrInvalidPayday},
		{"unknown strategy", StartCycleInput{UserID: testUserID, PaydayDay: 25, Strategy: &unknown}, false, domain.ErrInvalidStrategy},
		{"already active", StartCycleInput{UserID: testUserID, PaydayDay: 25}, true, domain.ErrCycleAlreadyActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupBudgetCycleService()
			if tt.seed {
				f.cycles.AddCycle(newTestCycle(0.5, 0.3, 0.2, 5000))
			}

			_, err := f.svc.StartCycle(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBudgetCycleService_GetCycle_OtherUser(t *testing.T) {
	f := setupBudgetCycleService()
	cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(cycle)

	_, err := f.svc.GetCycle("auth0|someone-else", cycle.ID)
	assert.ErrorIs(t, err, domain.ErrCycleNotFound)

	got, err := f.svc.GetCycle(testUserID, cycle.ID)
	require.NoError(t, err)
	assert.Equal(t, cycle.ID, got.ID)
}

func TestBudgetCycleService_CreateCategory(t *testing.T) {
	f := setupBudgetCycleService()
	cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(cycle)

	category, err := f.svc.CreateCategory(testUserID, cycle.ID, domain.BucketWants, "  Dining  ", dec(400))
	require.NoError(t, err)
	assert.Equal(t, "Dining", category.Name)
	assert.Equal(t, cycle.ID, category.CycleID)

	_, err = f.svc.CreateCategory(testUserID, cycle.ID, domain.BucketWants, "Dining", dec(100))
	assert.ErrorIs(t, err, domain.ErrCategoryAlreadyExists)

	categories, err := f.svc.ListCategories(testUserID, cycle.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestBudgetCycleService_CreateCategory_Validation(t *testing.T) {
	longName := make([]byte, domain.MaxCategoryNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name    string
		bucket  domain.Bucket
		catName string
		limit   decimal.Decimal
		closed  bool
		wantErr error
	}{
		{"empty name", domain.BucketNeeds, "   ", dec(10), false, domain.ErrNameRequired},
		{"long name", domain.BucketNeeds, string(longName), dec(10), false, domain.ErrNameTooLong},
		{"bad bucket", "luxuries", "Yacht", dec(10), false, domain.ErrInvalidBucket},
		{"negative limit", domain.BucketNeeds, "Rent", dec(-1), false, domain.ErrInvalidAmount},
		{"closed cycle", domain.BucketNeeds, "Rent", dec(10), true, domain.ErrCycleClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupBudgetCycleService()
			cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
			if tt.closed {
				cycle.Status = domain.CycleStatusClosed
			}
			f.cycles.AddCycle(cycle)

			_, err := f.svc.CreateCategory(testUserID, cycle.ID, tt.bucket, tt.catName, tt.limit)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBudgetCycleService_RecordTransaction(t *testing.T) {
	f := setupBudgetCycleService()
	cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(cycle)
	groceries := &domain.BudgetCategory{ID: uuid.New(), CycleID: cycle.ID, Bucket: domain.BucketNeeds, Name: "Groceries", LimitAmount: dec(600)}
	f.categories.AddCategory(groceries)

	tx, err := f.svc.RecordTransaction(testUserID, cycle.ID, RecordTransactionInput{
		Bucket:      domain.BucketNeeds,
		CategoryID:  &groceries.ID,
		Description: "Weekly shop",
		Amount:      dec(85),
	})
	require.NoError(t, err)
	assert.Equal(t, noon(2026, time.October, 14), tx.OccurredAt)

	_, err = f.svc.RecordTransaction(testUserID, cycle.ID, RecordTransactionInput{
		Bucket:     domain.BucketWants,
		CategoryID: &groceries.ID,
		Amount:     dec(10),
	})
	assert.ErrorIs(t, err, domain.ErrCategoryBucketMismatch)

	missing := uuid.New()
	_, err = f.svc.RecordTransaction(testUserID, cycle.ID, RecordTransactionInput{
		Bucket:     domain.BucketNeeds,
		CategoryID: &missing,
		Amount:     dec(10),
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = f.svc.RecordTransaction(testUserID, cycle.ID, RecordTransactionInput{Bucket: domain.BucketNeeds, Amount: dec(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	txs, err := f.svc.ListTransactions(testUserID, cycle.ID)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestBudgetCycleService_SummaryAndReallocation(t *testing.T) {
	f := setupBudgetCycleService()
	cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(cycle)
	for _, tx := range bucketSpend(cycle, 2800, 1000, 900) {
		f.transactions.AddTransaction(tx)
	}

	summary, err := f.svc.GetSummary(testUserID, cycle.ID)
	require.NoError(t, err)
	assert.Equal(t, "4700", summary.TotalSpent.String())
	assert.Equal(t, domain.ProgressOver, summary.Buckets[0].Status)

	suggestion, err := f.svc.SuggestReallocation(testUserID, cycle.ID)
	require.NoError(t, err)
	require.True(t, suggestion.ShouldReallocate)

	updated, err := f.svc.ApplyReallocation(testUserID, cycle.ID, suggestion.Proposed)
	require.NoError(t, err)
	assert.InDelta(t, 0.55, updated.NeedsPct, 1e-9)
	assert.InDelta(t, 0.25, updated.WantsPct, 1e-9)

	preview, err := f.svc.PreviewRollover(testUserID, cycle.ID)
	require.NoError(t, err)
	// 5000 * 0.25 - 1000 and 5000 * 0.2 - 900 under the updated allocation
	assert.Equal(t, "250", preview.Wants.String())
	assert.Equal(t, "100", preview.Savings.String())
}

func TestBudgetCycleService_ApplyReallocation_Invalid(t *testing.T) {
	f := setupBudgetCycleService()
	cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(cycle)

	_, err := f.svc.ApplyReallocation(testUserID, cycle.ID, domain.BudgetAllocation{NeedsPct: 0.6, WantsPct: 0.3, SavingsPct: 0.2})
	assert.ErrorIs(t, err, domain.ErrInvalidAllocation)
	assert.Equal(t, 0.5, cycle.NeedsPct)
}

func TestBudgetCycleService_SnapshotLoadError(t *testing.T) {
	f := setupBudgetCycleService()
	cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(cycle)
	f.transactions.GetAllErr = errors.New("connection reset")

	_, err := f.svc.SuggestReallocation(testUserID, cycle.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load transactions")
}

func TestBudgetCycleService_RollOver(t *testing.T) {
	f := setupBudgetCycleService()
	cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(cycle)
	for _, tx := range bucketSpend(cycle, 2800, 1000, 900) {
		f.transactions.AddTransaction(tx)
	}

	result, err := f.svc.RollOver(testUserID, cycle.ID, true)
	require.NoError(t, err)

	assert.Equal(t, domain.CycleStatusClosed, result.Closed.Status)
	require.NotNil(t, result.Closed.ClosedAt)

	next := result.Next
	assert.Equal(t, domain.CycleStatusActive, next.Status)
	assert.Equal(t, noon(2026, time.October, 25), next.StartDate)
	assert.Equal(t, noon(2026, time.November, 24), next.EndDate)
	assert.Equal(t, cycle.Allocation(), next.Allocation())
	require.NotNil(t, next.PreviousCycleID)
	assert.Equal(t, cycle.ID, *next.PreviousCycleID)

	assert.Equal(t, "600", result.Rollover.Total().String())
	require.Len(t, result.Seeded, 2)
	for _, category := range result.Seeded {
		assert.Equal(t, domain.RolloverCategoryName, category.Name)
		assert.Equal(t, next.ID, category.CycleID)
	}
	assert.Equal(t, domain.BucketWants, result.Seeded[0].Bucket)
	assert.Equal(t, "500", result.Seeded[0].LimitAmount.String())

	active, err := f.svc.GetCurrentCycle(testUserID)
	require.NoError(t, err)
	assert.Equal(t, next.ID, active.ID)

	_, err = f.svc.RollOver(testUserID, cycle.ID, false)
	assert.ErrorIs(t, err, domain.ErrCycleClosed)
}

func TestBudgetCycleService_RollOver_WithoutCarry(t *testing.T) {
	f := setupBudgetCycleService()
	cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(cycle)

	result, err := f.svc.RollOver(testUserID, cycle.ID, false)
	require.NoError(t, err)
	assert.Empty(t, result.Seeded)

	categories, err := f.categories.GetAllByCycle(result.Next.ID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestBudgetCycleService_RollOver_CloseFails(t *testing.T) {
	f := setupBudgetCycleService()
	cycle := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(cycle)
	f.cycles.CloseFn = func(string, uuid.UUID, time.Time) error {
		return errors.New("deadlock detected")
	}

	_, err := f.svc.RollOver(testUserID, cycle.ID, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close cycle")
	assert.True(t, cycle.IsActive())

	cycles, err := f.cycles.GetAllByUser(testUserID)
	require.NoError(t, err)
	assert.Len(t, cycles, 1)
}

func TestBudgetCycleService_RollOverExpired(t *testing.T) {
	f := setupBudgetCycleService()

	expired := newTestCycle(0.5, 0.3, 0.2, 5000)
	f.cycles.AddCycle(expired)

	current := newTestCycle(0.5, 0.3, 0.2, 5000)
	current.UserID = "auth0|other"
	current.StartDate = noon(2026, time.October, 25)
	current.EndDate = noon(2026, time.November, 24)
	f.cycles.AddCycle(current)

	rolled, err := f.svc.RollOverExpired(time.Date(2026, time.October, 25, 3, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, rolled)
	assert.False(t, expired.IsActive())
	assert.True(t, current.IsActive())

	// Cycles ending today have not expired yet
	rolled, err = f.svc.RollOverExpired(noon(2026, time.November, 24))
	require.NoError(t, err)
	assert.Equal(t, 0, rolled)

	rolled, err = f.svc.RollOverExpired(noon(2026, time.November, 25))
	require.NoError(t, err)
	assert.Equal(t, 2, rolled)
	assert.False(t, current.IsActive())
}

func TestBudgetCycleService_RollOverExpired_CollectsErrors(t *testing.T) {
	f := setupBudgetCycleService()
	f.cycles.AddCycle(newTestCycle(0.5, 0.3, 0.2, 5000))
	f.cycles.CloseFn = func(string, uuid.UUID, time.Time) error {
		return errors.New("deadlock detected")
	}

	rolled, err := f.svc.RollOverExpired(noon(2026, time.December, 1))
	assert.Equal(t, 0, rolled)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}
