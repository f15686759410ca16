package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/google/uuid"
)

// MockBudgetCycleRepository is a mock implementation of domain.BudgetCycleRepository
type MockBudgetCycleRepository struct {
	mu       sync.Mutex
	Cycles   map[uuid.UUID]*domain.BudgetCycle
	CreateFn func(cycle *domain.BudgetCycle) (*domain.BudgetCycle, error)
	CloseFn  func(userID string, id uuid.UUID, closedAt time.Time) error
}

// NewMockBudgetCycleRepository creates a new MockBudgetCycleRepository
func NewMockBudgetCycleRepository() *MockBudgetCycleRepository {
	return &MockBudgetCycleRepository{
		Cycles: make(map[uuid.UUID]*domain.BudgetCycle),
	}
}

// AddCycle adds a cycle to the mock repository
func (m *MockBudgetCycleRepository) AddCycle(cycle *domain.BudgetCycle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Cycles[cycle.ID] = cycle
}

// Create stores a new cycle
func (m *MockBudgetCycleRepository) Create(cycle *domain.BudgetCycle) (*domain.BudgetCycle, error) {
	if m.CreateFn != nil {
		return m.CreateFn(cycle)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if cycle.ID == uuid.Nil {
		cycle.ID = uuid.New()
	}
	now := time.Now()
	cycle.CreatedAt = now
	cycle.UpdatedAt = now
	m.Cycles[cycle.ID] = cycle
	return cycle, nil
}

// GetByID retrieves a cycle owned by the user
func (m *MockBudgetCycleRepository) GetByID(userID string, id uuid.UUID) (*domain.BudgetCycle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cycle, ok := m.Cycles[id]; ok && cycle.UserID == userID {
		return cycle, nil
	}
	return nil, domain.ErrCycleNotFound
}

// GetActive retrieves the user's active cycle
func (m *MockBudgetCycleRepository) GetActive(userID string) (*domain.BudgetCycle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cycle := range m.Cycles {
		if cycle.UserID == userID && cycle.Status == domain.CycleStatusActive {
			return cycle, nil
		}
	}
	return nil, domain.ErrCycleNotFound
}

// GetAllByUser retrieves all cycles of a user, newest first
func (m *MockBudgetCycleRepository) GetAllByUser(userID string) ([]*domain.BudgetCycle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.BudgetCycle, 0)
	for _, cycle := range m.Cycles {
		if cycle.UserID == userID {
			result = append(result, cycle)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.After(result[j].StartDate)
	})
	return result, nil
}

// GetExpiredActive retrieves active cycles that ended before the given date
func (m *MockBudgetCycleRepository) GetExpiredActive(before time.Time) ([]*domain.BudgetCycle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.BudgetCycle, 0)
	for _, cycle := range m.Cycles {
		if cycle.Status == domain.CycleStatusActive && cycle.EndDate.Before(before) {
			result = append(result, cycle)
		}
	}
	return result, nil
}

// UpdateAllocation replaces a cycle's percentage snapshot
func (m *MockBudgetCycleRepository) UpdateAllocation(userID string, id uuid.UUID, allocation domain.BudgetAllocation) (*domain.BudgetCycle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cycle, ok := m.Cycles[id]
	if !ok || cycle.UserID != userID {
		return nil, domain.ErrCycleNotFound
	}
	cycle.NeedsPct = allocation.NeedsPct
	cycle.WantsPct = allocation.WantsPct
	cycle.SavingsPct = allocation.SavingsPct
	cycle.UpdatedAt = time.Now()
	return cycle, nil
}

// Close marks a cycle as closed
func (m *MockBudgetCycleRepository) Close(userID string, id uuid.UUID, closedAt time.Time) error {
	if m.CloseFn != nil {
		return m.CloseFn(userID, id, closedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cycle, ok := m.Cycles[id]
	if !ok || cycle.UserID != userID {
		return domain.ErrCycleNotFound
	}
	if cycle.Status == domain.CycleStatusClosed {
		return domain.ErrCycleClosed
	}
	cycle.Status = domain.CycleStatusClosed
	cycle.ClosedAt = &closedAt
	return nil
}

// MockBudgetCategoryRepository is a mock implementation of domain.BudgetCategoryRepository
type MockBudgetCategoryRepository struct {
	mu         sync.Mutex
	Categories map[uuid.UUID]*domain.BudgetCategory
}

// NewMockBudgetCategoryRepository creates a new MockBudgetCategoryRepository
func NewMockBudgetCategoryRepository() *MockBudgetCategoryRepository {
	return &MockBudgetCategoryRepository{
		Categories: make(map[uuid.UUID]*domain.BudgetCategory),
	}
}

// AddCategory adds a category to the mock repository
func (m *MockBudgetCategoryRepository) AddCategory(category *domain.BudgetCategory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Categories[category.ID] = category
}

// Create stores a new category, rejecting duplicate names within a cycle bucket
func (m *MockBudgetCategoryRepository) Create(category *domain.BudgetCategory) (*domain.BudgetCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.Categories {
		if c.CycleID == category.CycleID && c.Bucket == category.Bucket && c.Name == category.Name {
			return nil, domain.ErrCategoryAlreadyExists
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	m.Categories[category.ID] = category
	return category, nil
}

// GetByID retrieves a category within a cycle
func (m *MockBudgetCategoryRepository) GetByID(cycleID uuid.UUID, id uuid.UUID) (*domain.BudgetCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if category, ok := m.Categories[id]; ok && category.CycleID == cycleID {
		return category, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAllByCycle retrieves the categories of a cycle ordered by bucket and name
func (m *MockBudgetCategoryRepository) GetAllByCycle(cycleID uuid.UUID) ([]*domain.BudgetCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.BudgetCategory, 0)
	for _, category := range m.Categories {
		if category.CycleID == cycleID {
			result = append(result, category)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Bucket != result[j].Bucket {
			return result[i].Bucket < result[j].Bucket
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// MockBudgetTransactionRepository is a mock implementation of domain.BudgetTransactionRepository
type MockBudgetTransactionRepository struct {
	mu           sync.Mutex
	Transactions []*domain.BudgetTransaction
	GetAllErr    error
}

// NewMockBudgetTransactionRepository creates a new MockBudgetTransactionRepository
func NewMockBudgetTransactionRepository() *MockBudgetTransactionRepository {
	return &MockBudgetTransactionRepository{}
}

// AddTransaction adds a transaction to the mock repository
func (m *MockBudgetTransactionRepository) AddTransaction(tx *domain.BudgetTransaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	m.Transactions = append(m.Transactions, tx)
}

// Create stores a new transaction
func (m *MockBudgetTransactionRepository) Create(tx *domain.BudgetTransaction) (*domain.BudgetTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	tx.CreatedAt = time.Now()
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// GetAllByCycle retrieves the transactions of a cycle in insertion order
func (m *MockBudgetTransactionRepository) GetAllByCycle(cycleID uuid.UUID) ([]*domain.BudgetTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}
	result := make([]*domain.BudgetTransaction, 0)
	for _, tx := range m.Transactions {
		if tx.CycleID == cycleID {
			result = append(result, tx)
		}
	}
	return result, nil
}
