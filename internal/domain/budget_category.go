package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RolloverCategoryName names the categories seeded from a previous cycle's leftover
const RolloverCategoryName = "Rollover"

// BudgetCategory subdivides a bucket within a single cycle
type BudgetCategory struct {
	ID          uuid.UUID       `json:"id"`
	CycleID     uuid.UUID       `json:"cycleId"`
	Bucket      Bucket          `json:"bucket"`
	Name        string          `json:"name"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type BudgetCategoryRepository interface {
	Create(category *BudgetCategory) (*BudgetCategory, error)
	GetByID(cycleID uuid.UUID, id uuid.UUID) (*BudgetCategory, error)
	GetAllByCycle(cycleID uuid.UUID) ([]*BudgetCategory, error)
}
