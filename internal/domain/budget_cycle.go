package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CycleStatus is the lifecycle state of a budget cycle
type CycleStatus string

const (
	CycleStatusActive CycleStatus = "active"
	CycleStatusClosed CycleStatus = "closed"
)

// CycleWindow is the inclusive date range of one payday-to-payday period
type CycleWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls on a day inside the window
func (w CycleWindow) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, w.Start.Location())
	return !day.Before(w.Start) && !day.After(w.End)
}

// BudgetCycle is one payday-anchored budgeting period with an allocation snapshot
type BudgetCycle struct {
	ID         uuid.UUID       `json:"id"`
	UserID     string          `json:"userId"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	PaydayDay  int             `json:"paydayDay"`
	NeedsPct   float64         `json:"needsPct"`
	WantsPct   float64         `json:"wantsPct"`
	SavingsPct float64         `json:"savingsPct"`
	NetIncome  decimal.Decimal `json:"netIncome"`
	Status     CycleStatus     `json:"status"`
	// PreviousCycleID links a rolled-over cycle to the one it superseded
	PreviousCycleID *uuid.UUID `json:"previousCycleId,omitempty"`
	ClosedAt        *time.Time `json:"closedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Allocation returns the cycle's percentage snapshot
func (c *BudgetCycle) Allocation() BudgetAllocation {
	return BudgetAllocation{
		NeedsPct:   c.NeedsPct,
		WantsPct:   c.WantsPct,
		SavingsPct: c.SavingsPct,
	}
}

// Window returns the cycle's date range
func (c *BudgetCycle) Window() CycleWindow {
	return CycleWindow{Start: c.StartDate, End: c.EndDate}
}

// IsActive reports whether the cycle still accepts transactions
func (c *BudgetCycle) IsActive() bool {
	return c.Status == CycleStatusActive
}

type BudgetCycleRepository interface {
	Create(cycle *BudgetCycle) (*BudgetCycle, error)
	GetByID(userID string, id uuid.UUID) (*BudgetCycle, error)
	GetActive(userID string) (*BudgetCycle, error)
	GetAllByUser(userID string) ([]*BudgetCycle, error)
	GetExpiredActive(before time.Time) ([]*BudgetCycle, error)
	UpdateAllocation(userID string, id uuid.UUID, allocation BudgetAllocation) (*BudgetCycle, error)
	Close(userID string, id uuid.UUID, closedAt time.Time) error
}
