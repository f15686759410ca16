package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetTransaction is a single recorded movement against a cycle's bucket
type BudgetTransaction struct {
	ID          uuid.UUID       `json:"id"`
	CycleID     uuid.UUID       `json:"cycleId"`
	Bucket      Bucket          `json:"bucket"`
	CategoryID  *uuid.UUID      `json:"categoryId,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	OccurredAt  time.Time       `json:"occurredAt"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type BudgetTransactionRepository interface {
	Create(transaction *BudgetTransaction) (*BudgetTransaction, error)
	GetAllByCycle(cycleID uuid.UUID) ([]*BudgetTransaction, error)
}
