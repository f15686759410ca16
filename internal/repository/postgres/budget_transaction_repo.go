package postgres

import (
	"context"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, cycle_id, bucket, category_id, description, amount, occurred_at, created_at`

// BudgetTransactionRepository implements domain.BudgetTransactionRepository using PostgreSQL
type BudgetTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetTransactionRepository creates a new BudgetTransactionRepository
func NewBudgetTransactionRepository(pool *pgxpool.Pool) *BudgetTransactionRepository {
	return &BudgetTransactionRepository{pool: pool}
}

// Create records a transaction
func (r *BudgetTransactionRepository) Create(tx *domain.BudgetTransaction) (*domain.BudgetTransaction, error) {
	ctx := context.Background()
	amount, err := decimalToPgNumeric(tx.Amount)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO budget_transactions (id, cycle_id, bucket, category_id, description, amount, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+transactionColumns,
		tx.ID, tx.CycleID, string(tx.Bucket), uuidToPg(tx.CategoryID), tx.Description, amount, timeToPgDate(tx.OccurredAt),
	)

	created, err := scanTransaction(row)
	if err != nil {
		if isPgForeignKeyViolation(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return created, nil
}

// GetAllByCycle retrieves the transactions of a cycle, oldest first
func (r *BudgetTransactionRepository) GetAllByCycle(cycleID uuid.UUID) ([]*domain.BudgetTransaction, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT `+transactionColumns+` FROM budget_transactions
		WHERE cycle_id = $1 ORDER BY occurred_at, created_at`, cycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.BudgetTransaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

func scanTransaction(row rowScanner) (*domain.BudgetTransaction, error) {
	var (
		tx         domain.BudgetTransaction
		bucket     string
		categoryID pgtype.UUID
		amount     pgtype.Numeric
		occurredAt pgtype.Date
	)
	if err := row.Scan(&tx.ID, &tx.CycleID, &bucket, &categoryID, &tx.Description, &amount, &occurredAt, &tx.CreatedAt); err != nil {
		return nil, err
	}
	tx.Bucket = domain.Bucket(bucket)
	tx.CategoryID = pgToUUID(categoryID)
	tx.Amount = pgNumericToDecimal(amount)
	tx.OccurredAt = pgDateToTime(occurredAt)
	return &tx, nil
}
