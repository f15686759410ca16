package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cycleColumns = `id, user_id, start_date, end_date, payday_day, needs_pct, wants_pct, savings_pct,
	net_income, status, previous_cycle_id, closed_at, created_at, updated_at`

// BudgetCycleRepository implements domain.BudgetCycleRepository using PostgreSQL
type BudgetCycleRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetCycleRepository creates a new BudgetCycleRepository
func NewBudgetCycleRepository(pool *pgxpool.Pool) *BudgetCycleRepository {
	return &BudgetCycleRepository{pool: pool}
}

// Create inserts a new cycle. A second active cycle for the same user violates
// the partial unique index and is reported as ErrCycleAlreadyActive.
func (r *BudgetCycleRepository) Create(cycle *domain.BudgetCycle) (*domain.BudgetCycle, error) {
	ctx := context.Background()
	netIncome, err := decimalToPgNumeric(cycle.NetIncome)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO budget_cycles (id, user_id, start_date, end_date, payday_day,
			needs_pct, wants_pct, savings_pct, net_income, status, previous_cycle_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+cycleColumns,
		cycle.ID, cycle.UserID, timeToPgDate(cycle.StartDate), timeToPgDate(cycle.EndDate), cycle.PaydayDay,
		cycle.NeedsPct, cycle.WantsPct, cycle.SavingsPct, netIncome, string(cycle.Status), uuidToPg(cycle.PreviousCycleID),
	)

	created, err := scanCycle(row)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCycleAlreadyActive
		}
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a cycle owned by the user
func (r *BudgetCycleRepository) GetByID(userID string, id uuid.UUID) (*domain.BudgetCycle, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+cycleColumns+` FROM budget_cycles WHERE user_id = $1 AND id = $2`, userID, id)
	return scanCycleOrNotFound(row)
}

// GetActive retrieves the user's active cycle
func (r *BudgetCycleRepository) GetActive(userID string) (*domain.BudgetCycle, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+cycleColumns+` FROM budget_cycles WHERE user_id = $1 AND status = 'active'`, userID)
	return scanCycleOrNotFound(row)
}

// GetAllByUser retrieves all cycles of a user, newest first
func (r *BudgetCycleRepository) GetAllByUser(userID string) ([]*domain.BudgetCycle, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT `+cycleColumns+` FROM budget_cycles WHERE user_id = $1 ORDER BY start_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collectCycles(rows)
}

// GetExpiredActive retrieves active cycles of every user whose end date is before the given day
func (r *BudgetCycleRepository) GetExpiredActive(before time.Time) ([]*domain.BudgetCycle, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT `+cycleColumns+` FROM budget_cycles
		WHERE status = 'active' AND end_date < $1 ORDER BY end_date`, timeToPgDate(before))
	if err != nil {
		return nil, err
	}
	return collectCycles(rows)
}

// UpdateAllocation replaces the percentage snapshot of a cycle
func (r *BudgetCycleRepository) UpdateAllocation(userID string, id uuid.UUID, allocation domain.BudgetAllocation) (*domain.BudgetCycle, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE budget_cycles
		SET needs_pct = $3, wants_pct = $4, savings_pct = $5, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING `+cycleColumns,
		userID, id, allocation.NeedsPct, allocation.WantsPct, allocation.SavingsPct,
	)
	return scanCycleOrNotFound(row)
}

// Close marks an active cycle as closed
func (r *BudgetCycleRepository) Close(userID string, id uuid.UUID, closedAt time.Time) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		UPDATE budget_cycles
		SET status = 'closed', closed_at = $3, updated_at = NOW()
		WHERE user_id = $1 AND id = $2 AND status = 'active'`,
		userID, id, closedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing updated: either the cycle is missing or it was closed concurrently
	var status string
	err = r.pool.QueryRow(ctx, `SELECT status FROM budget_cycles WHERE user_id = $1 AND id = $2`, userID, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrCycleNotFound
	}
	if err != nil {
		return err
	}
	return domain.ErrCycleClosed
}

func scanCycleOrNotFound(row pgx.Row) (*domain.BudgetCycle, error) {
	cycle, err := scanCycle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCycleNotFound
		}
		return nil, err
	}
	return cycle, nil
}

func collectCycles(rows pgx.Rows) ([]*domain.BudgetCycle, error) {
	defer rows.Close()

	result := make([]*domain.BudgetCycle, 0)
	for rows.Next() {
		cycle, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, cycle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cycles: %w", err)
	}
	return result, nil
}

func scanCycle(row rowScanner) (*domain.BudgetCycle, error) {
	var (
		cycle      domain.BudgetCycle
		startDate  pgtype.Date
		endDate    pgtype.Date
		netIncome  pgtype.Numeric
		status     string
		previousID pgtype.UUID
		closedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&cycle.ID, &cycle.UserID, &startDate, &endDate, &cycle.PaydayDay,
		&cycle.NeedsPct, &cycle.WantsPct, &cycle.SavingsPct,
		&netIncome, &status, &previousID, &closedAt, &cycle.CreatedAt, &cycle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cycle.StartDate = pgDateToTime(startDate)
	cycle.EndDate = pgDateToTime(endDate)
	cycle.NetIncome = pgNumericToDecimal(netIncome)
	cycle.Status = domain.CycleStatus(status)
	cycle.PreviousCycleID = pgToUUID(previousID)
	cycle.ClosedAt = pgTimestamptzToTime(closedAt)
	return &cycle, nil
}
