package postgres

import (
	"context"
	"errors"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, cycle_id, bucket, name, limit_amount, created_at, updated_at`

// BudgetCategoryRepository implements domain.BudgetCategoryRepository using PostgreSQL
type BudgetCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetCategoryRepository creates a new BudgetCategoryRepository
func NewBudgetCategoryRepository(pool *pgxpool.Pool) *BudgetCategoryRepository {
	return &BudgetCategoryRepository{pool: pool}
}

// Create creates a new budget category
func (r *BudgetCategoryRepository) Create(category *domain.BudgetCategory) (*domain.BudgetCategory, error) {
	ctx := context.Background()
	limit, err := decimalToPgNumeric(category.LimitAmount)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO budget_categories (id, cycle_id, bucket, name, limit_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+categoryColumns,
		category.ID, category.CycleID, string(category.Bucket), category.Name, limit,
	)

	created, err := scanCategory(row)
	if err != nil {
		// Check for unique constraint violation
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoryAlreadyExists
		}
		if isPgForeignKeyViolation(err) {
			return nil, domain.ErrCycleNotFound
		}
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a budget category by its ID within a cycle
func (r *BudgetCategoryRepository) GetByID(cycleID uuid.UUID, id uuid.UUID) (*domain.BudgetCategory, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM budget_categories WHERE cycle_id = $1 AND id = $2`, cycleID, id)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetAllByCycle retrieves the categories of a cycle ordered by bucket and name
func (r *BudgetCategoryRepository) GetAllByCycle(cycleID uuid.UUID) ([]*domain.BudgetCategory, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM budget_categories
		WHERE cycle_id = $1 ORDER BY bucket, name`, cycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.BudgetCategory, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func scanCategory(row rowScanner) (*domain.BudgetCategory, error) {
	var (
		category domain.BudgetCategory
		bucket   string
		limit    pgtype.Numeric
	)
	if err := row.Scan(&category.ID, &category.CycleID, &bucket, &category.Name, &limit, &category.CreatedAt, &category.UpdatedAt); err != nil {
		return nil, err
	}
	category.Bucket = domain.Bucket(bucket)
	category.LimitAmount = pgNumericToDecimal(limit)
	return &category, nil
}
