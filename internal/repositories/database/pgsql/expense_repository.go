package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	"github.com/finbooks/billing_backoffice/internal/models"
	"github.com/finbooks/billing_backoffice/internal/utils/mapping"
	"github.com/finbooks/billing_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense reads.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, owner_id, vendor_name, category_id, description, expense_date, amount, amount_paid, notes, status, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.OwnerID,
		&m.VendorName,
		&m.CategoryID,
		&m.Description,
		&m.ExpenseDate,
		&m.Amount,
		&m.AmountPaid,
		&m.Notes,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_id = $1;
	`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

// ListExpensesByOwner retrieves a page of an owner's expenses ordered by
// expense date descending, using token-based cursor pagination.
func (r *PgxExpenseRepository) ListExpensesByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE owner_id = $1
	`
	args := []interface{}{ownerID}

	if nextToken != nil && *nextToken != "" {
		expenseDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (expense_date, created_at) < ($%d, $%d)", len(args)+1, len(args)+2)
		args = append(args, expenseDate, createdAt)
	}

	query += fmt.Sprintf(" ORDER BY expense_date DESC, created_at DESC LIMIT $%d;", len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query expenses for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan expense row for owner %s: %w", ownerID, err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating expense rows for owner %s: %w", ownerID, err)
	}

	var newNextToken *string
	if len(expenses) > limit {
		expenses = expenses[:limit]
		last := expenses[len(expenses)-1]
		token := pagination.EncodeToken(last.ExpenseDate, last.CreatedAt)
		newNextToken = &token
	}

	return expenses, newNextToken, nil
}
