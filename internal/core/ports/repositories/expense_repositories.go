package repositories

import (
	"context"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByOwner retrieves a paginated list of an owner's expenses
	// ordered by expense date.
	ListExpensesByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseRepositoryFacade combines all expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
}
