package services

import (
	"context"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves an expense.
	GetExpenseByID(ctx context.Context, expenseID string, requestingUserID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of the requesting user's expenses.
	ListExpenses(ctx context.Context, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
}
