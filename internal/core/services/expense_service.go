package services

import (
	"context"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/dto"
)

const (
	defaultExpensePageSize = 20
	maxExpensePageSize     = 100
)

// expenseService exposes read access to expenses.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new ExpenseSvcFacade.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// GetExpenseByID retrieves an expense, enforcing ownership.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string, requestingUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.OwnerID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return expense, nil
}

// ListExpenses retrieves a page of the requesting user's expenses.
func (s *expenseService) ListExpenses(ctx context.Context, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultExpensePageSize
	}
	if limit > maxExpensePageSize {
		limit = maxExpensePageSize
	}

	expenses, nextToken, err := s.expenseRepo.ListExpensesByOwner(ctx, requestingUserID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListExpensesResponse{
		Expenses:  dto.ToExpenseResponses(expenses),
		NextToken: nextToken,
	}, nil
}
