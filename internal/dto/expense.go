package dto

import (
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	VendorName  string          `json:"vendorName"`
	CategoryID  string          `json:"categoryID"`
	Description string          `json:"description"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Amount      decimal.Decimal `json:"amount"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	Notes       string          `json:"notes"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListExpensesParams holds parameters for listing an owner's expenses.
type ListExpensesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListExpensesResponse wraps a page of expenses with the next page token.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		VendorName:  e.VendorName,
		CategoryID:  e.CategoryID,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate,
		Amount:      e.Amount,
		AmountPaid:  e.AmountPaid,
		Notes:       e.Notes,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of domain.Expense to []ExpenseResponse.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
