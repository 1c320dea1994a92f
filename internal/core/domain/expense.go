package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus indicates the payment state of an expense.
type ExpenseStatus string

const (
	ExpenseUnpaid ExpenseStatus = "UNPAID"
	ExpensePaid   ExpenseStatus = "PAID"
)

// Expense represents money owed to a vendor, possibly generated from a recurring profile.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	OwnerID     string          `json:"ownerID"`
	VendorName  string          `json:"vendorName"`
	CategoryID  string          `json:"categoryID"`
	Description string          `json:"description"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Amount      decimal.Decimal `json:"amount"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	Notes       string          `json:"notes"`
	Status      ExpenseStatus   `json:"status"`
	AuditFields
}
