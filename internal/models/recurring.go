package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the period unit governing schedule advancement.
type Frequency string

const (
	Weekly    Frequency = "WEEKLY"
	Monthly   Frequency = "MONTHLY"
	Quarterly Frequency = "QUARTERLY"
	Yearly    Frequency = "YEARLY"
)

// ProfileStatus indicates whether a recurring profile is evaluated by the generators.
type ProfileStatus string

const (
	ProfileActive ProfileStatus = "ACTIVE"
	ProfilePaused ProfileStatus = "PAUSED"
)

// RecurringInvoiceProfile mirrors the recurring_invoice_profiles table.
type RecurringInvoiceProfile struct {
	ProfileID         string          `json:"profileID"`
	OwnerID           string          `json:"ownerID"`
	CustomerID        string          `json:"customerID"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           *time.Time      `json:"endDate"`
	Frequency         Frequency       `json:"frequency"`
	Status            ProfileStatus   `json:"status"`
	LastGeneratedDate *time.Time      `json:"lastGeneratedDate"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	Total             decimal.Decimal `json:"total"`
	Notes             string          `json:"notes"`
	AuditFields
}

// RecurringLineItem mirrors the recurring_invoice_line_items table.
type RecurringLineItem struct {
	LineItemID  string          `json:"lineItemID"`
	ProfileID   string          `json:"profileID"`
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// RecurringExpenseProfile mirrors the recurring_expense_profiles table.
type RecurringExpenseProfile struct {
	ProfileID         string          `json:"profileID"`
	OwnerID           string          `json:"ownerID"`
	VendorName        string          `json:"vendorName"`
	CategoryID        string          `json:"categoryID"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           *time.Time      `json:"endDate"`
	Frequency         Frequency       `json:"frequency"`
	Status            ProfileStatus   `json:"status"`
	LastGeneratedDate *time.Time      `json:"lastGeneratedDate"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Notes             string          `json:"notes"`
	AuditFields
}
