package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates where an invoice sits in the billing lifecycle.
type InvoiceStatus string

const (
	InvoiceSent          InvoiceStatus = "SENT"
	InvoiceOverdue       InvoiceStatus = "OVERDUE"
	InvoicePartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoicePaid          InvoiceStatus = "PAID"
	InvoiceVoid          InvoiceStatus = "VOID"
)

// Invoice represents a billed document owned by a user and addressed to a customer.
// Generated invoices carry the amounts copied from their source profile.
type Invoice struct {
	InvoiceID     string            `json:"invoiceID"`     // Primary Key (UUID)
	OwnerID       string            `json:"ownerID"`       // Owning user reference
	CustomerID    string            `json:"customerID"`    // Customer reference
	InvoiceNumber string            `json:"invoiceNumber"` // Per-owner sequential, e.g. INV-0004
	InvoiceDate   time.Time         `json:"invoiceDate"`
	DueDate       time.Time         `json:"dueDate"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	TaxAmount     decimal.Decimal   `json:"taxAmount"`
	Total         decimal.Decimal   `json:"total"`
	AmountPaid    decimal.Decimal   `json:"amountPaid"`
	Notes         string            `json:"notes"`
	Status        InvoiceStatus     `json:"status"`
	LineItems     []InvoiceLineItem `json:"lineItems,omitempty"`
	AuditFields
}

// InvoiceLineItem is a single priced row belonging to an invoice.
type InvoiceLineItem struct {
	LineItemID  string          `json:"lineItemID"` // Primary Key (UUID)
	InvoiceID   string          `json:"invoiceID"`
	ItemID      string          `json:"itemID"` // CatalogItem reference
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// Outstanding reports whether the invoice still has an unpaid balance in a
// collectible status.
func (i Invoice) Outstanding() bool {
	if !i.Total.Sub(i.AmountPaid).IsPositive() {
		return false
	}
	switch i.Status {
	case InvoiceSent, InvoiceOverdue, InvoicePartiallyPaid:
		return true
	}
	return false
}
