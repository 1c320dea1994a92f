package models

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

// Invoice mirrors the invoices table.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	OwnerID       string          `json:"ownerID"`
	CustomerID    string          `json:"customerID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       time.Time       `json:"dueDate"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Notes         string          `json:"notes"`
	Status        InvoiceStatus   `json:"status"`
	AuditFields
}

// InvoiceLineItem mirrors the invoice_line_items table.
type InvoiceLineItem struct {
	LineItemID  string          `json:"lineItemID"`
	InvoiceID   string          `json:"invoiceID"`
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
