package services

import (
	"context"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its line items.
	GetInvoiceByID(ctx context.Context, invoiceID string, requestingUserID string) (*domain.Invoice, error)

	// ListCustomerInvoices retrieves a paginated list of a customer's
	// invoices, optionally restricted to those with an outstanding balance.
	ListCustomerInvoices(ctx context.Context, customerID string, requestingUserID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
}
