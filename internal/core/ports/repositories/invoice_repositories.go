package repositories

import (
	"context"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice header by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindLineItemsByInvoiceID retrieves the ordered line items of an invoice.
	FindLineItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceLineItem, error)

	// ListInvoicesByCustomer retrieves a paginated list of a customer's
	// invoices ordered by invoice date. When onlyOutstanding is true, only
	// invoices with an unpaid balance in a collectible status are returned.
	ListInvoicesByCustomer(ctx context.Context, customerID string, onlyOutstanding bool, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceRepositoryFacade combines all invoice repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
}
