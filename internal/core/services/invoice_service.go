package services

import (
	"context"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/dto"
)

// Listing caps, matching the cursor pagination in the repository layer.
const (
	defaultInvoicePageSize = 20
	maxInvoicePageSize     = 100
)

// invoiceService exposes read access to generated invoices.
type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewInvoiceService creates a new InvoiceSvcFacade.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// GetInvoiceByID retrieves an invoice with its line items, enforcing ownership.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string, requestingUserID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.OwnerID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	lineItems, err := s.invoiceRepo.FindLineItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.LineItems = lineItems

	return invoice, nil
}

// ListCustomerInvoices retrieves a page of a customer's invoices. The
// outstanding filter and cursor pagination are applied by the repository.
func (s *invoiceService) ListCustomerInvoices(ctx context.Context, customerID string, requestingUserID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultInvoicePageSize
	}
	if limit > maxInvoicePageSize {
		limit = maxInvoicePageSize
	}

	invoices, nextToken, err := s.invoiceRepo.ListInvoicesByCustomer(ctx, customerID, params.OnlyOutstanding, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	// The customer-scoped query returns invoices of a single owner; reject
	// the page when it belongs to someone else.
	for i := range invoices {
		if invoices[i].OwnerID != requestingUserID {
			return nil, apperrors.ErrForbidden
		}
	}

	return &dto.ListInvoicesResponse{
		Invoices:  dto.ToInvoiceResponses(invoices),
		NextToken: nextToken,
	}, nil
}
