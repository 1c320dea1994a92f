package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	"github.com/finbooks/billing_backoffice/internal/models"
	"github.com/finbooks/billing_backoffice/internal/utils/mapping"
	"github.com/finbooks/billing_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice reads.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, owner_id, customer_id, invoice_number, invoice_date, due_date, subtotal, tax_amount, total, amount_paid, notes, status, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.OwnerID,
		&m.CustomerID,
		&m.InvoiceNumber,
		&m.InvoiceDate,
		&m.DueDate,
		&m.Subtotal,
		&m.TaxAmount,
		&m.Total,
		&m.AmountPaid,
		&m.Notes,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindInvoiceByID retrieves an invoice header by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_id = $1;
	`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// FindLineItemsByInvoiceID retrieves the line items of an invoice.
func (r *PgxInvoiceRepository) FindLineItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceLineItem, error) {
	query := `
		SELECT line_item_id, invoice_id, item_id, description, quantity, unit_price, line_total
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY line_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	lineItems := []models.InvoiceLineItem{}
	for rows.Next() {
		var m models.InvoiceLineItem
		if err := rows.Scan(&m.LineItemID, &m.InvoiceID, &m.ItemID, &m.Description, &m.Quantity, &m.UnitPrice, &m.LineTotal); err != nil {
			return nil, fmt.Errorf("failed to scan line item row for invoice %s: %w", invoiceID, err)
		}
		lineItems = append(lineItems, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line item rows for invoice %s: %w", invoiceID, err)
	}

	return mapping.ToDomainInvoiceLineItemSlice(lineItems), nil
}

// ListInvoicesByCustomer retrieves a page of a customer's invoices ordered by
// invoice date descending, using token-based cursor pagination. The
// outstanding filter keeps invoices with an unpaid balance in a collectible status.
func (r *PgxInvoiceRepository) ListInvoicesByCustomer(ctx context.Context, customerID string, onlyOutstanding bool, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE customer_id = $1
	`
	args := []interface{}{customerID}

	if onlyOutstanding {
		query += fmt.Sprintf(" AND total > amount_paid AND status = ANY($%d)", len(args)+1)
		args = append(args, []models.InvoiceStatus{models.InvoiceSent, models.InvoiceOverdue, models.InvoicePartiallyPaid})
	}

	if nextToken != nil && *nextToken != "" {
		invoiceDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (invoice_date, created_at) < ($%d, $%d)", len(args)+1, len(args)+2)
		args = append(args, invoiceDate, createdAt)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY invoice_date DESC, created_at DESC LIMIT $%d;", len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query invoices for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan invoice row for customer %s: %w", customerID, err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating invoice rows for customer %s: %w", customerID, err)
	}

	var newNextToken *string
	if len(invoices) > limit {
		invoices = invoices[:limit]
		last := invoices[len(invoices)-1]
		token := pagination.EncodeToken(last.InvoiceDate, last.CreatedAt)
		newNextToken = &token
	}

	return invoices, newNextToken, nil
}
