package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	"github.com/finbooks/billing_backoffice/internal/models"
	"github.com/finbooks/billing_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxRecurringInvoiceRepository struct {
	BaseRepository
}

// newPgxRecurringInvoiceRepository creates a new repository for recurring invoice profiles.
func newPgxRecurringInvoiceRepository(pool *pgxpool.Pool) portsrepo.RecurringInvoiceRepositoryFacade {
	return &PgxRecurringInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecurringInvoiceRepositoryFacade = (*PgxRecurringInvoiceRepository)(nil)

const recurringInvoiceProfileColumns = `profile_id, owner_id, customer_id, start_date, end_date, frequency, status, last_generated_date, subtotal, tax_amount, total, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanRecurringInvoiceProfile(row pgx.Row) (models.RecurringInvoiceProfile, error) {
	var m models.RecurringInvoiceProfile
	err := row.Scan(
		&m.ProfileID,
		&m.OwnerID,
		&m.CustomerID,
		&m.StartDate,
		&m.EndDate,
		&m.Frequency,
		&m.Status,
		&m.LastGeneratedDate,
		&m.Subtotal,
		&m.TaxAmount,
		&m.Total,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveInvoiceProfile inserts a profile and its line items in one transaction.
func (r *PgxRecurringInvoiceRepository) SaveInvoiceProfile(ctx context.Context, profile domain.RecurringInvoiceProfile) error {
	modelProfile := mapping.ToModelRecurringInvoiceProfile(profile)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	profileQuery := `
		INSERT INTO recurring_invoice_profiles (` + recurringInvoiceProfileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, profileQuery,
		modelProfile.ProfileID,
		modelProfile.OwnerID,
		modelProfile.CustomerID,
		modelProfile.StartDate,
		modelProfile.EndDate,
		modelProfile.Frequency,
		modelProfile.Status,
		modelProfile.LastGeneratedDate,
		modelProfile.Subtotal,
		modelProfile.TaxAmount,
		modelProfile.Total,
		modelProfile.Notes,
		modelProfile.CreatedAt,
		modelProfile.CreatedBy,
		modelProfile.LastUpdatedAt,
		modelProfile.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: recurring invoice profile %s already exists", apperrors.ErrDuplicate, modelProfile.ProfileID)
		}
		return fmt.Errorf("failed to save recurring invoice profile %s: %w", modelProfile.ProfileID, err)
	}

	lineItemQuery := `
		INSERT INTO recurring_invoice_line_items (line_item_id, profile_id, item_id, description, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, li := range profile.LineItems {
		modelItem := mapping.ToModelRecurringLineItem(li)
		batch.Queue(lineItemQuery,
			modelItem.LineItemID,
			modelItem.ProfileID,
			modelItem.ItemID,
			modelItem.Description,
			modelItem.Quantity,
			modelItem.UnitPrice,
			modelItem.LineTotal,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range profile.LineItems {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to save recurring line item for profile %s: %w", modelProfile.ProfileID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close recurring line item batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindInvoiceProfileByID retrieves a profile with its line items.
func (r *PgxRecurringInvoiceRepository) FindInvoiceProfileByID(ctx context.Context, profileID string) (*domain.RecurringInvoiceProfile, error) {
	query := `
		SELECT ` + recurringInvoiceProfileColumns + `
		FROM recurring_invoice_profiles
		WHERE profile_id = $1;
	`
	m, err := scanRecurringInvoiceProfile(r.Pool.QueryRow(ctx, query, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring invoice profile %s: %w", profileID, err)
	}

	profile := mapping.ToDomainRecurringInvoiceProfile(m)
	lineItems, err := r.findLineItemsByProfileIDs(ctx, []string{profileID})
	if err != nil {
		return nil, err
	}
	profile.LineItems = lineItems[profileID]
	return &profile, nil
}

// ListInvoiceProfilesByOwner retrieves all profiles belonging to an owner, with line items.
func (r *PgxRecurringInvoiceRepository) ListInvoiceProfilesByOwner(ctx context.Context, ownerID string) ([]domain.RecurringInvoiceProfile, error) {
	query := `
		SELECT ` + recurringInvoiceProfileColumns + `
		FROM recurring_invoice_profiles
		WHERE owner_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring invoice profiles for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return r.collectProfilesWithLineItems(ctx, rows)
}

// ListCandidateInvoiceProfiles retrieves ACTIVE profiles whose start/end date
// window contains asOf, with line items populated.
func (r *PgxRecurringInvoiceRepository) ListCandidateInvoiceProfiles(ctx context.Context, asOf time.Time) ([]domain.RecurringInvoiceProfile, error) {
	query := `
		SELECT ` + recurringInvoiceProfileColumns + `
		FROM recurring_invoice_profiles
		WHERE status = $1
		  AND start_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY owner_id, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, models.ProfileActive, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate invoice profiles: %w", err)
	}
	defer rows.Close()

	return r.collectProfilesWithLineItems(ctx, rows)
}

func (r *PgxRecurringInvoiceRepository) collectProfilesWithLineItems(ctx context.Context, rows pgx.Rows) ([]domain.RecurringInvoiceProfile, error) {
	profiles := []domain.RecurringInvoiceProfile{}
	profileIDs := []string{}
	for rows.Next() {
		m, err := scanRecurringInvoiceProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring invoice profile row: %w", err)
		}
		profiles = append(profiles, mapping.ToDomainRecurringInvoiceProfile(m))
		profileIDs = append(profileIDs, m.ProfileID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring invoice profile rows: %w", err)
	}

	lineItems, err := r.findLineItemsByProfileIDs(ctx, profileIDs)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		profiles[i].LineItems = lineItems[profiles[i].ProfileID]
	}
	return profiles, nil
}

// findLineItemsByProfileIDs fetches the line items of all given profiles in one query.
func (r *PgxRecurringInvoiceRepository) findLineItemsByProfileIDs(ctx context.Context, profileIDs []string) (map[string][]domain.RecurringLineItem, error) {
	result := make(map[string][]domain.RecurringLineItem)
	if len(profileIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT line_item_id, profile_id, item_id, description, quantity, unit_price, line_total
		FROM recurring_invoice_line_items
		WHERE profile_id = ANY($1)
		ORDER BY line_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, profileIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.RecurringLineItem
		if err := rows.Scan(&m.LineItemID, &m.ProfileID, &m.ItemID, &m.Description, &m.Quantity, &m.UnitPrice, &m.LineTotal); err != nil {
			return nil, fmt.Errorf("failed to scan recurring line item row: %w", err)
		}
		result[m.ProfileID] = append(result[m.ProfileID], mapping.ToDomainRecurringLineItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring line item rows: %w", err)
	}
	return result, nil
}

// UpdateInvoiceProfileStatus updates only the profile's status.
func (r *PgxRecurringInvoiceRepository) UpdateInvoiceProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE recurring_invoice_profiles
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE profile_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, profileID, models.ProfileStatus(status), updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update status of recurring invoice profile %s: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountInvoicesForOwnerInTx returns the number of invoices the owner already
// has. Running inside the tx makes rows inserted earlier in the same batch visible.
func (r *PgxRecurringInvoiceRepository) CountInvoicesForOwnerInTx(ctx context.Context, tx pgx.Tx, ownerID string) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE owner_id = $1;`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices for owner %s: %w", ownerID, err)
	}
	return count, nil
}

// SaveInvoiceInTx inserts an invoice header and its line items within the given transaction.
func (r *PgxRecurringInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, lineItems []domain.InvoiceLineItem) error {
	m := mapping.ToModelInvoice(invoice)

	invoiceQuery := `
		INSERT INTO invoices (invoice_id, owner_id, customer_id, invoice_number, invoice_date, due_date, subtotal, tax_amount, total, amount_paid, notes, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, invoiceQuery,
		m.InvoiceID,
		m.OwnerID,
		m.CustomerID,
		m.InvoiceNumber,
		m.InvoiceDate,
		m.DueDate,
		m.Subtotal,
		m.TaxAmount,
		m.Total,
		m.AmountPaid,
		m.Notes,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice number %s already exists for owner %s", apperrors.ErrDuplicate, m.InvoiceNumber, m.OwnerID)
		}
		return fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}

	lineItemQuery := `
		INSERT INTO invoice_line_items (line_item_id, invoice_id, item_id, description, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, li := range lineItems {
		modelItem := mapping.ToModelInvoiceLineItem(li)
		batch.Queue(lineItemQuery,
			modelItem.LineItemID,
			modelItem.InvoiceID,
			modelItem.ItemID,
			modelItem.Description,
			modelItem.Quantity,
			modelItem.UnitPrice,
			modelItem.LineTotal,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range lineItems {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to save invoice line item for invoice %s: %w", m.InvoiceID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close invoice line item batch: %w", err)
	}

	return nil
}

// DecrementProductQuantityInTx decrements the on-hand quantity of a catalog
// item. The item_type guard means SERVICE items are silently left unchanged,
// and PRODUCT quantities may go negative.
func (r *PgxRecurringInvoiceRepository) DecrementProductQuantityInTx(ctx context.Context, tx pgx.Tx, itemID string, quantity decimal.Decimal) error {
	query := `
		UPDATE catalog_items
		SET quantity = quantity - $2
		WHERE item_id = $1 AND item_type = $3;
	`
	_, err := tx.Exec(ctx, query, itemID, quantity, models.ItemProduct)
	if err != nil {
		return fmt.Errorf("failed to decrement quantity for catalog item %s: %w", itemID, err)
	}
	return nil
}

// MarkInvoiceProfileGeneratedInTx advances the profile's last generated date.
func (r *PgxRecurringInvoiceRepository) MarkInvoiceProfileGeneratedInTx(ctx context.Context, tx pgx.Tx, profileID string, generatedOn time.Time, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE recurring_invoice_profiles
		SET last_generated_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE profile_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, profileID, generatedOn, updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to mark recurring invoice profile %s generated: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
