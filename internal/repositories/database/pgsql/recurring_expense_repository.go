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
)

type PgxRecurringExpenseRepository struct {
	BaseRepository
}

// newPgxRecurringExpenseRepository creates a new repository for recurring expense profiles.
func newPgxRecurringExpenseRepository(pool *pgxpool.Pool) portsrepo.RecurringExpenseRepositoryFacade {
	return &PgxRecurringExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecurringExpenseRepositoryFacade = (*PgxRecurringExpenseRepository)(nil)

const recurringExpenseProfileColumns = `profile_id, owner_id, vendor_name, category_id, start_date, end_date, frequency, status, last_generated_date, amount, description, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanRecurringExpenseProfile(row pgx.Row) (models.RecurringExpenseProfile, error) {
	var m models.RecurringExpenseProfile
	err := row.Scan(
		&m.ProfileID,
		&m.OwnerID,
		&m.VendorName,
		&m.CategoryID,
		&m.StartDate,
		&m.EndDate,
		&m.Frequency,
		&m.Status,
		&m.LastGeneratedDate,
		&m.Amount,
		&m.Description,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveExpenseProfile inserts a new recurring expense profile.
func (r *PgxRecurringExpenseRepository) SaveExpenseProfile(ctx context.Context, profile domain.RecurringExpenseProfile) error {
	m := mapping.ToModelRecurringExpenseProfile(profile)

	query := `
		INSERT INTO recurring_expense_profiles (` + recurringExpenseProfileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProfileID,
		m.OwnerID,
		m.VendorName,
		m.CategoryID,
		m.StartDate,
		m.EndDate,
		m.Frequency,
		m.Status,
		m.LastGeneratedDate,
		m.Amount,
		m.Description,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: recurring expense profile %s already exists", apperrors.ErrDuplicate, m.ProfileID)
		}
		return fmt.Errorf("failed to save recurring expense profile %s: %w", m.ProfileID, err)
	}
	return nil
}

// FindExpenseProfileByID retrieves a profile by ID.
func (r *PgxRecurringExpenseRepository) FindExpenseProfileByID(ctx context.Context, profileID string) (*domain.RecurringExpenseProfile, error) {
	query := `
		SELECT ` + recurringExpenseProfileColumns + `
		FROM recurring_expense_profiles
		WHERE profile_id = $1;
	`
	m, err := scanRecurringExpenseProfile(r.Pool.QueryRow(ctx, query, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring expense profile %s: %w", profileID, err)
	}
	profile := mapping.ToDomainRecurringExpenseProfile(m)
	return &profile, nil
}

// ListExpenseProfilesByOwner retrieves all profiles belonging to an owner.
func (r *PgxRecurringExpenseRepository) ListExpenseProfilesByOwner(ctx context.Context, ownerID string) ([]domain.RecurringExpenseProfile, error) {
	query := `
		SELECT ` + recurringExpenseProfileColumns + `
		FROM recurring_expense_profiles
		WHERE owner_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring expense profiles for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return collectExpenseProfiles(rows)
}

// ListCandidateExpenseProfiles retrieves ACTIVE profiles whose date window contains asOf.
func (r *PgxRecurringExpenseRepository) ListCandidateExpenseProfiles(ctx context.Context, asOf time.Time) ([]domain.RecurringExpenseProfile, error) {
	query := `
		SELECT ` + recurringExpenseProfileColumns + `
		FROM recurring_expense_profiles
		WHERE status = $1
		  AND start_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY owner_id, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, models.ProfileActive, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate expense profiles: %w", err)
	}
	defer rows.Close()

	return collectExpenseProfiles(rows)
}

func collectExpenseProfiles(rows pgx.Rows) ([]domain.RecurringExpenseProfile, error) {
	profiles := []domain.RecurringExpenseProfile{}
	for rows.Next() {
		m, err := scanRecurringExpenseProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring expense profile row: %w", err)
		}
		profiles = append(profiles, mapping.ToDomainRecurringExpenseProfile(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring expense profile rows: %w", err)
	}
	return profiles, nil
}

// UpdateExpenseProfileStatus updates only the profile's status.
func (r *PgxRecurringExpenseRepository) UpdateExpenseProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE recurring_expense_profiles
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE profile_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, profileID, models.ProfileStatus(status), updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update status of recurring expense profile %s: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveExpenseInTx inserts an expense record within the given transaction.
func (r *PgxRecurringExpenseRepository) SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (expense_id, owner_id, vendor_name, category_id, description, expense_date, amount, amount_paid, notes, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.ExpenseID,
		m.OwnerID,
		m.VendorName,
		m.CategoryID,
		m.Description,
		m.ExpenseDate,
		m.Amount,
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
			return fmt.Errorf("%w: expense %s already exists", apperrors.ErrDuplicate, m.ExpenseID)
		}
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// MarkExpenseProfileGeneratedInTx advances the profile's last generated date.
func (r *PgxRecurringExpenseRepository) MarkExpenseProfileGeneratedInTx(ctx context.Context, tx pgx.Tx, profileID string, generatedOn time.Time, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE recurring_expense_profiles
		SET last_generated_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE profile_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, profileID, generatedOn, updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to mark recurring expense profile %s generated: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
