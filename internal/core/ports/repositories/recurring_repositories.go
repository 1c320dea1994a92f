package repositories

import (
	"context"
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// RecurringInvoiceProfileReader defines read operations for recurring invoice profiles
type RecurringInvoiceProfileReader interface {
	// FindInvoiceProfileByID retrieves a profile with its line items.
	FindInvoiceProfileByID(ctx context.Context, profileID string) (*domain.RecurringInvoiceProfile, error)

	// ListInvoiceProfilesByOwner retrieves all profiles belonging to an owner.
	ListInvoiceProfilesByOwner(ctx context.Context, ownerID string) ([]domain.RecurringInvoiceProfile, error)

	// ListCandidateInvoiceProfiles retrieves ACTIVE profiles whose date window
	// contains asOf (start_date <= asOf and end_date null or >= asOf), with
	// line items populated. Due-ness is evaluated by the caller.
	ListCandidateInvoiceProfiles(ctx context.Context, asOf time.Time) ([]domain.RecurringInvoiceProfile, error)
}

// RecurringInvoiceProfileWriter defines write operations for recurring invoice profiles
type RecurringInvoiceProfileWriter interface {
	// SaveInvoiceProfile persists a profile and its line items atomically.
	SaveInvoiceProfile(ctx context.Context, profile domain.RecurringInvoiceProfile) error

	// UpdateInvoiceProfileStatus updates only the profile's status.
	UpdateInvoiceProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, updatedByUserID string, updatedAt time.Time) error
}

// InvoiceGenerationWriter defines the transactional writes performed by the
// invoice generator. All methods participate in the caller-supplied tx so the
// whole batch commits or rolls back as one unit.
type InvoiceGenerationWriter interface {
	// CountInvoicesForOwnerInTx returns the number of invoices the owner
	// already has, including rows inserted earlier in the same tx.
	CountInvoicesForOwnerInTx(ctx context.Context, tx pgx.Tx, ownerID string) (int64, error)

	// SaveInvoiceInTx inserts an invoice header and its line items.
	SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, lineItems []domain.InvoiceLineItem) error

	// DecrementProductQuantityInTx decrements a catalog item's on-hand
	// quantity, but only when the item is a PRODUCT. SERVICE items are
	// left unchanged. No floor check is applied.
	DecrementProductQuantityInTx(ctx context.Context, tx pgx.Tx, itemID string, quantity decimal.Decimal) error

	// MarkInvoiceProfileGeneratedInTx advances the profile's last generated date.
	MarkInvoiceProfileGeneratedInTx(ctx context.Context, tx pgx.Tx, profileID string, generatedOn time.Time, updatedByUserID string, updatedAt time.Time) error
}

// RecurringInvoiceRepositoryFacade combines all recurring-invoice repository interfaces
type RecurringInvoiceRepositoryFacade interface {
	RecurringInvoiceProfileReader
	RecurringInvoiceProfileWriter
	InvoiceGenerationWriter
	TransactionManager
}

// RecurringExpenseProfileReader defines read operations for recurring expense profiles
type RecurringExpenseProfileReader interface {
	// FindExpenseProfileByID retrieves a profile by ID.
	FindExpenseProfileByID(ctx context.Context, profileID string) (*domain.RecurringExpenseProfile, error)

	// ListExpenseProfilesByOwner retrieves all profiles belonging to an owner.
	ListExpenseProfilesByOwner(ctx context.Context, ownerID string) ([]domain.RecurringExpenseProfile, error)

	// ListCandidateExpenseProfiles retrieves ACTIVE profiles whose date window contains asOf.
	ListCandidateExpenseProfiles(ctx context.Context, asOf time.Time) ([]domain.RecurringExpenseProfile, error)
}

// RecurringExpenseProfileWriter defines write operations for recurring expense profiles
type RecurringExpenseProfileWriter interface {
	// SaveExpenseProfile persists a profile.
	SaveExpenseProfile(ctx context.Context, profile domain.RecurringExpenseProfile) error

	// UpdateExpenseProfileStatus updates only the profile's status.
	UpdateExpenseProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, updatedByUserID string, updatedAt time.Time) error
}

// ExpenseGenerationWriter defines the transactional writes performed by the expense generator.
type ExpenseGenerationWriter interface {
	// SaveExpenseInTx inserts an expense record.
	SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error

	// MarkExpenseProfileGeneratedInTx advances the profile's last generated date.
	MarkExpenseProfileGeneratedInTx(ctx context.Context, tx pgx.Tx, profileID string, generatedOn time.Time, updatedByUserID string, updatedAt time.Time) error
}

// RecurringExpenseRepositoryFacade combines all recurring-expense repository interfaces
type RecurringExpenseRepositoryFacade interface {
	RecurringExpenseProfileReader
	RecurringExpenseProfileWriter
	ExpenseGenerationWriter
	TransactionManager
}
