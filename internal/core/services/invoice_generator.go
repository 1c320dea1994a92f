package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// invoiceDueDays is how far past the issue date a generated invoice falls due.
const invoiceDueDays = 30

// invoiceGeneratorService turns due recurring invoice profiles into invoices.
//
// The whole batch runs in one database transaction: either every due
// profile's invoice, line items, inventory decrement and profile advancement
// commit together, or nothing does. Overlapping runs are not safe (the
// per-owner numbering is count-based); the external trigger must guarantee at
// most one in-flight run at a time.
type invoiceGeneratorService struct {
	recurringRepo portsrepo.RecurringInvoiceRepositoryFacade
	recurrenceSvc portssvc.RecurrenceSvc
}

// NewInvoiceGeneratorService creates a new InvoiceGeneratorSvc.
func NewInvoiceGeneratorService(recurringRepo portsrepo.RecurringInvoiceRepositoryFacade, recurrenceSvc portssvc.RecurrenceSvc) portssvc.InvoiceGeneratorSvc {
	return &invoiceGeneratorService{
		recurringRepo: recurringRepo,
		recurrenceSvc: recurrenceSvc,
	}
}

var _ portssvc.InvoiceGeneratorSvc = (*invoiceGeneratorService)(nil)

// Run generates an invoice for every due recurring invoice profile.
// It returns the number of invoices generated. A failure on any profile
// aborts and rolls back the entire batch.
func (s *invoiceGeneratorService) Run(ctx context.Context, today time.Time) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Candidates are pre-filtered by the repository: ACTIVE status and the
	// start/end date window. Due-ness is decided here, per profile.
	profiles, err := s.recurringRepo.ListCandidateInvoiceProfiles(ctx, today)
	if err != nil {
		logger.Error("Failed to load candidate invoice profiles", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to load candidate invoice profiles: %w", err)
	}

	tx, err := s.recurringRepo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin generation transaction: %w", err)
	}
	// No-op once the transaction is committed.
	defer s.recurringRepo.Rollback(ctx, tx)

	generated := 0
	for i := range profiles {
		profile := &profiles[i]
		if !s.recurrenceSvc.IsDue(profile.Schedule, today) {
			continue
		}

		if err := s.generateInvoice(ctx, tx, profile, today); err != nil {
			logger.Error("Invoice generation failed, rolling back batch",
				slog.String("profile_id", profile.ProfileID),
				slog.String("error", err.Error()))
			return 0, err
		}
		generated++
	}

	if err := s.recurringRepo.Commit(ctx, tx); err != nil {
		return 0, fmt.Errorf("failed to commit generation transaction: %w", err)
	}

	logger.Info("Invoice generation run completed", slog.Int("generated", generated), slog.Time("run_date", today))
	return generated, nil
}

// generateInvoice performs the write sequence for one due profile inside the
// batch transaction: allocate the owner-scoped number, insert the header and
// cloned line items, decrement inventory for product items, and advance the
// profile's last generated date.
func (s *invoiceGeneratorService) generateInvoice(ctx context.Context, tx pgx.Tx, profile *domain.RecurringInvoiceProfile, today time.Time) error {
	// The count sees invoices inserted earlier in this same transaction, so
	// multiple due profiles of one owner number sequentially within a run.
	existing, err := s.recurringRepo.CountInvoicesForOwnerInTx(ctx, tx, profile.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to count invoices for owner %s: %w", profile.OwnerID, err)
	}
	invoiceNumber := fmt.Sprintf("INV-%04d", existing+1)

	now := time.Now().UTC()
	invoiceID := uuid.NewString()

	// Amounts are copied verbatim from the profile, not recomputed from the
	// line items.
	invoice := domain.Invoice{
		InvoiceID:     invoiceID,
		OwnerID:       profile.OwnerID,
		CustomerID:    profile.CustomerID,
		InvoiceNumber: invoiceNumber,
		InvoiceDate:   today,
		DueDate:       today.AddDate(0, 0, invoiceDueDays),
		Subtotal:      profile.Subtotal,
		TaxAmount:     profile.TaxAmount,
		Total:         profile.Total,
		AmountPaid:    decimal.Zero,
		Notes:         profile.Notes,
		Status:        domain.InvoiceSent,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     profile.OwnerID,
			LastUpdatedAt: now,
			LastUpdatedBy: profile.OwnerID,
		},
	}

	lineItems := make([]domain.InvoiceLineItem, len(profile.LineItems))
	for i, src := range profile.LineItems {
		lineItems[i] = domain.InvoiceLineItem{
			LineItemID:  uuid.NewString(),
			InvoiceID:   invoiceID,
			ItemID:      src.ItemID,
			Description: src.Description,
			Quantity:    src.Quantity,
			UnitPrice:   src.UnitPrice,
			LineTotal:   src.LineTotal,
		}
	}

	if err := s.recurringRepo.SaveInvoiceInTx(ctx, tx, invoice, lineItems); err != nil {
		return fmt.Errorf("failed to save invoice %s: %w", invoiceNumber, err)
	}

	// Inventory only moves for PRODUCT items; the repository applies the type
	// guard. No floor check: on-hand quantity may go negative.
	for _, li := range lineItems {
		if err := s.recurringRepo.DecrementProductQuantityInTx(ctx, tx, li.ItemID, li.Quantity); err != nil {
			return fmt.Errorf("failed to decrement inventory for item %s: %w", li.ItemID, err)
		}
	}

	if err := s.recurringRepo.MarkInvoiceProfileGeneratedInTx(ctx, tx, profile.ProfileID, today, profile.OwnerID, now); err != nil {
		return fmt.Errorf("failed to advance profile %s: %w", profile.ProfileID, err)
	}

	return nil
}
