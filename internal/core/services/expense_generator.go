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
	"github.com/shopspring/decimal"
)

// expenseGeneratorService turns due recurring expense profiles into expenses.
// It mirrors the invoice generator without line items, numbering or
// inventory: one expense per due profile, all inside a single transaction.
type expenseGeneratorService struct {
	recurringRepo portsrepo.RecurringExpenseRepositoryFacade
	recurrenceSvc portssvc.RecurrenceSvc
}

// NewExpenseGeneratorService creates a new ExpenseGeneratorSvc.
func NewExpenseGeneratorService(recurringRepo portsrepo.RecurringExpenseRepositoryFacade, recurrenceSvc portssvc.RecurrenceSvc) portssvc.ExpenseGeneratorSvc {
	return &expenseGeneratorService{
		recurringRepo: recurringRepo,
		recurrenceSvc: recurrenceSvc,
	}
}

var _ portssvc.ExpenseGeneratorSvc = (*expenseGeneratorService)(nil)

// Run generates an expense for every due recurring expense profile.
// It returns the number of expenses generated. A failure on any profile
// aborts and rolls back the entire batch.
func (s *expenseGeneratorService) Run(ctx context.Context, today time.Time) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profiles, err := s.recurringRepo.ListCandidateExpenseProfiles(ctx, today)
	if err != nil {
		logger.Error("Failed to load candidate expense profiles", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to load candidate expense profiles: %w", err)
	}

	tx, err := s.recurringRepo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin generation transaction: %w", err)
	}
	defer s.recurringRepo.Rollback(ctx, tx)

	generated := 0
	for i := range profiles {
		profile := &profiles[i]
		if !s.recurrenceSvc.IsDue(profile.Schedule, today) {
			continue
		}

		now := time.Now().UTC()
		expense := domain.Expense{
			ExpenseID:   uuid.NewString(),
			OwnerID:     profile.OwnerID,
			VendorName:  profile.VendorName,
			CategoryID:  profile.CategoryID,
			Description: profile.Description,
			ExpenseDate: today,
			Amount:      profile.Amount,
			AmountPaid:  decimal.Zero,
			Notes:       profile.Notes,
			Status:      domain.ExpenseUnpaid,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     profile.OwnerID,
				LastUpdatedAt: now,
				LastUpdatedBy: profile.OwnerID,
			},
		}

		if err := s.recurringRepo.SaveExpenseInTx(ctx, tx, expense); err != nil {
			logger.Error("Expense generation failed, rolling back batch",
				slog.String("profile_id", profile.ProfileID),
				slog.String("error", err.Error()))
			return 0, fmt.Errorf("failed to save expense for profile %s: %w", profile.ProfileID, err)
		}

		if err := s.recurringRepo.MarkExpenseProfileGeneratedInTx(ctx, tx, profile.ProfileID, today, profile.OwnerID, now); err != nil {
			logger.Error("Expense profile advancement failed, rolling back batch",
				slog.String("profile_id", profile.ProfileID),
				slog.String("error", err.Error()))
			return 0, fmt.Errorf("failed to advance profile %s: %w", profile.ProfileID, err)
		}

		generated++
	}

	if err := s.recurringRepo.Commit(ctx, tx); err != nil {
		return 0, fmt.Errorf("failed to commit generation transaction: %w", err)
	}

	logger.Info("Expense generation run completed", slog.Int("generated", generated), slog.Time("run_date", today))
	return generated, nil
}
