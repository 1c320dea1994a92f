package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/dto"
	"github.com/finbooks/billing_backoffice/internal/middleware"
	"github.com/google/uuid"
)

// recurringProfileService manages recurring invoice and expense profiles.
type recurringProfileService struct {
	invoiceRepo portsrepo.RecurringInvoiceRepositoryFacade
	expenseRepo portsrepo.RecurringExpenseRepositoryFacade
	catalogRepo portsrepo.CatalogItemReader
}

// NewRecurringProfileService creates a new RecurringProfileSvcFacade.
func NewRecurringProfileService(invoiceRepo portsrepo.RecurringInvoiceRepositoryFacade, expenseRepo portsrepo.RecurringExpenseRepositoryFacade, catalogRepo portsrepo.CatalogItemReader) portssvc.RecurringProfileSvcFacade {
	return &recurringProfileService{
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
		catalogRepo: catalogRepo,
	}
}

var _ portssvc.RecurringProfileSvcFacade = (*recurringProfileService)(nil)

// validateSchedule enforces the schedule rules shared by both profile kinds.
func validateSchedule(frequency domain.Frequency, startDate time.Time, endDate *time.Time) error {
	if !frequency.IsValid() {
		return fmt.Errorf("%w: unsupported frequency %q", apperrors.ErrValidation, frequency)
	}
	if endDate != nil && endDate.Before(startDate) {
		return fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	return nil
}

// CreateInvoiceProfile validates and persists a new recurring invoice profile.
func (s *recurringProfileService) CreateInvoiceProfile(ctx context.Context, req dto.CreateRecurringInvoiceProfileRequest, creatorUserID string) (*domain.RecurringInvoiceProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateSchedule(req.Frequency, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	// Every line item must reference an existing catalog item owned by the creator.
	itemIDs := make([]string, len(req.LineItems))
	for i, li := range req.LineItems {
		itemIDs[i] = li.ItemID
	}
	catalogItems, err := s.catalogRepo.FindCatalogItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to look up catalog items: %w", err)
	}
	for _, itemID := range itemIDs {
		item, found := catalogItems[itemID]
		if !found {
			return nil, fmt.Errorf("%w: unknown catalog item %s", apperrors.ErrValidation, itemID)
		}
		if item.OwnerID != creatorUserID {
			return nil, fmt.Errorf("%w: catalog item %s belongs to another user", apperrors.ErrValidation, itemID)
		}
	}

	now := time.Now().UTC()
	profileID := uuid.NewString()

	lineItems := make([]domain.RecurringLineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		lineItems[i] = domain.RecurringLineItem{
			LineItemID:  uuid.NewString(),
			ProfileID:   profileID,
			ItemID:      li.ItemID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			LineTotal:   li.LineTotal,
		}
	}

	profile := domain.RecurringInvoiceProfile{
		ProfileID:  profileID,
		OwnerID:    creatorUserID,
		CustomerID: req.CustomerID,
		Schedule: domain.Schedule{
			StartDate:         req.StartDate,
			EndDate:           req.EndDate,
			Frequency:         req.Frequency,
			Status:            domain.ProfileActive,
			LastGeneratedDate: nil,
		},
		Subtotal:  req.Subtotal,
		TaxAmount: req.TaxAmount,
		Total:     req.Total,
		Notes:     req.Notes,
		LineItems: lineItems,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoiceProfile(ctx, profile); err != nil {
		logger.Error("Failed to save recurring invoice profile", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save recurring invoice profile: %w", err)
	}

	logger.Info("Recurring invoice profile created", slog.String("profile_id", profileID), slog.String("frequency", string(req.Frequency)))
	return &profile, nil
}

// GetInvoiceProfileByID retrieves a profile, enforcing ownership.
func (s *recurringProfileService) GetInvoiceProfileByID(ctx context.Context, profileID string, requestingUserID string) (*domain.RecurringInvoiceProfile, error) {
	profile, err := s.invoiceRepo.FindInvoiceProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.OwnerID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return profile, nil
}

// ListInvoiceProfiles retrieves all profiles owned by the requesting user.
func (s *recurringProfileService) ListInvoiceProfiles(ctx context.Context, requestingUserID string) ([]domain.RecurringInvoiceProfile, error) {
	return s.invoiceRepo.ListInvoiceProfilesByOwner(ctx, requestingUserID)
}

// SetInvoiceProfileStatus pauses or resumes a profile, enforcing ownership.
func (s *recurringProfileService) SetInvoiceProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, requestingUserID string) error {
	if status != domain.ProfileActive && status != domain.ProfilePaused {
		return fmt.Errorf("%w: unsupported profile status %q", apperrors.ErrValidation, status)
	}

	profile, err := s.invoiceRepo.FindInvoiceProfileByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile.OwnerID != requestingUserID {
		return apperrors.ErrForbidden
	}

	return s.invoiceRepo.UpdateInvoiceProfileStatus(ctx, profileID, status, requestingUserID, time.Now().UTC())
}

// CreateExpenseProfile validates and persists a new recurring expense profile.
func (s *recurringProfileService) CreateExpenseProfile(ctx context.Context, req dto.CreateRecurringExpenseProfileRequest, creatorUserID string) (*domain.RecurringExpenseProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateSchedule(req.Frequency, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := domain.RecurringExpenseProfile{
		ProfileID:  uuid.NewString(),
		OwnerID:    creatorUserID,
		VendorName: req.VendorName,
		CategoryID: req.CategoryID,
		Schedule: domain.Schedule{
			StartDate:         req.StartDate,
			EndDate:           req.EndDate,
			Frequency:         req.Frequency,
			Status:            domain.ProfileActive,
			LastGeneratedDate: nil,
		},
		Amount:      req.Amount,
		Description: req.Description,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpenseProfile(ctx, profile); err != nil {
		logger.Error("Failed to save recurring expense profile", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save recurring expense profile: %w", err)
	}

	logger.Info("Recurring expense profile created", slog.String("profile_id", profile.ProfileID), slog.String("frequency", string(req.Frequency)))
	return &profile, nil
}

// GetExpenseProfileByID retrieves a profile, enforcing ownership.
func (s *recurringProfileService) GetExpenseProfileByID(ctx context.Context, profileID string, requestingUserID string) (*domain.RecurringExpenseProfile, error) {
	profile, err := s.expenseRepo.FindExpenseProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.OwnerID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return profile, nil
}

// ListExpenseProfiles retrieves all profiles owned by the requesting user.
func (s *recurringProfileService) ListExpenseProfiles(ctx context.Context, requestingUserID string) ([]domain.RecurringExpenseProfile, error) {
	return s.expenseRepo.ListExpenseProfilesByOwner(ctx, requestingUserID)
}

// SetExpenseProfileStatus pauses or resumes a profile, enforcing ownership.
func (s *recurringProfileService) SetExpenseProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, requestingUserID string) error {
	if status != domain.ProfileActive && status != domain.ProfilePaused {
		return fmt.Errorf("%w: unsupported profile status %q", apperrors.ErrValidation, status)
	}

	profile, err := s.expenseRepo.FindExpenseProfileByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile.OwnerID != requestingUserID {
		return apperrors.ErrForbidden
	}

	return s.expenseRepo.UpdateExpenseProfileStatus(ctx, profileID, status, requestingUserID, time.Now().UTC())
}
