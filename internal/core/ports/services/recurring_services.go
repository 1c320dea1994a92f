package services

import (
	"context"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/dto"
)

// RecurringInvoiceProfileSvc manages recurring invoice profiles.
type RecurringInvoiceProfileSvc interface {
	// CreateInvoiceProfile validates and persists a new profile.
	CreateInvoiceProfile(ctx context.Context, req dto.CreateRecurringInvoiceProfileRequest, creatorUserID string) (*domain.RecurringInvoiceProfile, error)

	// GetInvoiceProfileByID retrieves a profile with its line items.
	GetInvoiceProfileByID(ctx context.Context, profileID string, requestingUserID string) (*domain.RecurringInvoiceProfile, error)

	// ListInvoiceProfiles retrieves all profiles owned by the requesting user.
	ListInvoiceProfiles(ctx context.Context, requestingUserID string) ([]domain.RecurringInvoiceProfile, error)

	// SetInvoiceProfileStatus pauses or resumes a profile.
	SetInvoiceProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, requestingUserID string) error
}

// RecurringExpenseProfileSvc manages recurring expense profiles.
type RecurringExpenseProfileSvc interface {
	// CreateExpenseProfile validates and persists a new profile.
	CreateExpenseProfile(ctx context.Context, req dto.CreateRecurringExpenseProfileRequest, creatorUserID string) (*domain.RecurringExpenseProfile, error)

	// GetExpenseProfileByID retrieves a profile by ID.
	GetExpenseProfileByID(ctx context.Context, profileID string, requestingUserID string) (*domain.RecurringExpenseProfile, error)

	// ListExpenseProfiles retrieves all profiles owned by the requesting user.
	ListExpenseProfiles(ctx context.Context, requestingUserID string) ([]domain.RecurringExpenseProfile, error)

	// SetExpenseProfileStatus pauses or resumes a profile.
	SetExpenseProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, requestingUserID string) error
}

// RecurringProfileSvcFacade combines both profile service interfaces
type RecurringProfileSvcFacade interface {
	RecurringInvoiceProfileSvc
	RecurringExpenseProfileSvc
}
