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

// customerService manages customer records.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerSvcFacade.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer validates and persists a new customer.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		OwnerID:    creatorUserID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetCustomerByID retrieves a customer, enforcing ownership.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string, requestingUserID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.OwnerID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return customer, nil
}

// ListCustomers retrieves all customers owned by the requesting user.
func (s *customerService) ListCustomers(ctx context.Context, requestingUserID string) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomersByOwner(ctx, requestingUserID)
}
