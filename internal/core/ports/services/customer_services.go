package services

import (
	"context"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/dto"
)

// CustomerSvcFacade manages customer records.
type CustomerSvcFacade interface {
	// CreateCustomer validates and persists a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// GetCustomerByID retrieves a customer by ID.
	GetCustomerByID(ctx context.Context, customerID string, requestingUserID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers owned by the requesting user.
	ListCustomers(ctx context.Context, requestingUserID string) ([]domain.Customer, error)
}

// CatalogItemSvcFacade manages catalog items.
type CatalogItemSvcFacade interface {
	// CreateCatalogItem validates and persists a new catalog item.
	CreateCatalogItem(ctx context.Context, req dto.CreateCatalogItemRequest, creatorUserID string) (*domain.CatalogItem, error)

	// GetCatalogItemByID retrieves a catalog item by ID.
	GetCatalogItemByID(ctx context.Context, itemID string, requestingUserID string) (*domain.CatalogItem, error)

	// ListCatalogItems retrieves all catalog items owned by the requesting user.
	ListCatalogItems(ctx context.Context, requestingUserID string) ([]domain.CatalogItem, error)
}
