package repositories

import (
	"context"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
)

// CatalogItemReader defines read operations for catalog items
type CatalogItemReader interface {
	// FindCatalogItemByID retrieves a catalog item by its unique identifier.
	FindCatalogItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error)

	// FindCatalogItemsByIDs retrieves multiple catalog items keyed by ID.
	FindCatalogItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.CatalogItem, error)

	// ListCatalogItemsByOwner retrieves all catalog items belonging to an owner.
	ListCatalogItemsByOwner(ctx context.Context, ownerID string) ([]domain.CatalogItem, error)
}

// CatalogItemWriter defines write operations for catalog items
type CatalogItemWriter interface {
	// SaveCatalogItem persists a new catalog item.
	SaveCatalogItem(ctx context.Context, item domain.CatalogItem) error
}

// CatalogItemRepositoryFacade combines all catalog item repository interfaces
type CatalogItemRepositoryFacade interface {
	CatalogItemReader
	CatalogItemWriter
}
