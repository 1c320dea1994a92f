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
	"github.com/shopspring/decimal"
)

// catalogItemService manages the sellable items catalog.
type catalogItemService struct {
	catalogRepo portsrepo.CatalogItemRepositoryFacade
}

// NewCatalogItemService creates a new CatalogItemSvcFacade.
func NewCatalogItemService(catalogRepo portsrepo.CatalogItemRepositoryFacade) portssvc.CatalogItemSvcFacade {
	return &catalogItemService{catalogRepo: catalogRepo}
}

var _ portssvc.CatalogItemSvcFacade = (*catalogItemService)(nil)

// CreateCatalogItem validates and persists a new catalog item.
// SERVICE items always start with zero quantity; inventory never applies to them.
func (s *catalogItemService) CreateCatalogItem(ctx context.Context, req dto.CreateCatalogItemRequest, creatorUserID string) (*domain.CatalogItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ItemType != domain.ItemProduct && req.ItemType != domain.ItemService {
		return nil, fmt.Errorf("%w: unsupported item type %q", apperrors.ErrValidation, req.ItemType)
	}

	quantity := req.Quantity
	if req.ItemType == domain.ItemService {
		quantity = decimal.Zero
	}

	now := time.Now().UTC()
	item := domain.CatalogItem{
		ItemID:      uuid.NewString(),
		OwnerID:     creatorUserID,
		Name:        req.Name,
		Description: req.Description,
		ItemType:    req.ItemType,
		UnitPrice:   req.UnitPrice,
		Quantity:    quantity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.catalogRepo.SaveCatalogItem(ctx, item); err != nil {
		logger.Error("Failed to save catalog item", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save catalog item: %w", err)
	}

	logger.Info("Catalog item created", slog.String("item_id", item.ItemID), slog.String("item_type", string(item.ItemType)))
	return &item, nil
}

// GetCatalogItemByID retrieves a catalog item, enforcing ownership.
func (s *catalogItemService) GetCatalogItemByID(ctx context.Context, itemID string, requestingUserID string) (*domain.CatalogItem, error) {
	item, err := s.catalogRepo.FindCatalogItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return item, nil
}

// ListCatalogItems retrieves all catalog items owned by the requesting user.
func (s *catalogItemService) ListCatalogItems(ctx context.Context, requestingUserID string) ([]domain.CatalogItem, error) {
	return s.catalogRepo.ListCatalogItemsByOwner(ctx, requestingUserID)
}
