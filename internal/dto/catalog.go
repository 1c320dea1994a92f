package dto

import (
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCatalogItemRequest defines the data needed to create a new catalog item.
type CreateCatalogItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	ItemType    domain.ItemType `json:"itemType" binding:"required,oneof=PRODUCT SERVICE"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"` // Ignored for SERVICE items
}

// CatalogItemResponse defines the data returned for a catalog item.
type CatalogItemResponse struct {
	ItemID      string          `json:"itemID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ItemType    string          `json:"itemType"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToCatalogItemResponse converts a domain.CatalogItem to CatalogItemResponse DTO.
func ToCatalogItemResponse(item *domain.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ItemID:      item.ItemID,
		Name:        item.Name,
		Description: item.Description,
		ItemType:    string(item.ItemType),
		UnitPrice:   item.UnitPrice,
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt,
	}
}

// ToCatalogItemResponses converts a slice of domain.CatalogItem to []CatalogItemResponse.
func ToCatalogItemResponses(items []domain.CatalogItem) []CatalogItemResponse {
	responses := make([]CatalogItemResponse, len(items))
	for i := range items {
		responses[i] = ToCatalogItemResponse(&items[i])
	}
	return responses
}
