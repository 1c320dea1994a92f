package domain

import "github.com/shopspring/decimal"

// ItemType distinguishes inventory-tracked products from services.
type ItemType string

const (
	ItemProduct ItemType = "PRODUCT"
	ItemService ItemType = "SERVICE"
)

// CatalogItem is a sellable item. Only PRODUCT items carry an on-hand
// quantity; SERVICE items are never inventory-tracked.
type CatalogItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	OwnerID     string          `json:"ownerID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ItemType    ItemType        `json:"itemType"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"` // On-hand; may go negative (backorder)
	AuditFields
}
