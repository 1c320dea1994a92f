package models

import "github.com/shopspring/decimal"

// ItemType distinguishes inventory-tracked products from services.
type ItemType string

const (
	ItemProduct ItemType = "PRODUCT"
	ItemService ItemType = "SERVICE"
)

// CatalogItem mirrors the catalog_items table.
type CatalogItem struct {
	ItemID      string          `json:"itemID"`
	OwnerID     string          `json:"ownerID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ItemType    ItemType        `json:"itemType"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	AuditFields
}
