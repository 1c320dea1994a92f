package mapping

import (
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/models"
)

// ToModelCatalogItem converts a domain CatalogItem to a model CatalogItem
func ToModelCatalogItem(d domain.CatalogItem) models.CatalogItem {
	return models.CatalogItem{
		ItemID:      d.ItemID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Description: d.Description,
		ItemType:    models.ItemType(d.ItemType),
		UnitPrice:   d.UnitPrice,
		Quantity:    d.Quantity,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCatalogItem converts a model CatalogItem to a domain CatalogItem
func ToDomainCatalogItem(m models.CatalogItem) domain.CatalogItem {
	return domain.CatalogItem{
		ItemID:      m.ItemID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		ItemType:    domain.ItemType(m.ItemType),
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
