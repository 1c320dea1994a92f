package mapping

import (
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/models"
)

// ToModelRecurringInvoiceProfile converts a domain profile to its model counterpart
func ToModelRecurringInvoiceProfile(d domain.RecurringInvoiceProfile) models.RecurringInvoiceProfile {
	return models.RecurringInvoiceProfile{
		ProfileID:         d.ProfileID,
		OwnerID:           d.OwnerID,
		CustomerID:        d.CustomerID,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		Frequency:         models.Frequency(d.Frequency),
		Status:            models.ProfileStatus(d.Status),
		LastGeneratedDate: d.LastGeneratedDate,
		Subtotal:          d.Subtotal,
		TaxAmount:         d.TaxAmount,
		Total:             d.Total,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringInvoiceProfile converts a model profile to its domain counterpart
func ToDomainRecurringInvoiceProfile(m models.RecurringInvoiceProfile) domain.RecurringInvoiceProfile {
	return domain.RecurringInvoiceProfile{
		ProfileID:  m.ProfileID,
		OwnerID:    m.OwnerID,
		CustomerID: m.CustomerID,
		Schedule: domain.Schedule{
			StartDate:         m.StartDate,
			EndDate:           m.EndDate,
			Frequency:         domain.Frequency(m.Frequency),
			Status:            domain.ProfileStatus(m.Status),
			LastGeneratedDate: m.LastGeneratedDate,
		},
		Subtotal:    m.Subtotal,
		TaxAmount:   m.TaxAmount,
		Total:       m.Total,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRecurringLineItem converts a domain recurring line item to its model counterpart
func ToModelRecurringLineItem(d domain.RecurringLineItem) models.RecurringLineItem {
	return models.RecurringLineItem{
		LineItemID:  d.LineItemID,
		ProfileID:   d.ProfileID,
		ItemID:      d.ItemID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		LineTotal:   d.LineTotal,
	}
}

// ToDomainRecurringLineItem converts a model recurring line item to its domain counterpart
func ToDomainRecurringLineItem(m models.RecurringLineItem) domain.RecurringLineItem {
	return domain.RecurringLineItem{
		LineItemID:  m.LineItemID,
		ProfileID:   m.ProfileID,
		ItemID:      m.ItemID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		LineTotal:   m.LineTotal,
	}
}

// ToDomainRecurringLineItemSlice converts a slice of model recurring line items
func ToDomainRecurringLineItemSlice(ms []models.RecurringLineItem) []domain.RecurringLineItem {
	ds := make([]domain.RecurringLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringLineItem(m)
	}
	return ds
}

// ToModelRecurringExpenseProfile converts a domain expense profile to its model counterpart
func ToModelRecurringExpenseProfile(d domain.RecurringExpenseProfile) models.RecurringExpenseProfile {
	return models.RecurringExpenseProfile{
		ProfileID:         d.ProfileID,
		OwnerID:           d.OwnerID,
		VendorName:        d.VendorName,
		CategoryID:        d.CategoryID,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		Frequency:         models.Frequency(d.Frequency),
		Status:            models.ProfileStatus(d.Status),
		LastGeneratedDate: d.LastGeneratedDate,
		Amount:            d.Amount,
		Description:       d.Description,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringExpenseProfile converts a model expense profile to its domain counterpart
func ToDomainRecurringExpenseProfile(m models.RecurringExpenseProfile) domain.RecurringExpenseProfile {
	return domain.RecurringExpenseProfile{
		ProfileID:  m.ProfileID,
		OwnerID:    m.OwnerID,
		VendorName: m.VendorName,
		CategoryID: m.CategoryID,
		Schedule: domain.Schedule{
			StartDate:         m.StartDate,
			EndDate:           m.EndDate,
			Frequency:         domain.Frequency(m.Frequency),
			Status:            domain.ProfileStatus(m.Status),
			LastGeneratedDate: m.LastGeneratedDate,
		},
		Amount:      m.Amount,
		Description: m.Description,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
