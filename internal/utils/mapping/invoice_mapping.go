package mapping

import (
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		OwnerID:       d.OwnerID,
		CustomerID:    d.CustomerID,
		InvoiceNumber: d.InvoiceNumber,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		Subtotal:      d.Subtotal,
		TaxAmount:     d.TaxAmount,
		Total:         d.Total,
		AmountPaid:    d.AmountPaid,
		Notes:         d.Notes,
		Status:        models.InvoiceStatus(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		OwnerID:       m.OwnerID,
		CustomerID:    m.CustomerID,
		InvoiceNumber: m.InvoiceNumber,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		Subtotal:      m.Subtotal,
		TaxAmount:     m.TaxAmount,
		Total:         m.Total,
		AmountPaid:    m.AmountPaid,
		Notes:         m.Notes,
		Status:        domain.InvoiceStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceLineItem converts a domain InvoiceLineItem to its model counterpart
func ToModelInvoiceLineItem(d domain.InvoiceLineItem) models.InvoiceLineItem {
	return models.InvoiceLineItem{
		LineItemID:  d.LineItemID,
		InvoiceID:   d.InvoiceID,
		ItemID:      d.ItemID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		LineTotal:   d.LineTotal,
	}
}

// ToDomainInvoiceLineItem converts a model InvoiceLineItem to its domain counterpart
func ToDomainInvoiceLineItem(m models.InvoiceLineItem) domain.InvoiceLineItem {
	return domain.InvoiceLineItem{
		LineItemID:  m.LineItemID,
		InvoiceID:   m.InvoiceID,
		ItemID:      m.ItemID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		LineTotal:   m.LineTotal,
	}
}

// ToDomainInvoiceLineItemSlice converts a slice of model line items to domain line items
func ToDomainInvoiceLineItemSlice(ms []models.InvoiceLineItem) []domain.InvoiceLineItem {
	ds := make([]domain.InvoiceLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceLineItem(m)
	}
	return ds
}
