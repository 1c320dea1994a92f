package mapping

import (
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		OwnerID:     d.OwnerID,
		VendorName:  d.VendorName,
		CategoryID:  d.CategoryID,
		Description: d.Description,
		ExpenseDate: d.ExpenseDate,
		Amount:      d.Amount,
		AmountPaid:  d.AmountPaid,
		Notes:       d.Notes,
		Status:      models.ExpenseStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		OwnerID:     m.OwnerID,
		VendorName:  m.VendorName,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		ExpenseDate: m.ExpenseDate,
		Amount:      m.Amount,
		AmountPaid:  m.AmountPaid,
		Notes:       m.Notes,
		Status:      domain.ExpenseStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
