package pgsql

import (
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	recurringInvoiceRepo := newPgxRecurringInvoiceRepository(dbPool)
	recurringExpenseRepo := newPgxRecurringExpenseRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	catalogItemRepo := newPgxCatalogItemRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RecurringInvoiceRepo: recurringInvoiceRepo,
		RecurringExpenseRepo: recurringExpenseRepo,
		InvoiceRepo:          invoiceRepo,
		ExpenseRepo:          expenseRepo,
		CatalogItemRepo:      catalogItemRepo,
		CustomerRepo:         customerRepo,
		UserRepo:             userRepo,
	}
}
