package services

import (
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The recurrence engine is stateless and shared by both generators.
	container.Recurrence = NewRecurrenceService()

	container.RecurringProfile = NewRecurringProfileService(repos.RecurringInvoiceRepo, repos.RecurringExpenseRepo, repos.CatalogItemRepo)
	container.InvoiceGenerator = NewInvoiceGeneratorService(repos.RecurringInvoiceRepo, container.Recurrence)
	container.ExpenseGenerator = NewExpenseGeneratorService(repos.RecurringExpenseRepo, container.Recurrence)

	container.Invoice = NewInvoiceService(repos.InvoiceRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.CatalogItem = NewCatalogItemService(repos.CatalogItemRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}
