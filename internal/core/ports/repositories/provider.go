package repositories

// RepositoryProvider bundles every repository facade for dependency injection.
type RepositoryProvider struct {
	RecurringInvoiceRepo RecurringInvoiceRepositoryFacade
	RecurringExpenseRepo RecurringExpenseRepositoryFacade
	InvoiceRepo          InvoiceRepositoryFacade
	ExpenseRepo          ExpenseRepositoryFacade
	CatalogItemRepo      CatalogItemRepositoryFacade
	CustomerRepo         CustomerRepositoryFacade
	UserRepo             UserRepositoryFacade
}
