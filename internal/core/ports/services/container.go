package services

// ServiceContainer holds all service interfaces for dependency injection.
type ServiceContainer struct {
	Recurrence       RecurrenceSvc
	RecurringProfile RecurringProfileSvcFacade
	InvoiceGenerator InvoiceGeneratorSvc
	ExpenseGenerator ExpenseGeneratorSvc
	Invoice          InvoiceSvcFacade
	Expense          ExpenseSvcFacade
	Customer         CustomerSvcFacade
	CatalogItem      CatalogItemSvcFacade
	User             UserSvcFacade
	Token            TokenSvcFacade
}
