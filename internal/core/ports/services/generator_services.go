package services

import (
	"context"
	"time"
)

// InvoiceGeneratorSvc creates invoices from due recurring invoice profiles.
// One call processes the whole batch inside a single database transaction.
type InvoiceGeneratorSvc interface {
	// Run evaluates all candidate profiles against today and generates an
	// invoice for each due profile. It returns the number of invoices
	// generated. Any failure rolls back the entire batch.
	Run(ctx context.Context, today time.Time) (int, error)
}

// ExpenseGeneratorSvc creates expenses from due recurring expense profiles.
type ExpenseGeneratorSvc interface {
	// Run evaluates all candidate profiles against today and generates an
	// expense for each due profile. It returns the number of expenses
	// generated. Any failure rolls back the entire batch.
	Run(ctx context.Context, today time.Time) (int, error)
}
