package domain_test

import (
	"testing"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoice_Outstanding(t *testing.T) {
	tests := []struct {
		name    string
		invoice domain.Invoice
		want    bool
	}{
		{
			name: "sent invoice with no payment",
			invoice: domain.Invoice{
				Total:      decimal.NewFromInt(100),
				AmountPaid: decimal.Zero,
				Status:     domain.InvoiceSent,
			},
			want: true,
		},
		{
			name: "partially paid invoice",
			invoice: domain.Invoice{
				Total:      decimal.NewFromInt(100),
				AmountPaid: decimal.NewFromInt(40),
				Status:     domain.InvoicePartiallyPaid,
			},
			want: true,
		},
		{
			name: "overdue invoice",
			invoice: domain.Invoice{
				Total:      decimal.NewFromInt(100),
				AmountPaid: decimal.Zero,
				Status:     domain.InvoiceOverdue,
			},
			want: true,
		},
		{
			name: "fully paid invoice",
			invoice: domain.Invoice{
				Total:      decimal.NewFromInt(100),
				AmountPaid: decimal.NewFromInt(100),
				Status:     domain.InvoicePaid,
			},
			want: false,
		},
		{
			name: "voided invoice with unpaid balance",
			invoice: domain.Invoice{
				Total:      decimal.NewFromInt(100),
				AmountPaid: decimal.Zero,
				Status:     domain.InvoiceVoid,
			},
			want: false,
		},
		{
			name: "sent invoice with zero total",
			invoice: domain.Invoice{
				Total:      decimal.Zero,
				AmountPaid: decimal.Zero,
				Status:     domain.InvoiceSent,
			},
			want: false,
		},
		{
			name: "overpaid invoice still marked sent",
			invoice: domain.Invoice{
				Total:      decimal.NewFromInt(100),
				AmountPaid: decimal.NewFromInt(120),
				Status:     domain.InvoiceSent,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.invoice.Outstanding())
		})
	}
}
