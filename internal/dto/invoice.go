package dto

import (
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLineItemResponse defines the data returned for an invoice line item.
type InvoiceLineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                    `json:"invoiceID"`
	CustomerID    string                    `json:"customerID"`
	InvoiceNumber string                    `json:"invoiceNumber"`
	InvoiceDate   time.Time                 `json:"invoiceDate"`
	DueDate       time.Time                 `json:"dueDate"`
	Subtotal      decimal.Decimal           `json:"subtotal"`
	TaxAmount     decimal.Decimal           `json:"taxAmount"`
	Total         decimal.Decimal           `json:"total"`
	AmountPaid    decimal.Decimal           `json:"amountPaid"`
	BalanceDue    decimal.Decimal           `json:"balanceDue"`
	Notes         string                    `json:"notes"`
	Status        string                    `json:"status"`
	LineItems     []InvoiceLineItemResponse `json:"lineItems,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
}

// ListInvoicesParams holds parameters for listing a customer's invoices.
type ListInvoicesParams struct {
	OnlyOutstanding bool    `form:"outstanding"`
	Limit           int     `form:"limit"`
	NextToken       *string `form:"nextToken"`
}

// ListInvoicesResponse wraps a page of invoices with the next page token.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToInvoiceLineItemResponse converts a domain.InvoiceLineItem to its response DTO.
func ToInvoiceLineItemResponse(li domain.InvoiceLineItem) InvoiceLineItemResponse {
	return InvoiceLineItemResponse{
		LineItemID:  li.LineItemID,
		ItemID:      li.ItemID,
		Description: li.Description,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		LineTotal:   li.LineTotal,
	}
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		CustomerID:    inv.CustomerID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Subtotal:      inv.Subtotal,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		AmountPaid:    inv.AmountPaid,
		BalanceDue:    inv.Total.Sub(inv.AmountPaid),
		Notes:         inv.Notes,
		Status:        string(inv.Status),
		CreatedAt:     inv.CreatedAt,
	}
	if len(inv.LineItems) > 0 {
		resp.LineItems = make([]InvoiceLineItemResponse, len(inv.LineItems))
		for i, li := range inv.LineItems {
			resp.LineItems[i] = ToInvoiceLineItemResponse(li)
		}
	}
	return resp
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
