package dto

import (
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringLineItemRequest defines a line item on a new recurring invoice profile.
type CreateRecurringLineItemRequest struct {
	ItemID      string          `json:"itemID" binding:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	LineTotal   decimal.Decimal `json:"lineTotal" binding:"required"`
}

// CreateRecurringInvoiceProfileRequest defines the data needed to create a recurring invoice profile.
type CreateRecurringInvoiceProfileRequest struct {
	CustomerID string                           `json:"customerID" binding:"required"`
	StartDate  time.Time                        `json:"startDate" binding:"required"`
	EndDate    *time.Time                       `json:"endDate"` // Optional, nil means unbounded
	Frequency  domain.Frequency                 `json:"frequency" binding:"required,oneof=WEEKLY MONTHLY QUARTERLY YEARLY"`
	Subtotal   decimal.Decimal                  `json:"subtotal" binding:"required"`
	TaxAmount  decimal.Decimal                  `json:"taxAmount"`
	Total      decimal.Decimal                  `json:"total" binding:"required"`
	Notes      string                           `json:"notes"`
	LineItems  []CreateRecurringLineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}

// CreateRecurringExpenseProfileRequest defines the data needed to create a recurring expense profile.
type CreateRecurringExpenseProfileRequest struct {
	VendorName  string           `json:"vendorName" binding:"required"`
	CategoryID  string           `json:"categoryID" binding:"required"`
	StartDate   time.Time        `json:"startDate" binding:"required"`
	EndDate     *time.Time       `json:"endDate"`
	Frequency   domain.Frequency `json:"frequency" binding:"required,oneof=WEEKLY MONTHLY QUARTERLY YEARLY"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Notes       string           `json:"notes"`
}

// UpdateProfileStatusRequest toggles a profile between ACTIVE and PAUSED.
type UpdateProfileStatusRequest struct {
	Status domain.ProfileStatus `json:"status" binding:"required,oneof=ACTIVE PAUSED"`
}

// RecurringLineItemResponse defines the data returned for a recurring line item.
type RecurringLineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// RecurringInvoiceProfileResponse defines the data returned for a recurring invoice profile.
type RecurringInvoiceProfileResponse struct {
	ProfileID         string                      `json:"profileID"`
	CustomerID        string                      `json:"customerID"`
	StartDate         time.Time                   `json:"startDate"`
	EndDate           *time.Time                  `json:"endDate"`
	Frequency         string                      `json:"frequency"`
	Status            string                      `json:"status"`
	LastGeneratedDate *time.Time                  `json:"lastGeneratedDate"`
	NextDueDate       time.Time                   `json:"nextDueDate"`
	Subtotal          decimal.Decimal             `json:"subtotal"`
	TaxAmount         decimal.Decimal             `json:"taxAmount"`
	Total             decimal.Decimal             `json:"total"`
	Notes             string                      `json:"notes"`
	LineItems         []RecurringLineItemResponse `json:"lineItems"`
	CreatedAt         time.Time                   `json:"createdAt"`
}

// RecurringExpenseProfileResponse defines the data returned for a recurring expense profile.
type RecurringExpenseProfileResponse struct {
	ProfileID         string          `json:"profileID"`
	VendorName        string          `json:"vendorName"`
	CategoryID        string          `json:"categoryID"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           *time.Time      `json:"endDate"`
	Frequency         string          `json:"frequency"`
	Status            string          `json:"status"`
	LastGeneratedDate *time.Time      `json:"lastGeneratedDate"`
	NextDueDate       time.Time       `json:"nextDueDate"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToRecurringInvoiceProfileResponse converts a domain profile to its response DTO.
// nextDue is computed by the recurrence engine and passed in by the service.
func ToRecurringInvoiceProfileResponse(p *domain.RecurringInvoiceProfile, nextDue time.Time) RecurringInvoiceProfileResponse {
	items := make([]RecurringLineItemResponse, len(p.LineItems))
	for i, li := range p.LineItems {
		items[i] = RecurringLineItemResponse{
			LineItemID:  li.LineItemID,
			ItemID:      li.ItemID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			LineTotal:   li.LineTotal,
		}
	}
	return RecurringInvoiceProfileResponse{
		ProfileID:         p.ProfileID,
		CustomerID:        p.CustomerID,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Frequency:         string(p.Frequency),
		Status:            string(p.Status),
		LastGeneratedDate: p.LastGeneratedDate,
		NextDueDate:       nextDue,
		Subtotal:          p.Subtotal,
		TaxAmount:         p.TaxAmount,
		Total:             p.Total,
		Notes:             p.Notes,
		LineItems:         items,
		CreatedAt:         p.CreatedAt,
	}
}

// ToRecurringExpenseProfileResponse converts a domain expense profile to its response DTO.
func ToRecurringExpenseProfileResponse(p *domain.RecurringExpenseProfile, nextDue time.Time) RecurringExpenseProfileResponse {
	return RecurringExpenseProfileResponse{
		ProfileID:         p.ProfileID,
		VendorName:        p.VendorName,
		CategoryID:        p.CategoryID,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Frequency:         string(p.Frequency),
		Status:            string(p.Status),
		LastGeneratedDate: p.LastGeneratedDate,
		NextDueDate:       nextDue,
		Amount:            p.Amount,
		Description:       p.Description,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
	}
}
