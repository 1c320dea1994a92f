package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the period unit governing schedule advancement.
type Frequency string

const (
	Weekly    Frequency = "WEEKLY"
	Monthly   Frequency = "MONTHLY"
	Quarterly Frequency = "QUARTERLY"
	Yearly    Frequency = "YEARLY"
)

// IsValid reports whether f is one of the supported frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case Weekly, Monthly, Quarterly, Yearly:
		return true
	}
	return false
}

// ProfileStatus indicates whether a recurring profile is evaluated by the generators.
type ProfileStatus string

const (
	ProfileActive ProfileStatus = "ACTIVE"
	ProfilePaused ProfileStatus = "PAUSED"
)

// Schedule holds the recurrence fields shared by invoice and expense profiles.
// EndDate nil means the profile runs forever; LastGeneratedDate nil means the
// profile has never generated anything.
type Schedule struct {
	StartDate         time.Time     `json:"startDate"`
	EndDate           *time.Time    `json:"endDate"`
	Frequency         Frequency     `json:"frequency"`
	Status            ProfileStatus `json:"status"`
	LastGeneratedDate *time.Time    `json:"lastGeneratedDate"`
}

// RecurringInvoiceProfile is a template from which invoices are generated periodically.
// Subtotal/TaxAmount/Total are stored on the profile and copied verbatim onto
// generated invoices; they are not recomputed from the line items.
type RecurringInvoiceProfile struct {
	ProfileID  string `json:"profileID"` // Primary Key (UUID)
	OwnerID    string `json:"ownerID"`   // Owning user reference
	CustomerID string `json:"customerID"`
	Schedule
	Subtotal  decimal.Decimal     `json:"subtotal"`
	TaxAmount decimal.Decimal     `json:"taxAmount"`
	Total     decimal.Decimal     `json:"total"`
	Notes     string              `json:"notes"`
	LineItems []RecurringLineItem `json:"lineItems"`
	AuditFields
}

// RecurringLineItem is a single priced row belonging to a recurring invoice profile.
type RecurringLineItem struct {
	LineItemID  string          `json:"lineItemID"` // Primary Key (UUID)
	ProfileID   string          `json:"profileID"`
	ItemID      string          `json:"itemID"` // CatalogItem reference
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// RecurringExpenseProfile is a template from which expenses are generated periodically.
type RecurringExpenseProfile struct {
	ProfileID  string `json:"profileID"` // Primary Key (UUID)
	OwnerID    string `json:"ownerID"`
	VendorName string `json:"vendorName"`
	CategoryID string `json:"categoryID"`
	Schedule
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
	AuditFields
}
