package domain

// Customer is a party invoices are addressed to.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	OwnerID    string `json:"ownerID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
