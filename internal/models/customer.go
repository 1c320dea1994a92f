package models

// Customer mirrors the customers table.
type Customer struct {
	CustomerID string `json:"customerID"`
	OwnerID    string `json:"ownerID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
