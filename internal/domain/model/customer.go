package model

import "time"

// PlaceholderPassword is assigned to customers registered through the API
// until they change it.
const PlaceholderPassword = "password"

// Customer is a company consuming the catalog API. Users belong to it through
// their CustomerID reference.
type Customer struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email,max=180"`
	PasswordHash string    `json:"-"`
	Company      string    `json:"company" validate:"required,min=2,max=255"`
	CreatedAt    time.Time `json:"createdAt"`
}
