package model

import "time"

// User is an end user registered by a customer.
type User struct {
	ID         int64     `json:"id"`
	Firstname  string    `json:"firstname" validate:"required,min=3,max=50"`
	Lastname   string    `json:"lastname" validate:"required,min=3,max=50"`
	Email      string    `json:"email" validate:"required,min=3,max=100"`
	CreatedAt  time.Time `json:"createdAt"`
	CustomerID int64     `json:"customerId" validate:"required"`
}
