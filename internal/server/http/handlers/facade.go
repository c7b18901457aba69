package handlers

import (
	"context"

	"github.com/polkiloo/bilemo/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CustomerFacade encapsulates customer operations exposed via HTTP.
type CustomerFacade interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	Customer(ctx context.Context, id int64) (*model.Customer, error)
	CustomerUsers(ctx context.Context, customerID int64) ([]model.User, error)
	RegisterCustomer(ctx context.Context, draft model.Customer) (*model.Customer, error)
}

// ProductFacade provides the catalogue.
type ProductFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
}

// UserFacade manages a customer's users.
type UserFacade interface {
	User(ctx context.Context, customerID, id int64) (*model.User, error)
	AddUser(ctx context.Context, customerID int64, draft model.User) (*model.User, error)
	DeleteUser(ctx context.Context, customerID, id int64) error
}

// CatalogFacade aggregates the full set of operations used across handlers.
type CatalogFacade interface {
	AuthFacade
	CustomerFacade
	ProductFacade
	UserFacade
}

// HealthChecker reports the status of each backing service.
type HealthChecker interface {
	Check(ctx context.Context) (map[string]string, error)
}
