package test

import (
	"context"
	"time"

	"github.com/polkiloo/bilemo/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated customer.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// CustomerFacadeStub provides controllable behaviour for customer endpoints.
type CustomerFacadeStub struct {
	CustomersFn        func(context.Context) ([]model.Customer, error)
	CustomerFn         func(context.Context, int64) (*model.Customer, error)
	CustomerUsersFn    func(context.Context, int64) ([]model.User, error)
	RegisterCustomerFn func(context.Context, model.Customer) (*model.Customer, error)
}

// Customers returns predefined customers.
func (s CustomerFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{ID: 1, Email: "shop@example.com", Company: "Shop"}}, nil
}

// Customer returns a customer with the requested id.
func (s CustomerFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return &model.Customer{ID: id, Email: "shop@example.com", Company: "Shop"}, nil
}

// CustomerUsers returns no users unless overridden.
func (s CustomerFacadeStub) CustomerUsers(ctx context.Context, customerID int64) ([]model.User, error) {
	if s.CustomerUsersFn != nil {
		return s.CustomerUsersFn(ctx, customerID)
	}
	return []model.User{}, nil
}

// RegisterCustomer echoes the draft with an id.
func (s CustomerFacadeStub) RegisterCustomer(ctx context.Context, draft model.Customer) (*model.Customer, error) {
	if s.RegisterCustomerFn != nil {
		return s.RegisterCustomerFn(ctx, draft)
	}
	draft.ID = 1
	draft.PasswordHash = "hash:password"
	draft.CreatedAt = time.Unix(0, 0).UTC()
	return &draft, nil
}

// ProductFacadeStub provides controllable behaviour for product endpoints.
type ProductFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	ProductFn  func(context.Context, int64) (*model.Product, error)
}

// Products returns predefined products.
func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Pixel 8", Brand: "Google", Price: 699}}, nil
}

// Product returns a product with the requested id.
func (s ProductFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Pixel 8", Brand: "Google", Price: 699}, nil
}

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	UserFn       func(ctx context.Context, customerID, id int64) (*model.User, error)
	AddUserFn    func(ctx context.Context, customerID int64, draft model.User) (*model.User, error)
	DeleteUserFn func(ctx context.Context, customerID, id int64) error
}

// User returns a user with the requested id owned by customerID.
func (s UserFacadeStub) User(ctx context.Context, customerID, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, customerID, id)
	}
	return &model.User{ID: id, Firstname: "Alice", Lastname: "Martin", Email: "alice@example.com", CustomerID: customerID}, nil
}

// AddUser echoes the draft owned by customerID.
func (s UserFacadeStub) AddUser(ctx context.Context, customerID int64, draft model.User) (*model.User, error) {
	if s.AddUserFn != nil {
		return s.AddUserFn(ctx, customerID, draft)
	}
	draft.ID = 1
	draft.CustomerID = customerID
	return &draft, nil
}

// DeleteUser succeeds unless overridden.
func (s UserFacadeStub) DeleteUser(ctx context.Context, customerID, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, customerID, id)
	}
	return nil
}

// CatalogFacadeStub aggregates facade dependencies for HTTP layer tests.
type CatalogFacadeStub struct {
	AuthFacadeStub
	CustomerFacadeStub
	ProductFacadeStub
	UserFacadeStub
}

// HealthCheckerStub reports a fixed dependency status.
type HealthCheckerStub struct {
	Checks map[string]string
	Err    error
}

// Check returns the configured report.
func (s HealthCheckerStub) Check(ctx context.Context) (map[string]string, error) {
	return s.Checks, s.Err
}
