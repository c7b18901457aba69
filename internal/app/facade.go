package app

import (
	"context"

	"github.com/polkiloo/bilemo/internal/domain/model"
	"github.com/polkiloo/bilemo/internal/usecase"
)

// CatalogFacade exposes the use cases to the HTTP layer.
type CatalogFacade struct {
	auth      *usecase.AuthUseCase
	customers *usecase.CustomerUseCase
	users     *usecase.UserUseCase
	products  *usecase.ProductUseCase
}

func NewCatalogFacade(auth *usecase.AuthUseCase, customers *usecase.CustomerUseCase, users *usecase.UserUseCase, products *usecase.ProductUseCase) *CatalogFacade {
	return &CatalogFacade{auth: auth, customers: customers, users: users, products: products}
}

func (f *CatalogFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *CatalogFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *CatalogFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.List(ctx)
}

func (f *CatalogFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.Get(ctx, id)
}

func (f *CatalogFacade) CustomerUsers(ctx context.Context, customerID int64) ([]model.User, error) {
	return f.customers.Users(ctx, customerID)
}

func (f *CatalogFacade) RegisterCustomer(ctx context.Context, draft model.Customer) (*model.Customer, error) {
	return f.customers.Create(ctx, draft)
}

func (f *CatalogFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *CatalogFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *CatalogFacade) User(ctx context.Context, customerID, id int64) (*model.User, error) {
	return f.users.Get(ctx, customerID, id)
}

func (f *CatalogFacade) AddUser(ctx context.Context, customerID int64, draft model.User) (*model.User, error) {
	return f.users.Create(ctx, customerID, draft)
}

func (f *CatalogFacade) DeleteUser(ctx context.Context, customerID, id int64) error {
	return f.users.Delete(ctx, customerID, id)
}
