package test

import "github.com/polkiloo/bilemo/internal/domain/repository"

// Customers returns the customer stub.
func (f *FactoryStub) Customers() repository.CustomerRepository { return f.CustomerRepo }

// Users returns the user stub.
func (f *FactoryStub) Users() repository.UserRepository { return f.UserRepo }

// Products returns the product stub.
func (f *FactoryStub) Products() repository.ProductRepository { return f.ProductRepo }

var _ repository.Factory = (*FactoryStub)(nil)
