package repository

import (
	"context"

	"github.com/polkiloo/bilemo/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}
