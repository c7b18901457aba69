package repository

import (
	"context"

	"github.com/polkiloo/bilemo/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.User, error)
	Delete(ctx context.Context, id int64) error
}
