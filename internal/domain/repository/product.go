package repository

import (
	"context"

	"github.com/polkiloo/bilemo/internal/domain/model"
)

// ProductRepository provides read access to the catalog. Create is used by seeding only
// and reports false when a product with the same name already exists.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (bool, error)
}
