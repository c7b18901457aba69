package usecase

import (
	"context"

	"github.com/polkiloo/bilemo/internal/cache"
	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/domain/model"
	"github.com/polkiloo/bilemo/internal/domain/repository"
)

// ProductUseCase exposes the read-only catalogue.
type ProductUseCase struct {
	products repository.ProductRepository
	aside    *cache.Aside
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository, aside *cache.Aside) *ProductUseCase {
	return &ProductUseCase{products: products, aside: aside}
}

// List returns the catalogue, served from the cache while fresh.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return cache.GetOrLoad(ctx, u.aside, cache.ProductListKey(), u.aside.TTL(), u.products.List)
}

func (u *ProductUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	if id <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	return u.products.GetByID(ctx, id)
}
