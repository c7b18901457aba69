package dto

import (
	"time"

	"github.com/polkiloo/bilemo/internal/domain/model"
)

// ProductListItem is the "list" group of a product.
type ProductListItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
}

// ProductDetail carries every product field.
type ProductDetail struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewProductList(products []model.Product) []ProductListItem {
	out := make([]ProductListItem, 0, len(products))
	for _, p := range products {
		out = append(out, ProductListItem{ID: p.ID, Name: p.Name, Brand: p.Brand, Price: p.Price})
	}
	return out
}

func NewProductDetail(p *model.Product) ProductDetail {
	return ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}
