package dto

import (
	"time"

	"github.com/polkiloo/bilemo/internal/domain/model"
)

// CustomerCreateRequest is the accepted customer registration payload.
type CustomerCreateRequest struct {
	Email   string `json:"email"`
	Company string `json:"company"`
}

// Model converts the payload into a draft entity.
func (r CustomerCreateRequest) Model() model.Customer {
	return model.Customer{Email: r.Email, Company: r.Company}
}

// CustomerListItem is the "list" group of a customer.
type CustomerListItem struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// CustomerDetail is the "detail" group of a customer.
type CustomerDetail struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCustomerList(customers []model.Customer) []CustomerListItem {
	out := make([]CustomerListItem, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerListItem{ID: c.ID, Email: c.Email, Company: c.Company})
	}
	return out
}

func NewCustomerDetail(c *model.Customer) CustomerDetail {
	return CustomerDetail{ID: c.ID, Email: c.Email, Company: c.Company, CreatedAt: c.CreatedAt}
}
