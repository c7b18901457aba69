package test

import (
	"context"
	"sort"
	"sync"

	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/domain/model"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	mu      sync.Mutex
	ByID    map[int64]*model.Customer
	ByEmail map[string]*model.Customer
	Next    int64
	Err     error
	// Calls counts List invocations.
	Calls int
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{
		ByID:    make(map[int64]*model.Customer),
		ByEmail: make(map[string]*model.Customer),
		Next:    1,
	}
}

// Create registers customer unless the email is taken or stub has explicit error.
func (s *CustomerRepositoryStub) Create(ctx context.Context, c *model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.ByEmail[c.Email]; exists {
		return domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	c.ID = s.Next
	s.Next++
	stored := *c
	s.ByID[c.ID] = &stored
	s.ByEmail[c.Email] = &stored
	return nil
}

// GetByID fetches customer by identifier or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.ByID[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches customer by email or returns not found.
func (s *CustomerRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.ByEmail[email]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every customer ordered by id.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Customer, 0, len(s.ByID))
	for _, c := range s.ByID {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	mu   sync.Mutex
	ByID map[int64]*model.User
	Next int64
	Err  error
	// Customers, when set, makes Create reject unknown customer ids.
	Customers *CustomerRepositoryStub
	Calls     int
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{ByID: make(map[int64]*model.User), Next: 1}
}

// Create stores the user and assigns an id.
func (s *UserRepositoryStub) Create(ctx context.Context, u *model.User) error {
	if s.Customers != nil {
		if _, err := s.Customers.GetByID(ctx, u.CustomerID); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	u.ID = s.Next
	s.Next++
	stored := *u
	s.ByID[u.ID] = &stored
	return nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if u, ok := s.ByID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCustomer returns users of the customer ordered by id.
func (s *UserRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0)
	for _, u := range s.ByID {
		if u.CustomerID == customerID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes the user or reports not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	mu    sync.Mutex
	ByID  map[int64]*model.Product
	Next  int64
	Err   error
	Calls int
}

// NewProductRepositoryStub constructs stub repository with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{ByID: make(map[int64]*model.Product), Next: 1}
}

// List returns every product ordered by id.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0, len(s.ByID))
	for _, p := range s.ByID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.ByID[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Create inserts the product unless its name is already present.
func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for _, existing := range s.ByID {
		if existing.Name == p.Name {
			return false, nil
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	p.ID = s.Next
	s.Next++
	stored := *p
	s.ByID[p.ID] = &stored
	return true, nil
}

// Put stores a product as-is, bypassing the API.
func (s *ProductRepositoryStub) Put(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID >= s.Next {
		s.Next = p.ID + 1
	}
	s.ByID[p.ID] = &p
}

// FactoryStub exposes stub repositories through repository.Factory.
type FactoryStub struct {
	CustomerRepo *CustomerRepositoryStub
	UserRepo     *UserRepositoryStub
	ProductRepo  *ProductRepositoryStub
}

// NewFactoryStub wires fresh stub repositories together.
func NewFactoryStub() *FactoryStub {
	customers := NewCustomerRepositoryStub()
	users := NewUserRepositoryStub()
	users.Customers = customers
	return &FactoryStub{CustomerRepo: customers, UserRepo: users, ProductRepo: NewProductRepositoryStub()}
}
