package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/polkiloo/bilemo/internal/cache"
	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/domain/model"
	"github.com/polkiloo/bilemo/internal/domain/repository"
	pkgAuth "github.com/polkiloo/bilemo/internal/pkg/auth"
)

const emailTakenMessage = "This value is already used."

// CustomerUseCase serves customer reads through the cache and registers customers.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	users     repository.UserRepository
	hasher    pkgAuth.PasswordHasher
	aside     *cache.Aside
	validator *Validator
	log       *zap.Logger
	now       func() time.Time
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	users repository.UserRepository,
	hasher pkgAuth.PasswordHasher,
	aside *cache.Aside,
	validator *Validator,
	log *zap.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customers: customers,
		users:     users,
		hasher:    hasher,
		aside:     aside,
		validator: validator,
		log:       log.Named("customer"),
		now:       time.Now,
	}
}

// List returns every customer, served from the cache while fresh.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return cache.GetOrLoad(ctx, u.aside, cache.CustomerListKey(), u.aside.TTL(), u.customers.List)
}

// Get fetches one customer straight from the store.
func (u *CustomerUseCase) Get(ctx context.Context, id int64) (*model.Customer, error) {
	if id <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	return u.customers.GetByID(ctx, id)
}

// Users returns the customer's users, served from a per-customer cache entry.
// An unknown customer simply has no users.
func (u *CustomerUseCase) Users(ctx context.Context, customerID int64) ([]model.User, error) {
	if customerID <= 0 {
		return []model.User{}, nil
	}
	return cache.GetOrLoad(ctx, u.aside, cache.CustomerUsersKey(customerID), u.aside.TTL(), func(ctx context.Context) ([]model.User, error) {
		return u.users.ListByCustomer(ctx, customerID)
	})
}

// Create registers a customer with the placeholder password.
func (u *CustomerUseCase) Create(ctx context.Context, draft model.Customer) (*model.Customer, error) {
	customer := model.Customer{
		Email:     strings.TrimSpace(draft.Email),
		Company:   strings.TrimSpace(draft.Company),
		CreatedAt: u.now().UTC(),
	}

	if err := u.validator.Validate(customer); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(model.PlaceholderPassword)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}
	customer.PasswordHash = hash

	if err := u.customers.Create(ctx, &customer); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.NewValidationError("email", emailTakenMessage)
		}
		return nil, err
	}

	u.aside.Invalidate(ctx, cache.CustomerListKey())
	u.log.Info("customer registered", zap.Int64("customer_id", customer.ID))
	return &customer, nil
}
