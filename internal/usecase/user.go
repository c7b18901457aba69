package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/polkiloo/bilemo/internal/cache"
	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/domain/model"
	"github.com/polkiloo/bilemo/internal/domain/repository"
)

const customerMissingMessage = "Customer not found"

// UserUseCase manages the users that belong to customers.
type UserUseCase struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	aside     *cache.Aside
	validator *Validator
	log       *zap.Logger
	now       func() time.Time
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(
	users repository.UserRepository,
	customers repository.CustomerRepository,
	aside *cache.Aside,
	validator *Validator,
	log *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		users:     users,
		customers: customers,
		aside:     aside,
		validator: validator,
		log:       log.Named("user"),
		now:       time.Now,
	}
}

// Get fetches one user owned by customerID. Users of other customers are
// reported as missing.
func (u *UserUseCase) Get(ctx context.Context, customerID, id int64) (*model.User, error) {
	if id <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.CustomerID != customerID {
		u.log.Debug("user belongs to another customer",
			zap.Int64("user_id", id),
			zap.Int64("customer_id", customerID),
		)
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

// Create stores a user owned by customerID. The customer must exist.
func (u *UserUseCase) Create(ctx context.Context, customerID int64, draft model.User) (*model.User, error) {
	user := model.User{
		Firstname:  strings.TrimSpace(draft.Firstname),
		Lastname:   strings.TrimSpace(draft.Lastname),
		Email:      strings.TrimSpace(draft.Email),
		CustomerID: customerID,
		CreatedAt:  u.now().UTC(),
	}

	if err := u.validator.Validate(user); err != nil {
		return nil, err
	}

	if _, err := u.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NewValidationError("customerId", customerMissingMessage)
		}
		return nil, err
	}

	if err := u.users.Create(ctx, &user); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NewValidationError("customerId", customerMissingMessage)
		}
		return nil, err
	}

	u.aside.Invalidate(ctx, cache.CustomerUsersKey(customerID))
	return &user, nil
}

// Delete removes a user owned by customerID and drops the cached user list.
func (u *UserUseCase) Delete(ctx context.Context, customerID, id int64) error {
	user, err := u.Get(ctx, customerID, id)
	if err != nil {
		return err
	}

	if err := u.users.Delete(ctx, user.ID); err != nil {
		return err
	}

	u.aside.Invalidate(ctx, cache.CustomerUsersKey(user.CustomerID))
	u.log.Info("the user has been deleted", zap.Int64("user_id", user.ID), zap.Int64("customer_id", user.CustomerID))
	return nil
}
