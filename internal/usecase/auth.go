package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/domain/model"
	"github.com/polkiloo/bilemo/internal/domain/repository"
	pkgAuth "github.com/polkiloo/bilemo/internal/pkg/auth"
)

// AuthUseCase authenticates customers and manages their tokens.
type AuthUseCase struct {
	customers repository.CustomerRepository
	hasher    pkgAuth.PasswordHasher
	tokens    pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(customers repository.CustomerRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{customers: customers, hasher: hasher, tokens: strategy}
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.Customer, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	customer, err := u.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(customer.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(customer.ID)
	if err != nil {
		return nil, "", err
	}

	return customer, token, nil
}

// ParseToken extracts customer ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
