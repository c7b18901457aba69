package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/domain/model"
	pkgAuth "github.com/polkiloo/bilemo/internal/pkg/auth"
	testhelpers "github.com/polkiloo/bilemo/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(customerID int64) (string, error) {
			return fmt.Sprintf("token-%d", customerID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func seedCustomer(t *testing.T, repo *testhelpers.CustomerRepositoryStub, email, password string) *model.Customer {
	t.Helper()
	customer := &model.Customer{Email: email, Company: "Orange", PasswordHash: "hash:" + password}
	if err := repo.Create(context.Background(), customer); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewCustomerRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	seedCustomer(t, repo, "carol@example.com", "123456")

	ctx := context.Background()
	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	customer, token, err := uc.Authenticate(ctx, " carol@example.com ", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if customer.ID != 1 {
		t.Fatalf("unexpected customer %+v", customer)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewCustomerRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if _, err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateNotFound(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewCustomerRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	if _, _, err := uc.Authenticate(context.Background(), "absent@example.com", "pass"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateIssueTokenError(t *testing.T) {
	repo := testhelpers.NewCustomerRepositoryStub()
	seedCustomer(t, repo, "user@example.com", "pass")
	strategy := testhelpers.StrategyStub{IssueFn: func(int64) (string, error) {
		return "", fmt.Errorf("issue error")
	}}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy)
	if _, _, err := uc.Authenticate(context.Background(), "user@example.com", "pass"); err == nil {
		t.Fatal("expected issue error on authenticate")
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	repo := testhelpers.NewCustomerRepositoryStub()
	repo.Err = fmt.Errorf("storage unavailable")
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, _, err := uc.Authenticate(context.Background(), "user@example.com", "pass"); err == nil || err.Error() != "storage unavailable" {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewCustomerRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	if _, _, err := uc.Authenticate(context.Background(), "  ", "password"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "user@example.com", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}
