package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/polkiloo/bilemo/internal/cache"
	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/domain/model"
	testhelpers "github.com/polkiloo/bilemo/internal/test"
)

type customerFixture struct {
	uc        *CustomerUseCase
	customers *testhelpers.CustomerRepositoryStub
	users     *testhelpers.UserRepositoryStub
	cache     *testhelpers.CacheStub
}

func newCustomerFixture() customerFixture {
	factory := testhelpers.NewFactoryStub()
	aside, stub := testhelpers.NewAside(time.Hour)
	uc := NewCustomerUseCase(factory.CustomerRepo, factory.UserRepo, testhelpers.HasherStub{}, aside, NewValidator(), zap.NewNop())
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return customerFixture{uc: uc, customers: factory.CustomerRepo, users: factory.UserRepo, cache: stub}
}

func TestCustomerUseCaseCreate(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	created, err := f.uc.Create(ctx, model.Customer{Email: " shop@example.com ", Company: "Shop"})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected id to be assigned")
	}
	if created.Email != "shop@example.com" {
		t.Fatalf("expected trimmed email, got %q", created.Email)
	}
	if created.PasswordHash != "hash:"+model.PlaceholderPassword {
		t.Fatalf("expected placeholder password hash, got %q", created.PasswordHash)
	}
	if !created.CreatedAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected createdAt %v", created.CreatedAt)
	}
}

func TestCustomerUseCaseCreateValidation(t *testing.T) {
	f := newCustomerFixture()

	_, err := f.uc.Create(context.Background(), model.Customer{Email: "nope", Company: ""})
	var verr *domainErrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !verr.Has("email") || !verr.Has("company") {
		t.Fatalf("unexpected violations %+v", verr.Violations)
	}
	if len(f.customers.ByID) != 0 {
		t.Fatal("invalid customer must not be stored")
	}
}

func TestCustomerUseCaseCreateDuplicateEmail(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	if _, err := f.uc.Create(ctx, model.Customer{Email: "shop@example.com", Company: "Shop"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := f.uc.Create(ctx, model.Customer{Email: "shop@example.com", Company: "Other"})
	var verr *domainErrors.ValidationError
	if !errors.As(err, &verr) || !verr.Has("email") {
		t.Fatalf("expected email violation, got %v", err)
	}
}

func TestCustomerUseCaseCreateErrors(t *testing.T) {
	f := newCustomerFixture()
	f.uc.hasher = testhelpers.HasherStub{HashFn: func(string) (string, error) { return "", fmt.Errorf("hash error") }}
	if _, err := f.uc.Create(context.Background(), model.Customer{Email: "shop@example.com", Company: "Shop"}); err == nil {
		t.Fatal("expected hashing error")
	}

	f = newCustomerFixture()
	f.customers.Err = fmt.Errorf("db down")
	if _, err := f.uc.Create(context.Background(), model.Customer{Email: "shop@example.com", Company: "Shop"}); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestCustomerUseCaseListIsCached(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	if _, err := f.uc.Create(ctx, model.Customer{Email: "a@example.com", Company: "Alpha"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := f.uc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected one customer, got %d", len(first))
	}

	// Bypass the use case so the cache is not invalidated.
	if err := f.customers.Create(ctx, &model.Customer{Email: "b@example.com", Company: "Beta"}); err != nil {
		t.Fatalf("direct create failed: %v", err)
	}

	second, err := f.uc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(second) != 1 || f.customers.Calls != 1 {
		t.Fatalf("expected cached list, got %d customers after %d loads", len(second), f.customers.Calls)
	}
	if f.cache.TTLs[cache.CustomerListKey()] != time.Hour {
		t.Fatalf("unexpected ttl %v", f.cache.TTLs[cache.CustomerListKey()])
	}

	f.cache.Expire()
	third, err := f.uc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(third) != 2 {
		t.Fatalf("expected fresh list after expiry, got %d", len(third))
	}
}

func TestCustomerUseCaseCreateInvalidatesList(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	if _, err := f.uc.List(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !f.cache.Has(cache.CustomerListKey()) {
		t.Fatal("expected list to be cached")
	}
	if _, err := f.uc.Create(ctx, model.Customer{Email: "a@example.com", Company: "Alpha"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if f.cache.Has(cache.CustomerListKey()) {
		t.Fatal("expected list cache to be invalidated")
	}
}

func TestCustomerUseCaseListError(t *testing.T) {
	f := newCustomerFixture()
	f.customers.Err = fmt.Errorf("db down")
	if _, err := f.uc.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if f.cache.Has(cache.CustomerListKey()) {
		t.Fatal("failed load must not be cached")
	}
}

func TestCustomerUseCaseGet(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	created, err := f.uc.Create(ctx, model.Customer{Email: "a@example.com", Company: "Alpha"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := f.uc.Get(ctx, created.ID)
	if err != nil || got.Company != "Alpha" {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}

	if _, err := f.uc.Get(ctx, 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := f.uc.Get(ctx, 0); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for zero id, got %v", err)
	}
}

func TestCustomerUseCaseUsersKeyedPerCustomer(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	f.users.Customers = nil
	for _, u := range []model.User{
		{Firstname: "Alice", Lastname: "Martin", Email: "alice@example.com", CustomerID: 1},
		{Firstname: "Bruno", Lastname: "Petit", Email: "bruno@example.com", CustomerID: 2},
		{Firstname: "Chloe", Lastname: "Durand", Email: "chloe@example.com", CustomerID: 1},
	} {
		u := u
		if err := f.users.Create(ctx, &u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	first, err := f.uc.Users(ctx, 1)
	if err != nil || len(first) != 2 {
		t.Fatalf("expected two users for customer 1, got %v err=%v", first, err)
	}
	second, err := f.uc.Users(ctx, 2)
	if err != nil || len(second) != 1 || second[0].Firstname != "Bruno" {
		t.Fatalf("expected customer 2 users, got %v err=%v", second, err)
	}

	if !f.cache.Has(cache.CustomerUsersKey(1)) || !f.cache.Has(cache.CustomerUsersKey(2)) {
		t.Fatal("expected one cache entry per customer")
	}

	empty, err := f.uc.Users(ctx, 0)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty list for invalid id, got %v err=%v", empty, err)
	}
}
