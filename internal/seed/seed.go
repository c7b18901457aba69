// Package seed loads the demo catalogue, a demo customer and its users.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/domain/model"
	"github.com/polkiloo/bilemo/internal/domain/repository"
	pkgAuth "github.com/polkiloo/bilemo/internal/pkg/auth"
)

const (
	DemoCustomerEmail   = "demo@bilemo.com"
	DemoCustomerCompany = "Orange"
)

// Transactor runs fn against repositories sharing one transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repository.Factory) error) error
}

// Report summarizes what a run inserted.
type Report struct {
	Products        int
	CustomerCreated bool
	Users           int
}

var products = []model.Product{
	{Name: "Galaxy S24", Brand: "Samsung", Description: "6.2 inch AMOLED, 128 GB", Price: 899.00},
	{Name: "iPhone 15", Brand: "Apple", Description: "6.1 inch Super Retina XDR, 128 GB", Price: 969.00},
	{Name: "Pixel 8", Brand: "Google", Description: "6.2 inch Actua display, 128 GB", Price: 699.00},
	{Name: "Xperia 1 V", Brand: "Sony", Description: "6.5 inch 4K OLED, 256 GB", Price: 1399.00},
	{Name: "Nord 3", Brand: "OnePlus", Description: "6.74 inch AMOLED, 128 GB", Price: 449.00},
	{Name: "Redmi Note 13", Brand: "Xiaomi", Description: "6.67 inch AMOLED, 128 GB", Price: 229.99},
	{Name: "Moto G84", Brand: "Motorola", Description: "6.55 inch pOLED, 256 GB", Price: 299.99},
}

var users = []model.User{
	{Firstname: "Alice", Lastname: "Martin", Email: "alice.martin@example.com"},
	{Firstname: "Bruno", Lastname: "Lefevre", Email: "bruno.lefevre@example.com"},
	{Firstname: "Chloe", Lastname: "Dubois", Email: "chloe.dubois@example.com"},
	{Firstname: "David", Lastname: "Moreau", Email: "david.moreau@example.com"},
	{Firstname: "Emma", Lastname: "Laurent", Email: "emma.laurent@example.com"},
	{Firstname: "Felix", Lastname: "Garnier", Email: "felix.garnier@example.com"},
}

// Seeder inserts fixtures. Running it twice changes nothing.
type Seeder struct {
	tx     Transactor
	hasher pkgAuth.PasswordHasher
	log    *zap.Logger
	now    func() time.Time
}

func New(tx Transactor, hasher pkgAuth.PasswordHasher, log *zap.Logger) *Seeder {
	return &Seeder{tx: tx, hasher: hasher, log: log.Named("seed"), now: time.Now}
}

// Run inserts missing products and, when absent, the demo customer with its users.
func (s *Seeder) Run(ctx context.Context) (Report, error) {
	var report Report
	err := s.tx.WithinTransaction(ctx, func(repos repository.Factory) error {
		report = Report{}
		now := s.now().UTC()

		for _, p := range products {
			p.CreatedAt = now
			created, err := repos.Products().Create(ctx, &p)
			if err != nil {
				return fmt.Errorf("seed product %q: %w", p.Name, err)
			}
			if created {
				report.Products++
			}
		}

		_, err := repos.Customers().GetByEmail(ctx, DemoCustomerEmail)
		switch {
		case err == nil:
			return nil
		case !errors.Is(err, domainErrors.ErrNotFound):
			return fmt.Errorf("lookup demo customer: %w", err)
		}

		hash, err := s.hasher.Hash(model.PlaceholderPassword)
		if err != nil {
			return err
		}
		customer := &model.Customer{
			Email:        DemoCustomerEmail,
			PasswordHash: hash,
			Company:      DemoCustomerCompany,
			CreatedAt:    now,
		}
		if err := repos.Customers().Create(ctx, customer); err != nil {
			return fmt.Errorf("seed demo customer: %w", err)
		}
		report.CustomerCreated = true

		for _, u := range users {
			u.CustomerID = customer.ID
			u.CreatedAt = now
			if err := repos.Users().Create(ctx, &u); err != nil {
				return fmt.Errorf("seed user %q: %w", u.Email, err)
			}
			report.Users++
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	s.log.Info("seed complete",
		zap.Int("products", report.Products),
		zap.Bool("customer_created", report.CustomerCreated),
		zap.Int("users", report.Users),
	)
	return report, nil
}
