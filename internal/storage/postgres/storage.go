package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/domain/model"
	"github.com/polkiloo/bilemo/internal/domain/repository"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *zap.Logger
}

// querier is the subset shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type customerRepository struct {
	db querier
}

type userRepository struct {
	db querier
}

type productRepository struct {
	db querier
}

// txFactory hands out repositories bound to one transaction.
type txFactory struct {
	tx pgx.Tx
}

func (f txFactory) Customers() repository.CustomerRepository { return &customerRepository{db: f.tx} }
func (f txFactory) Users() repository.UserRepository         { return &userRepository{db: f.tx} }
func (f txFactory) Products() repository.ProductRepository   { return &productRepository{db: f.tx} }

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *zap.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Debug("schema ready")

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// HealthCheck pings the database.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{db: s.pool}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{db: s.pool}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{db: s.pool}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            id BIGSERIAL PRIMARY KEY,
            email VARCHAR(180) UNIQUE NOT NULL,
            password TEXT NOT NULL,
            company VARCHAR(255) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            firstname VARCHAR(50) NOT NULL,
            lastname VARCHAR(50) NOT NULL,
            email VARCHAR(100) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id BIGSERIAL PRIMARY KEY,
            name VARCHAR(255) UNIQUE NOT NULL,
            brand VARCHAR(255) NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC(10,2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_users_customer ON users(customer_id, id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return domainErrors.ErrAlreadyExists
		case codeForeignKeyViolation:
			return domainErrors.ErrNotFound
		}
	}
	return err
}

func mapReadError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	return err
}

// --- CustomerRepository implementation ---

func (r *customerRepository) Create(ctx context.Context, c *model.Customer) error {
	const query = `INSERT INTO customers (email, password, company, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRow(ctx, query, c.Email, c.PasswordHash, c.Company, c.CreatedAt).Scan(&c.ID); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, email, password, company, created_at FROM customers WHERE id=$1`
	var c model.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Company, &c.CreatedAt)
	if err != nil {
		return nil, mapReadError(err)
	}
	return &c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const query = `SELECT id, email, password, company, created_at FROM customers WHERE email=$1`
	var c model.Customer
	err := r.db.QueryRow(ctx, query, email).Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Company, &c.CreatedAt)
	if err != nil {
		return nil, mapReadError(err)
	}
	return &c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT id, email, password, company, created_at FROM customers ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Company, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO users (customer_id, firstname, lastname, email, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRow(ctx, query, u.CustomerID, u.Firstname, u.Lastname, u.Email, u.CreatedAt).Scan(&u.ID); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, customer_id, firstname, lastname, email, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.CustomerID, &u.Firstname, &u.Lastname, &u.Email, &u.CreatedAt)
	if err != nil {
		return nil, mapReadError(err)
	}
	return &u, nil
}

func (r *userRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.User, error) {
	const query = `SELECT id, customer_id, firstname, lastname, email, created_at
                   FROM users WHERE customer_id=$1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.CustomerID, &u.Firstname, &u.Lastname, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, brand, description, price, created_at FROM products ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Description, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, brand, description, price, created_at FROM products WHERE id=$1`
	var p model.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Brand, &p.Description, &p.Price, &p.CreatedAt)
	if err != nil {
		return nil, mapReadError(err)
	}
	return &p, nil
}

// Create inserts the product unless one with the same name exists; the bool reports insertion.
func (r *productRepository) Create(ctx context.Context, p *model.Product) (bool, error) {
	const query = `INSERT INTO products (name, brand, description, price, created_at) VALUES ($1, $2, $3, $4, $5)
                   ON CONFLICT (name) DO NOTHING
                   RETURNING id`
	err := r.db.QueryRow(ctx, query, p.Name, p.Brand, p.Description, p.Price, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// WithinTransaction runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(repository.Factory) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(txFactory{tx: tx})
	return err
}
