package app

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const healthTimeout = 2 * time.Second

// DatabasePinger checks the relational store.
type DatabasePinger interface {
	HealthCheck(ctx context.Context) error
}

// CachePinger checks the cache backend.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// HealthProbe pings every backing service.
type HealthProbe struct {
	db    DatabasePinger
	cache CachePinger
}

func NewHealthProbe(db DatabasePinger, cache CachePinger) *HealthProbe {
	return &HealthProbe{db: db, cache: cache}
}

// Check reports "ok" or the failure text per dependency; the error joins
// every failure.
func (p *HealthProbe) Check(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	checks := make(map[string]string, 2)
	var errs []error
	record := func(name string, err error) {
		if err != nil {
			checks[name] = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		checks[name] = "ok"
	}

	record("database", p.db.HealthCheck(ctx))
	record("cache", p.cache.Ping(ctx))

	return checks, errors.Join(errs...)
}
