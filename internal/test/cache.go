package test

import (
	"context"
	"sync"
	"time"

	"github.com/polkiloo/bilemo/internal/cache"
)

// CacheStub is an in-memory cache.Cache that ignores expiry unless Expire is called.
type CacheStub struct {
	mu      sync.Mutex
	Data    map[string][]byte
	TTLs    map[string]time.Duration
	GetErr  error
	SetErr  error
	PingErr error
}

// NewCacheStub constructs an empty cache.
func NewCacheStub() *CacheStub {
	return &CacheStub{Data: make(map[string][]byte), TTLs: make(map[string]time.Duration)}
}

func (c *CacheStub) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	v, ok := c.Data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (c *CacheStub) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	c.Data[key] = value
	c.TTLs[key] = ttl
	return nil
}

func (c *CacheStub) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.Data, k)
		delete(c.TTLs, k)
	}
	return nil
}

func (c *CacheStub) Ping(ctx context.Context) error {
	return c.PingErr
}

// Expire drops every entry as if the TTL had elapsed.
func (c *CacheStub) Expire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Data = make(map[string][]byte)
	c.TTLs = make(map[string]time.Duration)
}

// Has reports whether key is currently cached.
func (c *CacheStub) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.Data[key]
	return ok
}

// NewAside returns a cache-aside helper over a fresh CacheStub.
func NewAside(ttl time.Duration) (*cache.Aside, *CacheStub) {
	stub := NewCacheStub()
	return cache.NewAside(stub, ttl, nil, nil), stub
}

var _ cache.Cache = (*CacheStub)(nil)
