package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setErr  error
	delErr  error
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delErr != nil {
		return m.delErr
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	m.deleted = append(m.deleted, keys...)
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

type countingRecorder struct {
	hits   map[string]int
	misses map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{hits: map[string]int{}, misses: map[string]int{}}
}

func (r *countingRecorder) CacheHit(f string)  { r.hits[f]++ }
func (r *countingRecorder) CacheMiss(f string) { r.misses[f]++ }

func TestGetOrLoadMissThenHit(t *testing.T) {
	backend := newMemoryCache()
	rec := newCountingRecorder()
	a := NewAside(backend, time.Hour, nil, rec)

	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	got, err := GetOrLoad(context.Background(), a, ProductListKey(), a.TTL(), load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = GetOrLoad(context.Background(), a, ProductListKey(), a.TTL(), load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, rec.hits["bilemo:product:list"])
	assert.Equal(t, 1, rec.misses["bilemo:product:list"])
}

func TestGetOrLoadServesStaleWithinTTL(t *testing.T) {
	backend := newMemoryCache()
	a := NewAside(backend, time.Hour, nil, nil)

	source := []int{1, 2}
	load := func(context.Context) ([]int, error) {
		return append([]int(nil), source...), nil
	}

	first, err := GetOrLoad(context.Background(), a, "k", 0, load)
	require.NoError(t, err)

	source = append(source, 3)
	second, err := GetOrLoad(context.Background(), a, "k", 0, load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetOrLoadLoaderErrorIsNotCached(t *testing.T) {
	backend := newMemoryCache()
	a := NewAside(backend, time.Hour, nil, nil)
	boom := errors.New("boom")

	_, err := GetOrLoad(context.Background(), a, "k", 0, func(context.Context) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	assert.Empty(t, backend.data)

	got, err := GetOrLoad(context.Background(), a, "k", 0, func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestGetOrLoadFallsThroughOnBackendErrors(t *testing.T) {
	backend := newMemoryCache()
	backend.getErr = errors.New("down")
	backend.setErr = errors.New("down")
	a := NewAside(backend, time.Hour, nil, nil)

	got, err := GetOrLoad(context.Background(), a, "k", 0, func(context.Context) (string, error) { return "fresh", nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}

func TestGetOrLoadReloadsUndecodableEntry(t *testing.T) {
	backend := newMemoryCache()
	backend.data["k"] = []byte("not json")
	a := NewAside(backend, time.Hour, nil, nil)

	got, err := GetOrLoad(context.Background(), a, "k", 0, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, []byte("7"), backend.data["k"])
}

func TestGetOrLoadCollapsesConcurrentMisses(t *testing.T) {
	backend := newMemoryCache()
	a := NewAside(backend, time.Hour, nil, nil)

	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 1, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := GetOrLoad(context.Background(), a, "k", 0, load)
			assert.NoError(t, err)
			assert.Equal(t, 1, v)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(8))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestGetOrLoadSurvivesFirstCallerCancellation(t *testing.T) {
	backend := newMemoryCache()
	a := NewAside(backend, time.Hour, nil, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) (int, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return 5, nil
	}

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := GetOrLoad(firstCtx, a, "k", 0, load)
		firstErr <- err
	}()
	<-started

	second := make(chan int, 1)
	go func() {
		v, err := GetOrLoad(context.Background(), a, "k", 0, func(context.Context) (int, error) {
			return 0, errors.New("second caller must share the running load")
		})
		assert.NoError(t, err)
		second <- v
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	close(release)

	require.NoError(t, <-firstErr)
	assert.Equal(t, 5, <-second)
	assert.Equal(t, []byte("5"), backend.data["k"])
}

func TestInvalidate(t *testing.T) {
	backend := newMemoryCache()
	backend.data[CustomerUsersKey(3)] = []byte("[]")
	a := NewAside(backend, time.Hour, nil, nil)

	a.Invalidate(context.Background(), CustomerUsersKey(3))
	_, ok := backend.data[CustomerUsersKey(3)]
	assert.False(t, ok)
	assert.Equal(t, []string{"bilemo:customer:3:users"}, backend.deleted)

	backend.delErr = errors.New("down")
	a.Invalidate(context.Background(), CustomerListKey())
}

func TestKeyFamilies(t *testing.T) {
	assert.Equal(t, "bilemo:customer:list", family(CustomerListKey()))
	assert.Equal(t, "bilemo:customer:id:users", family(CustomerUsersKey(42)))
	assert.Equal(t, "bilemo:product:list", family(ProductListKey()))
}
